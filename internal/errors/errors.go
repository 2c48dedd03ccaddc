// Package errors provides sentinel errors and error types for chess960.
// It defines the failure conditions of decoding and rendering and structured
// error types that keep context while allowing inspection with errors.Is()
// and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrOutOfRange indicates a position index outside [0, 960).
	ErrOutOfRange = errors.New("position index out of range")

	// ErrUnknownPiece indicates a glyph lookup for a piece kind with no symbol.
	ErrUnknownPiece = errors.New("unknown piece")

	// ErrInvalidArrangement indicates a back rank that breaks Chess960 placement rules.
	ErrInvalidArrangement = errors.New("invalid arrangement")

	// ErrInvalidFEN indicates a start position that a FEN parser rejected.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// IndexError wraps errors with the position index that caused them.
type IndexError struct {
	Err   error // The underlying error
	Index int   // The offending position index
	Min   int   // Inclusive lower bound of the valid range
	Max   int   // Exclusive upper bound of the valid range
}

// Error returns a formatted error message including the index and valid range.
func (e *IndexError) Error() string {
	msg := fmt.Sprintf("index %d", e.Index)
	if e.Max > e.Min {
		msg += fmt.Sprintf(" (want %d <= index < %d)", e.Min, e.Max)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the IndexError wrapper.
func (e *IndexError) Unwrap() error {
	return e.Err
}

// PieceError reports a failure tied to a particular piece kind and colour.
// Piece and Colour hold their display names so this package stays free of
// chess types.
type PieceError struct {
	Err    error  // The underlying error
	Piece  string // Piece kind name, e.g. "Knight" or "Piece(9)"
	Colour string // Colour name (if applicable)
}

// Error returns a formatted error message with piece context.
func (e *PieceError) Error() string {
	var parts []string

	if e.Colour != "" {
		parts = append(parts, strings.ToLower(e.Colour))
	}
	if e.Piece != "" {
		parts = append(parts, e.Piece)
	}

	context := strings.Join(parts, " ")
	switch {
	case context == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case context != "":
		return context
	}
	return "piece error"
}

// Unwrap returns the underlying error.
func (e *PieceError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
