// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Piece represents a chess piece kind.
type Piece int

const (
	NoPiece Piece = iota // Zero value; has no letter or glyph
	Pawn
	King
	Queen
	Bishop
	Knight
	Rook
	NumPieceValues
)

// Pieces lists every real piece kind in declaration order.
var Pieces = []Piece{Pawn, King, Queen, Bishop, Knight, Rook}

var pieceNames = [...]string{"NoPiece", "Pawn", "King", "Queen", "Bishop", "Knight", "Rook"}

var pieceLetters = [...]byte{' ', 'P', 'K', 'Q', 'B', 'N', 'R'}

// String returns the string representation of a piece.
func (p Piece) String() string {
	if p >= 0 && int(p) < len(pieceNames) {
		return pieceNames[p]
	}
	return fmt.Sprintf("Piece(%d)", int(p))
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	if p > NoPiece && int(p) < len(pieceLetters) {
		return pieceLetters[p]
	}
	return '?'
}

// Valid reports whether p is one of the six piece kinds.
func (p Piece) Valid() bool {
	return p > NoPiece && p < NumPieceValues
}

// PieceFromLetter converts an SAN letter (either case) to a piece kind.
// It returns NoPiece for anything else.
func PieceFromLetter(c byte) Piece {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'P', 'p':
		return Pawn
	default:
		return NoPiece
	}
}

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8
	ColBase   = 'a'
)

// ToCol converts a zero-based file index to a column character.
func ToCol(file int) Col {
	return Col(file + ColBase)
}
