// Package selector chooses which Chess960 position index to decode.
package selector

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/lgbarn/chess960-go/internal/chess960"
	"github.com/lgbarn/chess960-go/internal/config"
	"github.com/lgbarn/chess960-go/internal/errors"
)

// Source draws uniform random integers.
type Source interface {
	// Intn returns a value in [0, n).
	Intn(n int) (int, error)
}

// CryptoSource draws from a cryptographically secure reader.
// A nil Reader means crypto/rand.Reader.
type CryptoSource struct {
	Reader io.Reader
}

// Intn returns a uniform value in [0, n).
func (s CryptoSource) Intn(n int) (int, error) {
	r := s.Reader
	if r == nil {
		r = rand.Reader
	}
	v, err := rand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, errors.Wrap(err, "drawing random index")
	}
	return int(v.Int64()), nil
}

// Kind records how an index was chosen.
type Kind int

const (
	Random Kind = iota
	Standard
	Fixed
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	switch k {
	case Standard:
		return "standard"
	case Fixed:
		return "fixed"
	default:
		return "random"
	}
}

// Selection is a chosen index and how it was chosen.
type Selection struct {
	Index int
	Kind  Kind
}

// Select picks the index to decode: a fixed index, the classical position,
// or a uniform draw over every position. Random draws may return the
// classical index. Fixed indices are passed through unchecked.
func Select(cfg *config.Config, src Source) (Selection, error) {
	switch {
	case cfg.HasIndex:
		return Selection{Index: cfg.Index, Kind: Fixed}, nil
	case cfg.Standard:
		return Selection{Index: chess960.ClassicalIndex, Kind: Standard}, nil
	}

	index, err := src.Intn(chess960.NumPositions)
	if err != nil {
		return Selection{}, err
	}
	return Selection{Index: index, Kind: Random}, nil
}
