// Package chess960 maps Chess960 position indices to back-rank arrangements.
package chess960

import (
	"github.com/lgbarn/chess960-go/internal/chess"
	"github.com/lgbarn/chess960-go/internal/errors"
)

const (
	// NumPositions is the number of distinct Chess960 starting positions.
	NumPositions = 960

	// ClassicalIndex is the index of the orthodox starting position RNBQKBNR.
	ClassicalIndex = 518

	bishopGroups = 16
	bishopFiles  = 4
)

// kingTable lists the 60 ways to fill the six files left free by the bishops.
// Rows come in blocks of six per king position; within a block the queen
// moves right one slot per row and the knights take what is left.
var kingTable = [NumPositions / bishopGroups]string{
	"QNNRKR", "NQNRKR", "NNQRKR", "NNRQKR", "NNRKQR", "NNRKRQ",
	"QNRNKR", "NQRNKR", "NRQNKR", "NRNQKR", "NRNKQR", "NRNKRQ",
	"QNRKNR", "NQRKNR", "NRQKNR", "NRKQNR", "NRKNQR", "NRKNRQ",
	"QNRKRN", "NQRKRN", "NRQKRN", "NRKQRN", "NRKRQN", "NRKRNQ",
	"QRNNKR", "RQNNKR", "RNQNKR", "RNNQKR", "RNNKQR", "RNNKRQ",
	"QRNKNR", "RQNKNR", "RNQKNR", "RNKQNR", "RNKNQR", "RNKNRQ",
	"QRNKRN", "RQNKRN", "RNQKRN", "RNKQRN", "RNKRQN", "RNKRNQ",
	"QRKNNR", "RQKNNR", "RKQNNR", "RKNQNR", "RKNNQR", "RKNNRQ",
	"QRKNRN", "RQKNRN", "RKQNRN", "RKNQRN", "RKNRQN", "RKNRNQ",
	"QRKRNN", "RQKRNN", "RKQRNN", "RKRQNN", "RKRNQN", "RKRNNQ",
}

// Decode returns the back rank for a position index in [0, 960).
// Indices outside that range are rejected rather than wrapped.
func Decode(index int) (Arrangement, error) {
	var a Arrangement

	if index < 0 || index >= NumPositions {
		return a, &errors.IndexError{Err: errors.ErrOutOfRange, Index: index, Min: 0, Max: NumPositions}
	}

	kingGroup, bishopGroup := index/bishopGroups, index%bishopGroups
	dark, light := bishopGroup/bishopFiles, bishopGroup%bishopFiles

	a[dark*2] = chess.Bishop
	a[light*2+1] = chess.Bishop

	rest := kingTable[kingGroup]
	placed := 0
	for file := range a {
		if a[file] != chess.NoPiece {
			continue
		}
		a[file] = chess.PieceFromLetter(rest[placed])
		placed++
	}

	return a, nil
}

// Encode returns the position index of a back rank. It is the inverse of
// Decode and fails with ErrInvalidArrangement for anything Decode cannot
// produce.
func Encode(a Arrangement) (int, error) {
	if err := Validate(a); err != nil {
		return 0, err
	}

	dark, light := -1, -1
	rest := make([]byte, 0, len(a)-2)
	for file, p := range a {
		switch {
		case p == chess.Bishop && file%2 == 0:
			dark = file / 2
		case p == chess.Bishop:
			light = file / 2
		default:
			rest = append(rest, p.Letter())
		}
	}

	key := string(rest)
	for kingGroup, row := range kingTable {
		if row == key {
			return kingGroup*bishopGroups + dark*bishopFiles + light, nil
		}
	}

	// Validate accepted it, so the table must have a row for it.
	return 0, errors.Wrapf(errors.ErrInvalidArrangement, "no table row for %s", key)
}

// All returns every arrangement in index order.
func All() []Arrangement {
	all := make([]Arrangement, NumPositions)
	for i := range all {
		a, err := Decode(i)
		if err != nil {
			panic(err)
		}
		all[i] = a
	}
	return all
}
