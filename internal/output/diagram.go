// Package output renders back-rank arrangements as text diagrams.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chess960-go/internal/chess"
	"github.com/lgbarn/chess960-go/internal/chess960"
)

// FileHeader labels the files above and below the diagram.
const FileHeader = "a b c d e f g h"

var pawnRow = chess960.Arrangement{
	chess.Pawn, chess.Pawn, chess.Pawn, chess.Pawn,
	chess.Pawn, chess.Pawn, chess.Pawn, chess.Pawn,
}

// DiagramWriter writes diagram lines, remembering the first write error.
type DiagramWriter struct {
	w   io.Writer
	err error
}

// NewDiagramWriter creates a new diagram writer.
func NewDiagramWriter(w io.Writer) *DiagramWriter {
	return &DiagramWriter{w: w}
}

// Line writes s followed by a newline.
func (d *DiagramWriter) Line(s string) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintln(d.w, s)
}

// Row writes one rank of figurines in the given colour, space separated.
func (d *DiagramWriter) Row(rank chess960.Arrangement, colour chess.Colour) {
	if d.err != nil {
		return
	}

	symbols := make([]string, len(rank))
	for file, p := range rank {
		glyph, err := chess.Glyph(p, colour)
		if err != nil {
			d.err = err
			return
		}
		symbols[file] = string(glyph)
	}
	d.Line(strings.Join(symbols, " "))
}

// Err returns the first error encountered, if any.
func (d *DiagramWriter) Err() error {
	return d.err
}

// Write writes the two-colour diagram of a back rank to w. Black is at the
// top; the position index sits between the pawn ranks.
func Write(w io.Writer, a chess960.Arrangement, index int) error {
	d := NewDiagramWriter(w)

	d.Line("black")
	d.Line("")
	d.Line(FileHeader)
	d.Row(a, chess.Black)
	d.Row(pawnRow, chess.Black)

	d.Line("")
	d.Line(fmt.Sprint(index))
	d.Line("")

	d.Row(pawnRow, chess.White)
	d.Row(a, chess.White)
	d.Line(FileHeader)
	d.Line("")
	d.Line("white")

	return d.Err()
}

// Render returns the diagram Write would produce.
func Render(a chess960.Arrangement, index int) (string, error) {
	var sb strings.Builder
	if err := Write(&sb, a, index); err != nil {
		return "", err
	}
	return sb.String(), nil
}
