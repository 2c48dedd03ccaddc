package output

import (
	"errors"
	"strings"
	"testing"

	"github.com/lgbarn/chess960-go/internal/chess"
	"github.com/lgbarn/chess960-go/internal/chess960"
	chesserrors "github.com/lgbarn/chess960-go/internal/errors"
	"github.com/lgbarn/chess960-go/internal/testutil"
)

const classicalDiagram = `black

a b c d e f g h
♜ ♞ ♝ ♛ ♚ ♝ ♞ ♜
♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟

518

♙ ♙ ♙ ♙ ♙ ♙ ♙ ♙
♖ ♘ ♗ ♕ ♔ ♗ ♘ ♖
a b c d e f g h

white
`

func mustDecode(t *testing.T, index int) chess960.Arrangement {
	t.Helper()
	a, err := chess960.Decode(index)
	if err != nil {
		t.Fatalf("Decode(%d) error: %v", index, err)
	}
	return a
}

func TestRender_Classical(t *testing.T) {
	got, err := Render(mustDecode(t, chess960.ClassicalIndex), chess960.ClassicalIndex)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, classicalDiagram)
}

func TestRender_GlyphCounts(t *testing.T) {
	got, err := Render(mustDecode(t, chess960.ClassicalIndex), chess960.ClassicalIndex)
	testutil.AssertNoError(t, err)

	testutil.AssertContains(t, got, "518")
	testutil.AssertEqual(t, testutil.CountRunes(got, '♔', '♕', '♖', '♗', '♘'), 8, "white pieces")
	testutil.AssertEqual(t, testutil.CountRunes(got, '♚', '♛', '♜', '♝', '♞'), 8, "black pieces")
	testutil.AssertEqual(t, testutil.CountRunes(got, '♙', '♟'), 16, "pawns")
}

func TestRender_LayoutOrder(t *testing.T) {
	a := mustDecode(t, 0)
	got, err := Render(a, 0)
	testutil.AssertNoError(t, err)

	lines := strings.Split(strings.TrimSuffix(got, "\n"), "\n")
	want := []string{
		"black",
		"",
		FileHeader,
		"♝ ♝ ♛ ♞ ♞ ♜ ♚ ♜",
		"♟ ♟ ♟ ♟ ♟ ♟ ♟ ♟",
		"",
		"0",
		"",
		"♙ ♙ ♙ ♙ ♙ ♙ ♙ ♙",
		"♗ ♗ ♕ ♘ ♘ ♖ ♔ ♖",
		FileHeader,
		"",
		"white",
	}
	testutil.AssertEqual(t, lines, want)
}

func TestRender_EveryPosition(t *testing.T) {
	for i, a := range chess960.All() {
		got, err := Render(a, i)
		if err != nil {
			t.Fatalf("Render(%s, %d) error: %v", a, i, err)
		}
		if n := testutil.CountRunes(got, '♙', '♟'); n != 16 {
			t.Fatalf("Render(%s, %d) has %d pawns", a, i, n)
		}
	}
}

func TestRender_UnknownPiece(t *testing.T) {
	a := mustDecode(t, chess960.ClassicalIndex)
	a[4] = chess.NoPiece

	got, err := Render(a, chess960.ClassicalIndex)
	if !errors.Is(err, chesserrors.ErrUnknownPiece) {
		t.Fatalf("Render() error = %v; want ErrUnknownPiece", err)
	}
	testutil.AssertEqual(t, got, "")

	var pieceErr *chesserrors.PieceError
	if !errors.As(err, &pieceErr) {
		t.Fatal("Render() error is not a *PieceError")
	}
	testutil.AssertEqual(t, pieceErr.Colour, "Black")
}

func TestRender_DoesNotMutate(t *testing.T) {
	a := mustDecode(t, 42)
	before := a

	_, err := Render(a, 42)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, a, before)
}

type failingWriter struct {
	writes int
}

var errWriteFailed = errors.New("write failed")

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, errWriteFailed
}

func TestWrite_StopsOnFirstError(t *testing.T) {
	fw := &failingWriter{}

	err := Write(fw, mustDecode(t, chess960.ClassicalIndex), chess960.ClassicalIndex)
	testutil.AssertErrorIs(t, err, errWriteFailed)
	testutil.AssertEqual(t, fw.writes, 1)
}
