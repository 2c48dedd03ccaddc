package chess960

import (
	"github.com/lgbarn/chess960-go/internal/chess"
	"github.com/lgbarn/chess960-go/internal/errors"
)

// Arrangement is one back rank, files a through h.
type Arrangement [chess.BoardSize]chess.Piece

// backRankCounts is how many of each kind a back rank holds.
var backRankCounts = []struct {
	piece chess.Piece
	count int
}{
	{chess.King, 1},
	{chess.Queen, 1},
	{chess.Rook, 2},
	{chess.Bishop, 2},
	{chess.Knight, 2},
}

// String returns the arrangement as uppercase SAN letters, e.g. "RNBQKBNR".
func (a Arrangement) String() string {
	letters := make([]byte, len(a))
	for file, p := range a {
		letters[file] = p.Letter()
	}
	return string(letters)
}

// Parse reads an arrangement from eight SAN letters in either case.
// The result is not validated; use Validate for that.
func Parse(s string) (Arrangement, error) {
	var a Arrangement

	if len(s) != len(a) {
		return a, errors.Wrapf(errors.ErrInvalidArrangement, "%q has %d letters, want %d", s, len(s), len(a))
	}
	for file := range a {
		p := chess.PieceFromLetter(s[file])
		if p == chess.NoPiece {
			return a, errors.Wrapf(errors.ErrInvalidArrangement, "unknown piece letter %q on file %c", s[file], chess.ToCol(file))
		}
		a[file] = p
	}
	return a, nil
}

// Validate checks the Chess960 placement rules: the piece counts, bishops
// on opposite colours and the king between the rooks.
func Validate(a Arrangement) error {
	counts := make(map[chess.Piece]int, len(backRankCounts))
	for file, p := range a {
		if p == chess.Pawn || !p.Valid() {
			return errors.Wrapf(errors.ErrInvalidArrangement, "%v not allowed on file %c", p, chess.ToCol(file))
		}
		counts[p]++
	}
	for _, want := range backRankCounts {
		if got := counts[want.piece]; got != want.count {
			return errors.Wrapf(errors.ErrInvalidArrangement, "found %d of %v, want %d", got, want.piece, want.count)
		}
	}

	if !hasOppositeColourBishops(a) {
		return errors.Wrap(errors.ErrInvalidArrangement, "bishops on same colour squares")
	}
	if !isKingBetweenRooks(a) {
		return errors.Wrap(errors.ErrInvalidArrangement, "king not between rooks")
	}
	return nil
}

// Files returns the files (0-7) holding piece kind p, in ascending order.
func (a Arrangement) Files(p chess.Piece) []int {
	var files []int
	for file, q := range a {
		if q == p {
			files = append(files, file)
		}
	}
	return files
}

func hasOppositeColourBishops(a Arrangement) bool {
	files := a.Files(chess.Bishop)
	return len(files) == 2 && files[0]%2 != files[1]%2
}

func isKingBetweenRooks(a Arrangement) bool {
	rooks := a.Files(chess.Rook)
	kings := a.Files(chess.King)
	if len(rooks) != 2 || len(kings) != 1 {
		return false
	}
	return rooks[0] < kings[0] && kings[0] < rooks[1]
}
