package chess960

import (
	"strings"
	"unicode"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chess960-go/internal/chess"
	"github.com/lgbarn/chess960-go/internal/errors"
)

// pieceTypes maps piece kinds onto the FEN parser's piece types.
var pieceTypes = map[chess.Piece]notnil.PieceType{
	chess.King:   notnil.King,
	chess.Queen:  notnil.Queen,
	chess.Rook:   notnil.Rook,
	chess.Bishop: notnil.Bishop,
	chess.Knight: notnil.Knight,
	chess.Pawn:   notnil.Pawn,
}

// FEN returns the starting position for a back rank with KQkq castling rights.
func FEN(a Arrangement) string {
	var sb strings.Builder
	writePiecePositions(&sb, a)
	sb.WriteString(" w KQkq - 0 1")
	return sb.String()
}

// ShredderFEN returns the starting position using Shredder notation for
// castling, where rights are the files of the castling rooks.
func ShredderFEN(a Arrangement) string {
	var sb strings.Builder
	writePiecePositions(&sb, a)
	sb.WriteString(" w ")
	writeShredderCastlingRights(&sb, a)
	sb.WriteString(" - 0 1")
	return sb.String()
}

// writePiecePositions writes the board field: black back rank and pawns,
// four empty ranks, then white pawns and back rank.
func writePiecePositions(sb *strings.Builder, a Arrangement) {
	for _, p := range a {
		sb.WriteByte(byte(unicode.ToLower(rune(p.Letter()))))
	}
	sb.WriteString("/pppppppp/8/8/8/8/PPPPPPPP/")
	for _, p := range a {
		sb.WriteByte(p.Letter())
	}
}

// writeShredderCastlingRights writes king-side then queen-side rook files,
// white (uppercase) before black (lowercase).
func writeShredderCastlingRights(sb *strings.Builder, a Arrangement) {
	rooks := a.Files(chess.Rook)
	if len(rooks) != 2 {
		sb.WriteByte('-')
		return
	}

	kingSide, queenSide := chess.ToCol(rooks[1]), chess.ToCol(rooks[0])
	sb.WriteByte(byte(kingSide - 'a' + 'A'))
	sb.WriteByte(byte(queenSide - 'a' + 'A'))
	sb.WriteByte(byte(kingSide))
	sb.WriteByte(byte(queenSide))
}

// Game loads the starting position for a back rank into a playable game and
// checks that both back ranks and pawn ranks read back as expected.
func Game(a Arrangement) (*notnil.Game, error) {
	fen := FEN(a)
	opt, err := notnil.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "%s: %v", fen, err)
	}
	g := notnil.NewGame(opt)
	if err := checkStartRanks(g.Position().Board(), a); err != nil {
		return nil, err
	}
	return g, nil
}

func checkStartRanks(board *notnil.Board, a Arrangement) error {
	ranks := []struct {
		rank   notnil.Rank
		colour notnil.Color
		pieces Arrangement
	}{
		{notnil.Rank1, notnil.White, a},
		{notnil.Rank2, notnil.White, pawnRank()},
		{notnil.Rank7, notnil.Black, pawnRank()},
		{notnil.Rank8, notnil.Black, a},
	}

	for _, r := range ranks {
		for file, p := range r.pieces {
			sq := notnil.NewSquare(notnil.File(file), r.rank)
			got := board.Piece(sq)
			if got.Type() != pieceTypes[p] || got.Color() != r.colour {
				return errors.Wrapf(errors.ErrInvalidFEN, "%s holds %v, want %v %v", sq, got, r.colour, p)
			}
		}
	}
	return nil
}

func pawnRank() Arrangement {
	var a Arrangement
	for file := range a {
		a[file] = chess.Pawn
	}
	return a
}
