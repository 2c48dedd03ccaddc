package chess

import (
	"github.com/lgbarn/chess960-go/internal/errors"
)

// BlackGlyphOffset is the distance between a white figurine code point and
// its black counterpart in the Unicode chess symbols block.
const BlackGlyphOffset = 6

// GlyphPair holds the figurines for one piece kind.
type GlyphPair struct {
	White rune
	Black rune
}

// glyphs maps each piece kind to its Unicode figurines (U+2654..U+265F).
var glyphs = map[Piece]GlyphPair{
	King:   {White: 0x2654, Black: 0x2654 + BlackGlyphOffset},
	Queen:  {White: 0x2655, Black: 0x2655 + BlackGlyphOffset},
	Rook:   {White: 0x2656, Black: 0x2656 + BlackGlyphOffset},
	Bishop: {White: 0x2657, Black: 0x2657 + BlackGlyphOffset},
	Knight: {White: 0x2658, Black: 0x2658 + BlackGlyphOffset},
	Pawn:   {White: 0x2659, Black: 0x2659 + BlackGlyphOffset},
}

// Glyphs returns the figurine pair registered for a piece kind.
func Glyphs(p Piece) (GlyphPair, error) {
	pair, ok := glyphs[p]
	if !ok {
		return GlyphPair{}, &errors.PieceError{Err: errors.ErrUnknownPiece, Piece: p.String()}
	}
	return pair, nil
}

// Glyph returns the figurine for a piece kind in the given colour.
func Glyph(p Piece, colour Colour) (rune, error) {
	pair, err := Glyphs(p)
	if err != nil {
		return 0, &errors.PieceError{
			Err:    errors.ErrUnknownPiece,
			Piece:  p.String(),
			Colour: colour.String(),
		}
	}
	if colour == White {
		return pair.White, nil
	}
	return pair.Black, nil
}
