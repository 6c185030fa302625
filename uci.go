// uci.go implements conversions to and from the Universal Chess
// Interface's long algebraic move notation.

package kestrel

import "strings"

// Move2UCI converts m into long algebraic notation.
// Examples: e2e4, e7e5, e1g1 (white short castling), e7e8q (promotion).
//
// Castling moves are encoded internally with the rook's squares (see
// [CaptureTag]), so the king's own from/to squares are substituted
// here to match the UCI convention.
func Move2UCI(m Move) string {
	var b strings.Builder
	b.Grow(5)

	if m.IsCastling() {
		info := castleByRookFrom(m.From())
		b.WriteString(Square2String[info.kingFrom])
		b.WriteString(Square2String[info.kingTo])
		return b.String()
	}

	b.WriteString(Square2String[m.From()])
	b.WriteString(Square2String[m.To()])

	if m.IsPromotion() {
		switch m.PromoKind() {
		case PromoKnight:
			b.WriteByte('n')
		case PromoBishop:
			b.WriteByte('b')
		case PromoRook:
			b.WriteByte('r')
		case PromoQueen:
			b.WriteByte('q')
		}
	}

	return b.String()
}

// UCI2Move finds the legal move in legalMoves matching the given long
// algebraic notation string, or the zero [Move] if none matches.
func UCI2Move(uci string, legalMoves MoveList) Move {
	from := string2Square(uci[0:2])
	to := string2Square(uci[2:4])

	var promo PromoKind = PromoNone
	if len(uci) == 5 {
		switch uci[4] {
		case 'n':
			promo = PromoKnight
		case 'b':
			promo = PromoBishop
		case 'r':
			promo = PromoRook
		case 'q':
			promo = PromoQueen
		}
	}

	for i := range legalMoves.LastMoveIndex {
		m := legalMoves.Moves[i]
		if m.IsCastling() {
			info := castleByRookFrom(m.From())
			if info.kingFrom == from && info.kingTo == to {
				return m
			}
			continue
		}
		if m.From() == from && m.To() == to && m.PromoKind() == promo {
			return m
		}
	}
	return Move(0)
}
