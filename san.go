/*
san.go implements serialization of moves into Standard Algebraic
Notation.
See https://ia802908.us.archive.org/26/items/pgn-standard-1994-03-12/PGN_standard_1994-03-12.txt
Section 8.2.3.
*/

package kestrel

import "strings"

var files = [8]byte{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'}

/*
Move2SAN encodes m, played from pos, to its SAN representation.
legalMoves must be the full legal move list for pos (before m is
played) so that disambiguation can be resolved; whether the move
delivers check or checkmate is determined by playing it on a scratch
copy of pos.

A SAN string consists of:
 1. Piece letter, omitted for pawns.
 2. Optional originating file or rank, used for disambiguation. A
    pawn capture always includes its originating file.
 3. 'x' for captures.
 4. Destination file and rank.
 5. '+' for check, '#' for checkmate (mutually exclusive).

Castling is encoded as "O-O" or "O-O-O".
*/
func Move2SAN(m Move, pos *Position, legalMoves MoveList) string {
	if m.IsCastling() {
		if m.To() == castleTable[1].rookTo || m.To() == castleTable[3].rookTo {
			return moveSANSuffix(m, pos, "O-O-O")
		}
		return moveSANSuffix(m, pos, "O-O")
	}

	piece := pos.GetPieceFromSquare(m.From())
	kind := kindOf(piece)

	var b strings.Builder
	b.Grow(6)

	switch kind {
	case kindOf(PieceWKnight):
		b.WriteByte('N')
	case kindOf(PieceWBishop):
		b.WriteByte('B')
	case kindOf(PieceWRook):
		b.WriteByte('R')
	case kindOf(PieceWQueen):
		b.WriteByte('Q')
	case kindOf(PieceWKing):
		b.WriteByte('K')
	}

	if kind != kindOf(PieceWPawn) {
		for i := range legalMoves.LastMoveIndex {
			other := legalMoves.Moves[i]
			if other.From() == m.From() || other.To() != m.To() {
				continue
			}
			if kindOf(pos.GetPieceFromSquare(other.From())) == kind {
				b.WriteByte(disambiguate(m.From(), other.From()))
				break
			}
		}
	}

	if m.IsCapture() {
		if kind == kindOf(PieceWPawn) {
			b.WriteByte(files[m.From()%8])
		}
		b.WriteByte('x')
	}

	b.WriteString(Square2String[m.To()])

	if m.IsPromotion() {
		switch m.PromoKind() {
		case PromoKnight:
			b.WriteString("=N")
		case PromoBishop:
			b.WriteString("=B")
		case PromoRook:
			b.WriteString("=R")
		case PromoQueen:
			b.WriteString("=Q")
		}
	}

	return moveSANSuffix(m, pos, b.String())
}

// moveSANSuffix plays m on a scratch copy of pos to determine whether
// it delivers check or checkmate, and appends the matching suffix.
func moveSANSuffix(m Move, pos *Position, san string) string {
	scratch := *pos
	scratch.history = nil
	scratch.MakeMove(m)
	if !scratch.IsCheck() {
		return san
	}
	if scratch.AllLegalMoves().LastMoveIndex == 0 {
		return san + "#"
	}
	return san + "+"
}

/*
disambiguate resolves the ambiguity that arises when multiple pieces
of the same kind can move to the same square:
 1. If the moving pieces can be distinguished by their originating
    files, the originating file is inserted after the piece letter.
 2. Otherwise, if distinguishable by rank, the originating rank is
    inserted instead.
*/
func disambiguate(fromA, fromB int) byte {
	if fromA%8 != fromB%8 {
		return files[fromA%8]
	}
	return byte(fromA/8 + 1 + '0')
}
