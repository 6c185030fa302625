/*
movegen.go implements legal move generation. Pseudo-legal generation is
filtered in a single pass using the pin/check cache computed by
[Position.computeChecksAndPins], rather than the copy-make-and-recheck
approach: a piece pinned to its king may only move along the pin ray,
and when in check, a non-king move must land on the single checker's
blockRay (or capture it); a double check allows only king moves.
*/

package kestrel

const (
	notAFile  uint64 = 0xFEFEFEFEFEFEFEFE
	notHFile  uint64 = 0x7F7F7F7F7F7F7F7F
	rank2     uint64 = 0xFF00
	rank7     uint64 = 0xFF000000000000
	rank4     uint64 = 0xFF000000
	rank5     uint64 = 0xFF00000000
)

// pawnSingleTargets returns the empty squares one rank ahead of pawns,
// in us's direction of travel.
func pawnSingleTargets(pawns uint64, occ uint64, us Color) uint64 {
	if us == ColorWhite {
		return (pawns << 8) &^ occ
	}
	return (pawns >> 8) &^ occ
}

func pawnDoubleTargets(singleTargets uint64, occ uint64, us Color) uint64 {
	if us == ColorWhite {
		return ((singleTargets << 8) & rank4) &^ occ
	}
	return ((singleTargets >> 8) & rank5) &^ occ
}

// pinRestriction returns the set of squares a piece on sq is allowed
// to move to, given it is pinned to its king: the whole line through
// the king and sq, which contains the full pin ray (pinner included),
// or AllSquares if the piece isn't pinned.
func pinRestriction(p *Position, sq int, us Color) uint64 {
	if p.CachedPins[us]&(uint64(1)<<sq) == 0 {
		return AllSquares
	}
	kingSq := bitScan(p.Pieces[pieceIndex(kindOf(PieceWKing), us)])
	ends := uint64(1)<<sq | uint64(1)<<kingSq
	if bishopPinRay[sq][kingSq] != 0 {
		return slidingAttacks(sq, 0, bishopDirs)&slidingAttacks(kingSq, 0, bishopDirs) | ends
	}
	return slidingAttacks(sq, 0, rookDirs)&slidingAttacks(kingSq, 0, rookDirs) | ends
}

// legalDestinations intersects candidate destinations with both the
// pin restriction (if pinned) and, when in check, the block mask.
func legalDestinations(p *Position, sq int, us Color, candidates uint64) uint64 {
	candidates &= pinRestriction(p, sq, us)
	if p.CachedChecks.numCheckers == 1 {
		candidates &= p.CachedChecks.blockRay
	}
	return candidates
}

// genPieceMoves appends moves for every piece in bb (candidate
// destinations given by attacksFn) to list, honoring pins/checks.
func genPieceMoves(p *Position, list *MoveList, bb uint64, us Color, attacksFn func(sq int) uint64, quietOnly, captureOnly bool) {
	them := 1 - us
	for bb != 0 {
		sq := popLSB(&bb)
		targets := attacksFn(sq)
		targets &^= p.Occupancy[us]
		targets = legalDestinations(p, sq, us, targets)
		quiet := targets &^ p.Occupancy[them]
		captures := targets & p.Occupancy[them]
		if !captureOnly {
			t := quiet
			for t != 0 {
				to := popLSB(&t)
				list.Push(NewMove(sq, to))
			}
		}
		if !quietOnly {
			c := captures
			for c != 0 {
				to := popLSB(&c)
				list.Push(NewCaptureMove(sq, to, p.Mailbox[to]))
			}
		}
	}
}

// genPawnMoves appends pawn pushes, captures, promotions and en
// passant, honoring pins/checks.
func genPawnMoves(p *Position, list *MoveList, us Color, quietOnly, captureOnly bool) {
	them := 1 - us
	pawns := p.Pieces[pieceIndex(kindOf(PieceWPawn), us)]
	promoRank := rank7
	if us == ColorBlack {
		promoRank = rank2
	}

	if !captureOnly {
		pushable := pawns &^ promoRank
		for bb := pushable; bb != 0; {
			sq := popLSB(&bb)
			// rawSingle reflects only whether the square ahead is
			// empty; double-push eligibility depends on that physical
			// fact, not on whether the single push itself survives
			// the pin/check filter below.
			rawSingle := pawnSingleTargets(uint64(1)<<sq, p.AllPieces, us)
			if rawSingle == 0 {
				continue
			}
			to := bitScan(rawSingle)

			if single := legalDestinations(p, sq, us, rawSingle); single != 0 {
				list.Push(NewMove(sq, to))
			}

			double := pawnDoubleTargets(uint64(1)<<to, p.AllPieces, us)
			double = legalDestinations(p, sq, us, double)
			if double != 0 {
				list.Push(NewMove(sq, bitScan(double)))
			}
		}
	}

	promoting := pawns & promoRank
	for bb := promoting; bb != 0; {
		sq := popLSB(&bb)
		if !captureOnly {
			single := pawnSingleTargets(uint64(1)<<sq, p.AllPieces, us)
			single = legalDestinations(p, sq, us, single)
			if single != 0 {
				to := bitScan(single)
				pushPromotions(list, sq, to, PieceNone)
			}
		}
		if !quietOnly {
			attacks := pawnAttacks[us][sq] & p.Occupancy[them]
			attacks = legalDestinations(p, sq, us, attacks)
			for a := attacks; a != 0; {
				to := popLSB(&a)
				pushPromotions(list, sq, to, p.Mailbox[to])
			}
		}
	}

	if !quietOnly {
		nonPromoting := pawns &^ promoRank
		for bb := nonPromoting; bb != 0; {
			sq := popLSB(&bb)
			attacks := pawnAttacks[us][sq] & p.Occupancy[them]
			attacks = legalDestinations(p, sq, us, attacks)
			for a := attacks; a != 0; {
				to := popLSB(&a)
				list.Push(NewCaptureMove(sq, to, p.Mailbox[to]))
			}

			if p.EPTarget >= 0 && pawnAttacks[us][sq]&(uint64(1)<<p.EPTarget) != 0 {
				capSq := p.EPTarget - 8
				if us == ColorBlack {
					capSq = p.EPTarget + 8
				}
				// En passant can expose a pin the ordinary pin cache
				// can't see (both the pawn and its victim leave the
				// rank at once), so it's verified directly instead of
				// through legalDestinations.
				if p.kingIsSafeAfterPassant(sq, p.EPTarget, capSq, us) {
					list.Push(NewCaptureMove(sq, p.EPTarget, p.Mailbox[capSq]))
				}
			}
		}
	}
}

func pushPromotions(list *MoveList, from, to int, captured Piece) {
	for _, kind := range []PromoKind{PromoQueen, PromoRook, PromoBishop, PromoKnight} {
		list.Push(NewPromotionMove(from, to, kind, captured))
	}
}

// genKingMoves appends king moves (including castling, when
// captureOnly is false and the king isn't in check) honoring that the
// destination mustn't be attacked.
func genKingMoves(p *Position, list *MoveList, us Color, quietOnly, captureOnly bool) {
	them := 1 - us
	sq := bitScan(p.Pieces[pieceIndex(kindOf(PieceWKing), us)])
	targets := kingAttacks[sq] &^ p.Occupancy[us]
	quiet := targets &^ p.Occupancy[them]
	captures := targets & p.Occupancy[them]

	if !captureOnly {
		q := quiet
		for q != 0 {
			to := popLSB(&q)
			if p.wouldKingBeSafe(to, us) {
				list.Push(NewMove(sq, to))
			}
		}
	}
	if !quietOnly {
		c := captures
		for c != 0 {
			to := popLSB(&c)
			if p.wouldKingBeSafe(to, us) {
				list.Push(NewCaptureMove(sq, to, p.Mailbox[to]))
			}
		}
	}

	if !captureOnly && p.CachedChecks.numCheckers == 0 {
		base := 0
		if us == ColorBlack {
			base = 2
		}
		if p.canCastle(base) {
			list.Push(NewCastlingMove(castleTable[base].rookFrom, castleTable[base].rookTo))
		}
		if p.canCastle(base + 1) {
			list.Push(NewCastlingMove(castleTable[base+1].rookFrom, castleTable[base+1].rookTo))
		}
	}
}

// wouldKingBeSafe reports whether relocating the side-to-move's king
// from its current square to `to` leaves it unattacked. The king is
// removed from its home square first so that it doesn't block its own
// escape along a ray it's currently standing on.
func (p *Position) wouldKingBeSafe(to int, us Color) bool {
	kingSq := bitScan(p.Pieces[pieceIndex(kindOf(PieceWKing), us)])
	captured := p.Mailbox[to]
	hadCapture := captured != PieceNone
	if hadCapture {
		p.removePiece(to)
	}
	p.removePiece(kingSq)
	safe := !p.isSquareAttacked(to, 1-us)
	p.placePiece(pieceIndex(kindOf(PieceWKing), us), kingSq)
	if hadCapture {
		p.placePiece(captured, to)
	}
	return safe
}

func genSliderMoves(p *Position, list *MoveList, us Color, kind Piece, quietOnly, captureOnly bool) {
	bb := p.Pieces[pieceIndex(kindOf(kind), us)]
	var attacksFn func(sq int) uint64
	switch kindOf(kind) {
	case kindOf(PieceWBishop):
		attacksFn = func(sq int) uint64 { return GetBishopAttacks(sq, p.AllPieces) }
	case kindOf(PieceWRook):
		attacksFn = func(sq int) uint64 { return GetRookAttacks(sq, p.AllPieces) }
	case kindOf(PieceWQueen):
		attacksFn = func(sq int) uint64 { return GetQueenAttacks(sq, p.AllPieces) }
	}
	genPieceMoves(p, list, bb, us, attacksFn, quietOnly, captureOnly)
}

func genKnightMoves(p *Position, list *MoveList, us Color, quietOnly, captureOnly bool) {
	bb := p.Pieces[pieceIndex(kindOf(PieceWKnight), us)]
	genPieceMoves(p, list, bb, us, func(sq int) uint64 { return knightAttacks[sq] }, quietOnly, captureOnly)
}

// genAllPseudoLegal generates every pin/check-filtered move for us,
// restricted to captures-only or quiet-only when requested.
func genAllPseudoLegal(p *Position, us Color, quietOnly, captureOnly bool) MoveList {
	p.computeChecksAndPins()
	var list MoveList
	if p.CachedChecks.numCheckers >= 2 {
		// Double check: only the king can move.
		genKingMoves(p, &list, us, quietOnly, captureOnly)
		return list
	}
	genPawnMoves(p, &list, us, quietOnly, captureOnly)
	genKnightMoves(p, &list, us, quietOnly, captureOnly)
	genSliderMoves(p, &list, us, PieceWBishop, quietOnly, captureOnly)
	genSliderMoves(p, &list, us, PieceWRook, quietOnly, captureOnly)
	genSliderMoves(p, &list, us, PieceWQueen, quietOnly, captureOnly)
	genKingMoves(p, &list, us, quietOnly, captureOnly)
	return list
}

// CaptureMoves returns every legal capturing move (including
// promotion-captures and en passant) for the side to move, sorted by
// descending victim value (MVV) per the generator's capture-ordering
// contract.
func (p *Position) CaptureMoves() MoveList {
	list := genAllPseudoLegal(p, p.SideToMove, false, true)
	orderMoves(list.Slice())
	return list
}

// NonCaptureMoves returns every legal non-capturing move (including
// quiet promotions and castling) for the side to move.
func (p *Position) NonCaptureMoves() MoveList {
	return genAllPseudoLegal(p, p.SideToMove, true, false)
}

// InCheckCaptures returns every legal capturing move available while
// the side to move is in check, sorted by descending victim value
// (MVV) per the generator's capture-ordering contract.
func (p *Position) InCheckCaptures() MoveList {
	return p.CaptureMoves()
}

// InCheckMoves returns every legal move (captures and quiets)
// available while the side to move is in check. Castling is never
// legal out of check, which [genKingMoves] already enforces.
func (p *Position) InCheckMoves() MoveList {
	p.computeChecksAndPins()
	us := p.SideToMove
	var list MoveList
	if p.CachedChecks.numCheckers >= 2 {
		genKingMoves(p, &list, us, false, false)
		return list
	}
	genPawnMoves(p, &list, us, false, false)
	genKnightMoves(p, &list, us, false, false)
	genSliderMoves(p, &list, us, PieceWBishop, false, false)
	genSliderMoves(p, &list, us, PieceWRook, false, false)
	genSliderMoves(p, &list, us, PieceWQueen, false, false)
	genKingMoves(p, &list, us, false, false)
	return list
}

// AllLegalMoves returns every legal move for the side to move,
// choosing the in-check or not-in-check generation path.
func (p *Position) AllLegalMoves() MoveList {
	p.computeChecksAndPins()
	if p.CachedChecks.numCheckers > 0 {
		return p.InCheckMoves()
	}
	var list MoveList
	us := p.SideToMove
	genPawnMoves(p, &list, us, false, false)
	genKnightMoves(p, &list, us, false, false)
	genSliderMoves(p, &list, us, PieceWBishop, false, false)
	genSliderMoves(p, &list, us, PieceWRook, false, false)
	genSliderMoves(p, &list, us, PieceWQueen, false, false)
	genKingMoves(p, &list, us, false, false)
	return list
}
