/*
position.go implements the board representation and the make/unmake
step. A [Position] keeps twelve piece bitboards plus a mailbox array
for O(1) piece lookup, and an explicit history stack so that
[Position.UnmakeMove] can restore irreversible state (castling rights,
en passant target, halfmove clock, captured piece) without recomputing
it from scratch.
*/

package kestrel

// historyEntry snapshots the irreversible state clobbered by
// [Position.MakeMove], plus the move itself, so [Position.UnmakeMove]
// can restore it.
type historyEntry struct {
	move           Move
	castlingRights CastlingRights
	epTarget       int
	halfmoveCnt    int
	checksValid    bool
	cachedPins     [2]uint64
	cachedChecks   checkInfo
}

// checkInfo caches, for the side to move, which squares/pieces give
// check and the mask of squares a blocking move may land on.
type checkInfo struct {
	checkers    uint64
	numCheckers int
	// blockRay is the set of squares (including the checker's own
	// square) a non-king move may land on to resolve a single check.
	// Meaningless when numCheckers != 1.
	blockRay uint64
}

// Position represents the full state of a chess position.
type Position struct {
	Pieces [12]uint64
	// Occupancy by color: 0 white, 1 black.
	Occupancy  [2]uint64
	AllPieces  uint64
	Mailbox    [64]Piece
	SideToMove Color
	CastlingRights
	// EPTarget is the en passant target square, or -1 if none.
	EPTarget int

	HalfmoveCnt int
	FullmoveCnt int

	// checksValid caches whether CachedChecks/CachedPins reflect the
	// current position; invalidated by MakeMove, restored from the
	// history entry by UnmakeMove, and recomputed lazily by
	// computeChecksAndPins.
	checksValid  bool
	CachedPins   [2]uint64
	CachedChecks checkInfo

	history []historyEntry
}

// NewPosition returns an empty, zero-valued position. Callers
// typically populate it via [ParseFEN].
func NewPosition() Position {
	return Position{EPTarget: -1}
}

// colorOf reports the color of piece kind p (assumes p != PieceNone).
func colorOf(p Piece) Color {
	if p < 6 {
		return ColorWhite
	}
	return ColorBlack
}

// kindOf strips the color from a piece index, returning 0..5.
func kindOf(p Piece) int {
	if p >= 6 {
		return p - 6
	}
	return p
}

// pieceIndex builds a contiguous piece index from a 0..5 kind and a
// color, per the spec's indexing scheme (kind + 6*color).
func pieceIndex(kind int, color Color) Piece {
	return kind + 6*color
}

// GetPieceFromSquare returns the piece occupying sq, or [PieceNone].
func (p *Position) GetPieceFromSquare(sq int) Piece {
	return p.Mailbox[sq]
}

// placePiece puts piece pc on sq, updating the mailbox, the piece
// bitboard and the occupancy bitboards. sq must be empty.
func (p *Position) placePiece(pc Piece, sq int) {
	bit := uint64(1) << sq
	p.Pieces[pc] |= bit
	p.Occupancy[colorOf(pc)] |= bit
	p.AllPieces |= bit
	p.Mailbox[sq] = pc
}

// removePiece removes whatever piece occupies sq. sq must not be
// empty.
func (p *Position) removePiece(sq int) {
	pc := p.Mailbox[sq]
	bit := uint64(1) << sq
	p.Pieces[pc] &^= bit
	p.Occupancy[colorOf(pc)] &^= bit
	p.AllPieces &^= bit
	p.Mailbox[sq] = PieceNone
}

// movePiece relocates the piece on from to to. to must be empty.
func (p *Position) movePiece(from, to int) {
	pc := p.Mailbox[from]
	p.removePiece(from)
	p.placePiece(pc, to)
}

// castleInfo describes the rook source/destination squares and the
// accompanying king squares for one castling right.
type castleInfo struct {
	rookFrom, rookTo int
	kingFrom, kingTo int
	right            CastlingRights
}

var castleTable = [4]castleInfo{
	{rookFrom: SH1, rookTo: SF1, kingFrom: SE1, kingTo: SG1, right: CastlingWhiteShort},
	{rookFrom: SA1, rookTo: SD1, kingFrom: SE1, kingTo: SC1, right: CastlingWhiteLong},
	{rookFrom: SH8, rookTo: SF8, kingFrom: SE8, kingTo: SG8, right: CastlingBlackShort},
	{rookFrom: SA8, rookTo: SD8, kingFrom: SE8, kingTo: SC8, right: CastlingBlackLong},
}

// castleByRookFrom looks up which castling the move represents by its
// rook-from square, or nil if it doesn't match any.
func castleByRookFrom(sq int) *castleInfo {
	for i := range castleTable {
		if castleTable[i].rookFrom == sq {
			return &castleTable[i]
		}
	}
	return nil
}

/*
MakeMove applies m to the position, pushing a history entry so that
[Position.UnmakeMove] can reverse it: snapshot irreversible state,
identify the moving piece, resolve captures (including en passant),
relocate the piece (or, for castling, the rook plus the king), apply
promotion, update castling rights and the en passant target, and
advance the clocks.
*/
func (p *Position) MakeMove(m Move) {
	entry := historyEntry{
		move:           m,
		castlingRights: p.CastlingRights,
		epTarget:       p.EPTarget,
		halfmoveCnt:    p.HalfmoveCnt,
		checksValid:    p.checksValid,
		cachedPins:     p.CachedPins,
		cachedChecks:   p.CachedChecks,
	}
	p.history = append(p.history, entry)
	p.checksValid = false

	us := p.SideToMove
	them := 1 - us

	if m.IsCastling() {
		info := castleByRookFrom(m.From())
		p.movePiece(m.From(), m.To())
		p.movePiece(info.kingFrom, info.kingTo)
		p.HalfmoveCnt++
		p.EPTarget = -1
		p.CastlingRights &^= info.right
		if us == ColorWhite {
			p.CastlingRights &^= CastlingWhiteShort | CastlingWhiteLong
		} else {
			p.CastlingRights &^= CastlingBlackShort | CastlingBlackLong
		}
	} else {
		from, to := m.From(), m.To()
		moving := p.Mailbox[from]

		tag := m.CaptureTag()
		isEnPassant := tag == pieceIndex(kindOf(PieceWPawn), them) &&
			kindOf(moving) == kindOf(PieceWPawn) && to == p.EPTarget
		if isEnPassant {
			capSq := to - 8
			if us == ColorBlack {
				capSq = to + 8
			}
			p.removePiece(capSq)
		} else if m.IsCapture() {
			p.removePiece(to)
		}

		p.movePiece(from, to)

		if m.IsPromotion() {
			p.removePiece(to)
			p.placePiece(pieceIndex(m.PromoKind(), us), to)
		}

		if kindOf(moving) == kindOf(PieceWPawn) || m.IsCapture() {
			p.HalfmoveCnt = 0
		} else {
			p.HalfmoveCnt++
		}

		p.updateCastlingRights(from)
		p.updateCastlingRights(to)

		p.EPTarget = -1
		if kindOf(moving) == kindOf(PieceWPawn) {
			diff := to - from
			if diff == 16 {
				p.EPTarget = from + 8
			} else if diff == -16 {
				p.EPTarget = from - 8
			}
		}
	}

	if us == ColorBlack {
		p.FullmoveCnt++
	}
	p.SideToMove = them
}

// updateCastlingRights clears whichever castling right corresponds to
// sq becoming vacated or touched (king moved off its home square, or
// a rook's home square was touched by any move, including being
// captured on).
func (p *Position) updateCastlingRights(sq int) {
	switch sq {
	case SE1:
		p.CastlingRights &^= CastlingWhiteShort | CastlingWhiteLong
	case SE8:
		p.CastlingRights &^= CastlingBlackShort | CastlingBlackLong
	case SH1:
		p.CastlingRights &^= CastlingWhiteShort
	case SA1:
		p.CastlingRights &^= CastlingWhiteLong
	case SH8:
		p.CastlingRights &^= CastlingBlackShort
	case SA8:
		p.CastlingRights &^= CastlingBlackLong
	}
}

// UnmakeMove reverses the most recent [Position.MakeMove] call.
func (p *Position) UnmakeMove() {
	n := len(p.history)
	entry := p.history[n-1]
	p.history = p.history[:n-1]
	m := entry.move

	them := p.SideToMove
	us := 1 - them
	if us == ColorBlack {
		p.FullmoveCnt--
	}
	p.SideToMove = us

	if m.IsCastling() {
		info := castleByRookFrom(m.From())
		p.movePiece(info.kingTo, info.kingFrom)
		p.movePiece(m.To(), m.From())
	} else {
		from, to := m.From(), m.To()

		if m.IsPromotion() {
			p.removePiece(to)
			p.placePiece(pieceIndex(kindOf(PieceWPawn), us), to)
		}
		p.movePiece(to, from)

		tag := m.CaptureTag()
		isEnPassant := tag == pieceIndex(kindOf(PieceWPawn), them) &&
			kindOf(p.Mailbox[from]) == kindOf(PieceWPawn) && to == entry.epTarget
		if isEnPassant {
			capSq := to - 8
			if us == ColorBlack {
				capSq = to + 8
			}
			p.placePiece(pieceIndex(kindOf(PieceWPawn), them), capSq)
		} else if m.IsCapture() {
			p.placePiece(tag, to)
		}
	}

	p.CastlingRights = entry.castlingRights
	p.EPTarget = entry.epTarget
	p.HalfmoveCnt = entry.halfmoveCnt
	p.checksValid = entry.checksValid
	p.CachedPins = entry.cachedPins
	p.CachedChecks = entry.cachedChecks
}

// canCastle reports whether the given castling right can currently be
// exercised: the right is held, the path squares are empty, and
// neither the king's home square nor any square it crosses is
// attacked.
func (p *Position) canCastle(idx int) bool {
	info := castleTable[idx]
	if p.CastlingRights&info.right == 0 {
		return false
	}
	path := castlingPath[idx] &^ (uint64(1) << info.kingFrom) &^ (uint64(1) << info.rookFrom)
	if p.AllPieces&path != 0 {
		return false
	}
	them := 1 - pieceColorFromCastleRight(info.right)
	attackPath := castlingAttackPath[idx]
	for attackPath != 0 {
		sq := popLSB(&attackPath)
		if p.isSquareAttacked(sq, them) {
			return false
		}
	}
	return true
}

func pieceColorFromCastleRight(right CastlingRights) Color {
	if right == CastlingWhiteShort || right == CastlingWhiteLong {
		return ColorWhite
	}
	return ColorBlack
}

// isSquareAttacked reports whether sq is attacked by any piece of the
// given color.
func (p *Position) isSquareAttacked(sq int, by Color) bool {
	if pawnAttacks[1-by][sq]&p.Pieces[pieceIndex(kindOf(PieceWPawn), by)] != 0 {
		return true
	}
	if knightAttacks[sq]&p.Pieces[pieceIndex(kindOf(PieceWKnight), by)] != 0 {
		return true
	}
	if kingAttacks[sq]&p.Pieces[pieceIndex(kindOf(PieceWKing), by)] != 0 {
		return true
	}
	bishopsQueens := p.Pieces[pieceIndex(kindOf(PieceWBishop), by)] | p.Pieces[pieceIndex(kindOf(PieceWQueen), by)]
	if GetBishopAttacks(sq, p.AllPieces)&bishopsQueens != 0 {
		return true
	}
	rooksQueens := p.Pieces[pieceIndex(kindOf(PieceWRook), by)] | p.Pieces[pieceIndex(kindOf(PieceWQueen), by)]
	if GetRookAttacks(sq, p.AllPieces)&rooksQueens != 0 {
		return true
	}
	return false
}

// kingIsSafe reports whether the king of color c is not currently
// attacked.
func (p *Position) kingIsSafe(c Color) bool {
	kingSq := bitScan(p.Pieces[pieceIndex(kindOf(PieceWKing), c)])
	return !p.isSquareAttacked(kingSq, 1-c)
}

// kingIsSafeAfterPassant simulates an en passant capture (remove both
// pawns, place the capturing pawn on to) and reports whether the
// moving side's king is safe afterwards. Needed because an en
// passant capture can expose a horizontal pin through the vacated
// squares that ordinary pin detection (which only tracks one piece
// between slider and king) misses.
func (p *Position) kingIsSafeAfterPassant(from, to, capSq int, us Color) bool {
	movingPawn := p.Mailbox[from]
	capturedPawn := p.Mailbox[capSq]
	p.removePiece(from)
	p.removePiece(capSq)
	p.placePiece(movingPawn, to)

	safe := p.kingIsSafe(us)

	p.removePiece(to)
	p.placePiece(movingPawn, from)
	p.placePiece(capturedPawn, capSq)
	return safe
}

// computeChecksAndPins (re)populates CachedChecks/CachedPins for the
// side to move, using the BETWEEN-exclusive algorithm: for each
// enemy slider aligned with our king, walk the ray between them; if
// exactly one of our own pieces sits on it, that piece is pinned
// along this ray.
func (p *Position) computeChecksAndPins() {
	if p.checksValid {
		return
	}
	us := p.SideToMove
	them := 1 - us
	kingSq := bitScan(p.Pieces[pieceIndex(kindOf(PieceWKing), us)])

	var info checkInfo
	var pins uint64

	if checker := pawnAttacks[us][kingSq] & p.Pieces[pieceIndex(kindOf(PieceWPawn), them)]; checker != 0 {
		info.checkers |= checker
		info.numCheckers++
		info.blockRay = checker
	}
	if checker := knightAttacks[kingSq] & p.Pieces[pieceIndex(kindOf(PieceWKnight), them)]; checker != 0 {
		info.checkers |= checker
		info.numCheckers++
		info.blockRay = checker
	}

	enemyBishops := p.Pieces[pieceIndex(kindOf(PieceWBishop), them)] | p.Pieces[pieceIndex(kindOf(PieceWQueen), them)]
	bb := enemyBishops
	for bb != 0 {
		sq := popLSB(&bb)
		ray := bishopPinRay[sq][kingSq]
		if ray == 0 {
			continue
		}
		between := ray &^ (uint64(1) << sq) &^ (uint64(1) << kingSq)
		blockers := between & p.AllPieces
		switch CountBits(blockers) {
		case 0:
			info.checkers |= uint64(1) << sq
			info.numCheckers++
			info.blockRay = ray &^ (uint64(1) << kingSq)
		case 1:
			if blockers&p.Occupancy[us] != 0 {
				pins |= blockers
			}
		}
	}

	enemyRooks := p.Pieces[pieceIndex(kindOf(PieceWRook), them)] | p.Pieces[pieceIndex(kindOf(PieceWQueen), them)]
	rb := enemyRooks
	for rb != 0 {
		sq := popLSB(&rb)
		ray := rookPinRay[sq][kingSq]
		if ray == 0 {
			continue
		}
		between := ray &^ (uint64(1) << sq) &^ (uint64(1) << kingSq)
		blockers := between & p.AllPieces
		switch CountBits(blockers) {
		case 0:
			info.checkers |= uint64(1) << sq
			info.numCheckers++
			info.blockRay = ray &^ (uint64(1) << kingSq)
		case 1:
			if blockers&p.Occupancy[us] != 0 {
				pins |= blockers
			}
		}
	}

	p.CachedChecks = info
	p.CachedPins[us] = pins
	p.checksValid = true
}

// IsCheck reports whether the side to move is in check.
func (p *Position) IsCheck() bool {
	p.computeChecksAndPins()
	return p.CachedChecks.numCheckers > 0
}

// NumCheckers reports how many enemy pieces currently check the side
// to move's king (0, 1, or 2 — a double check).
func (p *Position) NumCheckers() int {
	p.computeChecksAndPins()
	return p.CachedChecks.numCheckers
}

// calculateMaterial returns the sum of pieceWeights for every piece of
// the given color currently on the board.
func (p *Position) calculateMaterial(c Color) int {
	total := 0
	for kind := 0; kind < 6; kind++ {
		total += CountBits(p.Pieces[pieceIndex(kind, c)]) * pieceWeights[pieceIndex(kind, c)]
	}
	return total
}
