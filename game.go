/*
game.go implements chess game state management: move history, legal
move tracking, draw/mate detection and a simple clock.
*/

package kestrel

/*
Game wraps a [Position] with the bookkeeping a real game needs on top
of raw board state: the legal move list for the side to move,
Zobrist-keyed repetition counts, and optional clocks.

It's the caller's responsibility to spin up a time.Ticker and call
[Game.DecrementTime] on tick; the value of timeBonus is added to the
mover's clock inside [Game.PushMove], so the caller must ensure clock
ticks and move pushes are not handled concurrently.

NOTE: call [InitAttackTables] and [InitZobristKeys] ONCE before
creating a Game.
*/
type Game struct {
	LegalMoves MoveList
	position   Position
	// repetitions maps Zobrist keys to the number of times each
	// position has occurred since the last irreversible move.
	repetitions map[uint64]int
	Result      Result
	Termination Termination
	whiteTime   int
	blackTime   int
	timeBonus   int
}

// NewGame returns a Game initialized to the standard starting
// position.
func NewGame() *Game {
	g := &Game{
		position:    ParseFEN(InitialPos),
		repetitions: make(map[uint64]int, 1),
		Result:      ResultUnscored,
		Termination: TerminationUnterminated,
	}
	g.LegalMoves = g.position.AllLegalMoves()
	g.repetitions[g.position.ZobristKey()] = 1
	return g
}

// NewGameFromFEN returns a Game initialized from the given FEN
// string.
func NewGameFromFEN(fen string) *Game {
	g := &Game{
		position:    ParseFEN(fen),
		repetitions: make(map[uint64]int, 1),
		Result:      ResultUnscored,
		Termination: TerminationUnterminated,
	}
	g.LegalMoves = g.position.AllLegalMoves()
	g.repetitions[g.position.ZobristKey()] = 1
	return g
}

/*
PushMove updates the game state by performing the specified move and
returns its Standard Algebraic Notation. It's the caller's
responsibility to ensure the move is legal (see [Game.IsMoveLegal]).
Not safe for concurrent use.
*/
func (g *Game) PushMove(m Move) string {
	moved := g.position.GetPieceFromSquare(m.From())
	isIrreversible := m.IsCapture() || m.IsCastling() || m.IsPromotion() ||
		kindOf(moved) == kindOf(PieceWPawn)

	san := Move2SAN(m, &g.position, g.LegalMoves)

	g.position.MakeMove(m)
	g.LegalMoves = g.position.AllLegalMoves()

	// Positions before an irreversible move can never recur, so the
	// repetition table is cleared rather than carried forward.
	// See https://www.chessprogramming.org/Irreversible_Moves
	if isIrreversible {
		clear(g.repetitions)
	}
	g.repetitions[g.position.ZobristKey()]++

	if g.position.IsCheck() && g.LegalMoves.LastMoveIndex == 0 {
		g.Result = ResultCheckmate
		g.Termination = TerminationNormal
	} else if g.LegalMoves.LastMoveIndex == 0 {
		g.Result = ResultStalemate
		g.Termination = TerminationNormal
	} else if g.IsThreefoldRepetition() {
		g.Result = ResultThreefoldRepetition
		g.Termination = TerminationNormal
	} else if g.IsFiftyMoveRule() {
		g.Result = ResultFiftyMove
		g.Termination = TerminationNormal
	} else if g.IsInsufficientMaterial() {
		g.Result = ResultInsufficientMaterial
		g.Termination = TerminationNormal
	}

	g.whiteTime += g.timeBonus * boolToInt(moved != PieceNone && colorOf(moved) == ColorWhite)
	g.blackTime += g.timeBonus * boolToInt(moved != PieceNone && colorOf(moved) == ColorBlack)

	return san
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

/*
IsThreefoldRepetition reports whether the current position has
occurred three or more times since the last irreversible move.
*/
func (g *Game) IsThreefoldRepetition() bool {
	return g.repetitions[g.position.ZobristKey()] >= 3
}

// IsFiftyMoveRule reports whether the halfmove clock has reached 100
// (fifty full moves without a capture or pawn move).
func (g *Game) IsFiftyMoveRule() bool {
	return g.position.HalfmoveCnt >= 100
}

/*
IsInsufficientMaterial reports whether neither side has enough
material to deliver checkmate:
  - Both sides have a bare king.
  - One side has a king and a single minor piece against a bare king.
  - Both sides have a king and a bishop, the bishops on the same color.
  - Both sides have a king and a knight.
*/
func (g *Game) IsInsufficientMaterial() bool {
	dark := uint64(0xAA55AA55AA55AA55)
	material := g.position.calculateMaterial(ColorWhite) + g.position.calculateMaterial(ColorBlack)

	if material == 0 {
		return true
	}
	if material == 3 && g.position.Pieces[PieceWPawn] == 0 && g.position.Pieces[PieceBPawn] == 0 {
		return true
	}

	if material == 6 {
		wb := g.position.Pieces[PieceWBishop]
		bb := g.position.Pieces[PieceBBishop]
		sameColorBishops := wb != 0 && bb != 0 &&
			((wb&dark != 0 && bb&dark != 0) || (wb&dark == 0 && bb&dark == 0))
		bothKnights := g.position.Pieces[PieceWKnight] != 0 && g.position.Pieces[PieceBKnight] != 0
		return sameColorBishops || bothKnights
	}
	return false
}

/*
IsCheckmate reports whether the side to move has no legal moves and is
in check. If there are no legal moves but the king isn't in check, the
position is a stalemate instead (see [Game.IsStalemate]).
*/
func (g *Game) IsCheckmate() bool {
	return g.position.IsCheck() && g.LegalMoves.LastMoveIndex == 0
}

// IsStalemate reports whether the side to move has no legal moves and
// is not in check.
func (g *Game) IsStalemate() bool {
	return !g.position.IsCheck() && g.LegalMoves.LastMoveIndex == 0
}

// IsMoveLegal reports whether m is present in the current legal move
// list.
func (g *Game) IsMoveLegal(m Move) bool {
	for i := range g.LegalMoves.LastMoveIndex {
		lm := g.LegalMoves.Moves[i]
		if lm.From() == m.From() && lm.To() == m.To() &&
			lm.PromoKind() == m.PromoKind() && lm.IsCastling() == m.IsCastling() {
			return true
		}
	}
	return false
}

// SetClock sets the players' remaining time and per-move increment
// (bonus), both in seconds.
func (g *Game) SetClock(control, bonus int) {
	g.whiteTime = control
	g.blackTime = control
	g.timeBonus = bonus
}

// DecrementTime ticks the clock of the side to move down by one
// second, flagging a time forfeit when it runs out. Not safe to call
// concurrently with [Game.PushMove].
func (g *Game) DecrementTime() {
	if g.Termination != TerminationUnterminated {
		return
	}
	if g.position.SideToMove == ColorWhite {
		g.whiteTime--
		if g.whiteTime <= 0 {
			g.Result = ResultTimeout
			g.Termination = TerminationTimeForfeit
		}
	} else {
		g.blackTime--
		if g.blackTime <= 0 {
			g.Result = ResultTimeout
			g.Termination = TerminationTimeForfeit
		}
	}
}

// Position returns a copy of the current position.
func (g *Game) Position() Position {
	return g.position
}
