/*
search.go implements iterative-deepening negamax search with
alpha-beta pruning and a quiescence extension on captures, grounded in
the time-managed alpha-beta search of the original engine this module
reimplements (iterative deepening until a wall-clock budget expires,
returning the best move found by the last fully-searched depth).
*/

package kestrel

import "time"

const (
	infinityScore = 1 << 20
	mateScore     = 10000
)

// Searcher runs a time-bounded negamax search from a given position.
type Searcher struct {
	Eval Evaluator
}

// NewSearcher returns a Searcher using [MaterialEvaluator].
func NewSearcher() *Searcher {
	return &Searcher{Eval: MaterialEvaluator{}}
}

// searchState carries the per-call deadline and node statistics
// through the recursive search; kept out of Searcher itself so a
// single Searcher is safe to reuse across concurrent calls.
type searchState struct {
	deadline time.Time
	eval     Evaluator
	nodes    int64
	aborted  bool
}

/*
Search runs iterative deepening from position's current side to move,
stopping once budget elapses, and returns the best move found along
with its score (positive favors the side to move). If no legal move
exists, returns the zero [Move] and a mate/stalemate-appropriate
score.
*/
func (s *Searcher) Search(position Position, budget time.Duration) (Move, int) {
	legal := position.AllLegalMoves()
	if legal.LastMoveIndex == 0 {
		if position.IsCheck() {
			return Move(0), -mateScore
		}
		return Move(0), 0
	}

	st := &searchState{deadline: nowPlusBudget(budget), eval: s.Eval}

	bestMove := legal.Moves[0]
	bestScore := -infinityScore

	for depth := 1; depth <= 64; depth++ {
		move, score, ok := s.searchRoot(&position, legal, depth, st)
		if !ok {
			break
		}
		bestMove, bestScore = move, score
		if score >= mateScore-64 || score <= -mateScore+64 {
			break
		}
		if time.Now().After(st.deadline) {
			break
		}
	}

	return bestMove, bestScore
}

// nowPlusBudget is split out so tests can substitute a deterministic
// clock if ever needed; production callers always hit this branch.
func nowPlusBudget(budget time.Duration) time.Time {
	return time.Now().Add(budget)
}

func (s *Searcher) searchRoot(p *Position, legal MoveList, depth int, st *searchState) (Move, int, bool) {
	orderMoves(legal.Slice())

	best := legal.Moves[0]
	bestScore := -infinityScore
	alpha, beta := -infinityScore, infinityScore

	for i := range legal.LastMoveIndex {
		m := legal.Moves[i]
		p.MakeMove(m)
		score := -s.negamax(p, depth-1, 1, -beta, -alpha, st)
		p.UnmakeMove()

		if st.aborted {
			return Move(0), 0, false
		}
		if score > bestScore {
			bestScore = score
			best = m
		}
		if score > alpha {
			alpha = score
		}
	}

	return best, bestScore, true
}

func (s *Searcher) negamax(p *Position, depth, ply, alpha, beta int, st *searchState) int {
	st.nodes++
	if st.nodes&1023 == 0 && time.Now().After(st.deadline) {
		st.aborted = true
	}
	if st.aborted {
		return 0
	}

	if depth <= 0 {
		return s.quiescence(p, ply, alpha, beta, st)
	}

	legal := p.AllLegalMoves()
	if legal.LastMoveIndex == 0 {
		if p.IsCheck() {
			return -(mateScore - ply)
		}
		return 0
	}

	orderMoves(legal.Slice())

	for i := range legal.LastMoveIndex {
		m := legal.Moves[i]
		p.MakeMove(m)
		score := -s.negamax(p, depth-1, ply+1, -beta, -alpha, st)
		p.UnmakeMove()

		if st.aborted {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// quiescence extends search along capture sequences only, so the
// static evaluation is never trusted in the middle of a capture
// exchange.
func (s *Searcher) quiescence(p *Position, ply, alpha, beta int, st *searchState) int {
	st.nodes++
	if st.nodes&1023 == 0 && time.Now().After(st.deadline) {
		st.aborted = true
		return 0
	}

	standPat := st.eval.Evaluate(p)
	if standPat >= beta {
		return beta
	}
	if standPat > alpha {
		alpha = standPat
	}

	var captures MoveList
	if p.IsCheck() {
		captures = p.InCheckCaptures()
	} else {
		captures = p.CaptureMoves()
	}
	orderMoves(captures.Slice())

	for i := range captures.LastMoveIndex {
		m := captures.Moves[i]
		p.MakeMove(m)
		score := -s.quiescence(p, ply+1, -beta, -alpha, st)
		p.UnmakeMove()

		if st.aborted {
			return 0
		}
		if score >= beta {
			return beta
		}
		if score > alpha {
			alpha = score
		}
	}

	return alpha
}

// orderMoves sorts moves in place, captures first by descending
// victim material value (MVV), ties left in generation order.
func orderMoves(moves []Move) {
	victimValue := func(m Move) int {
		if !m.IsCapture() {
			return -1
		}
		return pieceWeights[m.CaptureTag()]
	}
	// Insertion sort: move lists are short (<=218) and already mostly
	// grouped by the generator's piece-kind order.
	for i := 1; i < len(moves); i++ {
		key := moves[i]
		keyVal := victimValue(key)
		j := i - 1
		for j >= 0 && victimValue(moves[j]) < keyVal {
			moves[j+1] = moves[j]
			j--
		}
		moves[j+1] = key
	}
}
