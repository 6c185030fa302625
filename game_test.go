package kestrel

import "testing"

func TestIsThreefoldRepetition(t *testing.T) {
	// A bare king shuffle: e1-e2-e1-e2 for white, e8-e7-e8-e7 for
	// black. Neither side ever plays a pawn move, capture, castle, or
	// promotion, so the repetition table is never cleared.
	shuffle := []Move{
		NewMove(SE1, SE2), NewMove(SE8, SE7),
		NewMove(SE2, SE1), NewMove(SE7, SE8),
	}

	testcases := []struct {
		cycles   int
		expected bool
	}{
		{1, false}, // back to start once: 2 occurrences total
		{2, true},  // back to start twice: 3 occurrences total
	}

	for _, tc := range testcases {
		g := NewGameFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
		for c := 0; c < tc.cycles; c++ {
			for _, m := range shuffle {
				g.PushMove(m)
			}
		}
		if got := g.IsThreefoldRepetition(); got != tc.expected {
			t.Errorf("cycles=%d: expected %t, got %t", tc.cycles, tc.expected, got)
		}
	}
}

func TestIsInsufficientMaterial(t *testing.T) {
	testcases := []struct {
		fen      string
		expected bool
	}{
		{"3k1n2/8/8/8/8/5B2/4K3/8 w - - 0 1", false},
		{"3k4/8/8/8/8/8/4K3/8 w - - 0 1", true},
		{"3k4/8/8/8/8/5P2/4K3/8 w - - 0 1", false},
		{"3k4/2b5/8/8/8/8/4K3/8 w - - 0 1", true},
		{"3k4/8/8/8/8/8/3NK3/8 w - - 0 1", true},
		{"3k4/2b5/8/8/8/4B3/4K3/8 w - - 0 1", true},
		{"3k4/2b5/8/8/8/3B4/4K3/8 w - - 0 1", false},
		{"8/8/8/8/8/8/1n6/KN6 w - - 0 1", true},
	}

	game := NewGame()
	for _, tc := range testcases {
		game.position = ParseFEN(tc.fen)

		got := game.IsInsufficientMaterial()
		if got != tc.expected {
			t.Errorf("%s: expected %t, got %t", tc.fen, tc.expected, got)
		}
	}
}

func TestIsCheckmate(t *testing.T) {
	testcases := []struct {
		fenString string
		expected  bool
	}{
		{"rnb1kbnr/pppp1ppp/4p3/8/6Pq/3P1P2/PPP1P2P/RNBQKBNR w KQkq - 0 1", false},
		{"rnb1kbnr/pppp1ppp/4p3/8/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 0 1", true},
		{"rnb1kbnr/pppp1ppp/4p3/8/6Pq/3P1P2/PPP1PN1P/R1BQKBNR w KQkq - 0 1", false},
	}

	game := NewGame()
	for _, tc := range testcases {
		game.position = ParseFEN(tc.fenString)
		game.LegalMoves = game.position.AllLegalMoves()

		got := game.IsCheckmate()
		if got != tc.expected {
			t.Errorf("%s: expected %t, got %t", tc.fenString, tc.expected, got)
		}
	}
}

func TestIsStalemate(t *testing.T) {
	// Black king boxed into a8 with no legal move and not in check.
	fen := "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1"
	game := NewGameFromFEN(fen)
	if !game.IsStalemate() {
		t.Fatal("expected stalemate")
	}
	if game.IsCheckmate() {
		t.Fatal("stalemate position must not also report checkmate")
	}
}

func TestIsMoveLegal(t *testing.T) {
	game := NewGame()
	if !game.IsMoveLegal(NewMove(SE2, SE4)) {
		t.Fatal("expected e2e4 to be legal from the starting position")
	}
	if game.IsMoveLegal(NewMove(SE2, SE5)) {
		t.Fatal("did not expect e2e5 to be legal from the starting position")
	}
}

func TestPushMoveUpdatesResult(t *testing.T) {
	// Fool's mate: 1. f3 e5 2. g4 Qh4#
	game := NewGame()
	game.PushMove(NewMove(SF2, SF3))
	game.PushMove(NewMove(SE7, SE5))
	game.PushMove(NewMove(SG2, SG4))
	game.PushMove(NewMove(SD8, SH4))

	if game.Result != ResultCheckmate {
		t.Fatalf("expected checkmate result, got %v", game.Result)
	}
	if game.Termination != TerminationNormal {
		t.Fatalf("expected normal termination, got %v", game.Termination)
	}
}

func BenchmarkPushMove(b *testing.B) {
	pos := ParseFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")

	for b.Loop() {
		game := NewGame()
		game.position = pos
		game.LegalMoves = game.position.AllLegalMoves()
		game.PushMove(NewMove(SE2, SE4))
	}
}

func BenchmarkIsThreefoldRepetition(b *testing.B) {
	game := NewGameFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	shuffle := []Move{
		NewMove(SE1, SE2), NewMove(SE8, SE7),
		NewMove(SE2, SE1), NewMove(SE7, SE8),
	}
	for _, m := range shuffle {
		game.PushMove(m)
	}

	for b.Loop() {
		game.IsThreefoldRepetition()
	}
}

func BenchmarkIsInsufficientMaterial(b *testing.B) {
	game := NewGame()

	for b.Loop() {
		game.IsInsufficientMaterial()
	}
}

func BenchmarkIsCheckmate(b *testing.B) {
	game := NewGame()

	for b.Loop() {
		game.IsCheckmate()
	}
}
