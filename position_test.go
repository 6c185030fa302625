package kestrel

import "testing"

func TestMakeMove(t *testing.T) {
	testcases := []struct {
		name     string
		fenStr   string
		expected string
		move     func(p *Position) Move
	}{
		{
			"pawn capture",
			"rnbqkbnr/ppp1pppp/8/3p4/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1",
			"rnbqkbnr/ppp1pppp/8/3P4/2B5/5N2/PPPP1PPP/RNBQK2R b KQkq - 0 1",
			func(p *Position) Move { return NewCaptureMove(SE4, SD5, PieceBPawn) },
		},
		{
			"white en passant",
			"4k3/8/8/1Pp5/8/8/8/4K3 w - c6 0 1",
			"4k3/8/2P5/8/8/8/8/4K3 b - - 0 1",
			func(p *Position) Move { return NewCaptureMove(SB5, SC6, PieceBPawn) },
		},
		{
			"black en passant",
			"2bqkbnr/4p1pp/8/5pP1/8/3N1N2/P1PP1P1P/RqBQK2R b KQkq g4 0 1",
			"2bqkbnr/4p1pp/8/8/6p1/3N1N2/P1PP1P1P/RqBQK2R w KQkq - 0 2",
			func(p *Position) Move { return NewCaptureMove(SF5, SG4, PieceWPawn) },
		},
		{
			"capture promotion",
			"rnbqkbnr/ppP1pppp/8/8/8/5N2/P1PP1PPP/RNBQK2R w KQkq - 0 1",
			"rRbqkbnr/pp2pppp/8/8/8/5N2/P1PP1PPP/RNBQK2R b KQkq - 0 1",
			func(p *Position) Move { return NewPromotionMove(SC7, SB8, PromoRook, PieceBKnight) },
		},
		{
			"promotion",
			"2bqkbnr/4pppp/8/8/8/3N1N2/PpPP1PPP/R1BQK2R b KQkq - 0 1",
			"2bqkbnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQK2R w KQkq - 0 2",
			func(p *Position) Move { return NewPromotionMove(SB2, SB1, PromoQueen, PieceNone) },
		},
		{
			"white O-O",
			"2bqkbnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQK2R w KQkq - 0 1",
			"2bqkbnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQ1RK1 b kq - 1 1",
			func(p *Position) Move { return NewCastlingMove(SH1, SF1) },
		},
		{
			"white rook",
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			"r3k2r/8/8/8/8/8/8/1R2K2R b Kkq - 1 1",
			func(p *Position) Move { return NewMove(SA1, SB1) },
		},
		{
			"black rook",
			"r3k2r/8/8/8/8/8/8/1R2K2R b Kkq - 1 1",
			"r3k1r1/8/8/8/8/8/8/1R2K2R w Kq - 2 2",
			func(p *Position) Move { return NewMove(SH8, SG8) },
		},
		{
			"white double pawn push",
			"4k3/4p3/8/8/8/8/4P3/4K3 w - - 0 1",
			"4k3/4p3/8/8/4P3/8/8/4K3 b - e3 0 1",
			func(p *Position) Move { return NewMove(SE2, SE4) },
		},
		{
			"black double pawn push",
			"4k3/4p3/8/8/4P3/8/8/4K3 b - e3 0 1",
			"4k3/8/8/4p3/4P3/8/8/4K3 w - e6 0 2",
			func(p *Position) Move { return NewMove(SE7, SE5) },
		},
	}

	for _, tc := range testcases {
		pos := ParseFEN(tc.fenStr)
		pos.MakeMove(tc.move(&pos))

		got := SerializeFEN(pos)
		if got != tc.expected {
			t.Fatalf("test %q failed: expected %s got %s", tc.name, tc.expected, got)
		}
	}
}

func TestUnmakeMoveRestoresPosition(t *testing.T) {
	testcases := []struct {
		name   string
		fenStr string
		move   func(p *Position) Move
	}{
		{
			"pawn capture",
			"rnbqkbnr/ppp1pppp/8/3p4/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1",
			func(p *Position) Move { return NewCaptureMove(SE4, SD5, PieceBPawn) },
		},
		{
			"white en passant",
			"4k3/8/8/1Pp5/8/8/8/4K3 w - c6 0 1",
			func(p *Position) Move { return NewCaptureMove(SB5, SC6, PieceBPawn) },
		},
		{
			"capture promotion",
			"rnbqkbnr/ppP1pppp/8/8/8/5N2/P1PP1PPP/RNBQK2R w KQkq - 0 1",
			func(p *Position) Move { return NewPromotionMove(SC7, SB8, PromoRook, PieceBKnight) },
		},
		{
			"white O-O",
			"2bqkbnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQK2R w KQkq - 0 1",
			func(p *Position) Move { return NewCastlingMove(SH1, SF1) },
		},
		{
			"black O-O-O",
			"r3kbnr/4pppp/8/8/8/3N1N2/P1PP1PPP/RqBQ1RK1 b KQkq - 0 1",
			func(p *Position) Move { return NewCastlingMove(SA8, SD8) },
		},
	}

	for _, tc := range testcases {
		before := ParseFEN(tc.fenStr)
		pos := before
		pos.MakeMove(tc.move(&pos))
		pos.UnmakeMove()

		if SerializeFEN(pos) != tc.fenStr {
			t.Fatalf("test %q failed: unmake did not restore original FEN, got %s", tc.name, SerializeFEN(pos))
		}
	}
}

func TestComputeChecksAndPins(t *testing.T) {
	// White queen on e-file pins the black knight on e6 to the black
	// king on e8; nothing gives check.
	fen := "4k3/8/4n3/8/8/8/4Q3/4K3 b - - 0 1"
	p := ParseFEN(fen)
	p.computeChecksAndPins()
	if p.CachedChecks.numCheckers != 0 {
		t.Fatalf("expected no checkers, got %d", p.CachedChecks.numCheckers)
	}
	if p.CachedPins[ColorBlack]&(uint64(1)<<SE6) == 0 {
		t.Fatalf("expected knight on e6 to be pinned")
	}
}

func TestIsCheck(t *testing.T) {
	fen := "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1"
	p := ParseFEN(fen)
	if !p.IsCheck() {
		t.Fatal("expected white king in check from rook on e2")
	}
}

func BenchmarkMakeMove(b *testing.B) {
	before := ParseFEN("rnbqkbnr/pppppppp/8/8/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 0 1")

	for b.Loop() {
		pos := before
		pos.MakeMove(NewCastlingMove(SH1, SF1))
	}
}
