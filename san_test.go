package kestrel

import "testing"

func TestMove2SAN(t *testing.T) {
	testcases := []struct {
		name     string
		fen      string
		move     Move
		expected string
	}{
		{
			"file disambiguation",
			"8/8/8/8/8/2N5/8/4K1N1 w - - 0 1",
			NewMove(SC3, SE2),
			"Nce2",
		},
		{
			"no disambiguation when other knight is pinned",
			"8/8/8/8/1b6/2N5/8/4K1N1 w - - 0 1",
			NewMove(SG1, SE2),
			"Ne2",
		},
		{
			"rank disambiguation, capture, checkmate",
			"2k5/Qr6/Q7/8/8/8/8/3R3K w - - 0 1",
			NewCaptureMove(SA6, SB7, PieceBRook),
			"Q6xb7#",
		},
		{
			"capture promotion",
			"4b3/3P1P2/8/8/8/8/8/K6k w - - 0 1",
			NewPromotionMove(SD7, SE8, PromoQueen, PieceBBishop),
			"dxe8=Q",
		},
		{
			"knight capture, no check",
			"rnbqkb1r/pppppppp/5n2/8/3PP3/8/PPP2PPP/RNBQKBNR b KQkq - 0 1",
			NewCaptureMove(SF6, SE4, PieceWPawn),
			"Nxe4",
		},
		{
			"pawn capture with check",
			"7k/8/8/4p3/3P4/2K5/8/8 b - - 0 1",
			NewCaptureMove(SE5, SD4, PieceWPawn),
			"exd4+",
		},
		{
			"queen capture checkmate",
			"r1bk3r/ppqpbQpp/2p4n/6B1/2BpP3/3P1P2/PPP3PP/RN3RK1 w - - 0 1",
			NewCaptureMove(SF7, SE7, PieceBBishop),
			"Qxe7#",
		},
	}

	for _, tc := range testcases {
		pos := ParseFEN(tc.fen)
		legalMoves := pos.AllLegalMoves()

		got := Move2SAN(tc.move, &pos, legalMoves)
		if got != tc.expected {
			t.Errorf("%s: expected %s, got %s", tc.name, tc.expected, got)
		}
	}
}

func TestMove2SANCastling(t *testing.T) {
	pos := ParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	legalMoves := pos.AllLegalMoves()

	if got := Move2SAN(NewCastlingMove(SH1, SF1), &pos, legalMoves); got != "O-O" {
		t.Errorf("expected O-O, got %s", got)
	}
	if got := Move2SAN(NewCastlingMove(SA1, SD1), &pos, legalMoves); got != "O-O-O" {
		t.Errorf("expected O-O-O, got %s", got)
	}
}

func BenchmarkMove2SAN(b *testing.B) {
	pos := ParseFEN("r1bk3r/ppqpbQpp/2p4n/6B1/2BpP3/3P1P2/PPP3PP/RN3RK1 w - - 0 1")
	legalMoves := pos.AllLegalMoves()
	move := NewCaptureMove(SF7, SE7, PieceBBishop)

	for b.Loop() {
		Move2SAN(move, &pos, legalMoves)
	}
}
