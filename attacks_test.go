package kestrel

import "testing"

func TestKnightAttacksCorner(t *testing.T) {
	got := knightAttacks[SA1]
	want := uint64(1)<<SB3 | uint64(1)<<SC2
	if got != want {
		t.Fatalf("knight attacks from a1 = %#x, want %#x", got, want)
	}
}

func TestKingAttacksCorner(t *testing.T) {
	got := kingAttacks[SA1]
	want := uint64(1)<<SA2 | uint64(1)<<SB2 | uint64(1)<<SB1
	if got != want {
		t.Fatalf("king attacks from a1 = %#x, want %#x", got, want)
	}
}

func TestPawnAttacks(t *testing.T) {
	if pawnAttacks[ColorWhite][SE4] != uint64(1)<<SD5|uint64(1)<<SF5 {
		t.Fatalf("white pawn attacks from e4 = %#x", pawnAttacks[ColorWhite][SE4])
	}
	if pawnAttacks[ColorBlack][SE4] != uint64(1)<<SD3|uint64(1)<<SF3 {
		t.Fatalf("black pawn attacks from e4 = %#x", pawnAttacks[ColorBlack][SE4])
	}
	// Edge file: no wraparound attacks.
	if pawnAttacks[ColorWhite][SA4] != uint64(1)<<SB5 {
		t.Fatalf("white pawn attacks from a4 = %#x, want only b5", pawnAttacks[ColorWhite][SA4])
	}
}

func TestGetRookAttacksBlocked(t *testing.T) {
	occ := uint64(1) << SD4 // blocker two squares up from d2 isn't relevant here
	occ |= uint64(1) << SD6
	got := GetRookAttacks(SD4, occ)
	want := slidingAttacks(SD4, occ, rookDirs)
	if got != want {
		t.Fatalf("GetRookAttacks(d4) = %#x, want %#x", got, want)
	}
	if got&(uint64(1)<<SD8) != 0 {
		t.Fatalf("rook attack ray should stop at the blocker on d6, got bit set for d8")
	}
}

func TestGetBishopAttacksBlocked(t *testing.T) {
	occ := uint64(1) << SF6
	got := GetBishopAttacks(SD4, occ)
	if got&(uint64(1)<<SF6) == 0 {
		t.Fatal("bishop attack should include the blocker square itself")
	}
	if got&(uint64(1)<<SG7) != 0 {
		t.Fatal("bishop attack ray should stop at the blocker on f6")
	}
}

func TestBishopPinRayAlignment(t *testing.T) {
	ray := bishopPinRay[SA1][SH8]
	for _, sq := range []int{SA1, SB2, SC3, SD4, SE5, SF6, SG7, SH8} {
		if ray&(uint64(1)<<sq) == 0 {
			t.Errorf("expected square %d on the a1-h8 diagonal ray", sq)
		}
	}
	if bishopPinRay[SA1][SA8] != 0 {
		t.Fatal("a1/a8 are not diagonally aligned, expected zero ray")
	}
}

func TestRookPinRayAlignment(t *testing.T) {
	ray := rookPinRay[SA1][SA8]
	for _, sq := range []int{SA1, SA2, SA3, SA4, SA5, SA6, SA7, SA8} {
		if ray&(uint64(1)<<sq) == 0 {
			t.Errorf("expected square %d on the a-file ray", sq)
		}
	}
	if rookPinRay[SA1][SH8] != 0 {
		t.Fatal("a1/h8 are not file/rank aligned, expected zero ray")
	}
}

func TestRayBetweenInclusive(t *testing.T) {
	ray := rayBetweenInclusive(SA1, SD4, bishopDirs)
	want := uint64(1)<<SA1 | uint64(1)<<SB2 | uint64(1)<<SC3 | uint64(1)<<SD4
	if ray != want {
		t.Fatalf("rayBetweenInclusive(a1, d4) = %#x, want %#x", ray, want)
	}
}
