package shuuro_test

import (
	"testing"

	"shuuro-engine/shuuro"
)

func sq12(t *testing.T, label string) shuuro.Square {
	t.Helper()
	sq, err := shuuro.G12.ParseSquare(label)
	if err != nil {
		t.Fatalf("ParseSquare(%q): %v", label, err)
	}
	return sq
}

func TestInitIdempotent(t *testing.T) {
	shuuro.Init()
	t1 := shuuro.Tables(shuuro.G12)
	shuuro.Init()
	t2 := shuuro.Tables(shuuro.G12)
	if t1 != t2 {
		t.Fatal("repeated Init rebuilt the attack tables")
	}
	if shuuro.Tables(shuuro.G8) == shuuro.Tables(shuuro.G12) {
		t.Fatal("geometries share one table")
	}
}

func TestSteppingCounts(t *testing.T) {
	tab := shuuro.Tables(shuuro.G12)
	var occ shuuro.Bitboard
	cases := []struct {
		piece shuuro.Piece
		from  string
		count int
	}{
		{shuuro.Piece{Type: shuuro.Knight, Color: shuuro.Red}, "f6", 8},
		{shuuro.Piece{Type: shuuro.Knight, Color: shuuro.Red}, "a1", 2},
		{shuuro.Piece{Type: shuuro.King, Color: shuuro.Red}, "f6", 8},
		{shuuro.Piece{Type: shuuro.King, Color: shuuro.Red}, "a1", 3},
		{shuuro.Piece{Type: shuuro.Giraffe, Color: shuuro.Red}, "a1", 2},
		{shuuro.Piece{Type: shuuro.Giraffe, Color: shuuro.Red}, "f6", 8},
		{shuuro.Piece{Type: shuuro.Pawn, Color: shuuro.Red}, "b2", 2},
		{shuuro.Piece{Type: shuuro.Pawn, Color: shuuro.Blue}, "a2", 1},
	}
	for _, c := range cases {
		got := tab.Attacks(c.piece, sq12(t, c.from), occ).Count()
		if got != c.count {
			t.Errorf("%s attacks from %s = %d, want %d", c.piece.SFEN(), c.from, got, c.count)
		}
	}
}

func TestRookBlockerTruncation(t *testing.T) {
	tab := shuuro.Tables(shuuro.G12)
	from := sq12(t, "a1")

	var occ shuuro.Bitboard
	if got := tab.RookAttacks(from, occ).Count(); got != 22 {
		t.Fatalf("open rook attacks = %d, want 22", got)
	}

	occ = occ.Set(sq12(t, "a6"))
	att := tab.RookAttacks(from, occ)
	if got := att.Count(); got != 16 {
		t.Fatalf("blocked rook attacks = %d, want 16", got)
	}
	if !att.IsSet(sq12(t, "a6")) {
		t.Error("first blocker square must be attacked")
	}
	if att.IsSet(sq12(t, "a7")) {
		t.Error("squares behind the blocker must not be attacked")
	}
}

func TestLanceDirectionality(t *testing.T) {
	tab := shuuro.Tables(shuuro.G12)
	from := sq12(t, "c3")
	var occ shuuro.Bitboard

	red := tab.Attacks(shuuro.Piece{Type: shuuro.Lance, Color: shuuro.Red}, from, occ)
	if red.Count() != 9 || !red.IsSet(sq12(t, "c12")) || red.IsSet(sq12(t, "c2")) {
		t.Errorf("red lance from c3: %d squares", red.Count())
	}
	blue := tab.Attacks(shuuro.Piece{Type: shuuro.Lance, Color: shuuro.Blue}, from, occ)
	if blue.Count() != 2 || !blue.IsSet(sq12(t, "c1")) || blue.IsSet(sq12(t, "c4")) {
		t.Errorf("blue lance from c3: %d squares", blue.Count())
	}
}

func TestFairyCompoundAttacks(t *testing.T) {
	tab := shuuro.Tables(shuuro.G12)
	from := sq12(t, "f6")
	var occ shuuro.Bitboard

	rook := tab.RookAttacks(from, occ)
	bishop := tab.BishopAttacks(from, occ)
	knight := tab.Attacks(shuuro.Piece{Type: shuuro.Knight, Color: shuuro.Red}, from, occ)

	chanc := tab.Attacks(shuuro.Piece{Type: shuuro.Chancellor, Color: shuuro.Red}, from, occ)
	if chanc != rook.Or(knight) {
		t.Error("chancellor must combine rook and knight attacks")
	}
	arch := tab.Attacks(shuuro.Piece{Type: shuuro.ArchBishop, Color: shuuro.Red}, from, occ)
	if arch != bishop.Or(knight) {
		t.Error("archbishop must combine bishop and knight attacks")
	}
	queen := tab.Attacks(shuuro.Piece{Type: shuuro.Queen, Color: shuuro.Red}, from, occ)
	if queen != rook.Or(bishop) {
		t.Error("queen must combine rook and bishop attacks")
	}
}

func TestPromotedPawnMovesAsQueen(t *testing.T) {
	tab := shuuro.Tables(shuuro.G12)
	from := sq12(t, "f6")
	var occ shuuro.Bitboard
	promoted := tab.Attacks(shuuro.Piece{Type: shuuro.Pawn, Color: shuuro.Red, Promoted: true}, from, occ)
	if promoted != tab.QueenAttacks(from, occ) {
		t.Error("promoted pawn must use the queen pattern")
	}
}

func TestBetween(t *testing.T) {
	tab := shuuro.Tables(shuuro.G12)
	bb := tab.Between(sq12(t, "a1"), sq12(t, "a5"))
	if bb.Count() != 3 || !bb.IsSet(sq12(t, "a3")) {
		t.Errorf("between a1 a5 = %d squares", bb.Count())
	}
	if tab.Between(sq12(t, "a1"), sq12(t, "b3")).Any() {
		t.Error("unaligned squares have no between set")
	}
}
