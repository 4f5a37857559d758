package shuuro_test

import (
	"testing"

	"shuuro-engine/shuuro"
)

func TestPerftBareKings(t *testing.T) {
	p := mustParse(t, "K7/8/8/8/8/8/8/k7 r - 1", shuuro.Standard)
	if got := shuuro.Perft(p, 1); got != 3 {
		t.Fatalf("perft depth1 = %d, want 3", got)
	}
	if got := shuuro.Perft(p, 2); got != 9 {
		t.Fatalf("perft depth2 = %d, want 9", got)
	}
	if got := p.GenerateSFEN(); got != "K7/8/8/8/8/8/8/k7 r - 1" {
		t.Fatalf("perft mutated the position: %q", got)
	}
}

func TestPerftKingsRestrictEachOther(t *testing.T) {
	p := mustParse(t, "K7/2k5/8/8/8/8/8/8 r - 1", shuuro.Standard)
	if got := shuuro.Perft(p, 1); got != 1 {
		t.Fatalf("perft depth1 = %d, want 1 (only a2 avoids the enemy king)", got)
	}
}

func TestPerftTwoRookPosition(t *testing.T) {
	p := mustParse(t, "KR10/12/12/12/12/12/12/12/12/12/12/kr10 r - 1", shuuro.Shuuro)
	// Rook b1: 11 on the file (including the capture) + 10 on the rank.
	// King a1: a2 only; b2 is covered by the enemy rook, b1 is friendly.
	if got := shuuro.Perft(p, 1); got != 22 {
		t.Fatalf("perft depth1 = %d, want 22", got)
	}
}

func TestPerftDivideSums(t *testing.T) {
	p := mustParse(t, "K7/8/8/8/8/8/8/k7 r - 1", shuuro.Standard)
	div := shuuro.PerftDivide(p, 2)
	if len(div) != 3 {
		t.Fatalf("root moves = %d, want 3", len(div))
	}
	var sum uint64
	for _, n := range div {
		sum += n
	}
	if sum != shuuro.Perft(p, 2) {
		t.Fatalf("divide sum %d != perft %d", sum, shuuro.Perft(p, 2))
	}
}
