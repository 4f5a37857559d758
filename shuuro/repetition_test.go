package shuuro_test

import (
	"testing"

	"shuuro-engine/shuuro"
)

func TestThreefoldRepetitionDraw(t *testing.T) {
	p := mustParse(t, "1R1K4/8/8/8/8/8/8/1r1k4 r - 1", shuuro.Standard)

	shuffle := [][2]string{
		{"b1", "a1"}, {"b8", "a8"}, {"a1", "b1"}, {"a8", "b8"},
	}
	// Two full shuffles bring the start position up for the third time.
	for round := 0; round < 2; round++ {
		for _, m := range shuffle {
			if p.Phase() != shuuro.PhasePlay {
				t.Fatalf("game ended early at %s_%s", m[0], m[1])
			}
			if err := p.Play(m[0], m[1]); err != nil {
				t.Fatalf("Play(%s,%s): %v", m[0], m[1], err)
			}
		}
	}
	if p.Phase() != shuuro.PhaseFinished {
		t.Fatalf("phase = %v, want finished", p.Phase())
	}
	if p.Outcome() != shuuro.OutcomeDraw {
		t.Fatalf("outcome = %v, want draw", p.Outcome())
	}
}

func TestRepetitionResetByUndo(t *testing.T) {
	p := mustParse(t, "1R1K4/8/8/8/8/8/8/1r1k4 r - 1", shuuro.Standard)
	if err := p.Play("b1", "a1"); err != nil {
		t.Fatal(err)
	}
	if !p.UnmakeMove() {
		t.Fatal("undo failed")
	}
	if got := p.GenerateSFEN(); got != "1R1K4/8/8/8/8/8/8/1r1k4 r - 1" {
		t.Fatalf("sfen after undo = %q", got)
	}
	if p.UnmakeMove() {
		t.Fatal("undo past the first move must fail")
	}
}
