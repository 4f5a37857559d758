package shuuro_test

import (
	"errors"
	"strings"
	"testing"

	"shuuro-engine/shuuro"
)

func place(t *testing.T, p *shuuro.Position, pc shuuro.Piece, label string) {
	t.Helper()
	sq, err := p.Geometry().ParseSquare(label)
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Place(pc, sq); err != nil {
		t.Fatalf("place %s at %s: %v", pc.SFEN(), label, err)
	}
}

func TestDeployTwoKingsScenario(t *testing.T) {
	p := shuuro.NewPosition(shuuro.Shuuro)
	p.SetHand("Kk")

	place(t, p, shuuro.Piece{Type: shuuro.King, Color: shuuro.Red}, "d1")
	place(t, p, shuuro.Piece{Type: shuuro.King, Color: shuuro.Blue}, "f12")

	want := "3K8/12/12/12/12/12/12/12/12/12/12/5k6 r - 1"
	if got := p.GenerateSFEN(); got != want {
		t.Fatalf("sfen = %q, want %q", got, want)
	}
	board := strings.Fields(p.GenerateSFEN())[0]
	if strings.Count(board, "K") != 1 || strings.Count(board, "k") != 1 {
		t.Fatalf("unexpected king letters in %q", board)
	}
	if p.Phase() != shuuro.PhasePlay {
		t.Fatalf("phase = %v, want play", p.Phase())
	}
}

func TestDeployKingZone(t *testing.T) {
	p := shuuro.NewPosition(shuuro.Shuuro)
	p.SetHand("Kk")
	king := shuuro.Piece{Type: shuuro.King, Color: shuuro.Red}

	for _, label := range []string{"a1", "c1", "j1", "e2"} {
		sq, err := p.Geometry().ParseSquare(label)
		if err != nil {
			t.Fatal(err)
		}
		if err := p.Place(king, sq); !errors.Is(err, shuuro.ErrInvalidDeployZone) {
			t.Errorf("king at %s: err = %v, want ErrInvalidDeployZone", label, err)
		}
	}
	place(t, p, king, "i1")
}

func TestDeployErrors(t *testing.T) {
	p := shuuro.NewPosition(shuuro.Shuuro)
	p.SetHand("KQk")
	queen := shuuro.Piece{Type: shuuro.Queen, Color: shuuro.Red}
	rook := shuuro.Piece{Type: shuuro.Rook, Color: shuuro.Red}
	a1 := sq12(t, "a1")

	if err := p.Place(rook, a1); !errors.Is(err, shuuro.ErrPieceNotInHand) {
		t.Fatalf("rook not in hand: err = %v", err)
	}
	place(t, p, queen, "a1")
	if err := p.Place(shuuro.Piece{Type: shuuro.King, Color: shuuro.Red}, a1); !errors.Is(err, shuuro.ErrSquareOccupied) {
		t.Fatalf("occupied square: err = %v", err)
	}
	// Queens deploy on the nearest free home rank, never outside the zone.
	if err := p.Place(shuuro.Piece{Type: shuuro.King, Color: shuuro.Blue}, sq12(t, "f6")); !errors.Is(err, shuuro.ErrInvalidDeployZone) {
		t.Fatalf("mid-board placement: err = %v", err)
	}
	if err := p.Place(queen, a1); !errors.Is(err, shuuro.ErrPieceNotInHand) {
		t.Fatalf("queen already placed: err = %v", err)
	}
}

func TestDeployWrongPhase(t *testing.T) {
	p, err := shuuro.ParseSFEN(shuuro.StartSFEN12, shuuro.Shuuro)
	if err != nil {
		t.Fatal(err)
	}
	err = p.Place(shuuro.Piece{Type: shuuro.Rook, Color: shuuro.Red}, sq12(t, "c1"))
	if !errors.Is(err, shuuro.ErrWrongPhase) {
		t.Fatalf("place during play: err = %v", err)
	}
}

func TestDeployPlinthRules(t *testing.T) {
	p := shuuro.NewPosition(shuuro.Shuuro)
	p.SetHand("KNQk")
	p.Board().AddPlinth(sq12(t, "b1"))
	p.Board().AddPlinth(sq12(t, "c1"))

	place(t, p, shuuro.Piece{Type: shuuro.Knight, Color: shuuro.Red}, "c1")
	if err := p.Place(shuuro.Piece{Type: shuuro.Queen, Color: shuuro.Red}, sq12(t, "b1")); !errors.Is(err, shuuro.ErrInvalidDeployZone) {
		t.Fatalf("queen on plinth: err = %v", err)
	}
	place(t, p, shuuro.Piece{Type: shuuro.Queen, Color: shuuro.Red}, "a1")
}

func TestDeployPawnsPlacedLast(t *testing.T) {
	p := shuuro.NewPosition(shuuro.Shuuro)
	p.SetHand("KPRk")
	pawn := shuuro.Piece{Type: shuuro.Pawn, Color: shuuro.Red}

	if err := p.Place(pawn, sq12(t, "a1")); !errors.Is(err, shuuro.ErrInvalidDeployZone) {
		t.Fatalf("pawn before rest of hand: err = %v", err)
	}
	place(t, p, shuuro.Piece{Type: shuuro.King, Color: shuuro.Red}, "e1")
	place(t, p, shuuro.Piece{Type: shuuro.Rook, Color: shuuro.Red}, "a1")
	place(t, p, pawn, "b1")
}

func TestDeployMissingKing(t *testing.T) {
	p := shuuro.NewPosition(shuuro.Shuuro)
	p.SetHand("Qq")
	place(t, p, shuuro.Piece{Type: shuuro.Queen, Color: shuuro.Red}, "a1")

	sq, err := shuuro.G12.ParseSquare("a12")
	if err != nil {
		t.Fatal(err)
	}
	err = p.Place(shuuro.Piece{Type: shuuro.Queen, Color: shuuro.Blue}, sq)
	if !errors.Is(err, shuuro.ErrMissingKing) {
		t.Fatalf("end of deploy without kings: err = %v", err)
	}
	if p.Phase() != shuuro.PhaseDeploy {
		t.Fatalf("phase advanced despite missing kings: %v", p.Phase())
	}
}

func TestDeployBlocksWhenKingAttacked(t *testing.T) {
	p := shuuro.NewPosition(shuuro.Shuuro)
	p.SetHand("KRkq")

	place(t, p, shuuro.Piece{Type: shuuro.King, Color: shuuro.Red}, "d1")
	place(t, p, shuuro.Piece{Type: shuuro.Queen, Color: shuuro.Blue}, "d12")

	// Blue's queen now stares down the d-file; Red may only interpose.
	rook := shuuro.Piece{Type: shuuro.Rook, Color: shuuro.Red}
	if err := p.Place(rook, sq12(t, "a1")); !errors.Is(err, shuuro.ErrInvalidDeployZone) {
		t.Fatalf("non-blocking placement while in check: err = %v", err)
	}
	place(t, p, rook, "d3")
	place(t, p, shuuro.Piece{Type: shuuro.King, Color: shuuro.Blue}, "e12")

	if p.Phase() != shuuro.PhasePlay {
		t.Fatalf("phase = %v, want play", p.Phase())
	}
}

func TestEndShopIntoDeploy(t *testing.T) {
	p := shuuro.NewPosition(shuuro.Shuuro)
	if err := p.PlayShop(buy(shuuro.Rook, shuuro.Red)); err != nil {
		t.Fatal(err)
	}
	if err := p.PlayShop(buy(shuuro.Rook, shuuro.Blue)); err != nil {
		t.Fatal(err)
	}
	if err := p.EndShop(); err != nil {
		t.Fatal(err)
	}
	if p.Phase() != shuuro.PhaseDeploy {
		t.Fatalf("phase = %v", p.Phase())
	}
	h := p.Hand()
	if h.Get(shuuro.Piece{Type: shuuro.King, Color: shuuro.Red}) != 1 ||
		h.Get(shuuro.Piece{Type: shuuro.King, Color: shuuro.Blue}) != 1 {
		t.Fatal("kings missing from deploy hands")
	}
	if h.Get(shuuro.Piece{Type: shuuro.Rook, Color: shuuro.Red}) != 1 {
		t.Fatal("bought rook missing from deploy hand")
	}
}

func TestGeneratePlinthCount(t *testing.T) {
	p := shuuro.NewPosition(shuuro.Shuuro)
	p.GeneratePlinths()
	if got := p.Board().Plinths().Count(); got != 8 {
		t.Fatalf("plinth count = %d, want 8", got)
	}

	std := shuuro.NewPosition(shuuro.Standard)
	std.GeneratePlinths()
	if std.Board().Plinths().Any() {
		t.Fatal("standard variant must not generate plinths")
	}
}
