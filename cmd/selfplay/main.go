package main

import (
	"fmt"
	"os"

	"shuuro-engine/shuuro"
)

// Plays a short scripted game through all three phases and prints the
// position after every step. Serves as an end-to-end smoke test.
func main() {
	shuuro.Init()
	pos := shuuro.NewPosition(shuuro.Shuuro)

	buys := []shuuro.Move{
		shuuro.BuyMove{Piece: shuuro.Piece{Type: shuuro.Rook, Color: shuuro.Red}},
		shuuro.BuyMove{Piece: shuuro.Piece{Type: shuuro.Pawn, Color: shuuro.Red}},
		shuuro.BuyMove{Piece: shuuro.Piece{Type: shuuro.Rook, Color: shuuro.Blue}},
		shuuro.BuyMove{Piece: shuuro.Piece{Type: shuuro.Pawn, Color: shuuro.Blue}},
	}
	for _, m := range buys {
		if err := pos.PlayShop(m); err != nil {
			fail(err)
		}
	}
	fmt.Printf("shop: red credit %d, blue credit %d\n",
		pos.Shop().Credit(shuuro.Red), pos.Shop().Credit(shuuro.Blue))

	if err := pos.EndShop(); err != nil {
		fail(err)
	}

	places := []struct {
		piece shuuro.Piece
		to    string
	}{
		{shuuro.Piece{Type: shuuro.King, Color: shuuro.Red}, "f1"},
		{shuuro.Piece{Type: shuuro.King, Color: shuuro.Blue}, "f12"},
		{shuuro.Piece{Type: shuuro.Rook, Color: shuuro.Red}, "a1"},
		{shuuro.Piece{Type: shuuro.Rook, Color: shuuro.Blue}, "a12"},
		{shuuro.Piece{Type: shuuro.Pawn, Color: shuuro.Red}, "g1"},
		{shuuro.Piece{Type: shuuro.Pawn, Color: shuuro.Blue}, "g12"},
	}
	for _, pl := range places {
		sq, err := pos.Geometry().ParseSquare(pl.to)
		if err != nil {
			fail(err)
		}
		if err := pos.Place(pl.piece, sq); err != nil {
			fail(fmt.Errorf("place %s at %s: %w", pl.piece.SFEN(), pl.to, err))
		}
		fmt.Printf("deploy: %s\n", pos.GenerateSFEN())
	}

	moves := [][2]string{{"g1", "g2"}, {"g12", "g11"}, {"a1", "a11"}}
	for _, m := range moves {
		if err := pos.Play(m[0], m[1]); err != nil {
			fail(fmt.Errorf("play %s_%s: %w", m[0], m[1], err))
		}
		fmt.Printf("play: %s\n", pos.GenerateSFEN())
	}
	fmt.Printf("phase %s, outcome %s\n", pos.Phase(), pos.Outcome())
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
