package shuuro

import (
	"fmt"
	"strings"
)

// Move is the closed set of move kinds. Each kind is only valid in its own
// phase: BuyMove/SelectMove during Shop, PlaceMove during Deploy, NormalMove
// during Play.
type Move interface {
	// Format renders the move in its text form for the given geometry.
	Format(g *Geometry) string
	isMove()
}

// BuyMove purchases one piece in the shop, charging its price immediately.
type BuyMove struct {
	Piece Piece
}

// SelectMove records a provisional shop choice; the cost is settled at
// confirmation.
type SelectMove struct {
	Piece Piece
}

// PlaceMove puts a hand piece on an empty deploy-zone square.
type PlaceMove struct {
	Piece Piece
	To    Square
}

// NormalMove moves a board piece during play, optionally promoting.
type NormalMove struct {
	From    Square
	To      Square
	Promote bool
}

func (BuyMove) isMove()    {}
func (SelectMove) isMove() {}
func (PlaceMove) isMove()  {}
func (NormalMove) isMove() {}

// Format renders the buy form, e.g. "+Q" or "+q".
func (m BuyMove) Format(*Geometry) string { return "+" + string(m.Piece.Letter()) }

// Format renders the selection form, same shape as a buy.
func (m SelectMove) Format(*Geometry) string { return "+" + string(m.Piece.Letter()) }

// Format renders the drop form, e.g. "N@c3".
func (m PlaceMove) Format(g *Geometry) string {
	return string(m.Piece.Letter()) + "@" + g.SquareLabel(m.To)
}

// Format renders the board-move form, e.g. "a1_b2".
func (m NormalMove) Format(g *Geometry) string {
	return g.SquareLabel(m.From) + "_" + g.SquareLabel(m.To)
}

// ParseMove reads any of the three text forms: "+Q" (buy/select, reported as
// a BuyMove), "N@c3" (placement), "a1_b2" (board move).
func ParseMove(g *Geometry, s string) (Move, error) {
	switch {
	case strings.HasPrefix(s, "+"):
		if len(s) != 2 {
			return nil, fmt.Errorf("%w: move %q", ErrMalformedNotation, s)
		}
		p := pieceFromChar(s[1])
		if p.IsEmpty() {
			return nil, fmt.Errorf("%w: move %q", ErrMalformedNotation, s)
		}
		return BuyMove{Piece: p}, nil
	case strings.Contains(s, "@"):
		parts := strings.SplitN(s, "@", 2)
		if len(parts[0]) != 1 {
			return nil, fmt.Errorf("%w: move %q", ErrMalformedNotation, s)
		}
		p := pieceFromChar(parts[0][0])
		if p.IsEmpty() {
			return nil, fmt.Errorf("%w: move %q", ErrMalformedNotation, s)
		}
		sq, err := g.ParseSquare(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: move %q", ErrMalformedNotation, s)
		}
		return PlaceMove{Piece: p, To: sq}, nil
	case strings.Contains(s, "_"):
		parts := strings.SplitN(s, "_", 2)
		from, err := g.ParseSquare(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: move %q", ErrMalformedNotation, s)
		}
		to, err := g.ParseSquare(parts[1])
		if err != nil {
			return nil, fmt.Errorf("%w: move %q", ErrMalformedNotation, s)
		}
		return NormalMove{From: from, To: to}, nil
	}
	return nil, fmt.Errorf("%w: move %q", ErrMalformedNotation, s)
}
