package shuuro

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Variant selects a rule set: board size, purchasable pieces, pricing, and
// the capture economy.
type Variant uint8

const (
	// Shuuro is the classic 12x12 game with the six standard piece types.
	Shuuro Variant = iota
	// ShuuroFairy adds chancellor, archbishop, giraffe and lance on 12x12.
	ShuuroFairy
	// ShuuroMini is the 8x8 game with a 200 credit budget.
	ShuuroMini
	// Standard is plain 8x8 placement chess: no shop, captures are gone.
	Standard
)

// ParseVariant converts a variant name as rendered by String.
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "shuuro":
		return Shuuro, nil
	case "shuurofairy":
		return ShuuroFairy, nil
	case "shuuromini":
		return ShuuroMini, nil
	case "standard":
		return Standard, nil
	}
	return Shuuro, fmt.Errorf("unknown variant %q", s)
}

func (v Variant) String() string {
	switch v {
	case ShuuroFairy:
		return "shuurofairy"
	case ShuuroMini:
		return "shuuromini"
	case Standard:
		return "standard"
	}
	return "shuuro"
}

// Geometry returns the board geometry the variant is played on.
func (v Variant) Geometry() *Geometry {
	switch v {
	case ShuuroMini, Standard:
		return G8
	}
	return G12
}

// StartCredit returns the per-color shop budget.
func (v Variant) StartCredit() int {
	switch v {
	case ShuuroFairy:
		return 870
	case ShuuroMini:
		return 200
	case Standard:
		return 0
	}
	return 800
}

// confirmThreshold is the credit level below which a side may close its
// shopping. Spending at least 100 is required in every shop variant.
func (v Variant) confirmThreshold() int { return v.StartCredit() - 100 }

var fairyTypes = []PieceType{Chancellor, ArchBishop, Giraffe, Lance}

// CanBuy reports whether the piece type is purchasable under the variant.
// Kings are never bought; they are granted at confirmation.
func (v Variant) CanBuy(pt PieceType) bool {
	switch pt {
	case NoPieceType, King:
		return false
	}
	if slices.Contains(fairyTypes, pt) {
		return v == ShuuroFairy
	}
	return v != Standard
}

// Price returns the flat per-copy price of a piece type. Unpurchasable
// types price at zero.
func (v Variant) Price(pt PieceType) int {
	switch pt {
	case Queen:
		return 110
	case Rook:
		return 70
	case Bishop, Knight:
		return 40
	case Pawn:
		return 10
	case Chancellor, ArchBishop:
		return 130
	case Giraffe, Lance:
		return 70
	}
	return 0
}

// Cap returns the maximum number of copies of a piece type one side may
// own. The pawn cap shrinks with the board.
func (v Variant) Cap(pt PieceType) uint8 {
	switch pt {
	case King:
		return 1
	case Queen:
		return 5
	case Rook:
		return 6
	case Bishop, Knight:
		return 9
	case Pawn:
		switch v {
		case ShuuroMini:
			return 8
		case Standard:
			return 12
		}
		return 18
	case Chancellor, ArchBishop:
		return 3
	case Giraffe, Lance:
		return 4
	}
	return 0
}

// RecaptureToHand reports whether captured pieces flip color and join the
// capturer's hand. The 12x12 variants keep the recapture economy; the 8x8
// variants discard captures.
func (v Variant) RecaptureToHand() bool {
	return v == Shuuro || v == ShuuroFairy
}

// PlinthCount returns how many plinths GeneratePlinths places.
func (v Variant) PlinthCount() int {
	switch v {
	case Shuuro, ShuuroFairy:
		return 8
	}
	return 0
}
