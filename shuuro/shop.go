package shuuro

// Shop runs the buy phase: each color spends its starting credit on an army
// under per-type caps. Kings are not bought; each side holds exactly one
// from the moment the shop opens. A side may confirm once it has spent at
// least 100 credit, and is confirmed automatically when its credit hits zero.
type Shop struct {
	variant   Variant
	credit    [2]int
	hand      Hand
	confirmed [2]bool
	selected  [2][]PieceType
}

// NewShop opens a shop with the variant's starting credit for both colors
// and one king already in each hand.
func NewShop(v Variant) *Shop {
	s := &Shop{variant: v}
	s.credit[Red.Index()] = v.StartCredit()
	s.credit[Blue.Index()] = v.StartCredit()
	s.hand.Set(Piece{Type: King, Color: Red}, 1)
	s.hand.Set(Piece{Type: King, Color: Blue}, 1)
	return s
}

// Play applies a BuyMove or SelectMove. Any other move kind, and any buy
// after confirmation, fails with ErrWrongPhase.
func (s *Shop) Play(m Move) error {
	switch mv := m.(type) {
	case BuyMove:
		return s.buy(mv.Piece)
	case SelectMove:
		return s.sel(mv.Piece)
	}
	return ErrWrongPhase
}

func (s *Shop) buy(p Piece) error {
	if p.Color != Red && p.Color != Blue {
		return ErrWrongPhase
	}
	if s.confirmed[p.Color.Index()] {
		return ErrWrongPhase
	}
	if !s.variant.CanBuy(p.Type) {
		return ErrPieceLimitExceeded
	}
	if s.hand.Get(p) >= s.variant.Cap(p.Type) {
		return ErrPieceLimitExceeded
	}
	price := s.variant.Price(p.Type)
	if price > s.credit[p.Color.Index()] {
		return ErrInsufficientCredit
	}
	s.credit[p.Color.Index()] -= price
	s.hand.Inc(p)
	if s.credit[p.Color.Index()] == 0 {
		s.Confirm(p.Color)
	}
	return nil
}

// sel records a provisional choice without charging. Cap and availability
// are still checked so a selection list can always be settled.
func (s *Shop) sel(p Piece) error {
	if p.Color != Red && p.Color != Blue {
		return ErrWrongPhase
	}
	if s.confirmed[p.Color.Index()] {
		return ErrWrongPhase
	}
	if !s.variant.CanBuy(p.Type) {
		return ErrPieceLimitExceeded
	}
	s.selected[p.Color.Index()] = append(s.selected[p.Color.Index()], p.Type)
	return nil
}

// Credit returns the remaining balance for c; never negative.
func (s *Shop) Credit(c Color) int { return s.credit[c.Index()] }

// Count returns how many pieces of the type the color has bought.
func (s *Shop) Count(p Piece) uint8 { return s.hand.Get(p) }

// IsConfirmed reports whether c has closed its shopping.
func (s *Shop) IsConfirmed(c Color) bool { return s.confirmed[c.Index()] }

// Confirm settles any pending selections and closes the shop for c. It
// refuses (returning false) while the side has spent less than 100 credit.
func (s *Shop) Confirm(c Color) bool {
	if c != Red && c != Blue {
		return false
	}
	if s.confirmed[c.Index()] {
		return true
	}
	for _, pt := range s.selected[c.Index()] {
		// Settle in selection order; unaffordable or over-cap picks are
		// dropped rather than failing the whole confirmation.
		_ = s.buyAt(Piece{Type: pt, Color: c})
	}
	s.selected[c.Index()] = nil
	if s.credit[c.Index()] > s.variant.confirmThreshold() {
		return false
	}
	s.confirmed[c.Index()] = true
	return true
}

// buyAt is the settlement path for selections; identical checks to buy but
// without the confirmation guard recursion.
func (s *Shop) buyAt(p Piece) error {
	if s.hand.Get(p) >= s.variant.Cap(p.Type) {
		return ErrPieceLimitExceeded
	}
	price := s.variant.Price(p.Type)
	if price > s.credit[p.Color.Index()] {
		return ErrInsufficientCredit
	}
	s.credit[p.Color.Index()] -= price
	s.hand.Inc(p)
	return nil
}

// close force-settles a side at end of shop: pending selections are
// charged and the shop closed regardless of spend.
func (s *Shop) close(c Color) {
	if s.confirmed[c.Index()] {
		return
	}
	for _, pt := range s.selected[c.Index()] {
		_ = s.buyAt(Piece{Type: pt, Color: c})
	}
	s.selected[c.Index()] = nil
	s.confirmed[c.Index()] = true
}

// ToSFEN renders the color's bought pieces as a letter run in canonical
// order, e.g. "KQQRRPP".
func (s *Shop) ToSFEN(c Color) string { return s.hand.ToSFEN(c) }

// Hand returns a copy of the shop's combined hand state.
func (s *Shop) Hand() Hand { return s.hand }
