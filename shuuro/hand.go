package shuuro

import "strings"

// Hand is the per-color multiset of off-board pieces awaiting placement or
// recapture. Only piece counts matter; purchase and capture order do not.
type Hand struct {
	counts [2][pieceTypeCount]uint8
}

// Get returns the count for the given colored piece type.
func (h *Hand) Get(p Piece) uint8 {
	if p.Color != Red && p.Color != Blue {
		return 0
	}
	return h.counts[p.Color.Index()][p.Type]
}

// Inc adds one piece of the given color and type.
func (h *Hand) Inc(p Piece) { h.counts[p.Color.Index()][p.Type]++ }

// Dec removes one piece; the count never goes below zero.
func (h *Hand) Dec(p Piece) {
	if h.counts[p.Color.Index()][p.Type] > 0 {
		h.counts[p.Color.Index()][p.Type]--
	}
}

// Set overwrites the count for one colored piece type.
func (h *Hand) Set(p Piece, n uint8) { h.counts[p.Color.Index()][p.Type] = n }

// Clear empties both hands.
func (h *Hand) Clear() { h.counts = [2][pieceTypeCount]uint8{} }

// IsEmpty reports whether color c holds nothing besides the excluded type.
func (h *Hand) IsEmpty(c Color, excluded PieceType) bool {
	for _, pt := range handOrder {
		if pt == excluded {
			continue
		}
		if h.counts[c.Index()][pt] != 0 {
			return false
		}
	}
	return true
}

// SetFromSFEN adds pieces from a letter string such as "KQQRRkrr"; case
// carries the color. Unknown letters and digits are ignored, except that a
// digit run multiplies the following letter ("2P" counts two pawns).
func (h *Hand) SetFromSFEN(s string) {
	count := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch >= '0' && ch <= '9' {
			count = count*10 + int(ch-'0')
			continue
		}
		p := pieceFromChar(ch)
		if p.IsEmpty() {
			count = 0
			continue
		}
		if count == 0 {
			count = 1
		}
		for j := 0; j < count; j++ {
			h.Inc(p)
		}
		count = 0
	}
}

// ToSFEN renders one color's hand in canonical type order with repeated
// letters for multiple copies. Empty hand renders as "".
func (h *Hand) ToSFEN(c Color) string {
	var sb strings.Builder
	for _, pt := range handOrder {
		n := int(h.counts[c.Index()][pt])
		letter := Piece{Type: pt, Color: c}.Letter()
		for i := 0; i < n; i++ {
			sb.WriteByte(letter)
		}
	}
	return sb.String()
}
