package shuuro

import "math/bits"

// Square indexes into a geometry's coordinate space as rank*files + file.
type Square int

// NoSquare marks an absent square (empty bitboard scans, cleared caches).
const NoSquare Square = -1

// Bitboard is a 192-bit set of squares, wide enough for the 144-square
// board. The 8x8 geometry only uses the low word. Bit i corresponds to
// Square(i), LSB first.
type Bitboard [3]uint64

// bit returns a bitboard with only sq set.
func bit(sq Square) Bitboard {
	var b Bitboard
	b[sq>>6] = 1 << uint(sq&63)
	return b
}

// IsSet reports whether sq is in the set.
func (b Bitboard) IsSet(sq Square) bool {
	return b[sq>>6]&(1<<uint(sq&63)) != 0
}

// Set returns b with sq added.
func (b Bitboard) Set(sq Square) Bitboard {
	b[sq>>6] |= 1 << uint(sq&63)
	return b
}

// Clear returns b with sq removed.
func (b Bitboard) Clear(sq Square) Bitboard {
	b[sq>>6] &^= 1 << uint(sq&63)
	return b
}

// And returns the intersection of b and o.
func (b Bitboard) And(o Bitboard) Bitboard {
	return Bitboard{b[0] & o[0], b[1] & o[1], b[2] & o[2]}
}

// Or returns the union of b and o.
func (b Bitboard) Or(o Bitboard) Bitboard {
	return Bitboard{b[0] | o[0], b[1] | o[1], b[2] | o[2]}
}

// AndNot returns the squares of b not in o.
func (b Bitboard) AndNot(o Bitboard) Bitboard {
	return Bitboard{b[0] &^ o[0], b[1] &^ o[1], b[2] &^ o[2]}
}

// IsEmpty reports whether no square is set.
func (b Bitboard) IsEmpty() bool { return b[0]|b[1]|b[2] == 0 }

// Any reports whether at least one square is set.
func (b Bitboard) Any() bool { return !b.IsEmpty() }

// Count returns the number of squares in the set.
func (b Bitboard) Count() int {
	return bits.OnesCount64(b[0]) + bits.OnesCount64(b[1]) + bits.OnesCount64(b[2])
}

// LSB returns the lowest set square, or NoSquare if the set is empty.
func (b Bitboard) LSB() Square {
	for i := 0; i < 3; i++ {
		if b[i] != 0 {
			return Square(i*64 + bits.TrailingZeros64(b[i]))
		}
	}
	return NoSquare
}

// MSB returns the highest set square, or NoSquare if the set is empty.
func (b Bitboard) MSB() Square {
	for i := 2; i >= 0; i-- {
		if b[i] != 0 {
			return Square(i*64 + 63 - bits.LeadingZeros64(b[i]))
		}
	}
	return NoSquare
}

// Pop removes and returns the lowest set square. The second result is false
// when the set was empty.
func (b *Bitboard) Pop() (Square, bool) {
	for i := 0; i < 3; i++ {
		if b[i] != 0 {
			sq := Square(i*64 + bits.TrailingZeros64(b[i]))
			b[i] &= b[i] - 1
			return sq, true
		}
	}
	return NoSquare, false
}
