package shuuro

import "strings"

// Board owns the square -> piece mapping for one geometry, kept redundantly
// as a mailbox and as per-color/per-type bitboards, plus the plinth mask and
// a king-square cache per color.
type Board struct {
	g *Geometry

	pieces  []Piece
	colorBB [2]Bitboard
	typeBB  [pieceTypeCount]Bitboard
	occ     Bitboard
	plinths Bitboard
	kings   [2]Square
}

// NewBoard returns an empty board for the given geometry.
func NewBoard(g *Geometry) *Board {
	b := &Board{g: g, pieces: make([]Piece, g.NumSquares())}
	b.kings[Red.Index()] = NoSquare
	b.kings[Blue.Index()] = NoSquare
	return b
}

// Geometry returns the board's geometry.
func (b *Board) Geometry() *Geometry { return b.g }

// PieceAt returns the occupant of sq, or NoPiece.
func (b *Board) PieceAt(sq Square) Piece { return b.pieces[sq] }

// SetPiece places p on sq, replacing any previous occupant.
func (b *Board) SetPiece(sq Square, p Piece) {
	if !b.pieces[sq].IsEmpty() {
		b.Remove(sq)
	}
	if p.IsEmpty() {
		return
	}
	b.pieces[sq] = p
	bb := bit(sq)
	b.colorBB[p.Color.Index()] = b.colorBB[p.Color.Index()].Or(bb)
	b.typeBB[p.Type] = b.typeBB[p.Type].Or(bb)
	b.occ = b.occ.Or(bb)
	if p.Type == King {
		b.kings[p.Color.Index()] = sq
	}
}

// Remove clears sq.
func (b *Board) Remove(sq Square) {
	p := b.pieces[sq]
	if p.IsEmpty() {
		return
	}
	b.pieces[sq] = NoPiece
	b.colorBB[p.Color.Index()] = b.colorBB[p.Color.Index()].Clear(sq)
	b.typeBB[p.Type] = b.typeBB[p.Type].Clear(sq)
	b.occ = b.occ.Clear(sq)
	if p.Type == King && b.kings[p.Color.Index()] == sq {
		b.kings[p.Color.Index()] = NoSquare
	}
}

// KingSquare returns the cached king square for c, or NoSquare.
func (b *Board) KingSquare(c Color) Square { return b.kings[c.Index()] }

// Player returns the occupancy of one color.
func (b *Board) Player(c Color) Bitboard { return b.colorBB[c.Index()] }

// Type returns the occupancy of one piece type, both colors.
func (b *Board) Type(pt PieceType) Bitboard { return b.typeBB[pt] }

// Occupied returns the occupancy of both colors. Plinths are not occupancy;
// they never block movement by themselves.
func (b *Board) Occupied() Bitboard { return b.occ }

// Plinths returns the plinth mask.
func (b *Board) Plinths() Bitboard { return b.plinths }

// SetPlinths replaces the plinth mask.
func (b *Board) SetPlinths(bb Bitboard) { b.plinths = bb }

// AddPlinth marks sq as a plinth square.
func (b *Board) AddPlinth(sq Square) { b.plinths = b.plinths.Set(sq) }

// Clear removes every piece, keeping the plinth mask.
func (b *Board) Clear() {
	for i := range b.pieces {
		b.pieces[i] = NoPiece
	}
	b.colorBB = [2]Bitboard{}
	b.typeBB = [pieceTypeCount]Bitboard{}
	b.occ = Bitboard{}
	b.kings[Red.Index()] = NoSquare
	b.kings[Blue.Index()] = NoSquare
}

// Validate cross-checks the mailbox against the bitboards and king cache.
func (b *Board) Validate() bool {
	var occ Bitboard
	var colors [2]Bitboard
	var types [pieceTypeCount]Bitboard
	kings := [2]Square{NoSquare, NoSquare}
	for i, p := range b.pieces {
		if p.IsEmpty() {
			continue
		}
		sq := Square(i)
		occ = occ.Set(sq)
		colors[p.Color.Index()] = colors[p.Color.Index()].Set(sq)
		types[p.Type] = types[p.Type].Set(sq)
		if p.Type == King {
			kings[p.Color.Index()] = sq
		}
	}
	if occ != b.occ || colors != b.colorBB || kings != b.kings {
		return false
	}
	for pt := range types {
		if types[pt] != b.typeBB[pt] {
			return false
		}
	}
	return true
}

// String renders an ASCII grid, highest rank first, for debugging.
func (b *Board) String() string {
	var sb strings.Builder
	for r := b.g.Ranks - 1; r >= 0; r-- {
		for f := 0; f < b.g.Files; f++ {
			sq := b.g.SquareAt(f, r)
			p := b.pieces[sq]
			switch {
			case !p.IsEmpty():
				sb.WriteByte(p.Letter())
			case b.plinths.IsSet(sq):
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
			if f+1 < b.g.Files {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
