package shuuro

import (
	"fmt"
	"strconv"
)

// Geometry describes one board size: square count, file/rank extents, the
// label scheme, and the file/rank masks used by placement and move rules.
// The two supported instances are G8 and G12; all higher layers are written
// against this type and instantiated per geometry.
type Geometry struct {
	Files int
	Ranks int

	fileBB []Bitboard
	rankBB []Bitboard
	mask   Bitboard
}

// G8 is the 8x8 board, G12 the 12x12 board.
var (
	G8  = newGeometry(8, 8)
	G12 = newGeometry(12, 12)
)

func newGeometry(files, ranks int) *Geometry {
	g := &Geometry{
		Files:  files,
		Ranks:  ranks,
		fileBB: make([]Bitboard, files),
		rankBB: make([]Bitboard, ranks),
	}
	for r := 0; r < ranks; r++ {
		for f := 0; f < files; f++ {
			sq := Square(r*files + f)
			g.fileBB[f] = g.fileBB[f].Set(sq)
			g.rankBB[r] = g.rankBB[r].Set(sq)
			g.mask = g.mask.Set(sq)
		}
	}
	return g
}

// NumSquares returns the number of squares on the board.
func (g *Geometry) NumSquares() int { return g.Files * g.Ranks }

// SquareAt returns the square at the given zero-based file and rank.
func (g *Geometry) SquareAt(file, rank int) Square {
	return Square(rank*g.Files + file)
}

// FileOf returns the zero-based file of sq.
func (g *Geometry) FileOf(sq Square) int { return int(sq) % g.Files }

// RankOf returns the zero-based rank of sq.
func (g *Geometry) RankOf(sq Square) int { return int(sq) / g.Files }

// Valid reports whether sq lies on the board.
func (g *Geometry) Valid(sq Square) bool {
	return sq >= 0 && int(sq) < g.NumSquares()
}

// FileBB returns the mask of all squares on the zero-based file.
func (g *Geometry) FileBB(file int) Bitboard { return g.fileBB[file] }

// RankBB returns the mask of all squares on the zero-based rank.
func (g *Geometry) RankBB(rank int) Bitboard { return g.rankBB[rank] }

// Mask returns the set of all valid squares.
func (g *Geometry) Mask() Bitboard { return g.mask }

// ParseSquare converts a label such as "d1" or "F12" to a square. File
// letters are case-insensitive; ranks are one-based decimal.
func (g *Geometry) ParseSquare(label string) (Square, error) {
	if len(label) < 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquareLabel, label)
	}
	fc := label[0]
	if fc >= 'A' && fc <= 'Z' {
		fc += 'a' - 'A'
	}
	file := int(fc - 'a')
	if file < 0 || file >= g.Files {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquareLabel, label)
	}
	rank, err := strconv.Atoi(label[1:])
	if err != nil || rank < 1 || rank > g.Ranks {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquareLabel, label)
	}
	return g.SquareAt(file, rank-1), nil
}

// SquareLabel renders sq as a lowercase label such as "a1".
func (g *Geometry) SquareLabel(sq Square) string {
	return string(byte('a'+g.FileOf(sq))) + strconv.Itoa(g.RankOf(sq)+1)
}
