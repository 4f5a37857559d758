package shuuro

import "sync"

// Ray directions. N/E/NE/NW step toward higher square indexes, so their
// first blocker is found with an LSB scan; the other four use an MSB scan.
const (
	dirN = iota
	dirE
	dirS
	dirW
	dirNE
	dirNW
	dirSE
	dirSW
)

var dirSteps = [8][2]int{
	dirN:  {0, 1},
	dirE:  {1, 0},
	dirS:  {0, -1},
	dirW:  {-1, 0},
	dirNE: {1, 1},
	dirNW: {-1, 1},
	dirSE: {1, -1},
	dirSW: {-1, -1},
}

// AttackTable holds the precomputed per-geometry move masks: stepping-piece
// tables, slider rays, and between-square masks. Built exactly once per
// geometry and read-only afterwards, so it may be shared freely across
// positions and goroutines.
type AttackTable struct {
	g *Geometry

	king    []Bitboard
	knight  []Bitboard
	giraffe []Bitboard

	// Indexed by color: pawns of the two sides step in opposite directions.
	pawnAttacks [2][]Bitboard
	pawnMoves   [2][]Bitboard

	rays    [8][]Bitboard
	between [][]Bitboard
}

var (
	tableOnce8  sync.Once
	tableOnce12 sync.Once
	table8      *AttackTable
	table12     *AttackTable
)

func init() { Init() }

// Init builds the attack tables for every supported geometry. It must run
// before any move generation; calling it again is harmless.
func Init() {
	tableOnce8.Do(func() { table8 = buildTables(G8) })
	tableOnce12.Do(func() { table12 = buildTables(G12) })
}

// Tables returns the attack table for g. Asking for an unsupported geometry
// is a programming error and panics.
func Tables(g *Geometry) *AttackTable {
	Init()
	switch g {
	case G8:
		return table8
	case G12:
		return table12
	}
	panic("shuuro: unsupported geometry")
}

func buildTables(g *Geometry) *AttackTable {
	n := g.NumSquares()
	t := &AttackTable{
		g:       g,
		king:    make([]Bitboard, n),
		knight:  make([]Bitboard, n),
		giraffe: make([]Bitboard, n),
	}
	for c := 0; c < 2; c++ {
		t.pawnAttacks[c] = make([]Bitboard, n)
		t.pawnMoves[c] = make([]Bitboard, n)
	}

	kingOffsets := [8][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	knightOffsets := [8][2]int{
		{1, 2}, {-1, 2}, {1, -2}, {-1, -2},
		{2, 1}, {-2, 1}, {2, -1}, {-2, -1},
	}
	giraffeOffsets := [8][2]int{
		{1, 4}, {-1, 4}, {1, -4}, {-1, -4},
		{4, 1}, {-4, 1}, {4, -1}, {-4, -1},
	}

	step := func(sq Square, offsets [8][2]int) Bitboard {
		var bb Bitboard
		f, r := g.FileOf(sq), g.RankOf(sq)
		for _, off := range offsets {
			ff, rr := f+off[0], r+off[1]
			if ff >= 0 && ff < g.Files && rr >= 0 && rr < g.Ranks {
				bb = bb.Set(g.SquareAt(ff, rr))
			}
		}
		return bb
	}

	for i := 0; i < n; i++ {
		sq := Square(i)
		t.king[i] = step(sq, kingOffsets)
		t.knight[i] = step(sq, knightOffsets)
		t.giraffe[i] = step(sq, giraffeOffsets)

		f, r := g.FileOf(sq), g.RankOf(sq)
		// Red pawns march toward higher ranks, Blue toward lower.
		if r+1 < g.Ranks {
			t.pawnMoves[Red.Index()][i] = bit(g.SquareAt(f, r+1))
			if f > 0 {
				t.pawnAttacks[Red.Index()][i] = t.pawnAttacks[Red.Index()][i].Set(g.SquareAt(f-1, r+1))
			}
			if f+1 < g.Files {
				t.pawnAttacks[Red.Index()][i] = t.pawnAttacks[Red.Index()][i].Set(g.SquareAt(f+1, r+1))
			}
		}
		if r > 0 {
			t.pawnMoves[Blue.Index()][i] = bit(g.SquareAt(f, r-1))
			if f > 0 {
				t.pawnAttacks[Blue.Index()][i] = t.pawnAttacks[Blue.Index()][i].Set(g.SquareAt(f-1, r-1))
			}
			if f+1 < g.Files {
				t.pawnAttacks[Blue.Index()][i] = t.pawnAttacks[Blue.Index()][i].Set(g.SquareAt(f+1, r-1))
			}
		}
	}

	// Rays: all squares from sq in a direction, origin excluded.
	for d := 0; d < 8; d++ {
		t.rays[d] = make([]Bitboard, n)
		for i := 0; i < n; i++ {
			var bb Bitboard
			f, r := g.FileOf(Square(i)), g.RankOf(Square(i))
			for {
				f += dirSteps[d][0]
				r += dirSteps[d][1]
				if f < 0 || f >= g.Files || r < 0 || r >= g.Ranks {
					break
				}
				bb = bb.Set(g.SquareAt(f, r))
			}
			t.rays[d][i] = bb
		}
	}

	// Between masks: squares strictly between two aligned squares.
	t.between = make([][]Bitboard, n)
	for i := 0; i < n; i++ {
		t.between[i] = make([]Bitboard, n)
		for d := 0; d < 8; d++ {
			var acc Bitboard
			f, r := g.FileOf(Square(i)), g.RankOf(Square(i))
			for {
				f += dirSteps[d][0]
				r += dirSteps[d][1]
				if f < 0 || f >= g.Files || r < 0 || r >= g.Ranks {
					break
				}
				sq := g.SquareAt(f, r)
				t.between[i][sq] = acc
				acc = acc.Set(sq)
			}
		}
	}

	return t
}

// Geometry returns the geometry the table was built for.
func (t *AttackTable) Geometry() *Geometry { return t.g }

// Between returns the squares strictly between two aligned squares, or the
// empty set when they share no rank, file, or diagonal.
func (t *AttackTable) Between(a, b Square) Bitboard { return t.between[a][b] }

// ray returns the attack ray from sq in direction d, cut at the first
// blocker in occ (blocker included).
func (t *AttackTable) ray(d int, sq Square, occ Bitboard) Bitboard {
	r := t.rays[d][sq]
	blockers := r.And(occ)
	if blockers.Any() {
		var first Square
		switch d {
		case dirN, dirE, dirNE, dirNW:
			first = blockers.LSB()
		default:
			first = blockers.MSB()
		}
		r = r.AndNot(t.rays[d][first])
	}
	return r
}

// RookAttacks returns orthogonal slider attacks from sq against occ.
func (t *AttackTable) RookAttacks(sq Square, occ Bitboard) Bitboard {
	return t.ray(dirN, sq, occ).
		Or(t.ray(dirE, sq, occ)).
		Or(t.ray(dirS, sq, occ)).
		Or(t.ray(dirW, sq, occ))
}

// BishopAttacks returns diagonal slider attacks from sq against occ.
func (t *AttackTable) BishopAttacks(sq Square, occ Bitboard) Bitboard {
	return t.ray(dirNE, sq, occ).
		Or(t.ray(dirNW, sq, occ)).
		Or(t.ray(dirSE, sq, occ)).
		Or(t.ray(dirSW, sq, occ))
}

// QueenAttacks returns combined rook and bishop attacks from sq.
func (t *AttackTable) QueenAttacks(sq Square, occ Bitboard) Bitboard {
	return t.RookAttacks(sq, occ).Or(t.BishopAttacks(sq, occ))
}

// LanceAttacks returns the forward ray for a lance of the given color.
func (t *AttackTable) LanceAttacks(c Color, sq Square, occ Bitboard) Bitboard {
	if c == Red {
		return t.ray(dirN, sq, occ)
	}
	return t.ray(dirS, sq, occ)
}

// PawnMoves returns the non-capturing step squares for a pawn of color c.
func (t *AttackTable) PawnMoves(c Color, sq Square) Bitboard {
	return t.pawnMoves[c.Index()][sq]
}

// Attacks returns the squares attacked by p standing on sq with the given
// occupancy. For pawns this is the capture pattern only; the quiet step is
// exposed separately through PawnMoves. Unsupported piece kinds panic: the
// table is exhaustively defined for every supported type, so reaching the
// panic means a corrupted piece value.
func (t *AttackTable) Attacks(p Piece, sq Square, occ Bitboard) Bitboard {
	if p.Promoted {
		if !p.Type.Promotable() {
			panic("shuuro: promoted flag on non-promotable piece")
		}
		// A promoted pawn moves like a queen.
		return t.QueenAttacks(sq, occ)
	}
	switch p.Type {
	case King:
		return t.king[sq]
	case Knight:
		return t.knight[sq]
	case Giraffe:
		return t.giraffe[sq]
	case Pawn:
		return t.pawnAttacks[p.Color.Index()][sq]
	case Queen:
		return t.QueenAttacks(sq, occ)
	case Rook:
		return t.RookAttacks(sq, occ)
	case Bishop:
		return t.BishopAttacks(sq, occ)
	case Chancellor:
		return t.RookAttacks(sq, occ).Or(t.knight[sq])
	case ArchBishop:
		return t.BishopAttacks(sq, occ).Or(t.knight[sq])
	case Lance:
		return t.LanceAttacks(p.Color, sq, occ)
	}
	panic("shuuro: no attack pattern for piece type")
}
