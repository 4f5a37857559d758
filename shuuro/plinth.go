package shuuro

import "math/rand"

// generatePlinths rolls count plinth squares, half in each player's board
// half and mirrored so neither side is favored. Plinths stay off the outer
// two ranks, which are reserved for deployment of the back pieces.
func generatePlinths(g *Geometry, count int) Bitboard {
	var bb Bitboard
	if count == 0 {
		return bb
	}
	half := count / 2
	lowRank := 2
	highRank := g.Ranks/2 - 1
	for bb.Count() < half {
		f := rand.Intn(g.Files)
		r := lowRank + rand.Intn(highRank-lowRank+1)
		bb = bb.Set(g.SquareAt(f, r))
	}
	mirrored := bb
	low := bb
	for sq, ok := low.Pop(); ok; sq, ok = low.Pop() {
		f := g.FileOf(sq)
		r := g.Ranks - 1 - g.RankOf(sq)
		mirrored = mirrored.Set(g.SquareAt(f, r))
	}
	return mirrored
}
