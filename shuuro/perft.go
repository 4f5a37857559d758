package shuuro

// Perft counts leaf nodes of the legal move tree to the given depth.
// Useful for validating move generation against hand-checked positions.
func Perft(p *Position, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	moves := p.LegalMoves(p.SideToMove())
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		if err := p.MakeMove(m); err != nil {
			continue
		}
		nodes += Perft(p, depth-1)
		p.UnmakeMove()
	}
	return nodes
}

// PerftDivide returns the node count below each root move.
func PerftDivide(p *Position, depth int) map[NormalMove]uint64 {
	div := make(map[NormalMove]uint64)
	for _, m := range p.LegalMoves(p.SideToMove()) {
		if err := p.MakeMove(m); err != nil {
			continue
		}
		div[m] = Perft(p, depth-1)
		p.UnmakeMove()
	}
	return div
}
