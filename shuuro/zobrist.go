package shuuro

import "math/rand"

// Zobrist keys for position hashing, used by the repetition detector.
// Fixed seed keeps hashes reproducible in tests.
const maxSquares = 144

var (
	zobristPiece    [2][pieceTypeCount][maxSquares]uint64
	zobristPromoted [maxSquares]uint64
	zobristSide     uint64
)

func init() { initZobrist() }

func initZobrist() {
	rnd := rand.New(rand.NewSource(0x5118120))
	for c := 0; c < 2; c++ {
		for pt := 0; pt < pieceTypeCount; pt++ {
			for sq := 0; sq < maxSquares; sq++ {
				zobristPiece[c][pt][sq] = rnd.Uint64()
			}
		}
	}
	for sq := 0; sq < maxSquares; sq++ {
		zobristPromoted[sq] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// computeZobrist hashes the board occupancy plus side to move. Plinths are
// fixed for the whole game and hands change only on captures that already
// change the board, so neither needs its own keys.
func computeZobrist(b *Board, sideToMove Color) uint64 {
	var key uint64
	occ := b.Occupied()
	for sq, ok := occ.Pop(); ok; sq, ok = occ.Pop() {
		p := b.PieceAt(sq)
		key ^= zobristPiece[p.Color.Index()][p.Type][sq]
		if p.Promoted {
			key ^= zobristPromoted[sq]
		}
	}
	if sideToMove == Blue {
		key ^= zobristSide
	}
	return key
}
