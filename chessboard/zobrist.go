package chessboard

import "math/rand"

// Zobrist hashing tables for pieces, en passant and side to move.
var zobristPiece [2][KindKing + 1][BoardSize * BoardSize]uint64
var zobristEnPassant [BoardSize]uint64 // keyed by the target's file
var zobristSide uint64                 // XORed in when Black is to move

func init() {
	initZobrist()
}

func initZobrist() {
	// Fixed seed so hashes are reproducible across runs
	rnd := rand.New(rand.NewSource(0xC0DE))
	for c := range zobristPiece {
		for k := KindPawn; k <= KindKing; k++ {
			for sq := range zobristPiece[c][k] {
				zobristPiece[c][k][sq] = rnd.Uint64()
			}
		}
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// Hash returns the Zobrist key of the position: placement by kind and
// owner, side to move and en-passant file. Distinct piece identities of the
// same kind and owner hash the same.
func (b *Board) Hash() uint64 {
	var key uint64
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if p := b.grid[row][col]; p != nil {
				key ^= zobristPiece[p.Player()][p.Kind()][row*BoardSize+col]
			}
		}
	}
	if b.currentPlayer == Black {
		key ^= zobristSide
	}
	if b.enPassant.Valid() {
		key ^= zobristEnPassant[b.enPassant.Col]
	}
	return key
}
