package chessmg

import "math/rand"

// Zobrist keys for pieces, castling rights, en passant file and side to
// move. Seeded deterministically so hashes are stable across runs, which
// keeps test fixtures reproducible.
var zobristPieces [2][7][64]uint64
var zobristCastle [16]uint64
var zobristEnPassant [8]uint64
var zobristSide uint64

func initZobrist() {
	rnd := rand.New(rand.NewSource(0x5EED))

	for c := 0; c < 2; c++ {
		for pt := Pawn; pt <= King; pt++ {
			for sq := 0; sq < 64; sq++ {
				zobristPieces[c][pt][sq] = rnd.Uint64()
			}
		}
	}
	for cr := range zobristCastle {
		zobristCastle[cr] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

func zobristPieceKey(p Piece, sq Square) uint64 {
	return zobristPieces[p.Color()][p.Type()][sq]
}

// ComputeZobrist recomputes the hash of the current position from scratch.
// The incrementally maintained key must always match; Validate checks this.
func (b *Board) ComputeZobrist() uint64 {
	var key uint64
	for sq := Square(0); sq < 64; sq++ {
		if p := b.mailbox[sq]; p != NoPiece {
			key ^= zobristPieceKey(p, sq)
		}
	}
	if b.sideToMove == Black {
		key ^= zobristSide
	}
	key ^= zobristCastle[b.castlingRights]
	if b.enPassantSquare != NoSquare {
		key ^= zobristEnPassant[b.enPassantSquare.File()]
	}
	return key
}
