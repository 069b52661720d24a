package chessmg

import "math/bits"

// File masks. The Not* variants exist so shift-based attack generation can
// knock out destinations that would wrap from one board edge onto the other.
const (
	fileA uint64 = 0x0101010101010101
	fileB uint64 = fileA << 1
	fileG uint64 = fileA << 6
	fileH uint64 = fileA << 7

	NotFileA  = ^fileA
	NotFileH  = ^fileH
	NotFileAB = ^(fileA | fileB)
	NotFileGH = ^(fileG | fileH)
)

// bb returns a bitboard with only the given square set.
func bb(sq Square) uint64 { return 1 << uint64(sq) }

// SetBit returns a copy of the bitboard with the bit for sq set.
// A square outside 0-63 is a programmer error and shifts to garbage;
// callers are expected to pass validated squares.
func SetBit(board uint64, sq Square) uint64 { return board | bb(sq) }

// HasBit reports whether the bit for sq is set.
func HasBit(board uint64, sq Square) bool { return board&bb(sq) != 0 }

// LowestSetSquare returns the index of the least significant set bit, or
// NoSquare when the board is empty. Callers that have already established a
// non-empty board (king lookups and the like) can use the result directly.
func LowestSetSquare(board uint64) Square {
	if board == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(board))
}

// ActiveSquares returns every set bit index in ascending order. The empty
// board yields an empty slice and the full board all 64 squares.
func ActiveSquares(board uint64) []Square {
	squares := make([]Square, 0, bits.OnesCount64(board))
	for board != 0 {
		squares = append(squares, Square(popLSB(&board)))
	}
	return squares
}

// popLSB removes and returns the least significant set bit from the mask.
func popLSB(mask *uint64) int {
	idx := bits.TrailingZeros64(*mask)
	*mask &= *mask - 1
	return idx
}
