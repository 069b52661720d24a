package chessmg

import "math/bits"

// Slider attacks use fancy magic bitboards: for each square the relevant
// blocker subset is hashed by a magic multiplication into a dense,
// precomputed attack table. Tables are filled once by Init from ray walks
// over every possible blocker subset and are immutable afterwards.

// magicEntry holds the lookup data for one square.
type magicEntry struct {
	mask   uint64 // relevant occupancy mask (edges excluded)
	magic  uint64 // magic multiplier
	shift  uint8  // 64 - popcount(mask)
	offset uint32 // base index into the shared attack table
}

var bishopMagics [64]magicEntry
var rookMagics [64]magicEntry

// Dense attack tables. The sizes are the sums over all squares of
// 2^popcount(mask): 5248 bishop entries and 102400 rook entries.
var bishopAttackTable [5248]uint64
var rookAttackTable [102400]uint64

// Magic multipliers. Finding these is an offline search; this set is the
// widely published one and is verified exhaustively by the table fill.
var bishopMagicNumbers = [64]uint64{
	0x0002020202020200, 0x0002020202020000, 0x0004010202000000, 0x0004040080000000,
	0x0001104000000000, 0x0000821040000000, 0x0000410410400000, 0x0000104104104000,
	0x0000040404040400, 0x0000020202020200, 0x0000040102020000, 0x0000040400800000,
	0x0000011040000000, 0x0000008210400000, 0x0000004104104000, 0x0000002082082000,
	0x0004000808080800, 0x0002000404040400, 0x0001000202020200, 0x0000800802004000,
	0x0000800400A00000, 0x0000200100884000, 0x0000400082082000, 0x0000200041041000,
	0x0002080010101000, 0x0001040008080800, 0x0000208004010400, 0x0000404004010200,
	0x0000840000802000, 0x0000404002011000, 0x0000808001041000, 0x0000404000820800,
	0x0001041000202000, 0x0000820800101000, 0x0000104400080800, 0x0000020080080080,
	0x0000404040040100, 0x0000808100020100, 0x0001010100020800, 0x0000808080010400,
	0x0000820820004000, 0x0000410410002000, 0x0000082088001000, 0x0000002011000800,
	0x0000080100400400, 0x0001010101000200, 0x0002020202000400, 0x0001010101000200,
	0x0000410410400000, 0x0000208208200000, 0x0000002084100000, 0x0000000020880000,
	0x0000001002020000, 0x0000040408020000, 0x0004040404040000, 0x0002020202020000,
	0x0000104104104000, 0x0000002082082000, 0x0000000020841000, 0x0000000000208800,
	0x0000000010020200, 0x0000000404080200, 0x0000040404040400, 0x0002020202020200,
}

var rookMagicNumbers = [64]uint64{
	0x0080001020400080, 0x0040001000200040, 0x0080081000200080, 0x0080040800100080,
	0x0080020400080080, 0x0080010200040080, 0x0080008001000200, 0x0080002040800100,
	0x0000800020400080, 0x0000400020005000, 0x0000801000200080, 0x0000800800100080,
	0x0000800400080080, 0x0000800200040080, 0x0000800100020080, 0x0000800040800100,
	0x0000208000400080, 0x0000404000201000, 0x0000808010002000, 0x0000808008001000,
	0x0000808004000800, 0x0000808002000400, 0x0000010100020004, 0x0000020000408104,
	0x0000208080004000, 0x0000200040005000, 0x0000100080200080, 0x0000080080100080,
	0x0000040080080080, 0x0000020080040080, 0x0000010080800200, 0x0000800080004100,
	0x0000204000800080, 0x0000200040401000, 0x0000100080802000, 0x0000080080801000,
	0x0000040080800800, 0x0000020080800400, 0x0000020001010004, 0x0000800040800100,
	0x0000204000808000, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000010002008080, 0x0000004081020004,
	0x0000204000800080, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000800100020080, 0x0000800041000080,
	0x00FFFCDDFCED714A, 0x007FFCDDFCED714A, 0x003FFFCDFFD88096, 0x0000040810002101,
	0x0001000204080011, 0x0001000204000801, 0x0001000082000401, 0x0001FFFAABFAD1A2,
}

func initSliderAttacks() {
	var bishopOffset, rookOffset uint32
	for sq := Square(0); sq < 64; sq++ {
		bishopOffset += fillMagic(&bishopMagics[sq], bishopRelevantMask(sq),
			bishopMagicNumbers[sq], bishopOffset, bishopAttackTable[:], sq, bishopAttacksOnRays)
		rookOffset += fillMagic(&rookMagics[sq], rookRelevantMask(sq),
			rookMagicNumbers[sq], rookOffset, rookAttackTable[:], sq, rookAttacksOnRays)
	}
}

// fillMagic populates one square's magic entry and its slice of the attack
// table, enumerating every blocker subset of the mask. Returns the number of
// table entries consumed.
func fillMagic(m *magicEntry, mask, magic uint64, offset uint32, table []uint64,
	sq Square, rayAttacks func(Square, uint64) uint64) uint32 {

	relevantBits := bits.OnesCount64(mask)
	*m = magicEntry{
		mask:   mask,
		magic:  magic,
		shift:  uint8(64 - relevantBits),
		offset: offset,
	}

	entries := uint32(1) << relevantBits
	for i := uint32(0); i < entries; i++ {
		occ := subsetForIndex(uint64(i), mask)
		idx := (occ * magic) >> m.shift
		table[offset+uint32(idx)] = rayAttacks(sq, occ)
	}
	return entries
}

// subsetForIndex deposits the low bits of index onto the set bits of mask,
// producing the index-th blocker subset.
func subsetForIndex(index, mask uint64) uint64 {
	var occ uint64
	for i := 0; mask != 0; i++ {
		sq := popLSB(&mask)
		if index&(1<<uint(i)) != 0 {
			occ |= 1 << uint(sq)
		}
	}
	return occ
}

// bishopRelevantMask is the empty-board bishop reach minus the board rim;
// blockers on the rim never change the attack set.
func bishopRelevantMask(sq Square) uint64 {
	rim := fileA | fileH | rank1 | rank8
	return bishopAttacksOnRays(sq, 0) &^ rim
}

// rookRelevantMask excludes the far end of each ray rather than the whole
// rim, since a rook on an edge still reaches along it.
func rookRelevantMask(sq Square) uint64 {
	file, rank := int(sq)%8, int(sq)/8
	var mask uint64
	for f := 1; f < 7; f++ {
		if f != file {
			mask |= 1 << uint(rank*8+f)
		}
	}
	for r := 1; r < 7; r++ {
		if r != rank {
			mask |= 1 << uint(r*8+file)
		}
	}
	return mask
}

const (
	rank1 uint64 = 0x00000000000000FF
	rank8 uint64 = 0xFF00000000000000
)

// bishopAttacksOnRays computes bishop attacks by walking the four diagonals,
// stopping at (and including) the first blocker. Used to seed the tables and
// as the reference the magic lookup must reproduce.
func bishopAttacksOnRays(sq Square, occupied uint64) uint64 {
	return walkRays(sq, occupied, [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}})
}

// rookAttacksOnRays is the orthogonal counterpart of bishopAttacksOnRays.
func rookAttacksOnRays(sq Square, occupied uint64) uint64 {
	return walkRays(sq, occupied, [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}})
}

func walkRays(sq Square, occupied uint64, dirs [4][2]int) uint64 {
	var attacks uint64
	for _, d := range dirs {
		r, f := int(sq)/8+d[0], int(sq)%8+d[1]
		for r >= 0 && r < 8 && f >= 0 && f < 8 {
			s := uint64(1) << uint(r*8+f)
			attacks |= s
			if occupied&s != 0 {
				break
			}
			r += d[0]
			f += d[1]
		}
	}
	return attacks
}

// BishopAttacks returns the exact set of squares a bishop on sq reaches given
// the blocker board: up to and including the first blocker on each diagonal,
// nothing beyond it. Empty blockers give the maximal empty-board reach. A
// square outside 0-63 panics on the table lookup.
func BishopAttacks(sq Square, blockers uint64) uint64 {
	m := &bishopMagics[sq]
	idx := ((blockers & m.mask) * m.magic) >> m.shift
	return bishopAttackTable[m.offset+uint32(idx)]
}

// RookAttacks is the orthogonal counterpart of BishopAttacks.
func RookAttacks(sq Square, blockers uint64) uint64 {
	m := &rookMagics[sq]
	idx := ((blockers & m.mask) * m.magic) >> m.shift
	return rookAttackTable[m.offset+uint32(idx)]
}

// QueenAttacks is the union of the bishop and rook attack sets; a queen has
// no independent geometry.
func QueenAttacks(sq Square, blockers uint64) uint64 {
	return BishopAttacks(sq, blockers) | RookAttacks(sq, blockers)
}
