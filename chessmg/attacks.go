package chessmg

import "sync"

// Precomputed attack masks for the leaper pieces. They are pure functions of
// square geometry, filled once by Init and read-only afterwards, so
// concurrent readers need no locking.
var pawnAttackTable [2][64]uint64
var knightAttackTable [64]uint64
var kingAttackTable [64]uint64

var initOnce sync.Once

// Init builds every precomputed table: leaper attacks, the magic slider
// tables and the between-ray tables. It must complete before any query is
// issued; ParseFEN and NewBoard call it, and repeated calls are no-ops.
func Init() {
	initOnce.Do(func() {
		initZobrist()
		initLeaperAttacks()
		initSliderAttacks()
		initBetweenTables()
	})
}

// initLeaperAttacks fills the pawn, knight and king tables. Every candidate
// destination is produced by a shift gated with a file mask; destinations
// that would wrap around a board edge are cleared by the mask rather than
// bounds-checked.
func initLeaperAttacks() {
	for sq := 0; sq < 64; sq++ {
		b := bb(Square(sq))

		// Pawns attack the two forward diagonals only (pushes are not
		// attacks). White moves toward higher indices, Black toward lower.
		pawnAttackTable[White][sq] = (b<<9)&NotFileA | (b<<7)&NotFileH
		pawnAttackTable[Black][sq] = (b>>7)&NotFileA | (b>>9)&NotFileH

		// Knight offsets grouped by the file-edge class they may not
		// start from: +-17/+-15 change file by one, +-10/+-6 by two.
		knightAttackTable[sq] = (b<<17)&NotFileA | (b<<15)&NotFileH |
			(b>>15)&NotFileA | (b>>17)&NotFileH |
			(b<<10)&NotFileAB | (b<<6)&NotFileGH |
			(b>>6)&NotFileAB | (b>>10)&NotFileGH

		// King: vertical shifts never change file and need no gate.
		kingAttackTable[sq] = b<<8 | b>>8 |
			(b<<1|b<<9|b>>7)&NotFileA |
			(b>>1|b>>9|b<<7)&NotFileH
	}
}

// PawnAttacks returns the squares a pawn of the given color attacks from sq.
func PawnAttacks(c Color, sq Square) uint64 { return pawnAttackTable[c][sq] }

// KnightAttacks returns the knight attack mask for sq.
func KnightAttacks(sq Square) uint64 { return knightAttackTable[sq] }

// KingAttacks returns the king attack mask for sq.
func KingAttacks(sq Square) uint64 { return kingAttackTable[sq] }

// AllAttacks returns the union of every square attacked by the given side.
// blockers must be the combined occupancy of both sides so that sliders stop
// at the first piece of either color. A side with no king (or no pieces of
// some kind) simply contributes nothing for that kind.
func AllAttacks(side Color, blockers uint64, pieces Bitboards) uint64 {
	var attacks uint64
	for p := pieces.Pawns; p != 0; {
		attacks |= pawnAttackTable[side][popLSB(&p)]
	}
	for n := pieces.Knights; n != 0; {
		attacks |= knightAttackTable[popLSB(&n)]
	}
	for k := pieces.Kings; k != 0; {
		attacks |= kingAttackTable[popLSB(&k)]
	}
	for d := pieces.Bishops | pieces.Queens; d != 0; {
		attacks |= BishopAttacks(Square(popLSB(&d)), blockers)
	}
	for o := pieces.Rooks | pieces.Queens; o != 0; {
		attacks |= RookAttacks(Square(popLSB(&o)), blockers)
	}
	return attacks
}
