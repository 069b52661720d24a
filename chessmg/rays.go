package chessmg

// Between-ray tables for pin and check-ray detection. diagBetween holds the
// squares strictly between two diagonally aligned squares, orthoBetween the
// same for rank/file alignment. Unaligned pairs (and equal squares) stay
// zero: a direction walk that runs off the board contributes nothing.
var diagBetween [64][64]uint64
var orthoBetween [64][64]uint64

func initBetweenTables() {
	fillBetween(&diagBetween, [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}})
	fillBetween(&orthoBetween, [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}})
}

// fillBetween walks outward from every square in each direction, recording
// the accumulated squares only for the pair where the walk lands exactly on
// the target. The origin is never part of the walk and the target is tested
// before being added, so both endpoints are excluded.
func fillBetween(table *[64][64]uint64, dirs [4][2]int) {
	for from := 0; from < 64; from++ {
		for _, d := range dirs {
			var ray uint64
			r, f := from/8+d[0], from%8+d[1]
			for r >= 0 && r < 8 && f >= 0 && f < 8 {
				to := r*8 + f
				table[from][to] = ray
				ray |= 1 << uint(to)
				r += d[0]
				f += d[1]
			}
		}
	}
}

// DiagonalBetween returns the squares strictly between from and to along a
// shared diagonal, or 0 when the squares are not diagonally aligned or are
// equal.
func DiagonalBetween(from, to Square) uint64 { return diagBetween[from][to] }

// OrthogonalBetween returns the squares strictly between from and to along a
// shared rank or file, or 0 when the squares are not orthogonally aligned or
// are equal.
func OrthogonalBetween(from, to Square) uint64 { return orthoBetween[from][to] }
