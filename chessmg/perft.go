package chessmg

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Per-depth move buffers are reused so deep counts do not allocate per node.
func Perft(b *Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	bufs := make([][]Move, depth+1)
	for i := range bufs {
		bufs[i] = make([]Move, 0, 256)
	}
	return perftRec(b, depth, bufs)
}

func perftRec(b *Board, depth int, bufs [][]Move) uint64 {
	if depth == 0 {
		return 1
	}
	var nodes uint64
	moves := b.GeneratePseudoMovesInto(bufs[depth])
	for _, m := range moves {
		if ok, st := b.MakeMove(m); ok {
			nodes += perftRec(b, depth-1, bufs)
			b.UnmakeMove(m, st)
		}
	}
	return nodes
}

// PerftDivide returns the per-root-move leaf counts at the given depth,
// keyed by the move. Useful for pinpointing generator disagreements.
func PerftDivide(b *Board, depth int) map[Move]uint64 {
	result := make(map[Move]uint64)
	if depth <= 0 {
		return result
	}
	for _, m := range b.GenerateMoves() {
		if ok, st := b.MakeMove(m); ok {
			result[m] = Perft(b, depth-1)
			b.UnmakeMove(m, st)
		}
	}
	return result
}
