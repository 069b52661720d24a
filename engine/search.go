package engine

import (
	"golang.org/x/exp/slices"

	mg "chesscore/chessmg"
)

// Score constants. Mate scores are offset by the ply at which the mate was
// delivered, so shorter mates score higher.
const (
	MaxScore  int32 = 32500
	Checkmate int32 = 20000
	DrawScore int32 = 0
)

// Result reports the outcome of a fixed-depth search.
type Result struct {
	Best  mg.Move // zero when the root has no legal move
	Score int32   // from the root mover's perspective
	Nodes uint64
}

// Search runs a plain fixed-depth negamax over all pseudo-legal moves, with
// no pruning, and returns the best root move. Root moves are visited in
// sorted encoding order so equal scores resolve deterministically. The
// board is restored before returning.
func Search(b *mg.Board, depth int) Result {
	if depth < 1 {
		depth = 1
	}
	res := Result{Score: -MaxScore}

	moves := b.GeneratePseudoMoves()
	slices.Sort(moves)

	for _, m := range moves {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		res.Nodes++
		score := -negamax(b, depth-1, 1, &res.Nodes)
		b.UnmakeMove(m, st)
		if score > res.Score || res.Best == 0 {
			res.Score = score
			res.Best = m
		}
	}

	if res.Best == 0 {
		// No legal move at the root: checkmated or stalemated.
		res.Score = terminalScore(b, 0)
	}
	return res
}

// negamax evaluates the position from the side to move's perspective.
func negamax(b *mg.Board, depth, ply int, nodes *uint64) int32 {
	if depth == 0 {
		return sideRelative(b, Evaluate(b))
	}

	moved := false
	best := -MaxScore
	for _, m := range b.GeneratePseudoMovesInto(make([]mg.Move, 0, 64)) {
		ok, st := b.MakeMove(m)
		if !ok {
			continue
		}
		moved = true
		*nodes++
		score := -negamax(b, depth-1, ply+1, nodes)
		b.UnmakeMove(m, st)
		if score > best {
			best = score
		}
	}

	if !moved {
		return terminalScore(b, ply)
	}
	return best
}

// terminalScore scores a position where the side to move has no legal move:
// mate against the mover, or a stalemate draw.
func terminalScore(b *mg.Board, ply int) int32 {
	if b.InCheck(b.SideToMove()) {
		return -(Checkmate - int32(ply))
	}
	return DrawScore
}

func sideRelative(b *mg.Board, whiteScore int32) int32 {
	if b.SideToMove() == mg.Black {
		return -whiteScore
	}
	return whiteScore
}
