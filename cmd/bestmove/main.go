package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	mg "chesscore/chessmg"
	"chesscore/engine"
)

func main() {
	fen := flag.String("fen", mg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 4, "Search depth in plies")
	flag.Parse()

	board, err := mg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	start := time.Now()
	res := engine.Search(board, *depth)
	elapsed := time.Since(start)

	if res.Best == 0 {
		if board.InCheckmate() {
			fmt.Println("no move: checkmate")
		} else {
			fmt.Println("no move: stalemate")
		}
		return
	}
	fmt.Printf("bestmove %s score %d nodes %d time %s\n", res.Best, res.Score, res.Nodes, elapsed)
}
