package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/exp/slices"

	mg "chesscore/chessmg"
)

func main() {
	fen := flag.String("fen", mg.FENStartPos, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board, err := mg.ParseFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ParseFEN error: %v\n", err)
		os.Exit(2)
	}

	if *divide {
		div := mg.PerftDivide(board, *depth)
		names := make([]string, 0, len(div))
		byName := make(map[string]uint64, len(div))
		var sum uint64
		for m, n := range div {
			names = append(names, m.String())
			byName[m.String()] = n
			sum += n
		}
		slices.Sort(names)
		for _, name := range names {
			fmt.Printf("%s: %d\n", name, byName[name])
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		totalNodes += mg.Perft(board, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)
}
