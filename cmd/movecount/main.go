// Command movecount counts pseudo-legal nodes reachable from a starting
// position to a given depth, in the style of a chess perft tool: it walks
// every pseudo-legal move at every ply without filtering for self-check,
// matching what board.GenerateMoves actually produces.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/samber/lo"

	"sixmate/board"
)

func main() {
	notation := flag.String("board", "", "board notation (board.String format); defaults to the starting position")
	depth := flag.Int("depth", 0, "pseudo-legal move count depth (required, > 0); moves that leave the king attacked are counted too")
	divide := flag.Bool("divide", false, "print per-root-move node counts")
	repeat := flag.Int("repeat", 1, "repeat the walk N times and report aggregate timing")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	b := board.StartPosition()
	if *notation != "" {
		parsed, err := board.Parse(*notation)
		if err != nil {
			fmt.Fprintf(os.Stderr, "parsing -board: %v\n", err)
			os.Exit(2)
		}
		b = parsed
	}

	if *divide {
		runDivide(b, *depth)
		return
	}

	var total uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		total += countMoves(b, *depth)
	}
	elapsed := time.Since(start)
	nps := float64(total) / elapsed.Seconds()
	fmt.Printf("depth %d\tnodes %d\ttime %s\tnps %.0f\n", *depth, total, elapsed, nps)
}

func runDivide(b board.Board, depth int) {
	ml, err := board.GenerateMoves(b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generating root moves: %v\n", err)
		os.Exit(1)
	}
	type entry struct {
		move  string
		nodes uint64
	}
	entries := lo.Map(ml.Moves(), func(m board.Move, _ int) entry {
		return entry{m.String(), countMoves(b.ApplyMove(m), depth-1)}
	})
	total := lo.Reduce(entries, func(acc uint64, e entry, _ int) uint64 { return acc + e.nodes }, uint64(0))
	sort.Slice(entries, func(i, j int) bool { return entries[i].move < entries[j].move })
	for _, e := range entries {
		fmt.Printf("%s: %d\n", e.move, e.nodes)
	}
	fmt.Printf("total: %d\n", total)
}

// countMoves returns the number of pseudo-legal leaf positions reachable
// from b in exactly depth plies. At depth 0 a position counts as a single
// leaf, matching the usual perft convention.
func countMoves(b board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	ml, err := board.GenerateMoves(b)
	if err != nil {
		fmt.Fprintf(os.Stderr, "generating moves: %v\n", err)
		os.Exit(1)
	}
	moves := ml.Moves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var total uint64
	for _, m := range moves {
		total += countMoves(b.ApplyMove(m), depth-1)
	}
	return total
}
