// Command bench runs a fixed depth sweep of SearchMove against the starting
// position and reports timing and nodes-per-second for each depth, logging
// structured diagnostics as it goes. -compat switches the evaluator from the
// default (bug-faithful) EvaluateMove to EvaluateMoveCorrected, so the two
// variants' behaviour and speed can be compared directly.
package main

import (
	"flag"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"sixmate/board"
	"sixmate/engine"
)

func main() {
	maxDepth := flag.Int("depth", 5, "maximum search depth to sweep up to (minimum 3)")
	compat := flag.Bool("compat", false, "use the corrected queen/king piece-square dispatch instead of the default bug-faithful one")
	verbose := flag.Bool("v", false, "enable debug-level logging")
	flag.Parse()

	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	eval := engine.EvaluateMove
	variant := "default"
	if *compat {
		eval = engine.EvaluateMoveCorrected
		variant = "corrected"
	}

	log.Info().Str("variant", variant).Int("max_depth", *maxDepth).Msg("starting depth sweep")

	b := board.StartPosition()
	for depth := 3; depth <= *maxDepth; depth++ {
		start := time.Now()
		m, mated, err := engine.SearchMoveWith(b, depth, eval)
		elapsed := time.Since(start)
		if err != nil {
			log.Error().Err(err).Int("depth", depth).Msg("search_move failed")
			continue
		}

		nodes := nodeCount(b, depth)
		nps := float64(nodes) / elapsed.Seconds()

		log.Info().
			Int("depth", depth).
			Str("best_move", m.String()).
			Bool("mated", mated).
			Dur("elapsed", elapsed).
			Uint64("nodes", nodes).
			Float64("nps", nps).
			Msg("depth complete")
	}
}

// nodeCount counts the leaf positions of the full pseudo-legal move tree
// to the given depth (every move at every ply); it does no scoring. Below
// each root move SearchMove follows only one best line, so this count is
// larger than the number of positions the search visits; the reported nps
// is this count divided by the search time.
func nodeCount(b board.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	ml, err := board.GenerateMoves(b)
	if err != nil {
		return 0
	}
	var total uint64
	for _, m := range ml.Moves() {
		total += nodeCount(b.ApplyMove(m), depth-1)
	}
	return total
}
