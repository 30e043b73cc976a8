package engine

import (
	"fmt"

	"sixmate/board"
	"sixmate/internal/xmath"
)

// Evaluator scores a single move; both EvaluateMove and EvaluateMoveCorrected
// satisfy it, letting NegaMaxWith/SearchMoveWith run either variant.
type Evaluator func(board.Board, board.Move) int32

const (
	// sentinelFloor is lower than any reachable cumulative swing (king
	// loss plus up to a queen plus a minor exchange), so the first move
	// scanned always beats it.
	sentinelFloor int32 = -4196
	// kingCaptureScore is returned immediately, regardless of depth, when
	// the best move of a ply captures a king.
	kingCaptureScore int32 = -4000
	// matingMargin is the |score| threshold search_move uses to decide a
	// line is a forced mate for or against the mover.
	matingMargin int32 = 1260
	// scoreBound is a generous ceiling on any score this evaluator can
	// produce across the practical depth contract (3..10 plies); used only
	// to guard against runaway accumulation, never reached in practice.
	scoreBound int32 = 1 << 20
)

func clampScore(s int32) int32 {
	return xmath.Clamp(s, -scoreBound, scoreBound)
}

// NegaMax is NegaMaxWith(b, depth, EvaluateMove): the default, bug-faithful
// evaluator.
func NegaMax(b board.Board, depth int) (int32, error) {
	return NegaMaxWith(b, depth, EvaluateMove)
}

// NegaMaxWith returns the cumulative negamax score of b to the given depth,
// scoring each ply with eval. At depth 0 it returns 0. It picks, at each
// ply, the move with the highest eval score (first-seen tie-break); if that
// move captures a king it short-circuits to kingCaptureScore regardless of
// remaining depth. Otherwise it recurses on the resulting position, flipping
// the accumulated sign's orientation to keep every ply expressed from the
// original caller's perspective.
func NegaMaxWith(b board.Board, depth int, eval Evaluator) (int32, error) {
	if depth <= 0 {
		return 0, nil
	}
	ml, err := board.GenerateMoves(b)
	if err != nil {
		return 0, fmt.Errorf("engine: nega_max: %w", err)
	}
	moves := ml.Moves()
	if len(moves) == 0 {
		return 0, nil
	}

	bestMove := moves[0]
	bestScore := sentinelFloor
	for _, m := range moves {
		if s := eval(b, m); s > bestScore {
			bestScore = s
			bestMove = m
		}
	}

	if b.PieceAt(bestMove.To())&7 == board.KindKing {
		return kingCaptureScore, nil
	}

	next := b.ApplyMove(bestMove)
	rest, err := NegaMaxWith(next, depth-1, eval)
	if err != nil {
		return 0, err
	}
	if b.SideToMove() == 0 {
		return clampScore(bestScore + rest), nil
	}
	return clampScore(-bestScore + rest), nil
}

// SearchMove is SearchMoveWith(b, depth, EvaluateMove).
func SearchMove(b board.Board, depth int) (board.Move, bool, error) {
	return SearchMoveWith(b, depth, EvaluateMove)
}

// SearchMoveWith chooses a root move for b at the given depth (which must
// be at least 3, so both sides' mates are visible) and reports whether the
// mover can force a king capture. It returns (NoMove, false, nil) when
// there is no move to play, or when the best available line is judged a
// loss (score below -matingMargin); it returns the chosen move and
// mated=true when the best line's score exceeds +matingMargin.
func SearchMoveWith(b board.Board, depth int, eval Evaluator) (board.Move, bool, error) {
	if depth < 3 {
		return board.NoMove, false, fmt.Errorf("engine: search_move: %w: depth must be >= 3, got %d", board.ErrInvalidInput, depth)
	}
	ml, err := board.GenerateMoves(b)
	if err != nil {
		return board.NoMove, false, fmt.Errorf("engine: search_move: %w", err)
	}
	moves := ml.Moves()
	if len(moves) == 0 {
		return board.NoMove, false, nil
	}

	bestMove := board.NoMove
	bestScore := sentinelFloor
	for _, m := range moves {
		rest, err := NegaMaxWith(b.ApplyMove(m), depth-1, eval)
		if err != nil {
			return board.NoMove, false, err
		}
		score := clampScore(eval(b, m) + rest)
		if score > bestScore {
			bestScore = score
			bestMove = m
		}
	}

	if bestScore < -matingMargin {
		return board.NoMove, false, nil
	}
	return bestMove, bestScore > matingMargin, nil
}
