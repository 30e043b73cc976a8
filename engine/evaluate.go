package engine

import "sixmate/board"

// EvaluateMove scores playing m on b from the mover's perspective:
// Δ(piece-square value of the moved piece) + (piece-square value of the
// captured piece, if any). This is the default, bug-faithful variant: it
// reproduces the source's queen/king midpoint defect (§4.3/§9 of the
// design notes) rather than silently fixing it. Use EvaluateMoveCorrected
// for the corrected dispatch.
func EvaluateMove(b board.Board, m board.Move) int32 {
	return evaluateMove(b, m, true)
}

// EvaluateMoveCorrected scores m exactly as EvaluateMove does, except that
// the moving piece's old and new piece-square reads are each dispatched
// independently on their own 6x6 index rather than sharing the source
// square's near/far branch.
func EvaluateMoveCorrected(b board.Board, m board.Move) int32 {
	return evaluateMove(b, m, false)
}

func evaluateMove(b board.Board, m board.Move, buggy bool) int32 {
	fromCell, toCell := m.From(), m.To()
	fromK := board.SixBySixIndex(fromCell)
	toK := board.SixBySixIndex(toCell)

	moverKind := b.PieceAt(fromCell) & 7
	destKind := b.PieceAt(toCell) & 7

	var captureTerm int32
	if destKind != 0 {
		captureTerm = pstValue(destKind, toK)
	}

	oldVal, newVal := moverPST(moverKind, fromK, toK, buggy)
	return captureTerm + newVal - oldVal
}

// moverPST returns the moving piece's old and new piece-square values. For
// pawn/bishop/knight/rook there is no near/far split, so the buggy and
// corrected variants coincide. For queen/king, buggy reuses fromK's
// near/far branch for both reads; corrected dispatches each read on its
// own k.
func moverPST(kind uint8, fromK, toK int, buggy bool) (oldVal, newVal int32) {
	switch kind {
	case board.KindQueen:
		if buggy {
			return int32(pst12Buggy(pstQueenNear, pstQueenFar, fromK, fromK)),
				int32(pst12Buggy(pstQueenNear, pstQueenFar, fromK, toK))
		}
		return pstValue(board.KindQueen, fromK), pstValue(board.KindQueen, toK)
	case board.KindKing:
		if buggy {
			return int32(pst12Buggy(pstKingNear, pstKingFar, fromK, fromK)),
				int32(pst12Buggy(pstKingNear, pstKingFar, fromK, toK))
		}
		return pstValue(board.KindKing, fromK), pstValue(board.KindKing, toK)
	default:
		return pstValue(kind, fromK), pstValue(kind, toK)
	}
}
