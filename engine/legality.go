package engine

import "sixmate/board"

// knightDeltaMask and kingDeltaMask are bitmasks over delta values (as bit
// index) used to check that |to-from| is one of the piece's legal step
// sizes without re-deriving the offset tables MoveGen already packs.
const (
	knightDeltaMask uint32 = 0x28440 // bits 6,10,15,17
	kingDeltaMask   uint32 = 0x382   // bits 1,7,8,9
)

// IsLegalMove reports whether m is legal for the side to move on b: both
// endpoints must be in the playable region, the source must hold an
// own-colour piece, the move's geometry must match its piece kind, and the
// resulting position must not hand the opponent an immediate king capture
// (checked with a depth-1 NegaMax self-check, §4.5 point 4 — this does not
// catch every form of self-check, only the one the opponent's single best
// reply would take; that limitation is inherited, not introduced here).
func IsLegalMove(b board.Board, m board.Move) bool {
	from, to := m.From(), m.To()
	if !board.InBounds(from) || !board.InBounds(to) {
		return false
	}
	piece := b.PieceAt(from)
	if piece == 0 || (piece>>3) != b.SideToMove() {
		return false
	}
	if !geometryLegal(b, piece&7, from, to) {
		return false
	}
	next := b.ApplyMove(m)
	score, err := NegaMax(next, 1)
	if err != nil {
		return false
	}
	return score >= -matingMargin
}

func geometryLegal(b board.Board, kind uint8, from, to int) bool {
	switch kind {
	case board.KindPawn:
		return pawnGeometryLegal(b, from, to)
	case board.KindKnight:
		return offsetGeometryLegal(b, from, to, knightDeltaMask)
	case board.KindKing:
		return offsetGeometryLegal(b, from, to, kingDeltaMask)
	case board.KindRook:
		return slideGeometryLegal(b, from, to, [2]int{1, 8})
	case board.KindBishop:
		return slideGeometryLegal(b, from, to, [2]int{7, 9})
	case board.KindQueen:
		return slideGeometryLegal(b, from, to, [2]int{1, 8}) || slideGeometryLegal(b, from, to, [2]int{7, 9})
	default:
		return false
	}
}

func pawnGeometryLegal(b board.Board, from, to int) bool {
	if to <= from {
		return false
	}
	delta := to - from
	switch delta {
	case 8:
		return b.PieceAt(to) == 0
	case 16:
		return from>>3 == 2 && b.PieceAt(from+8) == 0 && b.PieceAt(to) == 0
	case 7, 9:
		return b.IsCapture(to)
	default:
		return false
	}
}

func offsetGeometryLegal(b board.Board, from, to int, mask uint32) bool {
	delta := to - from
	abs := delta
	if abs < 0 {
		abs = -abs
	}
	if abs >= 32 || (mask>>uint(abs))&1 == 0 {
		return false
	}
	return b.IsValid(to)
}

// slideGeometryLegal reports whether to is reachable from from along one of
// the two directions in dirs (each direction's negation is tried too), with
// every intermediate cell empty and in bounds and the destination itself
// valid for the side to move.
func slideGeometryLegal(b board.Board, from, to int, dirs [2]int) bool {
	for _, base := range dirs {
		for _, d := range [2]int{base, -base} {
			cur := from
			for {
				next := cur + d
				if d == -9 && next == 0 {
					break
				}
				if !board.InBounds(next) {
					break
				}
				if next == to {
					return b.IsValid(to)
				}
				if b.PieceAt(next) != 0 {
					break
				}
				cur = next
			}
		}
	}
	return false
}
