// Package engine implements the piece-square evaluator, the negamax search
// built on top of it, and the top-level legality check. It depends only on
// package board and internal/xmath; it performs no I/O and holds no state
// across calls.
package engine

import "sixmate/board"

// Piece reference values (centipoint-like units, §4.3 of the design). Not
// consumed by any PST lookup — the tables already encode positional value
// directly — these document the relative weight of each kind, including
// the king's dominance (7 queens = 1260 < 4000, so any king-capturing line
// outweighs any reachable material swing). No code or test reads them.
const (
	pawnValue   int32 = 20
	bishopValue int32 = 66
	knightValue int32 = 64
	rookValue   int32 = 100
	queenValue  int32 = 180
	kingValue   int32 = 4000
)

// Piece-square tables, one packed 256-bit word per kind for the 7-bit
// entries, two words (near/far half) for the 12-bit queen/king entries.
var (
	pstPawn   = board.ParseWord256("0x2850A142850F1E3C78F1E2858C182C50A943468A152A788103C54A142850A14")
	pstBishop = board.ParseWord256("0x7D0204080FA042850A140810E24487020448912240810E1428701F40810203E")
	pstKnight = board.ParseWord256("0xC993264C9932E6CD9B365C793264C98F1E4C993263C793264C98F264CB97264")
	pstRook   = board.ParseWord256("0x6CE1B3670E9C3C8101E38750224480E9D4189120BA70F20C178E1B3874E9C36")

	pstQueenNear = board.ParseWord256("0xB00B20B30B30B20B00B20B40B40B40B40B20B30B40B50B50B40B3")
	pstQueenFar  = board.ParseWord256("0xB30B50B50B50B40B30B20B40B50B40B40B20B00B20B30B30B20B0")
	pstKingNear  = board.ParseWord256("0xF9AF98F96F96F98F9AF9AF98F96F96F98F9AF9CF9AF98F98F9AF9B")
	pstKingFar   = board.ParseWord256("0xF9EF9CF9CF9CF9CF9EFA1FA1FA0FA0FA1FA1FA4FA6FA2FA2FA6FA4")
)

// pst7 reads the 7-bit entry for 6x6 index k from a pawn/bishop/knight/rook
// table: entry 35 lives in the table's least significant bits.
func pst7(table board.Word256, k int) uint8 {
	shift := uint(7 * (35 - k))
	return uint8(table.ShiftRight(shift).Low() & 0x7F)
}

// pst12 reads the 12-bit entry for 6x6 index k from a queen/king table,
// dispatching independently on k: entries 0..17 live in near, 18..35 in
// far. This is the corrected dispatch; see pst12Buggy for the faithfully
// reproduced source bug.
func pst12(near, far board.Word256, k int) uint16 {
	if k < 18 {
		return uint16(near.ShiftRight(uint(12*(17-k))).Low() & 0xFFF)
	}
	return uint16(far.ShiftRight(uint(12*(35-k))).Low() & 0xFFF)
}

// pst12Buggy reads the 12-bit entry for readK using the half selected by
// branchK rather than by readK itself. Called with branchK == readK it is
// equivalent to pst12; called with branchK from one square and readK from
// another, it reproduces the source's known queen/king midpoint bug: when
// branchK < 18 but readK >= 18, the near-table shift amount 12*(17-readK)
// would be negative, which the source underflows to 0 rather than
// recomputing against the far table.
func pst12Buggy(near, far board.Word256, branchK, readK int) uint16 {
	if branchK < 18 {
		shift := 12 * (17 - readK)
		if shift < 0 {
			return 0
		}
		return uint16(near.ShiftRight(uint(shift)).Low() & 0xFFF)
	}
	shift := 12 * (35 - readK)
	if shift < 0 {
		return 0
	}
	return uint16(far.ShiftRight(uint(shift)).Low() & 0xFFF)
}

// pstValue returns the PST entry for kind at 6x6 index k, dispatching to
// the right table width and, for queen/king, the right half of the table
// independently for this single k. Used for the capture term (§4.3 step 3,
// which always reads the destination square's own k and is never subject
// to the midpoint bug) and for both evaluator variants' non-queen/king
// moving-piece reads.
func pstValue(kind uint8, k int) int32 {
	switch kind {
	case board.KindPawn:
		return int32(pst7(pstPawn, k))
	case board.KindBishop:
		return int32(pst7(pstBishop, k))
	case board.KindKnight:
		return int32(pst7(pstKnight, k))
	case board.KindRook:
		return int32(pst7(pstRook, k))
	case board.KindQueen:
		return int32(pst12(pstQueenNear, pstQueenFar, k))
	case board.KindKing:
		return int32(pst12(pstKingNear, pstKingFar, k))
	default:
		return 0
	}
}
