package board

// indexMapConstant packs the 36 six-bit fields of A(k): field k occupies
// bits [6k, 6k+6), least significant field first.
const indexMapConstant = "DB5D33CB1BADB2BAA99A59238A179D71B69959551349138D30B289"

var adjustedIndexTable [36]uint8

func init() {
	m := ParseWord256(indexMapConstant)
	for k := 0; k < 36; k++ {
		adjustedIndexTable[k] = uint8(m.ShiftRight(uint(6*k)).Low() & 0x3F)
	}
}

// backRank is the file-a..file-f piece kind layout described by the spec's
// canonical starting position: rook, knight, queen, king, knight, rook.
var backRank = [6]uint8{KindRook, KindKnight, KindQueen, KindKing, KindKnight, KindRook}

// StartPosition builds the canonical starting position from §6: the mover's
// back rank and pawns on ranks 1 and 2, the opponent's mirrored back rank
// and pawns on ranks 6 and 5, everything else empty, side to move = white
// (bit 0 = 1).
func StartPosition() Board {
	var w Word256
	for f := 0; f < 6; f++ {
		// mover's pieces: colour bit 1 (white-coded, since it is this
		// side's turn).
		moverBack := AdjustedIndex(0*6 + f)
		w = w.WithNibble(moverBack, backRank[f]|0x8)
		moverPawn := AdjustedIndex(1*6 + f)
		w = w.WithNibble(moverPawn, KindPawn|0x8)

		// opponent's pieces: colour bit 0 (black-coded).
		oppPawn := AdjustedIndex(4*6 + f)
		w = w.WithNibble(oppPawn, KindPawn)
		oppBack := AdjustedIndex(5*6 + f)
		w = w.WithNibble(oppBack, backRank[f])
	}
	w[0] |= 1 // side to move: white
	return Board(w)
}

// BackRankMateInOne places a mover's rook four ranks below the opponent's
// otherwise undefended king on the same file, with a clear path between
// them: the mover's only pseudo-legal capture is the king itself.
func BackRankMateInOne() Board {
	var w Word256
	w = w.WithNibble(11, KindRook|0x8) // r1f3, mover
	w = w.WithNibble(43, KindKing)     // r5f3, opponent, undefended
	w[0] |= 1
	return Board(w)
}

// MateThreatAgainstMover places the mover's lone king where its only three
// pseudo-legal moves each land it on a file the opponent's two rooks cover
// with a clear ray: whichever move the mover plays, the opponent can
// capture the king on the very next ply.
func MateThreatAgainstMover() Board {
	var w Word256
	w = w.WithNibble(9, KindKing|0x8) // r1f1, mover, cornered
	w = w.WithNibble(50, KindRook)    // r6f2, opponent
	w = w.WithNibble(49, KindRook)    // r6f1, opponent
	w[0] |= 1
	return Board(w)
}

// SelfPinAlongOpenFile places the mover's king behind a knight that is the
// sole blocker on an otherwise open file an opponent rook occupies: moving
// the knight off that file exposes the king to immediate capture.
func SelfPinAlongOpenFile() Board {
	var w Word256
	w = w.WithNibble(9, KindKing|0x8)   // r1f1, mover
	w = w.WithNibble(17, KindKnight|0x8) // r2f1, mover, blocks the file
	w = w.WithNibble(49, KindRook)       // r6f1, opponent
	w[0] |= 1
	return Board(w)
}

// ForcedSingleMovePawn places a lone mover's pawn with exactly one
// pseudo-legal move (a quiet single push off its start rank): useful for
// tests that need a root position with a deterministic, unambiguous best
// move regardless of search depth or evaluator numerics.
func ForcedSingleMovePawn() Board {
	var w Word256
	w = w.WithNibble(27, KindPawn|0x8) // r3f3, mover, off the double-step rank
	w[0] |= 1
	return Board(w)
}
