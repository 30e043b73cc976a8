package board

import (
	"sort"
	"testing"
)

func TestGenerateMovesStartPositionCount(t *testing.T) {
	b := StartPosition()
	ml, err := GenerateMoves(b)
	if err != nil {
		t.Fatalf("GenerateMoves: %v", err)
	}
	moves := ml.Moves()
	// 6 pawns: each has a one-step push, and (being on rank 2) a two-step
	// push, for 12; the two knights each have 2 legal jumps over the back
	// rank, for 4. Rooks, queen and king are blocked by their own pawns.
	want := 16
	if len(moves) != want {
		t.Fatalf("start position pseudo-legal move count = %d, want %d (%v)", len(moves), want, ml.Strings())
	}
}

func TestGenerateMovesSoundness(t *testing.T) {
	b := StartPosition()
	ml, err := GenerateMoves(b)
	if err != nil {
		t.Fatalf("GenerateMoves: %v", err)
	}
	own := b.SideToMove()
	for _, m := range ml.Moves() {
		if !InBounds(m.From()) || !InBounds(m.To()) {
			t.Fatalf("move %s has an out-of-bounds endpoint", m)
		}
		p := b.PieceAt(m.From())
		if p == 0 || (p>>3) != own {
			t.Fatalf("move %s does not originate from an own-colour piece", m)
		}
	}
}

func TestGenerateMovesKnightFromCenter(t *testing.T) {
	var w Word256
	w = w.WithNibble(AdjustedIndex(SixBySixIndex(35)), KindKnight|0x8) // r4 f3 -> knight
	w[0] |= 1
	b := Board(w)
	ml, err := GenerateMoves(b)
	if err != nil {
		t.Fatalf("GenerateMoves: %v", err)
	}
	got := ml.Moves()
	wantDeltas := []int{6, 10, 15, 17, -6, -10, -15, -17}
	var want []Move
	for _, d := range wantDeltas {
		target := 35 + d
		if InBounds(target) {
			want = append(want, NewMove(35, target))
		}
	}
	sortMoves(got)
	sortMoves(want)
	if !equalMoves(got, want) {
		t.Fatalf("knight moves from cell 35 = %v, want %v", got, want)
	}
}

func TestGenerateMovesKingFromCenter(t *testing.T) {
	var w Word256
	w = w.WithNibble(35, KindKing|0x8) // r4 f3
	w[0] |= 1
	b := Board(w)
	ml, err := GenerateMoves(b)
	if err != nil {
		t.Fatalf("GenerateMoves: %v", err)
	}
	got := ml.Moves()
	wantDeltas := []int{1, 7, 8, 9, -1, -7, -8, -9}
	var want []Move
	for _, d := range wantDeltas {
		target := 35 + d
		if InBounds(target) {
			want = append(want, NewMove(35, target))
		}
	}
	sortMoves(got)
	sortMoves(want)
	if !equalMoves(got, want) {
		t.Fatalf("king moves from cell 35 = %v, want %v", got, want)
	}
}

func TestGenerateMovesRookSlideStopsAtOwnAndCapturesEnemy(t *testing.T) {
	var w Word256
	w = w.WithNibble(27, KindRook|0x8) // mover's rook at r3f3 (cell 27)
	w = w.WithNibble(30, KindPawn|0x8) // own pawn at r3f6, blocks the +1 ray
	w = w.WithNibble(19, KindPawn)     // enemy pawn at r2f3, capturable on the -8 ray
	w[0] |= 1
	b := Board(w)
	ml, err := GenerateMoves(b)
	if err != nil {
		t.Fatalf("GenerateMoves: %v", err)
	}
	moves := ml.Moves()
	foundCapture := false
	for _, m := range moves {
		if m.From() != 27 {
			continue
		}
		if m.To() == 30 {
			t.Fatalf("rook should not be able to move onto its own pawn at 30")
		}
		if m.To() == 31 {
			t.Fatalf("rook should not slide past its own pawn at 30 onto 31")
		}
		if m.To() == 19 {
			foundCapture = true
		}
		if m.To() < 19 {
			t.Fatalf("rook should not slide past the capture at 19 onto %d", m.To())
		}
	}
	if !foundCapture {
		t.Fatalf("expected rook to be able to capture the enemy pawn at 19, got %v", moves)
	}
}

func TestGenerateMovesBishopDiagonalAvoidsCellZero(t *testing.T) {
	// A bishop on cell 9 (r1f1) has a -9 ray landing immediately on cell 0;
	// it must generate no move there regardless of what bit 0 encodes.
	var w Word256
	w = w.WithNibble(9, KindBishop|0x8)
	w[0] |= 1
	b := Board(w)
	ml, err := GenerateMoves(b)
	if err != nil {
		t.Fatalf("GenerateMoves: %v", err)
	}
	for _, m := range ml.Moves() {
		if m.To() == 0 {
			t.Fatalf("bishop generated an illegal move onto sentinel cell 0: %v", ml.Moves())
		}
	}
}

func TestGenerateMovesPawnDoubleStepOnlyFromRankTwo(t *testing.T) {
	var w Word256
	w = w.WithNibble(19, KindPawn|0x8) // r2 f3
	w[0] |= 1
	b := Board(w)
	ml, _ := GenerateMoves(b)
	moves := ml.Moves()
	wantSingle := NewMove(19, 27)
	wantDouble := NewMove(19, 35)
	if !containsMove(moves, wantSingle) || !containsMove(moves, wantDouble) {
		t.Fatalf("pawn on rank 2 should have both single and double push, got %v", moves)
	}

	var w2 Word256
	w2 = w2.WithNibble(27, KindPawn|0x8) // r3 f3, not rank 2
	w2[0] |= 1
	b2 := Board(w2)
	ml2, _ := GenerateMoves(b2)
	moves2 := ml2.Moves()
	if containsMove(moves2, NewMove(27, 43)) {
		t.Fatalf("pawn off rank 2 should not have a double push, got %v", moves2)
	}
}

func TestGenerateMovesCapacityExceeded(t *testing.T) {
	var ml MoveList
	var err error
	// NewMove(63, 63) packs to 0xFFF, a full 12-bit value, so every lane
	// fills to exactly laneCapacity moves before the next append rolls
	// over — the documented capacity of 105 is exact for this value,
	// even though it is not exact for every possible move value.
	full := NewMove(63, 63)
	for i := 0; i < maxMoves; i++ {
		ml, err = ml.Append(full)
		if err != nil {
			t.Fatalf("append %d: unexpected error %v", i, err)
		}
	}
	if got := ml.Len(); got != maxMoves {
		t.Fatalf("Len() = %d after %d appends, want %d", got, maxMoves, maxMoves)
	}
	if _, err = ml.Append(full); err == nil {
		t.Fatalf("expected ErrCapacityExceeded after %d moves", maxMoves)
	}
}

func sortMoves(m []Move) {
	sort.Slice(m, func(i, j int) bool { return m[i] < m[j] })
}

func equalMoves(a, b []Move) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func containsMove(moves []Move, m Move) bool {
	for _, mv := range moves {
		if mv == m {
			return true
		}
	}
	return false
}
