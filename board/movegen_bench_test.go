package board

import "testing"

func BenchmarkGenerateMovesStartPosition(b *testing.B) {
	board := StartPosition()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := GenerateMoves(board); err != nil {
			b.Fatalf("GenerateMoves: %v", err)
		}
	}
}

func BenchmarkApplyMoveAndRotate(b *testing.B) {
	board := StartPosition()
	ml, err := GenerateMoves(board)
	if err != nil {
		b.Fatalf("GenerateMoves: %v", err)
	}
	moves := ml.Moves()
	if len(moves) == 0 {
		b.Fatal("no moves to benchmark")
	}
	m := moves[0]
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		board.ApplyMove(m)
	}
}

func BenchmarkMoveListDecode(b *testing.B) {
	var ml MoveList
	for i := 0; i < maxMoves; i++ {
		ml, _ = ml.Append(NewMove(9+i%50, 10+i%50))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = ml.Moves()
	}
}
