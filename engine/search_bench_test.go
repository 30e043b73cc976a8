package engine

import (
	"testing"

	"sixmate/board"
)

func BenchmarkEvaluateMove(b *testing.B) {
	pos := board.StartPosition()
	ml, err := board.GenerateMoves(pos)
	if err != nil {
		b.Fatalf("GenerateMoves: %v", err)
	}
	moves := ml.Moves()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EvaluateMove(pos, moves[i%len(moves)])
	}
}

func BenchmarkNegaMaxDepth3(b *testing.B) {
	pos := board.StartPosition()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := NegaMax(pos, 3); err != nil {
			b.Fatalf("NegaMax: %v", err)
		}
	}
}

func BenchmarkSearchMoveDepth3(b *testing.B) {
	pos := board.StartPosition()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := SearchMove(pos, 3); err != nil {
			b.Fatalf("SearchMove: %v", err)
		}
	}
}

