package engine

import (
	"testing"

	"github.com/stretchr/testify/require"

	"sixmate/board"
)

func TestIsLegalMoveRejectsOutOfBoundsEndpoints(t *testing.T) {
	b := board.StartPosition()
	if IsLegalMove(b, board.NewMove(9, 0)) {
		t.Fatal("a move landing on the sentinel cell 0 should never be legal")
	}
}

func TestIsLegalMoveRejectsWrongColourSource(t *testing.T) {
	b := board.StartPosition()
	// cell 49 holds an opponent rook from StartPosition's layout (rank 6,
	// file a), not a mover's piece.
	if IsLegalMove(b, board.NewMove(49, 41)) {
		t.Fatal("a move sourced from the opponent's own piece should never be legal")
	}
}

func TestIsLegalMoveRejectsBadGeometry(t *testing.T) {
	b := board.StartPosition()
	// cell 9 holds the mover's rook; a rook cannot reach cell 27 (two ranks
	// and two files away) in a single step or slide.
	if IsLegalMove(b, board.NewMove(9, 27)) {
		t.Fatal("a geometrically impossible move should never be legal")
	}
}

func TestIsLegalMoveAcceptsAQuietOpeningMove(t *testing.T) {
	b := board.StartPosition()
	moves := mustGenerateMoves(t, b)
	if len(moves) == 0 {
		t.Fatal("expected at least one move")
	}
	if !IsLegalMove(b, moves[0]) {
		t.Fatalf("expected %v to be legal from the starting position", moves[0])
	}
}

func TestIsLegalMoveRejectsSelfExposureAlongOpenFile(t *testing.T) {
	b := board.SelfPinAlongOpenFile()
	// The knight at cell 17 is the only piece standing between the mover's
	// king (cell 9) and the opponent's rook (cell 49) on the same file;
	// moving it away via the +17 offset opens the file.
	m := board.NewMove(17, 34)
	require.False(t, IsLegalMove(b, m), "vacating the only blocker on an open file to a rook should be illegal")
}

func TestIsLegalMoveKingCaptureIsItselfLegal(t *testing.T) {
	b := board.BackRankMateInOne()
	m := board.NewMove(11, 43)
	require.True(t, IsLegalMove(b, m), "capturing the opponent's undefended king should be legal")
}
