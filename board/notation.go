package board

import (
	"fmt"
	"strings"
)

// pieceLetters maps a piece kind to its notation letter (pawn=P, bishop=B,
// rook=R, knight=N, queen=Q, king=K), uppercase for the side to move's
// pieces and lowercase for the opponent's.
var pieceLetters = map[uint8]byte{
	KindPawn:   'P',
	KindBishop: 'B',
	KindRook:   'R',
	KindKnight: 'N',
	KindQueen:  'Q',
	KindKing:   'K',
}

var letterKinds = func() map[byte]uint8 {
	m := make(map[byte]uint8, len(pieceLetters))
	for k, v := range pieceLetters {
		m[v] = k
	}
	return m
}()

// String renders b as six ranks of six characters (rank 6, the opponent's
// back rank, first; rank 1, the mover's back rank, last), one character per
// square — '.' for empty, the piece letter otherwise, uppercase for the
// side to move — followed by a space and "w"/"b" naming the raw turn bit.
// This is a convenience for tests and the cmd/ tools, not part of the
// spec's own interface: the board word itself, not this notation, is the
// canonical representation.
func (b Board) String() string {
	var sb strings.Builder
	for r := 6; r >= 1; r-- {
		for f := 1; f <= 6; f++ {
			cell := r*8 + f
			p := b.PieceAt(cell)
			if p == 0 {
				sb.WriteByte('.')
				continue
			}
			letter := pieceLetters[p&7]
			if (p >> 3) != b.SideToMove() {
				letter = letter + ('a' - 'A')
			}
			sb.WriteByte(letter)
		}
		if r > 1 {
			sb.WriteByte('/')
		}
	}
	if b.SideToMove() == 1 {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	return sb.String()
}

// Parse decodes the notation produced by String back into a Board. The
// turn bit is taken from the trailing "w"/"b" field and pieces are encoded
// relative to it: a letter in the case matching that side gets colour bit
// 1, the opposite case gets colour bit 0 — so Parse(b.String()) always
// round-trips, but Parse never has to guess an absolute colour.
func Parse(notation string) (Board, error) {
	fields := strings.Fields(notation)
	if len(fields) != 2 {
		return Board{}, fmt.Errorf("%w: expected \"<ranks> <w|b>\", got %q", ErrInvalidInput, notation)
	}
	var side uint8
	switch fields[1] {
	case "w":
		side = 1
	case "b":
		side = 0
	default:
		return Board{}, fmt.Errorf("%w: side to move must be \"w\" or \"b\", got %q", ErrInvalidInput, fields[1])
	}

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 6 {
		return Board{}, fmt.Errorf("%w: expected 6 ranks, got %d", ErrInvalidInput, len(ranks))
	}

	var w Word256
	for i, rankStr := range ranks {
		r := 6 - i
		if len(rankStr) != 6 {
			return Board{}, fmt.Errorf("%w: rank %q does not have 6 squares", ErrInvalidInput, rankStr)
		}
		for f := 1; f <= 6; f++ {
			ch := rankStr[f-1]
			if ch == '.' {
				continue
			}
			upper := ch
			if upper >= 'a' && upper <= 'z' {
				upper -= 'a' - 'A'
			}
			kind, ok := letterKinds[upper]
			if !ok {
				return Board{}, fmt.Errorf("%w: unrecognized piece letter %q", ErrInvalidInput, string(ch))
			}
			colour := side
			if ch != upper {
				colour = 1 - side
			}
			cell := r*8 + f
			w = w.WithNibble(cell, kind|(colour<<3))
		}
	}
	w[0] |= uint64(side)
	b := Board(w)
	if !b.Validate() {
		return Board{}, fmt.Errorf("%w: decoded board fails the sentinel invariant", ErrInvalidInput)
	}
	return b, nil
}
