// Package board implements the packed 6x6-on-8x8-sentinel board
// representation, the move and move-list types, and pseudo-legal move
// generation. It has no mutable state: every operation is a pure function
// from value to value.
package board

import "errors"

// ErrInvalidInput is returned when a board word or move endpoint does not
// satisfy the representation's invariants.
var ErrInvalidInput = errors.New("board: invalid input")

// ErrCapacityExceeded is returned by move generation when more than 105
// pseudo-legal moves would be appended to a MoveList.
var ErrCapacityExceeded = errors.New("board: move list capacity exceeded")

// Piece kinds, packed into the low 3 bits of a cell nibble. Bit 3 of the
// nibble carries colour (0 = black, 1 = white, relative to whichever side
// the board's turn bit currently favours).
const (
	KindEmpty  uint8 = 0
	KindPawn   uint8 = 1
	KindBishop uint8 = 2
	KindRook   uint8 = 3
	KindKnight uint8 = 4
	KindQueen  uint8 = 5
	KindKing   uint8 = 6
)

// BoundsMask has bit i set iff 8x8 cell i is one of the 36 playable squares.
const BoundsMask uint64 = 0x007E7E7E7E7E7E00

// Board is the packed board word: 64 four-bit cells plus a side-to-move
// flag living in bit 0 of cell 0. It is a value type; every transformation
// below returns a new Board rather than mutating the receiver.
type Board Word256

// InBounds reports whether cell is one of the 36 playable 8x8 indices.
// Cells outside [0,64), and the sentinel rails within it, both report
// false.
func InBounds(cell int) bool {
	if cell < 0 || cell > 63 {
		return false
	}
	return (BoundsMask>>uint(cell))&1 == 1
}

// PieceAt returns the 4-bit cell value at the given 8x8 index.
func (b Board) PieceAt(cell int) uint8 {
	if cell < 0 || cell > 63 {
		return 0
	}
	return Word256(b).Nibble(cell)
}

// SideToMove returns the board's turn bit: the colour bit that the mover's
// own pieces carry in this word (0 or 1). Because rotate flips this bit
// along with everything else, it is always read relative to the board, not
// to an absolute white/black sense.
func (b Board) SideToMove() uint8 {
	return uint8(Word256(b).Bit(0))
}

// IsCapture reports whether the piece at cell belongs to the side not on
// move, i.e. whether moving onto cell would be a capture. An empty cell is
// never a capture.
func (b Board) IsCapture(cell int) bool {
	p := b.PieceAt(cell)
	return p != 0 && (p>>3) != b.SideToMove()
}

// IsValid reports whether cell is a legal destination for the side on
// move: in bounds, and either empty or occupied by the opposing colour.
func (b Board) IsValid(cell int) bool {
	if !InBounds(cell) {
		return false
	}
	p := b.PieceAt(cell)
	return p == 0 || (p>>3) != b.SideToMove()
}

// AdjustedIndex maps a 6x6 packed index k in [0,36) to its 8x8 cell index,
// via the table baked into indexMapConstant.
func AdjustedIndex(k int) int {
	return int(adjustedIndexTable[k])
}

// SixBySixIndex is the inverse of AdjustedIndex: it converts an 8x8 cell
// index on the playable board back to its 6x6 packed index.
func SixBySixIndex(cell int) int {
	r, f := cell>>3, cell&7
	return 6*(r-1) + (f - 1)
}

// Validate reports whether b satisfies the sentinel invariant: every cell
// in a sentinel row or column is entirely zero, except that cell 0 may
// additionally carry the side-to-move bit.
func (b Board) Validate() bool {
	for cell := 0; cell < 64; cell++ {
		if InBounds(cell) {
			continue
		}
		n := b.PieceAt(cell)
		if cell == 0 {
			if n > 1 {
				return false
			}
			continue
		}
		if n != 0 {
			return false
		}
	}
	return true
}

// ApplyMove plays m on b: the piece at m's source cell moves to its
// destination (overwriting whatever was there, implicitly capturing it),
// the source cell is cleared, and the board is rotated so the opponent
// becomes the side to move. It performs no legality check.
func (b Board) ApplyMove(m Move) Board {
	from, to := m.From(), m.To()
	piece := b.PieceAt(from)
	w := Word256(b).WithNibble(from, 0).WithNibble(to, piece)
	return Board(w).Rotate()
}

// Rotate reverses the order of the 64 cell nibbles, flipping the board's
// geometric orientation and swapping "mine" for "theirs" on every piece —
// the symmetry negamax-style search relies on. Cells 1..62 are mirrored
// pairwise (cell i with cell 63-i); cells 0 and 63 are handled separately,
// since only cell 0 is allowed to carry the turn bit and a plain nibble
// swap between them would relocate that bit instead of flipping it: cell
// 63 always comes back clean, and cell 0 gets the complement of the old
// turn bit, which is what "now it's the other side's move" means.
func (b Board) Rotate() Board {
	src := Word256(b)
	var out Word256
	for cell := 1; cell < 63; cell++ {
		out = out.WithNibble(cell, src.Nibble(63-cell))
	}
	if src.Bit(0) == 0 {
		out[0] |= 1
	}
	return Board(out)
}
