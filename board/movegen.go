package board

// knightOffsets and kingOffsets are the eight relative offsets for each
// piece, packed four-to-a-word as bytes (spec §4.2): for each byte, taken
// least-significant first, both +delta and -delta (when delta <= the
// origin cell) are attempted.
var knightOffsets = unpackOffsets(0x060A0F11)
var kingOffsets = unpackOffsets(0x01070809)

func unpackOffsets(packed uint32) [4]int {
	var out [4]int
	for i := 0; i < 4; i++ {
		out[i] = int((packed >> uint(8*i)) & 0xFF)
	}
	return out
}

// orthogonalDirs and diagonalDirs are the sliding directions for
// rook/queen and bishop/queen respectively.
var orthogonalDirs = [4]int{1, -1, 8, -8}
var diagonalDirs = [4]int{7, -7, 9, -9}

// GenerateMoves returns every pseudo-legal move for the side to move on b:
// geometrically legal, bounds-respecting, and not capturing a piece of its
// own colour. It does not filter moves that leave the mover's king
// attacked; that is LegalityCheck's and Search's job, not the generator's.
func GenerateMoves(b Board) (MoveList, error) {
	var ml MoveList
	var err error
	own := b.SideToMove()
	for k := 0; k < 36; k++ {
		cell := AdjustedIndex(k)
		piece := b.PieceAt(cell)
		if piece == 0 || (piece>>3) != own {
			continue
		}
		switch piece & 7 {
		case KindPawn:
			ml, err = genPawn(b, ml, cell)
		case KindKnight:
			ml, err = genOffsets(b, ml, cell, knightOffsets)
		case KindKing:
			ml, err = genOffsets(b, ml, cell, kingOffsets)
		case KindBishop:
			ml, err = genSlide(b, ml, cell, diagonalDirs)
		case KindRook:
			ml, err = genSlide(b, ml, cell, orthogonalDirs)
		case KindQueen:
			if ml, err = genSlide(b, ml, cell, orthogonalDirs); err == nil {
				ml, err = genSlide(b, ml, cell, diagonalDirs)
			}
		}
		if err != nil {
			return ml, err
		}
	}
	return ml, nil
}

func genPawn(b Board, ml MoveList, cell int) (MoveList, error) {
	var err error
	oneStep := cell + 8
	if InBounds(oneStep) && b.PieceAt(oneStep) == 0 {
		if ml, err = ml.Append(NewMove(cell, oneStep)); err != nil {
			return ml, err
		}
		if cell>>3 == 2 {
			twoStep := cell + 16
			if b.PieceAt(twoStep) == 0 {
				if ml, err = ml.Append(NewMove(cell, twoStep)); err != nil {
					return ml, err
				}
			}
		}
	}
	if b.IsCapture(cell + 7) {
		if ml, err = ml.Append(NewMove(cell, cell+7)); err != nil {
			return ml, err
		}
	}
	if b.IsCapture(cell + 9) {
		if ml, err = ml.Append(NewMove(cell, cell+9)); err != nil {
			return ml, err
		}
	}
	return ml, nil
}

func genOffsets(b Board, ml MoveList, cell int, offsets [4]int) (MoveList, error) {
	var err error
	for _, delta := range offsets {
		if target := cell + delta; b.IsValid(target) {
			if ml, err = ml.Append(NewMove(cell, target)); err != nil {
				return ml, err
			}
		}
		if delta <= cell {
			if target := cell - delta; b.IsValid(target) {
				if ml, err = ml.Append(NewMove(cell, target)); err != nil {
					return ml, err
				}
			}
		}
	}
	return ml, nil
}

func genSlide(b Board, ml MoveList, cell int, dirs [4]int) (MoveList, error) {
	var err error
	for _, d := range dirs {
		cur := cell
		for {
			next := cur + d
			if d == -9 && next == 0 {
				// A ray of -9 steps can reach cell 0, which encodes the
				// side-to-move bit in bit 0 of its nibble. IsValid already
				// rejects cell 0 as out of bounds; this explicit stop keeps
				// the turn flag from ever being examined as a square.
				break
			}
			if !b.IsValid(next) {
				break
			}
			if ml, err = ml.Append(NewMove(cell, next)); err != nil {
				return ml, err
			}
			if b.IsCapture(next) {
				break
			}
			cur = next
		}
	}
	return ml, nil
}
