package engine

// ScoreLine returns the longest run of side in line that is not broken by
// the opponent. Empty cells neither reset nor extend the run, so
// [A, A, _, A, A] scores 4 while [A, A, B, A, A] scores 2.
//
// The gap rule overcounts broken runs. The positional fallback of the
// selector depends on these exact numbers, so it is kept as is.
func ScoreLine(line []Cell, side Cell) int {
	best := 0
	count := 0
	for _, cell := range line {
		switch cell {
		case side:
			count++
		case CellEmpty:
			continue
		default:
			count = 0
		}
		if count > best {
			best = count
		}
	}
	return best
}

// ScoreBoard sums ScoreLine over every full row, every full column and every
// WinLength window on both diagonals. It is a static heuristic, there is no
// lookahead.
func ScoreBoard(b Board, side Cell) int {
	size := b.Size()
	score := 0
	for i := 0; i < size; i++ {
		score += ScoreLine(b.Line(i, 0, 0, 1, size), side)
		score += ScoreLine(b.Line(0, i, 1, 0, size), side)
	}
	last := size - WinLength
	for i := 0; i <= last; i++ {
		for j := 0; j <= last; j++ {
			score += ScoreLine(b.Line(i, j, 1, 1, WinLength), side)
			score += ScoreLine(b.Line(i, j+WinLength-1, 1, -1, WinLength), side)
		}
	}
	return score
}
