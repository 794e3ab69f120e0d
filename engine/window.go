package engine

type Direction struct {
	DRow int
	DCol int
}

var (
	Horizontal = Direction{DRow: 0, DCol: 1}
	Vertical   = Direction{DRow: 1, DCol: 0}
	DiagDown   = Direction{DRow: 1, DCol: 1}
	DiagUp     = Direction{DRow: 1, DCol: -1}
)

// Window is a fixed-length run of cells along one direction.
type Window struct {
	Row    int
	Col    int
	Dir    Direction
	Length int
}

func (w Window) At(k int) Move {
	return Move{Row: w.Row + k*w.Dir.DRow, Col: w.Col + k*w.Dir.DCol}
}

func (w Window) Cells(b Board) []Cell {
	return b.Line(w.Row, w.Col, w.Dir.DRow, w.Dir.DCol, w.Length)
}

func (w Window) Moves() []Move {
	moves := make([]Move, w.Length)
	for k := range moves {
		moves[k] = w.At(k)
	}
	return moves
}

// forEachWindow visits every in-bounds window of the given length on a
// size x size board and stops as soon as visit returns true.
//
// Order: for each (i, j) the horizontal window at (i, j) then the vertical
// window at (j, i); afterwards, for each (i, j) in the diagonal region, the
// down-right window at (i, j) then the up-right window covering
// (i+k, j+length-1-k). Scanners return the first hit, so this order decides
// which of several equal threats gets answered.
func forEachWindow(size, length int, visit func(Window) bool) bool {
	if length <= 0 || length > size {
		return false
	}
	last := size - length
	for i := 0; i < size; i++ {
		for j := 0; j <= last; j++ {
			if visit(Window{Row: i, Col: j, Dir: Horizontal, Length: length}) {
				return true
			}
			if visit(Window{Row: j, Col: i, Dir: Vertical, Length: length}) {
				return true
			}
		}
	}
	for i := 0; i <= last; i++ {
		for j := 0; j <= last; j++ {
			if visit(Window{Row: i, Col: j, Dir: DiagDown, Length: length}) {
				return true
			}
			if visit(Window{Row: i, Col: j + length - 1, Dir: DiagUp, Length: length}) {
				return true
			}
		}
	}
	return false
}
