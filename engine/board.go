package engine

import (
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultBoardSize = 10
	// MaxBoardSize bounds the selector's fallback, which rescans the whole
	// board once per empty cell.
	MaxBoardSize = 19
	WinLength    = 5
	ThreatLength = 4
)

var (
	ErrOutOfBounds = errors.New("out of bounds")
	ErrOccupied    = errors.New("occupied")
	ErrInvalidSide = errors.New("invalid side")
	ErrBoardSize   = errors.New("invalid board size")
)

type Cell int8

const (
	CellEmpty Cell = iota
	CellHuman
	CellEngine
)

func (c Cell) Valid() bool {
	return c >= CellEmpty && c <= CellEngine
}

func (c Cell) IsSide() bool {
	return c == CellHuman || c == CellEngine
}

func (c Cell) String() string {
	switch c {
	case CellHuman:
		return "Human"
	case CellEngine:
		return "Engine"
	default:
		return "Empty"
	}
}

func (c Cell) Rune() rune {
	switch c {
	case CellHuman:
		return 'X'
	case CellEngine:
		return 'O'
	default:
		return '.'
	}
}

// Opponent returns the other side. CellEmpty maps to itself.
func Opponent(side Cell) Cell {
	switch side {
	case CellHuman:
		return CellEngine
	case CellEngine:
		return CellHuman
	default:
		return CellEmpty
	}
}

// Board is a square grid addressed by (row, col). The zero value is an
// empty 0x0 board.
type Board struct {
	size  int
	cells []Cell
}

func NewBoard(size int) Board {
	if size < 0 {
		size = 0
	}
	return Board{size: size, cells: make([]Cell, size*size)}
}

func NewBoardChecked(size int) (Board, error) {
	if size < 1 {
		return Board{}, fmt.Errorf("board size %d: %w", size, ErrBoardSize)
	}
	return NewBoard(size), nil
}

func (b Board) Size() int {
	return b.size
}

func (b Board) InBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < b.size && col < b.size
}

func (b Board) At(row, col int) Cell {
	return b.cells[b.index(row, col)]
}

func (b Board) IsEmpty(row, col int) bool {
	return b.InBounds(row, col) && b.At(row, col) == CellEmpty
}

func (b Board) IsFull() bool {
	return b.CountEmpty() == 0
}

func (b Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == CellEmpty {
			count++
		}
	}
	return count
}

// Line returns length cells starting at (row, col) stepping by (dRow, dCol).
// The whole span must be inside the board.
func (b Board) Line(row, col, dRow, dCol, length int) []Cell {
	line := make([]Cell, length)
	for k := 0; k < length; k++ {
		line[k] = b.At(row+k*dRow, col+k*dCol)
	}
	return line
}

// CheckMove reports why move cannot be played, or nil.
func (b Board) CheckMove(move Move) error {
	if !b.InBounds(move.Row, move.Col) {
		return fmt.Errorf("move (%d,%d) on %dx%d board: %w", move.Row, move.Col, b.size, b.size, ErrOutOfBounds)
	}
	if b.At(move.Row, move.Col) != CellEmpty {
		return fmt.Errorf("move (%d,%d): %w", move.Row, move.Col, ErrOccupied)
	}
	return nil
}

// Place puts side on an empty cell. It is the only mutation shells use.
func (b *Board) Place(move Move, side Cell) error {
	if !side.IsSide() {
		return fmt.Errorf("place %v: %w", side, ErrInvalidSide)
	}
	if err := b.CheckMove(move); err != nil {
		return err
	}
	b.set(move.Row, move.Col, side)
	return nil
}

func (b Board) Clone() Board {
	clone := Board{size: b.size}
	clone.cells = make([]Cell, len(b.cells))
	copy(clone.cells, b.cells)
	return clone
}

func (b Board) Equal(other Board) bool {
	if b.size != other.size {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			sb.WriteRune(b.At(row, col).Rune())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// ParseBoard builds a board from rows of '.', 'X' (human) and 'O' (engine).
// All rows must have the same length as the number of rows.
func ParseBoard(rows ...string) (Board, error) {
	board := NewBoard(len(rows))
	for row, line := range rows {
		if len(line) != len(rows) {
			return Board{}, fmt.Errorf("row %d has %d cells, want %d: %w", row, len(line), len(rows), ErrBoardSize)
		}
		for col, ch := range line {
			switch ch {
			case '.', '_', ' ':
			case 'X', 'x':
				board.set(row, col, CellHuman)
			case 'O', 'o':
				board.set(row, col, CellEngine)
			default:
				return Board{}, fmt.Errorf("row %d col %d: unknown cell %q", row, col, ch)
			}
		}
	}
	return board, nil
}

func (b *Board) set(row, col int, value Cell) {
	b.cells[b.index(row, col)] = value
}

func (b Board) index(row, col int) int {
	return row*b.size + col
}
