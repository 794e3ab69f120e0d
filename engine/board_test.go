package engine

import (
	"errors"
	"testing"
)

func TestNewBoardIsEmpty(t *testing.T) {
	board := NewBoard(DefaultBoardSize)
	if board.Size() != DefaultBoardSize {
		t.Fatalf("expected size %d, got %d", DefaultBoardSize, board.Size())
	}
	if board.CountEmpty() != DefaultBoardSize*DefaultBoardSize {
		t.Fatalf("expected all cells empty, got %d empty", board.CountEmpty())
	}
	for row := 0; row < board.Size(); row++ {
		for col := 0; col < board.Size(); col++ {
			if !board.IsEmpty(row, col) {
				t.Fatalf("expected (%d,%d) to be empty", row, col)
			}
		}
	}
	if board.IsFull() {
		t.Fatalf("fresh board must not be full")
	}
}

func TestNewBoardCheckedRejectsBadSize(t *testing.T) {
	if _, err := NewBoardChecked(0); !errors.Is(err, ErrBoardSize) {
		t.Fatalf("expected ErrBoardSize, got %v", err)
	}
	if _, err := NewBoardChecked(3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIsEmptyOutOfBounds(t *testing.T) {
	board := NewBoard(5)
	for _, m := range []Move{{-1, 0}, {0, -1}, {5, 0}, {0, 5}} {
		if board.IsEmpty(m.Row, m.Col) {
			t.Fatalf("expected %v to be reported as not empty", m)
		}
	}
}

func TestPlaceErrors(t *testing.T) {
	board := NewBoard(5)
	if err := board.Place(Move{Row: 2, Col: 2}, CellHuman); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := board.Place(Move{Row: 2, Col: 2}, CellEngine); !errors.Is(err, ErrOccupied) {
		t.Fatalf("expected ErrOccupied, got %v", err)
	}
	if board.At(2, 2) != CellHuman {
		t.Fatalf("occupied cell must not be overwritten, got %v", board.At(2, 2))
	}
	if err := board.Place(Move{Row: 5, Col: 0}, CellHuman); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if err := board.Place(Move{Row: -1, Col: 4}, CellHuman); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if err := board.Place(Move{Row: 0, Col: 0}, CellEmpty); !errors.Is(err, ErrInvalidSide) {
		t.Fatalf("expected ErrInvalidSide, got %v", err)
	}
}

func TestIsFull(t *testing.T) {
	board := NewBoard(3)
	side := CellHuman
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if board.IsFull() {
				t.Fatalf("board reported full with (%d,%d) still empty", row, col)
			}
			if err := board.Place(Move{Row: row, Col: col}, side); err != nil {
				t.Fatalf("place: %v", err)
			}
			side = Opponent(side)
		}
	}
	if !board.IsFull() {
		t.Fatalf("expected full board")
	}
}

func TestLineDirections(t *testing.T) {
	board, err := ParseBoard(
		"X....",
		".O...",
		"..X..",
		"...O.",
		"....X",
	)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	tests := []struct {
		name                       string
		row, col, dRow, dCol, size int
		want                       []Cell
	}{
		{"row", 0, 0, 0, 1, 5, []Cell{CellHuman, CellEmpty, CellEmpty, CellEmpty, CellEmpty}},
		{"column", 0, 1, 1, 0, 3, []Cell{CellEmpty, CellEngine, CellEmpty}},
		{"diag down", 0, 0, 1, 1, 5, []Cell{CellHuman, CellEngine, CellHuman, CellEngine, CellHuman}},
		{"diag up", 0, 4, 1, -1, 4, []Cell{CellEmpty, CellEmpty, CellHuman, CellEmpty}},
	}
	for _, tc := range tests {
		got := board.Line(tc.row, tc.col, tc.dRow, tc.dCol, tc.size)
		if len(got) != len(tc.want) {
			t.Fatalf("%s: expected %d cells, got %d", tc.name, len(tc.want), len(got))
		}
		for k := range got {
			if got[k] != tc.want[k] {
				t.Fatalf("%s: cell %d expected %v, got %v", tc.name, k, tc.want[k], got[k])
			}
		}
	}
}

func TestParseBoardRoundTrip(t *testing.T) {
	rows := []string{
		"X..",
		".O.",
		"..X",
	}
	board, err := ParseBoard(rows...)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got, want := board.String(), "X..\n.O.\n..X\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if _, err := ParseBoard("X..", ".."); !errors.Is(err, ErrBoardSize) {
		t.Fatalf("expected ErrBoardSize for ragged rows, got %v", err)
	}
	if _, err := ParseBoard("X?", ".."); err == nil {
		t.Fatalf("expected error for unknown cell")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	board := NewBoard(4)
	clone := board.Clone()
	if err := clone.Place(Move{Row: 1, Col: 1}, CellEngine); err != nil {
		t.Fatalf("place: %v", err)
	}
	if !board.IsEmpty(1, 1) {
		t.Fatalf("clone mutation leaked into original")
	}
	if board.Equal(clone) {
		t.Fatalf("expected boards to differ")
	}
}

func TestOpponent(t *testing.T) {
	if Opponent(CellHuman) != CellEngine || Opponent(CellEngine) != CellHuman {
		t.Fatalf("opponent mapping broken")
	}
	if Opponent(CellEmpty) != CellEmpty {
		t.Fatalf("empty has no opponent")
	}
}
