package main

import (
	"errors"
	"fmt"

	"gomoku/engine"
)

type Rules struct {
	settings GameSettings
}

func NewRules(settings GameSettings) Rules {
	return Rules{settings: settings}
}

func (r Rules) IsLegal(state GameState, move engine.Move) (bool, string) {
	err := state.Board.CheckMove(move)
	switch {
	case err == nil:
		return true, ""
	case errors.Is(err, engine.ErrOutOfBounds):
		return false, "out of bounds"
	case errors.Is(err, engine.ErrOccupied):
		return false, "occupied"
	default:
		return false, err.Error()
	}
}

func (r Rules) IsWin(board engine.Board, side engine.Cell) bool {
	return engine.HasFive(board, side)
}

func (r Rules) IsDraw(board engine.Board) bool {
	return board.IsFull()
}

func (r Rules) FindAlignmentLine(board engine.Board, side engine.Cell) ([]engine.Move, bool) {
	return engine.FindFive(board, side)
}

func (r Rules) String() string {
	return fmt.Sprintf("Rules{size=%d, win=%d, threat=%d}", r.settings.BoardSize, engine.WinLength, engine.ThreatLength)
}
