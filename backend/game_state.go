package main

import "gomoku/engine"

type GameStatus int

const (
	StatusNotStarted GameStatus = iota
	StatusRunning
	StatusHumanWon
	StatusEngineWon
	StatusDraw
)

type GameState struct {
	Board       engine.Board
	ToMove      engine.Cell
	Status      GameStatus
	HasLastMove bool
	LastMove    engine.Move
	LastMessage string
	WinningLine []engine.Move
}

func (s *GameState) Reset(settings GameSettings) {
	s.Board = engine.NewBoard(settings.BoardSize)
	if settings.HumanStarts {
		s.ToMove = engine.CellHuman
	} else {
		s.ToMove = engine.CellEngine
	}
	s.Status = StatusNotStarted
	s.HasLastMove = false
	s.LastMove = engine.Move{Row: -1, Col: -1}
	s.LastMessage = ""
	s.WinningLine = nil
}

func (s GameState) Clone() GameState {
	clone := s
	clone.Board = s.Board.Clone()
	clone.WinningLine = append([]engine.Move(nil), s.WinningLine...)
	return clone
}

func (s GameStatus) Terminal() bool {
	return s == StatusHumanWon || s == StatusEngineWon || s == StatusDraw
}

func statusForWinner(side engine.Cell) GameStatus {
	if side == engine.CellHuman {
		return StatusHumanWon
	}
	return StatusEngineWon
}
