package main

import (
	"fmt"

	"gomoku/engine"
)

// session is one terminal game: it owns the board and asks the engine for
// a reply after every human move.
type session struct {
	board       engine.Board
	selector    *engine.Selector
	engineFirst bool
	outcome     engine.Outcome
	last        engine.Decision
	hasLast     bool
	winLine     []engine.Move
	moves       int
	message     string
}

func newSession(size int, selector *engine.Selector, engineFirst bool) *session {
	s := &session{selector: selector, engineFirst: engineFirst}
	s.reset(size)
	return s
}

func (s *session) reset(size int) {
	s.board = engine.NewBoard(size)
	s.outcome = engine.OutcomeRunning
	s.last = engine.Decision{}
	s.hasLast = false
	s.winLine = nil
	s.moves = 0
	s.message = "your move"
	if s.engineFirst {
		s.engineTurn()
	}
}

// play applies a human move and, if the game goes on, the engine's reply.
func (s *session) play(move engine.Move) error {
	if s.outcome.Terminal() {
		return fmt.Errorf("game over (%s)", s.outcome)
	}
	if err := s.board.Place(move, engine.CellHuman); err != nil {
		return err
	}
	s.moves++
	if s.settle(engine.CellHuman) {
		return nil
	}
	s.engineTurn()
	return nil
}

func (s *session) engineTurn() {
	d := s.selector.Decide(s.board)
	if !d.OK {
		// Full board; settle already reported the draw.
		return
	}
	if err := s.board.Place(d.Move, engine.CellEngine); err != nil {
		s.message = "engine error: " + err.Error()
		return
	}
	s.moves++
	s.last = d
	s.hasLast = true
	if !s.settle(engine.CellEngine) {
		s.message = "engine played " + d.Move.String() + " (" + string(d.Rule) + ")"
	}
}

// settle checks for a terminal state after side has moved.
func (s *session) settle(side engine.Cell) bool {
	if line, ok := engine.FindFive(s.board, side); ok {
		s.winLine = line
		if side == engine.CellHuman {
			s.outcome = engine.OutcomeHumanWon
			s.message = "you win! press r to play again"
		} else {
			s.outcome = engine.OutcomeEngineWon
			s.message = "engine wins. press r to play again"
		}
		return true
	}
	if s.board.IsFull() {
		s.outcome = engine.OutcomeDraw
		s.message = "draw. press r to play again"
		return true
	}
	return false
}

func (s *session) onWinLine(row, col int) bool {
	for _, m := range s.winLine {
		if m.Row == row && m.Col == col {
			return true
		}
	}
	return false
}
