package main

import (
	"testing"

	"gomoku/engine"
)

func TestSessionEngineRepliesToEveryMove(t *testing.T) {
	s := newSession(engine.DefaultBoardSize, engine.NewSeededSelector(engine.CellEngine, 1), false)
	if err := s.play(engine.Move{Row: 5, Col: 5}); err != nil {
		t.Fatalf("play: %v", err)
	}
	if s.moves != 2 || !s.hasLast {
		t.Fatalf("expected human move plus engine reply, got %d moves", s.moves)
	}
	if s.board.At(s.last.Move.Row, s.last.Move.Col) != engine.CellEngine {
		t.Fatalf("engine reply missing from board")
	}
}

func TestSessionRejectsOccupiedCell(t *testing.T) {
	s := newSession(engine.DefaultBoardSize, engine.NewSeededSelector(engine.CellEngine, 1), false)
	if err := s.play(engine.Move{Row: 0, Col: 0}); err != nil {
		t.Fatalf("play: %v", err)
	}
	if err := s.play(engine.Move{Row: 0, Col: 0}); err == nil {
		t.Fatalf("expected occupied cell to be rejected")
	}
	if err := s.play(engine.Move{Row: 0, Col: 99}); err == nil {
		t.Fatalf("expected out-of-bounds cell to be rejected")
	}
}

func TestSessionHumanWinEndsGame(t *testing.T) {
	s := newSession(engine.DefaultBoardSize, engine.NewSeededSelector(engine.CellEngine, 1), false)
	for _, m := range []engine.Move{{Row: 9, Col: 0}, {Row: 9, Col: 1}, {Row: 9, Col: 2}, {Row: 9, Col: 3}} {
		if err := s.board.Place(m, engine.CellHuman); err != nil {
			t.Fatalf("place: %v", err)
		}
	}
	if err := s.play(engine.Move{Row: 9, Col: 4}); err != nil {
		t.Fatalf("play: %v", err)
	}
	if s.outcome != engine.OutcomeHumanWon || len(s.winLine) != engine.WinLength {
		t.Fatalf("expected human win, got %s", s.outcome)
	}
	if !s.onWinLine(9, 2) {
		t.Fatalf("expected (9,2) on the winning line")
	}
	if err := s.play(engine.Move{Row: 0, Col: 0}); err == nil {
		t.Fatalf("expected play to be refused after the game ended")
	}
	s.reset(engine.DefaultBoardSize)
	if s.outcome != engine.OutcomeRunning || s.board.CountEmpty() != engine.DefaultBoardSize*engine.DefaultBoardSize {
		t.Fatalf("expected a fresh game after reset")
	}
}

func TestSessionEngineFirst(t *testing.T) {
	s := newSession(7, engine.NewSeededSelector(engine.CellEngine, 4), true)
	if s.moves != 1 || !s.hasLast || s.last.Rule != engine.RulePositional {
		t.Fatalf("expected an opening positional engine move, got %v", s.last)
	}
}
