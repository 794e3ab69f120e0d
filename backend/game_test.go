package main

import (
	"strings"
	"testing"
	"time"

	"gomoku/engine"
)

func newRunningGame(t *testing.T, size int) *Game {
	t.Helper()
	settings := DefaultGameSettings()
	settings.BoardSize = size
	settings.Seed = 1
	g := NewGame(settings)
	g.Start()
	t.Cleanup(g.stopEngine)
	return &g
}

func tickUntilApplied(t *testing.T, g *Game) {
	t.Helper()
	deadline := time.Now().Add(3 * time.Second)
	for time.Now().Before(deadline) {
		if g.Tick(false, nil) {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatalf("expected a move to be applied before the deadline")
}

func placeAll(t *testing.T, g *Game, side engine.Cell, moves ...engine.Move) {
	t.Helper()
	for _, m := range moves {
		if err := g.state.Board.Place(m, side); err != nil {
			t.Fatalf("place %v: %v", m, err)
		}
	}
}

func TestHumanMoveThenEngineReplies(t *testing.T) {
	g := newRunningGame(t, engine.DefaultBoardSize)
	if applied, reason := g.TryApplyMove(engine.Move{Row: 5, Col: 5}); !applied {
		t.Fatalf("expected human move to apply: %s", reason)
	}
	if g.state.ToMove != engine.CellEngine {
		t.Fatalf("expected engine to move next, got %v", g.state.ToMove)
	}
	tickUntilApplied(t, g)

	entries := g.History().All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 history entries, got %d", len(entries))
	}
	reply := entries[1]
	if !reply.IsEngine || reply.Side != engine.CellEngine {
		t.Fatalf("expected engine reply, got %+v", reply)
	}
	if reply.Rule != engine.RulePositional {
		t.Fatalf("expected positional reply to a lone stone, got %s", reply.Rule)
	}
	if g.state.Board.At(reply.Move.Row, reply.Move.Col) != engine.CellEngine {
		t.Fatalf("engine move not on board")
	}
	if g.state.ToMove != engine.CellHuman {
		t.Fatalf("expected human turn after engine reply")
	}
}

func TestEngineBlocksOpenEndOfHumanFour(t *testing.T) {
	g := newRunningGame(t, engine.DefaultBoardSize)
	placeAll(t, g, engine.CellHuman,
		engine.Move{Row: 4, Col: 0}, engine.Move{Row: 4, Col: 1},
		engine.Move{Row: 4, Col: 2}, engine.Move{Row: 4, Col: 3})
	g.state.ToMove = engine.CellEngine

	tickUntilApplied(t, g)
	last, _ := g.History().Last()
	if !last.Move.Equals(engine.Move{Row: 4, Col: 4}) || last.Rule != engine.RuleBlockWin {
		t.Fatalf("expected block-win at (4,4), got %v %s", last.Move, last.Rule)
	}
	if g.state.Status != StatusRunning {
		t.Fatalf("expected game to continue, got %s", statusToString(g.state.Status))
	}
}

func TestEngineCompletesFive(t *testing.T) {
	g := newRunningGame(t, engine.DefaultBoardSize)
	placeAll(t, g, engine.CellEngine,
		engine.Move{Row: 1, Col: 1}, engine.Move{Row: 2, Col: 2},
		engine.Move{Row: 3, Col: 3}, engine.Move{Row: 4, Col: 4})
	placeAll(t, g, engine.CellHuman, engine.Move{Row: 0, Col: 0})
	g.state.ToMove = engine.CellEngine

	tickUntilApplied(t, g)
	if g.state.Status != StatusEngineWon {
		t.Fatalf("expected engine win, got %s", statusToString(g.state.Status))
	}
	if len(g.state.WinningLine) != engine.WinLength {
		t.Fatalf("expected winning line of %d, got %v", engine.WinLength, g.state.WinningLine)
	}
}

func TestHumanWinEndsGame(t *testing.T) {
	g := newRunningGame(t, engine.DefaultBoardSize)
	placeAll(t, g, engine.CellHuman,
		engine.Move{Row: 0, Col: 0}, engine.Move{Row: 0, Col: 1},
		engine.Move{Row: 0, Col: 2}, engine.Move{Row: 0, Col: 3})

	if applied, reason := g.TryApplyMove(engine.Move{Row: 0, Col: 4}); !applied {
		t.Fatalf("expected winning move to apply: %s", reason)
	}
	if g.state.Status != StatusHumanWon {
		t.Fatalf("expected human win, got %s", statusToString(g.state.Status))
	}
	if applied, reason := g.TryApplyMove(engine.Move{Row: 9, Col: 9}); applied || reason != "game not running" {
		t.Fatalf("expected moves to be refused after the game ended, got %v %q", applied, reason)
	}
	if g.Tick(false, nil) {
		t.Fatalf("tick must not move on a finished game")
	}
}

func TestIllegalHumanMoves(t *testing.T) {
	g := newRunningGame(t, engine.DefaultBoardSize)
	placeAll(t, g, engine.CellEngine, engine.Move{Row: 2, Col: 2})
	tests := []struct {
		move   engine.Move
		reason string
	}{
		{engine.Move{Row: 2, Col: 2}, "occupied"},
		{engine.Move{Row: -1, Col: 0}, "out of bounds"},
		{engine.Move{Row: 0, Col: 10}, "out of bounds"},
	}
	for _, tc := range tests {
		applied, reason := g.TryApplyMove(tc.move)
		if applied {
			t.Fatalf("expected %v to be rejected", tc.move)
		}
		if !strings.Contains(reason, tc.reason) {
			t.Fatalf("expected reason %q for %v, got %q", tc.reason, tc.move, reason)
		}
	}
	if g.History().Size() != 0 {
		t.Fatalf("rejected moves must not enter history")
	}
}

func TestFullBoardIsDraw(t *testing.T) {
	// Four columns cannot hold a five, so filling the board is a draw.
	g := newRunningGame(t, 4)
	side := engine.CellHuman
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if row == 3 && col == 3 {
				continue
			}
			placeAll(t, g, side, engine.Move{Row: row, Col: col})
			side = engine.Opponent(side)
		}
	}
	if applied, reason := g.TryApplyMove(engine.Move{Row: 3, Col: 3}); !applied {
		t.Fatalf("expected last move to apply: %s", reason)
	}
	if g.state.Status != StatusDraw {
		t.Fatalf("expected draw, got %s", statusToString(g.state.Status))
	}
}

func TestEngineMovesFirstWhenConfigured(t *testing.T) {
	settings := DefaultGameSettings()
	settings.HumanStarts = false
	settings.Seed = 5
	g := NewGame(settings)
	t.Cleanup(g.stopEngine)
	g.Start()
	if g.CurrentPlayerIsHuman() {
		t.Fatalf("expected engine to start")
	}
	tickUntilApplied(t, &g)
	first, ok := g.History().Last()
	if !ok || !first.IsEngine {
		t.Fatalf("expected first move by engine, got %+v", first)
	}
}

func TestSubmitHumanMoveAppliedOnTick(t *testing.T) {
	g := newRunningGame(t, engine.DefaultBoardSize)
	if !g.SubmitHumanMove(engine.Move{Row: 3, Col: 3}) {
		t.Fatalf("expected pending move to be accepted")
	}
	if !g.Tick(false, nil) {
		t.Fatalf("expected pending move to be applied on tick")
	}
	if g.state.Board.At(3, 3) != engine.CellHuman {
		t.Fatalf("expected human stone at (3,3)")
	}
	if g.SubmitHumanMove(engine.Move{Row: 4, Col: 4}) {
		t.Fatalf("expected submission to be refused on the engine's turn")
	}
}

func TestGhostSinkReceivesDecision(t *testing.T) {
	g := newRunningGame(t, engine.DefaultBoardSize)
	g.state.ToMove = engine.CellEngine
	payloads := make(chan ghostPayload, 1)
	sink := func(p ghostPayload) { payloads <- p }

	deadline := time.Now().Add(3 * time.Second)
	for !g.Tick(true, sink) {
		if time.Now().After(deadline) {
			t.Fatalf("engine did not move")
		}
		time.Sleep(2 * time.Millisecond)
	}
	select {
	case p := <-payloads:
		if p.Mode != "decision" || p.Rule != string(engine.RulePositional) || p.Best == nil {
			t.Fatalf("unexpected ghost payload %+v", p)
		}
		if len(p.Candidates) == 0 {
			t.Fatalf("expected tied candidates in ghost payload")
		}
	default:
		t.Fatalf("expected a ghost payload")
	}
}
