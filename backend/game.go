package main

import (
	"log"
	"time"

	"gomoku/engine"
)

type Game struct {
	settings     GameSettings
	rules        Rules
	state        GameState
	history      MoveHistory
	humanPlayer  *HumanPlayer
	enginePlayer *EnginePlayer
	engineDelay  time.Duration
	turnStart    time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.stopEngine()
	g.settings = settings
	g.rules = NewRules(settings)
	g.state.Reset(settings)
	g.history.Clear()
	g.createPlayers()
	g.turnStart = time.Now()
	log.Printf("[game] new %dx%d game, %s", settings.BoardSize, settings.BoardSize, g.rules)
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

func (g *Game) TryApplyMove(move engine.Move) (bool, string) {
	return g.applyMove(move, nil)
}

func (g *Game) applyMove(move engine.Move, decision *engine.Decision) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	ok, reason := g.rules.IsLegal(g.state, move)
	if !ok {
		g.state.LastMessage = "Illegal move: " + reason
		return false, g.state.LastMessage
	}
	side := g.state.ToMove
	if err := g.state.Board.Place(move, side); err != nil {
		g.state.LastMessage = "Illegal move: " + err.Error()
		return false, g.state.LastMessage
	}
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	g.state.LastMessage = ""
	g.state.LastMove = move
	g.state.HasLastMove = true

	entry := HistoryEntry{Move: move, Side: side, ElapsedMs: elapsedMs, IsEngine: side == engine.CellEngine}
	if decision != nil {
		entry.Rule = decision.Rule
		entry.Score = decision.Score
		entry.Candidates = len(decision.Candidates)
	}
	g.history.Push(entry)
	g.logMovePlayed(entry)

	if g.rules.IsWin(g.state.Board, side) {
		if line, ok := g.rules.FindAlignmentLine(g.state.Board, side); ok {
			g.state.WinningLine = line
		}
		g.state.Status = statusForWinner(side)
		log.Printf("[game] %s wins after %d moves", side, g.history.Size())
		return true, ""
	}
	if g.rules.IsDraw(g.state.Board) {
		g.state.Status = StatusDraw
		log.Printf("[game] draw after %d moves", g.history.Size())
		return true, ""
	}
	g.state.ToMove = engine.Opponent(side)
	g.turnStart = time.Now()
	return true, ""
}

// Tick advances the game by at most one half-move. It returns true when a
// move was applied.
func (g *Game) Tick(ghostEnabled bool, ghostSink func(ghostPayload)) bool {
	if g.state.Status != StatusRunning {
		return false
	}
	if g.state.ToMove == engine.CellHuman {
		if g.humanPlayer.HasPendingMove() {
			applied, _ := g.TryApplyMove(g.humanPlayer.TakePendingMove())
			return applied
		}
		return false
	}
	if g.enginePlayer.HasMoveReady() {
		decision := g.enginePlayer.TakeDecision()
		if !decision.OK {
			// Only a full board leaves the engine without a move, and that
			// is already a draw.
			g.state.LastMessage = "engine has no move"
			return false
		}
		applied, _ := g.applyMove(decision.Move, &decision)
		return applied
	}
	if !g.enginePlayer.IsThinking() {
		var onDecision func(engine.Decision)
		if ghostEnabled && ghostSink != nil {
			onDecision = func(d engine.Decision) {
				ghostSink(ghostPayloadFromDecision(d))
			}
		}
		g.enginePlayer.StartThinking(g.state.Clone(), onDecision)
	}
	return false
}

func (g *Game) SubmitHumanMove(move engine.Move) bool {
	if g.state.ToMove != engine.CellHuman {
		return false
	}
	g.humanPlayer.SetPendingMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	return g.currentPlayer().IsHuman()
}

func (g *Game) EngineThinking() bool {
	return g.enginePlayer != nil && g.enginePlayer.IsThinking()
}

func (g *Game) currentPlayer() IPlayer {
	return g.playerForSide(g.state.ToMove)
}

func (g *Game) playerForSide(side engine.Cell) IPlayer {
	if side == engine.CellHuman {
		return g.humanPlayer
	}
	return g.enginePlayer
}

func (g *Game) createPlayers() {
	g.humanPlayer = NewHumanPlayer()
	g.enginePlayer = NewEnginePlayer(g.settings.Seed, g.engineDelay)
}

func (g *Game) SetEngineDelay(delay time.Duration) {
	g.engineDelay = delay
	if g.enginePlayer != nil {
		g.enginePlayer.delay = delay
	}
}

func (g *Game) stopEngine() {
	if g.enginePlayer != nil {
		g.enginePlayer.StopThinking()
	}
}

func (g *Game) logMovePlayed(entry HistoryEntry) {
	if entry.IsEngine {
		log.Printf("[engine] move=%v rule=%s score=%d candidates=%d elapsed=%.0fms",
			entry.Move, entry.Rule, entry.Score, entry.Candidates, entry.ElapsedMs)
		return
	}
	log.Printf("[game] human move=%v elapsed=%.0fms", entry.Move, entry.ElapsedMs)
}
