package main

import (
	"sync"
	"time"

	"gomoku/engine"
)

// GameController owns the single board of the running game. Every mutation
// goes through its mutex; the engine only ever sees clones.
type GameController struct {
	mu             sync.Mutex
	game           Game
	ghostEnabled   func() bool
	ghostPublisher func(ghostPayload)
}

func NewGameController(settings GameSettings) *GameController {
	return &GameController{game: NewGame(settings)}
}

func (gc *GameController) SetGhostPublisher(enabled func() bool, publisher func(ghostPayload)) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.ghostEnabled = enabled
	gc.ghostPublisher = publisher
}

func (gc *GameController) SetEngineDelay(delay time.Duration) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.SetEngineDelay(delay)
}

func (gc *GameController) OnCellClicked(row, col int) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	_ = gc.game.SubmitHumanMove(engine.Move{Row: row, Col: col})
}

func (gc *GameController) ApplyHumanMove(move engine.Move) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if gc.game.state.Status.Terminal() {
		return false, "game over"
	}
	if gc.game.state.Status == StatusRunning && !gc.game.CurrentPlayerIsHuman() {
		return false, "not human turn"
	}
	return gc.game.TryApplyMove(move)
}

func (gc *GameController) Tick() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	ghostEnabled := false
	if gc.ghostEnabled != nil {
		ghostEnabled = gc.ghostEnabled()
	}
	return gc.game.Tick(ghostEnabled, gc.ghostPublisher)
}

func (gc *GameController) State() GameState {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.State()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Settings()
}

func (gc *GameController) History() MoveHistory {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History()
}

func (gc *GameController) CurrentTurnStartedAtMs() int64 {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.TurnStartedAtMs()
}

func (gc *GameController) LatestHistoryEntry() (HistoryEntry, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History().Last()
}

func (gc *GameController) EngineThinking() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.EngineThinking()
}

func (gc *GameController) Reset(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
}

func (gc *GameController) StartGame(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
	gc.game.Start()
}

// UpdateSettings applies settings to the current game. A running game keeps
// its board and its engine, so changing the board size or the seed then
// requires reset.
func (gc *GameController) UpdateSettings(update GameSettings, reset bool) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if reset || gc.game.state.Status != StatusRunning {
		gc.game.Reset(update)
		return true, ""
	}
	if update.BoardSize != gc.game.settings.BoardSize {
		return false, "board size change needs a new game"
	}
	if update.Seed != gc.game.settings.Seed {
		return false, "seed change needs a new game"
	}
	gc.game.settings = update
	return true, ""
}

// Shutdown stops any engine worker still thinking.
func (gc *GameController) Shutdown() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.stopEngine()
}
