package main

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"gomoku/engine"
)

// EnginePlayer runs the selector on a worker goroutine so the game loop and
// HTTP handlers stay responsive. At most one worker runs at a time, which
// also serialises access to the selector's random source.
type EnginePlayer struct {
	moveMutex  sync.Mutex
	workerDone chan struct{}
	thinking   atomic.Bool
	moveReady  atomic.Bool
	stopSignal atomic.Bool
	ready      engine.Decision
	selector   *engine.Selector
	delay      time.Duration
}

func NewEnginePlayer(seed int64, delay time.Duration) *EnginePlayer {
	var rng engine.Intn
	if seed != 0 {
		rng = rand.New(rand.NewSource(seed))
	}
	return &EnginePlayer{
		selector: engine.NewSelector(engine.CellEngine, rng),
		delay:    delay,
	}
}

func (e *EnginePlayer) IsHuman() bool {
	return false
}

func (e *EnginePlayer) StartThinking(state GameState, onDecision func(engine.Decision)) {
	if e.thinking.Load() {
		return
	}
	if e.workerDone != nil {
		<-e.workerDone
	}
	e.thinking.Store(true)
	e.moveReady.Store(false)
	e.stopSignal.Store(false)

	stateCopy := state.Clone()
	delay := e.delay
	done := make(chan struct{})
	e.workerDone = done
	go func() {
		defer close(done)
		if delay > 0 {
			time.Sleep(delay)
		}
		decision := e.selector.Decide(stateCopy.Board)
		if e.stopSignal.Load() {
			e.moveReady.Store(false)
			e.thinking.Store(false)
			return
		}
		e.moveMutex.Lock()
		e.ready = decision
		e.moveMutex.Unlock()
		if onDecision != nil {
			onDecision(decision)
		}
		e.moveReady.Store(true)
		e.thinking.Store(false)
	}()
}

func (e *EnginePlayer) IsThinking() bool {
	return e.thinking.Load()
}

func (e *EnginePlayer) HasMoveReady() bool {
	return e.moveReady.Load()
}

func (e *EnginePlayer) TakeDecision() engine.Decision {
	e.moveMutex.Lock()
	defer e.moveMutex.Unlock()
	e.moveReady.Store(false)
	return e.ready
}

// StopThinking discards any decision in flight and waits for the worker.
func (e *EnginePlayer) StopThinking() {
	e.stopSignal.Store(true)
	if e.workerDone != nil {
		<-e.workerDone
		e.workerDone = nil
	}
	e.moveReady.Store(false)
	e.thinking.Store(false)
	e.stopSignal.Store(false)
}
