package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	cfg, err := LoadConfigFromEnv(DefaultConfig())
	if err != nil {
		log.Printf("[backend] ignoring invalid environment: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Printf("[backend] invalid config (%v); using defaults", err)
		cfg = DefaultConfig()
	}
	configStore.Update(cfg)

	controller := NewGameController(GameSettingsFromConfig(cfg))
	controller.SetEngineDelay(engineDelay(cfg))
	hub := NewHub()
	ghostHub := NewGhostHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	controller.SetGhostPublisher(
		func() bool { return ghostHub.HasClients() && GetConfig().GhostMode },
		func(payload ghostPayload) {
			ghostHub.Publish(payload)
		},
	)

	go hub.Run(ctx.Done())
	go ghostHub.Run(ctx.Done())
	go runGameLoop(ctx, controller, hub, cfg.TickInterval())

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newRouter(controller, hub, ghostHub),
		ReadHeaderTimeout: 5 * time.Second,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Printf("[backend] listening on %s (%dx%d board)", cfg.Addr, cfg.BoardSize, cfg.BoardSize)
	var runErr error
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
			log.Printf("[backend] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[backend] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[backend] forced close failed: %v", closeErr)
		}
	}

	cancel()
	controller.Shutdown()
	if runErr != nil {
		log.Printf("[backend] exiting after server error: %v", runErr)
		os.Exit(1)
	}
}

// runGameLoop applies pending human moves and finished engine decisions,
// pushing every applied move to websocket clients.
func runGameLoop(ctx context.Context, controller *GameController, hub *Hub, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if controller.Tick() {
				if entry, ok := controller.LatestHistoryEntry(); ok {
					hub.PublishHistory(historyPayload{History: []historyEntryDTO{historyEntryToDTO(entry)}})
				}
				hub.PublishStatus(controllerStatus(controller))
			}
		}
	}
}

func engineDelay(cfg Config) time.Duration {
	if cfg.EngineDelayMs <= 0 {
		return 0
	}
	return time.Duration(cfg.EngineDelayMs) * time.Millisecond
}
