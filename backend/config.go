package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"

	"gomoku/engine"
)

type Config struct {
	Addr          string `json:"addr"`
	BoardSize     int    `json:"board_size"`
	HumanStarts   bool   `json:"human_starts"`
	Seed          int64  `json:"seed"`
	TickMs        int    `json:"tick_ms"`
	EngineDelayMs int    `json:"engine_delay_ms"`
	GhostMode     bool   `json:"ghost_mode"`
}

type ConfigStore struct {
	mu     sync.RWMutex
	config Config
}

func DefaultConfig() Config {
	return Config{
		Addr:        ":8080",
		BoardSize:   engine.DefaultBoardSize,
		HumanStarts: true,
		// 0 seeds the engine from the clock
		Seed:          0,
		TickMs:        50,
		EngineDelayMs: 0,
		GhostMode:     true,
	}
}

var configStore = &ConfigStore{config: DefaultConfig()}

func GetConfig() Config {
	return configStore.Get()
}

func (c *ConfigStore) Get() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.config
}

func (c *ConfigStore) Update(newConfig Config) {
	c.mu.Lock()
	c.config = newConfig
	c.mu.Unlock()
}

func (c Config) TickInterval() time.Duration {
	if c.TickMs <= 0 {
		return 50 * time.Millisecond
	}
	return time.Duration(c.TickMs) * time.Millisecond
}

func (c Config) Validate() error {
	if err := validateBoardSize(c.BoardSize); err != nil {
		return err
	}
	if strings.TrimSpace(c.Addr) == "" {
		return errors.New("empty listen address")
	}
	return nil
}

// LoadConfigFromEnv reads .env (if present) and GOMOKU_* variables on top of
// base. Every bad value is reported; the fields it names keep base's value.
func LoadConfigFromEnv(base Config) (Config, error) {
	_ = godotenv.Load()
	cfg := base
	var errs []error
	if v := strings.TrimSpace(os.Getenv("GOMOKU_ADDR")); v != "" {
		cfg.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv("GOMOKU_BOARD_SIZE")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || validateBoardSize(n) != nil {
			errs = append(errs, fmt.Errorf("GOMOKU_BOARD_SIZE=%q: need an integer in [%d, %d]", v, engine.WinLength, engine.MaxBoardSize))
		} else {
			cfg.BoardSize = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("GOMOKU_HUMAN_STARTS")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("GOMOKU_HUMAN_STARTS=%q: %w", v, err))
		} else {
			cfg.HumanStarts = b
		}
	}
	if v := strings.TrimSpace(os.Getenv("GOMOKU_SEED")); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("GOMOKU_SEED=%q: %w", v, err))
		} else {
			cfg.Seed = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("GOMOKU_TICK_MS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Errorf("GOMOKU_TICK_MS=%q: need a positive integer", v))
		} else {
			cfg.TickMs = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("GOMOKU_ENGINE_DELAY_MS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			errs = append(errs, fmt.Errorf("GOMOKU_ENGINE_DELAY_MS=%q: need a non-negative integer", v))
		} else {
			cfg.EngineDelayMs = n
		}
	}
	if v := strings.TrimSpace(os.Getenv("GOMOKU_GHOST_MODE")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			errs = append(errs, fmt.Errorf("GOMOKU_GHOST_MODE=%q: %w", v, err))
		} else {
			cfg.GhostMode = b
		}
	}
	return cfg, errors.Join(errs...)
}
