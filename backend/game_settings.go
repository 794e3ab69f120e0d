package main

import (
	"fmt"

	"gomoku/engine"
)

type GameSettings struct {
	BoardSize   int   `json:"board_size"`
	HumanStarts bool  `json:"human_starts"`
	Seed        int64 `json:"seed"`
}

func DefaultGameSettings() GameSettings {
	return GameSettings{
		BoardSize:   engine.DefaultBoardSize,
		HumanStarts: true,
	}
}

func GameSettingsFromConfig(cfg Config) GameSettings {
	return GameSettings{
		BoardSize:   cfg.BoardSize,
		HumanStarts: cfg.HumanStarts,
		Seed:        cfg.Seed,
	}
}

func (s GameSettings) Validate() error {
	return validateBoardSize(s.BoardSize)
}

func validateBoardSize(size int) error {
	if size < engine.WinLength || size > engine.MaxBoardSize {
		return fmt.Errorf("board size %d outside [%d, %d]: %w", size, engine.WinLength, engine.MaxBoardSize, engine.ErrBoardSize)
	}
	return nil
}
