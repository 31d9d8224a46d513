package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vancomm/minesweeper/internal/mines"
)

type Game struct {
	Level mines.Level
	Seed  *uint64
}

func NewGame() (*Game, error) {
	game := &Game{Level: mines.Beginner}

	if levelStr, ok := os.LookupEnv("MINES_LEVEL"); ok {
		level, err := mines.ParseLevel(levelStr)
		if err != nil {
			return nil, fmt.Errorf("unable to parse MINES_LEVEL: %w", err)
		}
		game.Level = level
	}

	if seedStr, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("unable to parse MINES_SEED: %w", err)
		}
		game.Seed = &seed
	}

	return game, nil
}
