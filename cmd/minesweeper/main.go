package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/app"
	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

func main() {
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, nil)
	if config.Development() {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level: slog.LevelDebug,
		})
		mines.Log.SetLevel(logrus.DebugLevel)
	}
	logger := slog.New(handler)

	logFile, err := config.NewLogFile()
	if err != nil {
		logger.Error("failed to read log file config", slog.Any("error", err))
		os.Exit(1)
	}
	if logFile != nil {
		if err := setupLogFile(logFile); err != nil {
			logger.Error("failed to set up log file", slog.Any("error", err))
			os.Exit(1)
		}
	}

	game, err := config.NewGame()
	if err != nil {
		logger.Error("failed to read game config", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	a, err := app.New(logger, game, os.Stdin, os.Stdout)
	if err != nil {
		logger.Error("failed to start game", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Debug("starting game", slog.String("level", game.Level.String()))
	if err := a.Start(ctx); err != nil {
		logger.Error("game stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
