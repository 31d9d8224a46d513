package main

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

// setupLogFile sends the board's debug log to a rotating file. Outside of
// development the terminal only gets the game.
func setupLogFile(cfg *config.LogFile) error {
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}

	mines.Log.AddHook(hook)
	mines.Log.SetLevel(logrus.DebugLevel)
	if !config.Development() {
		mines.Log.SetOutput(io.Discard)
	}
	return nil
}
