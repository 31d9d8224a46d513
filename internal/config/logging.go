package config

import (
	"fmt"
	"os"
	"strconv"
)

type LogFile struct {
	Filename   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// NewLogFile returns nil without an error when MINES_LOG_FILE is not set.
func NewLogFile() (*LogFile, error) {
	filename, ok := os.LookupEnv("MINES_LOG_FILE")
	if !ok || filename == "" {
		return nil, nil
	}

	maxSize := 10
	if maxSizeStr, ok := os.LookupEnv("MINES_LOG_MAX_SIZE"); ok {
		var err error
		maxSize, err = strconv.Atoi(maxSizeStr)
		if err != nil {
			return nil, fmt.Errorf("unable to convert MINES_LOG_MAX_SIZE to int: %w", err)
		}
		if maxSize <= 0 {
			return nil, fmt.Errorf("MINES_LOG_MAX_SIZE must be positive, got %d", maxSize)
		}
	}

	logFile := &LogFile{
		Filename:   filename,
		MaxSize:    maxSize,
		MaxBackups: 3,
		MaxAge:     28,
	}

	return logFile, nil
}
