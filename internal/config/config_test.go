package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vancomm/minesweeper/internal/mines"
)

func TestDevelopment(t *testing.T) {
	t.Setenv("MINES_DEVELOPMENT", "1")
	assert.True(t, Development())
	t.Setenv("MINES_DEVELOPMENT", "0")
	assert.False(t, Development())
}

func TestNewGameDefaults(t *testing.T) {
	game, err := NewGame()
	require.NoError(t, err)
	assert.Equal(t, mines.Beginner, game.Level)
	assert.Nil(t, game.Seed)
}

func TestNewGame(t *testing.T) {
	t.Setenv("MINES_LEVEL", "expert")
	t.Setenv("MINES_SEED", "42")

	game, err := NewGame()
	require.NoError(t, err)
	assert.Equal(t, mines.Expert, game.Level)
	require.NotNil(t, game.Seed)
	assert.Equal(t, uint64(42), *game.Seed)
}

func TestNewGameInvalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"level", "MINES_LEVEL", "nightmare"},
		{"seed", "MINES_SEED", "-1"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Setenv(test.key, test.value)
			_, err := NewGame()
			assert.ErrorContains(t, err, test.key)
		})
	}
}

func TestNewLogFile(t *testing.T) {
	logFile, err := NewLogFile()
	require.NoError(t, err)
	assert.Nil(t, logFile)

	t.Setenv("MINES_LOG_FILE", "/tmp/mines.log")
	logFile, err = NewLogFile()
	require.NoError(t, err)
	assert.Equal(t, &LogFile{
		Filename: "/tmp/mines.log", MaxSize: 10, MaxBackups: 3, MaxAge: 28,
	}, logFile)

	t.Setenv("MINES_LOG_MAX_SIZE", "abc")
	_, err = NewLogFile()
	assert.Error(t, err)

	t.Setenv("MINES_LOG_MAX_SIZE", "0")
	_, err = NewLogFile()
	assert.Error(t, err)
}
