package app

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadArguments   = errors.New("invalid arguments")
	ErrOutOfBounds    = errors.New("invalid cell coordinates")
	ErrGameOver       = errors.New("game is over, start a new one with n")
)

// Maps known commands to number of arguments; -1 means any.
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"f": 2,
	"c": 2,
	"r": 0,
	"n": -1,
	"h": 0,
	"q": 0,
}

// Commands that are still accepted once the game is won or lost.
var afterGameOver = map[string]bool{
	"g": true,
	"r": true,
	"n": true,
	"h": true,
	"q": true,
}

const help = `commands:
  o ROW COL              uncover a cell
  f ROW COL              place or remove a flag
  c ROW COL              uncover the neighbors of a satisfied number
  r                      reveal the whole board
  g                      redraw the board
  n [level=L] [seed=S]   new game (beginner, intermediate, expert)
  h                      show this help
  q                      quit
several commands may be separated by ';'
`

type NewGameDTO struct {
	Level string  `schema:"level"`
	Seed  *uint64 `schema:"seed"`
}

func ParseNewGameDTO(args []string) (NewGameDTO, error) {
	var dto NewGameDTO
	src := make(map[string][]string, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found {
			return dto, fmt.Errorf(`%w: expected key=value, got "%s"`, ErrBadArguments, arg)
		}
		src[key] = append(src[key], value)
	}
	dec := schema.NewDecoder()
	if err := dec.Decode(&dto, src); err != nil {
		return dto, fmt.Errorf("%w: %w", ErrBadArguments, err)
	}
	return dto, nil
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("%w: row must be an int", ErrBadArguments)
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("%w: column must be an int", ErrBadArguments)
		return
	}
	return
}

func (a *App) executeCommand(c string) error {
	parts := strings.Fields(c)
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf(`%w "%s", try h`, ErrUnknownCommand, parts[0])
	}
	if nargs >= 0 && nargs != len(parts)-1 {
		return fmt.Errorf("%w: %s takes %d", ErrBadArguments, parts[0], nargs)
	}
	if a.over() && !afterGameOver[parts[0]] {
		return ErrGameOver
	}

	switch parts[0] {
	case "g":
		return nil
	case "o", "f", "c":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		if !a.board.ValidatePosition(row, col) {
			return fmt.Errorf("%w %d:%d", ErrOutOfBounds, row, col)
		}
		switch parts[0] {
		case "o":
			a.board.Uncover(row, col)
		case "f":
			a.board.ToggleFlag(row, col)
		case "c":
			a.board.Chord(row, col)
		}
		return nil
	case "r":
		a.board.RevealAll()
		return nil
	case "n":
		return a.newGame(parts[1:])
	case "h":
		_, err := fmt.Fprint(a.out, help)
		return err
	case "q":
		a.quit = true
		return nil
	}
	return ErrUnknownCommand
}

func (a *App) newGame(args []string) error {
	dto, err := ParseNewGameDTO(args)
	if err != nil {
		return err
	}

	level := a.level
	if dto.Level != "" {
		if level, err = mines.ParseLevel(dto.Level); err != nil {
			return err
		}
	}
	if dto.Seed != nil {
		a.rnd = createRand(dto.Seed)
	}

	board, err := mines.NewBoard(level, a.rnd)
	if err != nil {
		return err
	}
	a.level, a.board = level, board
	a.logger.Info("new game", "level", level.String())
	return nil
}
