package mines

import (
	"fmt"
	"strconv"
	"strings"
)

type Level int

const (
	Beginner Level = iota + 1
	Intermediate
	Expert
)

// Levels lists every playable level in increasing difficulty.
var Levels = []Level{Beginner, Intermediate, Expert}

type LevelParams struct {
	Rows, Cols, MineCount int
}

func (p LevelParams) Unpack() (rows, cols, mineCount int) {
	return p.Rows, p.Cols, p.MineCount
}

var levelParams = map[Level]LevelParams{
	Beginner:     {Rows: 5, Cols: 10, MineCount: 3},
	Intermediate: {Rows: 10, Cols: 15, MineCount: 15},
	Expert:       {Rows: 15, Cols: 20, MineCount: 45},
}

// Params returns the board dimensions and mine count of l. ok is false for
// an unrecognized level.
func (l Level) Params() (p LevelParams, ok bool) {
	p, ok = levelParams[l]
	return
}

func (l Level) Valid() bool {
	_, ok := levelParams[l]
	return ok
}

func (l Level) String() string {
	switch l {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Expert:
		return "expert"
	default:
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
}

// ParseLevel accepts a level name in any case or its number.
func ParseLevel(s string) (Level, error) {
	s = strings.TrimSpace(s)
	for _, l := range Levels {
		if strings.EqualFold(s, l.String()) {
			return l, nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && Level(n).Valid() {
		return Level(n), nil
	}
	return 0, fmt.Errorf(`%w: "%s"`, ErrInvalidLevel, s)
}
