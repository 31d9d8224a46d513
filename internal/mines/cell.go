package mines

import (
	"fmt"
	"strconv"
)

type CellKind uint8

const (
	Invalid CellKind = iota // off-grid only, never stored
	Covered
	Mine
	Flag
	FlaggedMine
	UncoveredMine
	Revealed
)

func (k CellKind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Covered:
		return "covered"
	case Mine:
		return "mine"
	case Flag:
		return "flag"
	case FlaggedMine:
		return "flagged mine"
	case UncoveredMine:
		return "uncovered mine"
	case Revealed:
		return "revealed"
	default:
		return "CellKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Cell is the state of one grid position. Count holds the number of
// adjacent mines and is only meaningful when Kind is [Revealed].
type Cell struct {
	Kind  CellKind
	Count uint8
}

var (
	InvalidCell       = Cell{Kind: Invalid}
	CoveredCell       = Cell{Kind: Covered}
	MineCell          = Cell{Kind: Mine}
	FlagCell          = Cell{Kind: Flag}
	FlaggedMineCell   = Cell{Kind: FlaggedMine}
	UncoveredMineCell = Cell{Kind: UncoveredMine}
)

// RevealedCell returns an uncovered safe cell with n adjacent mines.
// panics [AssertionError] if n is outside 0..8
func RevealedCell(n int) Cell {
	if n < 0 || n > 8 {
		panic(AssertionError{fmt.Sprintf("adjacent mine count %d out of range", n)})
	}
	return Cell{Kind: Revealed, Count: uint8(n)}
}

// MineBearing reports whether a mine lies under the cell, whatever its
// covering state.
func (c Cell) MineBearing() bool {
	return c.Kind == Mine || c.Kind == FlaggedMine || c.Kind == UncoveredMine
}

func (c Cell) Flagged() bool {
	return c.Kind == Flag || c.Kind == FlaggedMine
}

// Untouched reports whether the player has neither uncovered the cell nor
// lost on it. Flagged cells are untouched.
func (c Cell) Untouched() bool {
	return c.Kind == Covered || c.Kind == Mine || c.Kind == Flag || c.Kind == FlaggedMine
}

func (c Cell) String() string {
	if c.Kind == Revealed {
		return "revealed(" + strconv.Itoa(int(c.Count)) + ")"
	}
	return c.Kind.String()
}
