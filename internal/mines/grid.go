package mines

import (
	"fmt"
	"strconv"
	"strings"
)

/*
 * Glyphs used by Render:
 *
 *	- '.' an untouched cell the player knows nothing about.
 *	- 'F' a flag.
 *	- ' ' an uncovered cell with no mines around it.
 *	- '1' to '8' an uncovered cell with that many mines around it.
 *	- 'X' the mine the player uncovered.
 *
 * and, in the reveal view only:
 *
 *	- '*' a mine the player did not hit.
 *	- 'x' a flag placed on a safe cell.
 */
const (
	glyphCovered  = '.'
	glyphFlag     = 'F'
	glyphHitMine  = 'X'
	glyphMine     = '*'
	glyphBadFlag  = 'x'
	glyphNoMines  = ' '
	glyphOffBoard = '?'
)

func (c Cell) glyph(reveal bool) rune {
	switch c.Kind {
	case Covered:
		return glyphCovered
	case Mine:
		if reveal {
			return glyphMine
		}
		return glyphCovered
	case Flag:
		if reveal {
			return glyphBadFlag
		}
		return glyphFlag
	case FlaggedMine:
		return glyphFlag
	case UncoveredMine:
		return glyphHitMine
	case Revealed:
		if c.Count == 0 {
			return glyphNoMines
		}
		return rune('0' + c.Count)
	default:
		return glyphOffBoard
	}
}

// Render draws the grid with row and column numbers. The playing view
// hides mines; the reveal view shows them and marks wrong flags.
func (b *Board) Render(reveal bool) string {
	var sb strings.Builder
	w := len(strconv.Itoa(b.rows - 1))

	fmt.Fprintf(&sb, "%*s ", w, "")
	for col := range b.cols {
		fmt.Fprint(&sb, col%10, " ")
	}
	fmt.Fprint(&sb, "\n")

	for row := range b.rows {
		fmt.Fprintf(&sb, "%*d ", w, row)
		for col := range b.cols {
			sb.WriteRune(b.cells[b.index(row, col)].glyph(reveal))
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, "\n")
	}
	return sb.String()
}

// Board implements [fmt.Stringer]
func (b *Board) String() string {
	return b.Render(false)
}
