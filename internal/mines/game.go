package mines

import "github.com/sirupsen/logrus"

// Uncover opens the cell at (row, col). A covered safe cell becomes
// [Revealed]; if none of its neighbors hold a mine, the whole connected
// zero region and its border are opened too. A mine becomes
// [UncoveredMine] and the game is lost. Every other cell, including
// flagged cells and off-grid positions, is left alone.
func (b *Board) Uncover(row, col int) {
	if !b.ValidatePosition(row, col) {
		return
	}
	i := b.index(row, col)
	switch b.cells[i].Kind {
	case Mine:
		b.cells[i] = UncoveredMineCell
		Log.WithFields(logrus.Fields{"row": row, "col": col}).Debug("mine uncovered")
	case Covered:
		opened := b.floodOpen(i)
		Log.WithFields(logrus.Fields{
			"row": row, "col": col, "opened": opened,
		}).Debug("cells uncovered")
	}
}

// floodOpen opens the covered cell i and returns how many cells were
// opened. A cell is marked revealed before it is queued, so it is expanded
// at most once; this is the iterative form of uncovering all eight
// neighbors of every zero cell.
func (b *Board) floodOpen(i int) (opened int) {
	todo := newCellTodo(len(b.cells))
	b.open(i, todo)
	opened++

	for j := todo.head; j >= 0; j = todo.next[j] {
		if b.cells[j].Count != 0 {
			continue
		}
		row, col := b.position(j)
		for _, d := range neighbors {
			r, c := row+d[0], col+d[1]
			if !b.ValidatePosition(r, c) {
				continue
			}
			k := b.index(r, c)
			if b.cells[k].Kind == Covered {
				b.open(k, todo)
				opened++
			}
		}
	}

	return
}

func (b *Board) open(i int, todo *celltodo) {
	row, col := b.position(i)
	b.cells[i] = RevealedCell(b.AdjacentMineCount(row, col))
	todo.add(i)
}

// ToggleFlag places or removes a flag on an untouched cell.
func (b *Board) ToggleFlag(row, col int) {
	if !b.ValidatePosition(row, col) {
		return
	}
	i := b.index(row, col)
	switch b.cells[i].Kind {
	case Covered:
		b.cells[i] = FlagCell
	case Flag:
		b.cells[i] = CoveredCell
	case Mine:
		b.cells[i] = FlaggedMineCell
	case FlaggedMine:
		b.cells[i] = MineCell
	}
}

// Chord uncovers every unflagged untouched neighbor of a revealed number
// cell once the player has placed as many flags around it as its number.
// A misplaced flag therefore lets the chord detonate a mine.
func (b *Board) Chord(row, col int) {
	c := b.CellAt(row, col)
	if c.Kind != Revealed || c.Count == 0 {
		return
	}

	flags := 0
	for _, d := range neighbors {
		if b.CellAt(row+d[0], col+d[1]).Flagged() {
			flags++
		}
	}
	if flags != int(c.Count) {
		return
	}

	for _, d := range neighbors {
		b.Uncover(row+d[0], col+d[1])
	}
}

// RevealAll uncovers every cell: safe cells show their count and mines
// become [UncoveredMine]. Calling it again changes nothing.
func (b *Board) RevealAll() {
	for i, c := range b.cells {
		switch c.Kind {
		case Covered, Flag:
			row, col := b.position(i)
			b.cells[i] = RevealedCell(b.AdjacentMineCount(row, col))
		case Mine, FlaggedMine:
			b.cells[i] = UncoveredMineCell
		}
	}
	Log.Debug("board revealed")
}

func (b *Board) IsLost() bool {
	for _, c := range b.cells {
		if c.Kind == UncoveredMine {
			return true
		}
	}
	return false
}

// IsWon reports whether every mine is flagged, no flag is misplaced and
// every safe cell is uncovered.
func (b *Board) IsWon() bool {
	for _, c := range b.cells {
		switch c.Kind {
		case Flag, Mine, Covered, UncoveredMine:
			return false
		}
	}
	return true
}

// Remaining returns the number of mines minus the number of flags placed,
// the figure a mine counter shows. It goes negative when the player
// over-flags.
func (b *Board) Remaining() int {
	return b.MineCount() - b.countCells(Cell.Flagged)
}
