package mines

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger = logrus.New()

// Rand is the random source used to place mines. *math/rand/v2.Rand
// satisfies it.
type Rand interface {
	IntN(n int) int
}

// Board is a fixed-size grid of cells stored row-major. The set of
// mine-bearing cells never changes after construction.
type Board struct {
	rows, cols int
	cells      []Cell
}

func newCoveredBoard(rows, cols int) *Board {
	cells := make([]Cell, rows*cols)
	for i := range cells {
		cells[i] = CoveredCell
	}
	return &Board{rows: rows, cols: cols, cells: cells}
}

// NewTestBoard returns the fixed 3x4 board with mines at (0,0) and (2,1).
func NewTestBoard() *Board {
	b := newCoveredBoard(3, 4)
	b.cells[b.index(0, 0)] = MineCell
	b.cells[b.index(2, 1)] = MineCell
	return b
}

// NewBoard returns a board sized for level with the level's mine count
// placed uniformly at random. Draws that hit an existing mine are retried.
func NewBoard(level Level, r Rand) (*Board, error) {
	params, ok := level.Params()
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, int(level))
	}
	rows, cols, mineCount := params.Unpack()

	b := newCoveredBoard(rows, cols)
	draws := 0
	for b.MineCount() < mineCount {
		draws++
		row := r.IntN(rows)
		col := r.IntN(cols)
		b.cells[b.index(row, col)] = MineCell
	}

	Log.WithFields(logrus.Fields{
		"level": level.String(),
		"rows":  rows,
		"cols":  cols,
		"mines": mineCount,
		"draws": draws,
	}).Debug("board created")

	return b, nil
}

func (b *Board) Rows() int {
	return b.rows
}

func (b *Board) Cols() int {
	return b.cols
}

func (b *Board) ValidatePosition(row, col int) bool {
	return 0 <= row && row < b.rows && 0 <= col && col < b.cols
}

func (b *Board) index(row, col int) int {
	return row*b.cols + col
}

func (b *Board) position(i int) (row, col int) {
	return i / b.cols, i % b.cols
}

// MineCount scans the grid for mine-bearing cells.
func (b *Board) MineCount() (count int) {
	for _, c := range b.cells {
		if c.MineBearing() {
			count++
		}
	}
	return
}

// CellAt returns [InvalidCell] for coordinates outside the grid.
func (b *Board) CellAt(row, col int) Cell {
	if !b.ValidatePosition(row, col) {
		return InvalidCell
	}
	return b.cells[b.index(row, col)]
}

// AdjacentMineCount counts mine-bearing cells among the eight neighbors of
// (row, col). It is 0 for coordinates outside the grid.
func (b *Board) AdjacentMineCount(row, col int) int {
	if !b.ValidatePosition(row, col) {
		return 0
	}
	n := 0
	for _, d := range neighbors {
		if b.CellAt(row+d[0], col+d[1]).MineBearing() {
			n++
		}
	}
	return n
}

func (b *Board) countCells(pred func(Cell) bool) (count int) {
	for _, c := range b.cells {
		if pred(c) {
			count++
		}
	}
	return
}

// ForceSetCell overwrites a cell. It exists for tests and debugging.
// panics [AssertionError] if (row, col) is off the grid or cell is
// [Revealed] or [InvalidCell]
func (b *Board) ForceSetCell(row, col int, cell Cell) {
	if !b.ValidatePosition(row, col) {
		panic(AssertionError{fmt.Sprintf("invalid cell position %d:%d", row, col)})
	}
	if cell.Kind < Covered || cell.Kind > UncoveredMine {
		panic(AssertionError{fmt.Sprintf("cannot force cell to %s", cell)})
	}
	b.cells[b.index(row, col)] = cell
}
