package core

import "fmt"

// neighborOffsets enumerates the Moore neighborhood around a cell.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Grid stores cell state on a board that grows and shrinks so the live
// region always keeps the configured dead margin on every side. Rows are
// held as individual slices so resizing is row/column insertion and removal
// at the edges, never a wholesale reallocation.
type Grid struct {
	rows    int
	cols    int
	margins Margins
	cells   [][]Cell
}

// NewGrid allocates an all-dead board. Every margin must be at least 1 and
// each dimension must be able to hold its two opposing margins, otherwise
// ErrInvalidConfiguration is returned.
func NewGrid(rows, cols int, m Margins) (*Grid, error) {
	if m.North < 1 || m.East < 1 || m.South < 1 || m.West < 1 {
		return nil, fmt.Errorf("%w: every margin must be at least 1, got N=%d E=%d S=%d W=%d",
			ErrInvalidConfiguration, m.North, m.East, m.South, m.West)
	}
	if rows < m.North+m.South || cols < m.West+m.East {
		return nil, fmt.Errorf("%w: %dx%d board is too small for margins N=%d E=%d S=%d W=%d",
			ErrInvalidConfiguration, rows, cols, m.North, m.East, m.South, m.West)
	}
	g := &Grid{rows: rows, cols: cols, margins: m, cells: make([][]Cell, rows)}
	for r := range g.cells {
		g.cells[r] = make([]Cell, cols)
	}
	return g, nil
}

// Rows returns the current row count of the backing storage.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the current column count of the backing storage.
func (g *Grid) Cols() int { return g.cols }

// Size returns the current board dimensions.
func (g *Grid) Size() Size { return Size{Rows: g.rows, Cols: g.cols} }

// Margins returns the configured per-side margins.
func (g *Grid) Margins() Margins { return g.margins }

// Cell returns the cell at (r, c). Coordinates outside the board always
// read as a dead cell, however far out they lie; neighbor counting at the
// edges relies on this.
func (g *Grid) Cell(r, c int) Cell {
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		return Cell{}
	}
	return g.cells[r][c]
}

// Alive reports whether the cell at (r, c) is alive, treating coordinates
// outside the board as dead.
func (g *Grid) Alive(r, c int) bool { return g.Cell(r, c).Alive() }

// RowNeighbors returns, for every column of row r, how many of that cell's
// eight neighbors are currently alive.
func (g *Grid) RowNeighbors(r int) []int {
	counts := make([]int, g.cols)
	for c := 0; c < g.cols; c++ {
		n := 0
		for _, d := range neighborOffsets {
			if g.Alive(r+d[0], c+d[1]) {
				n++
			}
		}
		counts[c] = n
	}
	return counts
}

// Apply writes every point's carried state into its cell, then restores the
// margin invariant. Growth happens immediately; shrinking excess margin
// waits until trimNow is set. Points outside the current board are ignored;
// the margins guarantee callers never need to produce any.
func (g *Grid) Apply(points []Point, trimNow bool) {
	for _, p := range points {
		if p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols {
			g.cells[p.Row][p.Col].Set(p.Alive)
		}
	}
	g.maintainMargins(trimNow)
}

// liveBounds scans inward from each edge for the first row/column holding a
// live cell. ok is false when the board is entirely dead.
func (g *Grid) liveBounds() (top, bottom, left, right int, ok bool) {
	top, bottom = 0, g.rows-1
	for top < g.rows && g.rowDead(top) {
		top++
	}
	if top == g.rows {
		return 0, 0, 0, 0, false
	}
	for bottom > top && g.rowDead(bottom) {
		bottom--
	}
	left, right = 0, g.cols-1
	for left < g.cols && g.colDead(left) {
		left++
	}
	for right > left && g.colDead(right) {
		right--
	}
	return top, bottom, left, right, true
}

func (g *Grid) rowDead(r int) bool {
	for c := 0; c < g.cols; c++ {
		if g.cells[r][c].Alive() {
			return false
		}
	}
	return true
}

func (g *Grid) colDead(c int) bool {
	for r := 0; r < g.rows; r++ {
		if g.cells[r][c].Alive() {
			return false
		}
	}
	return true
}

// maintainMargins compares each side's actual dead border against its
// configured margin. A positive deficit grows the board at that edge
// unconditionally; a negative one (excess) shrinks it only when trimNow is
// set. Each side's distance is measured from its own edge, so surgery on
// one side never invalidates another side's deficit.
func (g *Grid) maintainMargins(trimNow bool) {
	top, bottom, left, right, ok := g.liveBounds()
	if !ok {
		return
	}
	north := g.margins.North - top
	south := g.margins.South - (g.rows - 1 - bottom)
	west := g.margins.West - left
	east := g.margins.East - (g.cols - 1 - right)

	for i := 0; i < abs(north); i++ {
		if north > 0 {
			g.insertRow(0)
		} else if trimNow {
			g.removeRow(0)
		}
	}
	for i := 0; i < abs(south); i++ {
		if south > 0 {
			g.insertRow(g.rows)
		} else if trimNow {
			g.removeRow(g.rows - 1)
		}
	}
	for i := 0; i < abs(west); i++ {
		if west > 0 {
			g.insertCol(0)
		} else if trimNow {
			g.removeCol(0)
		}
	}
	for i := 0; i < abs(east); i++ {
		if east > 0 {
			g.insertCol(g.cols)
		} else if trimNow {
			g.removeCol(g.cols - 1)
		}
	}
}

// insertRow splices a dead row in at index i, 0..rows inclusive.
func (g *Grid) insertRow(i int) {
	g.cells = append(g.cells, nil)
	copy(g.cells[i+1:], g.cells[i:])
	g.cells[i] = make([]Cell, g.cols)
	g.rows = len(g.cells)
}

func (g *Grid) removeRow(i int) {
	g.cells = append(g.cells[:i], g.cells[i+1:]...)
	g.rows = len(g.cells)
}

// insertCol splices a dead cell into every row at index i, 0..cols inclusive.
func (g *Grid) insertCol(i int) {
	for r := range g.cells {
		row := append(g.cells[r], Cell{})
		copy(row[i+1:], row[i:])
		row[i] = Cell{}
		g.cells[r] = row
	}
	g.cols++
}

func (g *Grid) removeCol(i int) {
	for r := range g.cells {
		g.cells[r] = append(g.cells[r][:i], g.cells[r][i+1:]...)
	}
	g.cols--
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
