package core

// Cell holds the alive/dead state of one board slot. The zero value is a
// dead cell.
type Cell struct {
	alive bool
}

// CellFromRune classifies a pattern character: '.' and ' ' are dead, any
// other character is alive.
func CellFromRune(r rune) Cell {
	return Cell{alive: r != '.' && r != ' '}
}

// Alive reports whether the cell is alive.
func (c Cell) Alive() bool { return c.alive }

// Set replaces the cell's state in place.
func (c *Cell) Set(alive bool) { c.alive = alive }

// Rune returns the display character for the cell: 'X' alive, '.' dead.
func (c Cell) Rune() rune {
	if c.alive {
		return 'X'
	}
	return '.'
}

func (c Cell) String() string { return string(c.Rune()) }

// Point addresses a board slot and carries the state to place there. Points
// stage pattern seeds and per-tick transitions; they are not retained after
// being applied.
type Point struct {
	Row, Col int
	Alive    bool
}

// MoveBy translates the point by the given row/column offset.
func (p *Point) MoveBy(dr, dc int) {
	p.Row += dr
	p.Col += dc
}
