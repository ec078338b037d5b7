// Package life runs Conway's Game of Life on a margin-maintained board
// that grows and shrinks with the live pattern.
package life

import (
	"fmt"
	"strconv"

	"golife/internal/core"
	"golife/internal/pattern"
)

// Config holds the board geometry and run policy for a game.
type Config struct {
	Rows      int
	Cols      int
	Margins   core.Margins
	TrimEvery int
	Pattern   string
	Placement string
}

// DefaultConfig mirrors the classic demo setup: a 25x25 board with a
// centered glider, trimming excess margin every fifth tick.
func DefaultConfig() Config {
	return Config{
		Rows:      25,
		Cols:      25,
		Margins:   core.Margins{North: 2, East: 3, South: 2, West: 3},
		TrimEvery: 5,
		Pattern:   "glider",
		Placement: core.PlacementCenter,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["trim-every"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TrimEvery = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	return c
}

// Life owns one board and drives it tick by tick.
type Life struct {
	grid      *core.Grid
	trimEvery int
	ticks     int
}

// New builds the board, centers the configured pattern on it, and leaves
// the game ready for its first tick.
func New(cfg Config) (*Life, error) {
	if cfg.TrimEvery < 1 {
		return nil, fmt.Errorf("%w: trim cadence must be at least 1, got %d",
			core.ErrInvalidConfiguration, cfg.TrimEvery)
	}
	g, err := core.NewGrid(cfg.Rows, cfg.Cols, cfg.Margins)
	if err != nil {
		return nil, err
	}
	p := pattern.Parse(pattern.Lookup(cfg.Pattern))
	maxRow, maxCol := p.Extent()
	// A pattern larger than the configured board gets a board that fits it
	// plus margins, so centering never pushes points out of bounds.
	rows := max(cfg.Rows, maxRow+1+cfg.Margins.North+cfg.Margins.South)
	cols := max(cfg.Cols, maxCol+1+cfg.Margins.West+cfg.Margins.East)
	if rows > cfg.Rows || cols > cfg.Cols {
		if g, err = core.NewGrid(rows, cols, cfg.Margins); err != nil {
			return nil, err
		}
	}
	l := &Life{grid: g, trimEvery: cfg.TrimEvery}
	if err := l.seed(p, cfg.Placement); err != nil {
		return nil, err
	}
	return l, nil
}

// seed centers the pattern on the board and applies it. Seeding never
// trims; it may grow the board when the centered pattern crowds a margin.
func (l *Life) seed(p *pattern.Pattern, location string) error {
	if location != core.PlacementCenter {
		return fmt.Errorf("%w: %q (only %q is supported)",
			core.ErrInvalidPlacement, location, core.PlacementCenter)
	}
	maxRow, maxCol := p.Extent()
	p.MoveBy((l.grid.Rows()-maxRow)/2, (l.grid.Cols()-maxCol)/2)
	l.grid.Apply(p.Points(), false)
	return nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the current board dimensions.
func (l *Life) Size() core.Size { return l.grid.Size() }

// Board exposes the underlying grid for rendering and inspection.
func (l *Life) Board() *core.Grid { return l.grid }

// Ticks returns how many ticks have been played.
func (l *Life) Ticks() int { return l.ticks }

// Tick advances one generation. Every neighbor count is taken against the
// pre-tick board before any cell mutates, and the full transition list is
// applied in a single call so margin maintenance sees the finished board.
// Excess margin is only trimmed on ticks that land on the trim cadence.
func (l *Life) Tick() {
	var transitions []core.Point
	for r := 0; r < l.grid.Rows(); r++ {
		transitions = append(transitions, l.rowTransitions(r, l.grid.RowNeighbors(r))...)
	}
	l.grid.Apply(transitions, l.ticks > 0 && l.ticks%l.trimEvery == 0)
	l.ticks++
}

// rowTransitions applies the rule set to one row given its neighbor counts.
// Cells whose state does not change are omitted.
func (l *Life) rowTransitions(r int, counts []int) []core.Point {
	var out []core.Point
	for c, n := range counts {
		alive := l.grid.Alive(r, c)
		switch {
		case alive && (n < 2 || n > 3):
			out = append(out, core.Point{Row: r, Col: c, Alive: false})
		case !alive && n == 3:
			out = append(out, core.Point{Row: r, Col: c, Alive: true})
		}
	}
	return out
}
