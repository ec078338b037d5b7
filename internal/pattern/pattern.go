// Package pattern parses the shorthand board notation used to seed a game:
// row segments joined by '/', where '.' and ' ' mark dead cells and any
// other character marks a live one.
package pattern

import (
	"strings"

	"golife/internal/core"
)

// Presets maps friendly pattern names to their shorthand notation.
var Presets = map[string]string{
	"block":     "XX/XX",
	"blink":     "XXX",
	"bounce":    "XX/XX/..XX/..XX",
	"glider":    ".X/..X/XXX",
	"spaceship": ".XXXX/X...X/....X/X..X",
	"expanding": "......X/....X.XX/....X.X/....X/..X/X.X",
}

// Lookup resolves a preset name, falling back to the argument itself so
// callers can pass raw notation directly.
func Lookup(name string) string {
	if notation, ok := Presets[name]; ok {
		return notation
	}
	return name
}

// Pattern is the parsed form of a board description: the set of live points
// it names. Row segments may have different lengths; dead characters never
// produce a point.
type Pattern struct {
	points []core.Point
}

// Parse reads shorthand notation into a Pattern. Leading and trailing
// separators are ignored. An empty or all-dead notation parses to a
// pattern with no points.
func Parse(notation string) *Pattern {
	p := &Pattern{}
	for r, segment := range strings.Split(strings.Trim(notation, "/"), "/") {
		for c, ch := range segment {
			if core.CellFromRune(ch).Alive() {
				p.points = append(p.points, core.Point{Row: r, Col: c, Alive: true})
			}
		}
	}
	return p
}

// Points exposes the live points of the pattern.
func (p *Pattern) Points() []core.Point { return p.points }

// Extent returns the maximum row and column index among the live points,
// (0, 0) when the pattern is empty. These are bounding indices, not counts.
func (p *Pattern) Extent() (maxRow, maxCol int) {
	for _, pt := range p.points {
		maxRow = max(maxRow, pt.Row)
		maxCol = max(maxCol, pt.Col)
	}
	return maxRow, maxCol
}

// MoveBy translates every point by a fixed offset. Used once per pattern,
// to center it on a board.
func (p *Pattern) MoveBy(dr, dc int) {
	for i := range p.points {
		p.points[i].MoveBy(dr, dc)
	}
}
