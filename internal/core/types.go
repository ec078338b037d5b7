package core

import "time"

// Size describes the current dimensions of a simulation board.
type Size struct {
	Rows int
	Cols int
}

// Margins holds the minimum number of guaranteed-dead rows/columns between
// the live region and each board edge.
type Margins struct {
	North int
	East  int
	South int
	West  int
}

// PlacementCenter is the only supported seed placement mode.
const PlacementCenter = "center"

// Sim defines the contract a simulation must implement for renderers.
// Unlike a fixed-size automaton, Size may change between ticks as the
// board grows and shrinks.
type Sim interface {
	Name() string
	Size() Size
	Tick()
	Board() *Grid
	Ticks() int
}

// Renderer drives a simulation run and presents each tick's board.
type Renderer interface {
	Run(sim Sim, ticks int, interval time.Duration) error
}

// RendererFactory constructs a Renderer using an optional configuration map.
type RendererFactory func(cfg map[string]string) Renderer

var renderers = map[string]RendererFactory{}

// RegisterRenderer adds a renderer factory under the provided name.
func RegisterRenderer(name string, f RendererFactory) {
	if name == "" || f == nil {
		return
	}
	renderers[name] = f
}

// Renderers exposes the registry of available renderer factories.
func Renderers() map[string]RendererFactory {
	return renderers
}
