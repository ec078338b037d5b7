//go:build ebiten

package app

import (
	"errors"
	"image/color"
	"strconv"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"golife/internal/core"
	"golife/internal/render"
)

const defaultScale = 12

func init() {
	core.RegisterRenderer("gui", func(cfg map[string]string) core.Renderer {
		scale := defaultScale
		if v, ok := cfg["scale"]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				scale = parsed
			}
		}
		return &guiRenderer{scale: scale}
	})
}

type guiRenderer struct {
	scale int
}

// Run opens an ebiten window and plays the requested number of ticks. The
// final board stays on screen until the window is closed.
func (r *guiRenderer) Run(sim core.Sim, ticks int, interval time.Duration) error {
	game := NewGame(sim, r.scale, ticks, interval)
	size := sim.Size()

	ebiten.SetWindowTitle("golife — " + sim.Name())
	ebiten.SetWindowSize(size.Cols*r.scale, size.Rows*r.scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Game adapts a simulation run to the ebiten.Game interface. Space pauses,
// n advances a single tick while paused, q and Escape quit.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter

	onColor  color.Color
	offColor color.Color

	pacer    *core.Pacer
	scale    int
	maxTicks int
	paused   bool
	tickOnce bool
}

// NewGame constructs a Game that stops advancing after maxTicks.
func NewGame(sim core.Sim, scale, maxTicks int, interval time.Duration) *Game {
	size := sim.Size()
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.Rows, size.Cols),
		onColor:  color.White,
		offColor: color.Black,
		pacer:    core.NewPacer(interval),
		scale:    scale,
		maxTicks: maxTicks,
	}
}

// Update handles per-frame input and advances the simulation on pace.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}

	if g.sim.Ticks() >= g.maxTicks {
		return nil
	}
	if g.tickOnce {
		g.sim.Tick()
		g.tickOnce = false
		return nil
	}
	if !g.paused && g.pacer.ShouldTick() {
		g.sim.Tick()
	}
	return nil
}

// Draw renders the current board state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Board(), g.onColor, g.offColor, g.scale)
}

// Layout returns the logical screen size, tracking the growing board.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.Cols * g.scale, s.Rows * g.scale
}
