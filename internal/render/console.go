// Package render presents simulation boards. Renderers register themselves
// under the name matched against the --render-to flag.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golife/internal/core"
)

func init() {
	core.RegisterRenderer("console", func(cfg map[string]string) core.Renderer {
		return NewConsole(os.Stdout)
	})
}

// Console prints the board to a writer once before the first tick and once
// after every tick.
type Console struct {
	out io.Writer
}

// NewConsole returns a console renderer writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{out: w}
}

// Run plays the requested number of ticks, echoing the board between them.
func (r *Console) Run(sim core.Sim, ticks int, interval time.Duration) error {
	fmt.Fprintln(r.out, "==========INITIAL BOARD===========")
	r.frame(sim)
	for i := 0; i < ticks; i++ {
		sim.Tick()
		r.frame(sim)
		time.Sleep(interval)
	}
	return nil
}

func (r *Console) frame(sim core.Sim) {
	fmt.Fprintf(r.out, "Board after tick #%d\n", sim.Ticks())
	fmt.Fprint(r.out, Board(sim.Board()))
}

// Board renders the grid as one text line per row, one character per cell,
// followed by a size summary line.
func Board(g *core.Grid) string {
	var b strings.Builder
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			b.WriteRune(g.Cell(r, c).Rune())
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "size=(%d,%d)\n", g.Rows(), g.Cols())
	return b.String()
}
