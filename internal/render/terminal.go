package render

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"golife/internal/core"
)

func init() {
	core.RegisterRenderer("terminal", func(cfg map[string]string) core.Renderer {
		return &Terminal{}
	})
}

// Terminal draws the board in place on a tcell screen, one frame per tick,
// with a status line underneath. q, Esc, and Ctrl-C stop the run early;
// after the last tick the final board stays up until the user quits.
type Terminal struct{}

// Run plays the requested number of ticks on a freshly initialized screen.
func (r *Terminal) Run(sim core.Sim, ticks int, interval time.Duration) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal renderer: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal renderer: %w", err)
	}
	defer screen.Fini()

	quit := make(chan struct{})
	go func() {
		for {
			switch ev := screen.PollEvent().(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					close(quit)
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			case nil:
				return
			}
		}
	}()

	if interval <= 0 {
		interval = time.Millisecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	r.frame(screen, sim, "running")
	for i := 0; i < ticks; i++ {
		select {
		case <-quit:
			return nil
		case <-ticker.C:
			sim.Tick()
			r.frame(screen, sim, "running")
		}
	}
	r.frame(screen, sim, "done, q to quit")
	<-quit
	return nil
}

func (r *Terminal) frame(screen tcell.Screen, sim core.Sim, status string) {
	screen.Clear()
	board := sim.Board()
	alive := tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	dead := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for row := 0; row < board.Rows(); row++ {
		for col := 0; col < board.Cols(); col++ {
			cell := board.Cell(row, col)
			style := dead
			if cell.Alive() {
				style = alive
			}
			screen.SetContent(col, row, cell.Rune(), nil, style)
		}
	}
	line := fmt.Sprintf("tick %d  size=(%d,%d)  %s", sim.Ticks(), board.Rows(), board.Cols(), status)
	drawText(screen, 0, board.Rows()+1, line, tcell.StyleDefault)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
