//go:build !ebiten

package app

import (
	"fmt"
	"time"

	"golife/internal/core"
)

func init() {
	core.RegisterRenderer("gui", func(cfg map[string]string) core.Renderer {
		return guiStub{}
	})
}

// guiStub stands in for the GUI renderer in headless builds.
type guiStub struct{}

// Run reports that the GUI requires the ebiten build tag.
func (guiStub) Run(core.Sim, int, time.Duration) error {
	return fmt.Errorf("the gui renderer requires building with the 'ebiten' tag")
}
