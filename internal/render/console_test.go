package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golife/internal/core"
	"golife/internal/sims/life"
)

func blockGame(t *testing.T) *life.Life {
	t.Helper()
	cfg := life.DefaultConfig()
	cfg.Rows, cfg.Cols = 6, 6
	cfg.Margins = core.Margins{North: 1, East: 1, South: 1, West: 1}
	cfg.Pattern = "block"
	l, err := life.New(cfg)
	require.NoError(t, err)
	return l
}

func TestBoardDump(t *testing.T) {
	l := blockGame(t)
	want := strings.Join([]string{
		"......",
		"......",
		"..XX..",
		"..XX..",
		"......",
		"......",
		"size=(6,6)",
		"",
	}, "\n")
	assert.Equal(t, want, Board(l.Board()))
}

func TestConsoleRun(t *testing.T) {
	l := blockGame(t)
	var buf bytes.Buffer
	r := NewConsole(&buf)
	require.NoError(t, r.Run(l, 2, 0))

	out := buf.String()
	assert.Contains(t, out, "==========INITIAL BOARD===========")
	assert.Contains(t, out, "Board after tick #0")
	assert.Contains(t, out, "Board after tick #1")
	assert.Contains(t, out, "Board after tick #2")
	assert.NotContains(t, out, "Board after tick #3")
	// The block is a still life, so every frame carries the same body.
	assert.Equal(t, 3, strings.Count(out, "..XX..\n..XX.."))
}

func TestConsoleIsRegistered(t *testing.T) {
	factory, ok := core.Renderers()["console"]
	require.True(t, ok)
	assert.NotNil(t, factory(nil))
}
