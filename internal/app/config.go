package app

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"golife/internal/core"
	"golife/internal/sims/life"
)

// Config represents the command-line parameters for a run. The same fields
// can be supplied through a YAML file named by --config; flags given
// explicitly on the command line win over file values.
type Config struct {
	Pattern      string `yaml:"Pattern"`
	NumTicks     int    `yaml:"NumTicks"`
	TickInterval int    `yaml:"TickIntervalMillis"`
	RenderTo     string `yaml:"RenderTo"`
	Rows         int    `yaml:"Rows"`
	Cols         int    `yaml:"Cols"`
	Margins      string `yaml:"Margins"`
	TrimEvery    int    `yaml:"TrimEvery"`

	File string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := life.DefaultConfig()
	return &Config{
		Pattern:      d.Pattern,
		NumTicks:     60,
		TickInterval: 1000,
		RenderTo:     "console",
		Rows:         d.Rows,
		Cols:         d.Cols,
		Margins:      formatMargins(d.Margins),
		TrimEvery:    d.TrimEvery,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern preset name or raw notation")
	fs.IntVar(&c.NumTicks, "num-ticks", c.NumTicks, "how many ticks to play")
	fs.IntVar(&c.TickInterval, "tick-interval", c.TickInterval, "tick interval in millis")
	fs.StringVar(&c.RenderTo, "render-to", c.RenderTo, "where to render the board (console, terminal, gui)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "initial board row count")
	fs.IntVar(&c.Cols, "cols", c.Cols, "initial board column count")
	fs.StringVar(&c.Margins, "margins", c.Margins, "dead border per side as N,E,S,W")
	fs.IntVar(&c.TrimEvery, "trim-every", c.TrimEvery, "trim excess margin every this many ticks")
	fs.StringVar(&c.File, "config", "", "optional YAML config file")
}

// LoadFile overlays values from the YAML file named by --config, keeping
// any value the user set explicitly on the command line. A missing --config
// flag is not an error.
func (c *Config) LoadFile(fs *flag.FlagSet) error {
	if c.File == "" {
		return nil
	}
	data, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse config %s: %w", c.File, err)
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["pattern"] && file.Pattern != "" {
		c.Pattern = file.Pattern
	}
	if !set["num-ticks"] && file.NumTicks != 0 {
		c.NumTicks = file.NumTicks
	}
	if !set["tick-interval"] && file.TickInterval != 0 {
		c.TickInterval = file.TickInterval
	}
	if !set["render-to"] && file.RenderTo != "" {
		c.RenderTo = file.RenderTo
	}
	if !set["rows"] && file.Rows != 0 {
		c.Rows = file.Rows
	}
	if !set["cols"] && file.Cols != 0 {
		c.Cols = file.Cols
	}
	if !set["margins"] && file.Margins != "" {
		c.Margins = file.Margins
	}
	if !set["trim-every"] && file.TrimEvery != 0 {
		c.TrimEvery = file.TrimEvery
	}
	return nil
}

// SimConfig converts the parsed flags into the simulation configuration.
func (c *Config) SimConfig() (life.Config, error) {
	m, err := ParseMargins(c.Margins)
	if err != nil {
		return life.Config{}, err
	}
	return life.Config{
		Rows:      c.Rows,
		Cols:      c.Cols,
		Margins:   m,
		TrimEvery: c.TrimEvery,
		Pattern:   c.Pattern,
		Placement: core.PlacementCenter,
	}, nil
}

// ParseMargins reads a "N,E,S,W" margin string.
func ParseMargins(s string) (core.Margins, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return core.Margins{}, fmt.Errorf("%w: margins must be four comma-separated values, got %q",
			core.ErrInvalidConfiguration, s)
	}
	vals := make([]int, 4)
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return core.Margins{}, fmt.Errorf("%w: bad margin value %q", core.ErrInvalidConfiguration, part)
		}
		vals[i] = v
	}
	return core.Margins{North: vals[0], East: vals[1], South: vals[2], West: vals[3]}, nil
}

func formatMargins(m core.Margins) string {
	return fmt.Sprintf("%d,%d,%d,%d", m.North, m.East, m.South, m.West)
}
