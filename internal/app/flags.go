package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"
)

// Overrides collects repeatable key=value flags.
type Overrides map[string]string

func (o Overrides) String() string {
	parts := make([]string, 0, len(o))
	for k, v := range o {
		parts = append(parts, k+"="+v)
	}
	return strings.Join(parts, ",")
}

// Set parses one key=value pair.
func (o Overrides) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("override %q must be key=value", value)
	}
	o[key] = val
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	Workers int

	GridW int
	GridH int
	// Zoom is the number of grid cells per world unit.
	Zoom float64
	// HUDWidth is the width in pixels of the parameter panel.
	HUDWidth int

	Set Overrides
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:      "curls",
		Scale:    3,
		TPS:      60,
		Seed:     42,
		Workers:  1,
		GridW:    160,
		GridH:    200,
		Zoom:     4,
		HUDWidth: 260,
		Set:      Overrides{},
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines stepping strands in parallel")
	fs.IntVar(&c.GridW, "w", c.GridW, "raster width in cells")
	fs.IntVar(&c.GridH, "h", c.GridH, "raster height in cells")
	fs.Float64Var(&c.Zoom, "zoom", c.Zoom, "raster cells per world unit")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "parameter panel width in pixels (0 hides it)")
	fs.Var(c.Set, "set", "simulation option in key=value form (repeatable)")
}

// SimOptions returns the option map handed to the simulation factory.
// Explicit -set pairs win over the dedicated flags.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"seed":    strconv.FormatInt(c.Seed, 10),
		"workers": strconv.Itoa(c.Workers),
	}
	for k, v := range c.Set {
		opts[k] = v
	}
	return opts
}
