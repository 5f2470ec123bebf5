package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the entry points.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Rate  int
	Seed  int64

	Grid      string
	Rows      int
	Cols      int
	TargetRow int
	TargetCol int
	Turns     int
	Random    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:       "greenred",
		Scale:     48,
		TPS:       60,
		Rate:      2,
		Seed:      42,
		Grid:      "000,111,000",
		TargetRow: 1,
		TargetCol: 0,
		Turns:     10,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random grids")
	fs.StringVar(&c.Grid, "grid", c.Grid, "initial grid as comma-separated rows of 0/1 digits")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows (default: taken from -grid)")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns (default: taken from -grid)")
	fs.IntVar(&c.TargetRow, "target-row", c.TargetRow, "row of the sampled cell")
	fs.IntVar(&c.TargetCol, "target-col", c.TargetCol, "column of the sampled cell")
	fs.IntVar(&c.Turns, "turns", c.Turns, "generations to simulate")
	fs.BoolVar(&c.Random, "random", c.Random, "start from a seeded random grid of -rows x -cols")
}

// SimConfig converts the flags into the key/value form sim factories accept.
// Rows and columns are only passed when set, so they default to the grid's
// shape.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"grid":       c.Grid,
		"target_row": strconv.Itoa(c.TargetRow),
		"target_col": strconv.Itoa(c.TargetCol),
		"turns":      strconv.Itoa(c.Turns),
		"random":     strconv.FormatBool(c.Random),
		"seed":       strconv.FormatInt(c.Seed, 10),
	}
	if c.Rows != 0 {
		m["rows"] = strconv.Itoa(c.Rows)
	}
	if c.Cols != 0 {
		m["cols"] = strconv.Itoa(c.Cols)
	}
	return m
}
