package greenred

import (
	"fmt"
	"strings"

	"green-vs-red/pkg/core"
)

// Cell is the colour of a single grid cell.
type Cell uint8

const (
	Red   Cell = 0
	Green Cell = 1
)

// Neighbour counts (as bit positions) that turn or keep a cell green.
const (
	redToGreen   = 1<<3 | 1<<6
	greenToGreen = 1<<2 | 1<<3 | 1<<6
)

// NextState applies the transition rule to a cell in state with n green
// Moore neighbours.
func NextState(state Cell, n int) Cell {
	if n < 0 || n > 8 {
		return Red
	}
	mask := redToGreen
	if state == Green {
		mask = greenToGreen
	}
	if mask&(1<<n) != 0 {
		return Green
	}
	return Red
}

// Engine simulates a Green vs. Red grid and tallies how often the target
// cell ends a generation green. An Engine is not safe for concurrent use.
type Engine struct {
	cfg Config

	rows, cols int
	initial    *core.ByteGrid
	prev       *core.ByteGrid
	cur        *core.ByteGrid

	targetRow, targetCol int
	turns                int

	generation int
	tally      int
}

// New validates the inputs and returns an Engine ready to Run. The grid is
// copied; later changes to it do not affect the engine.
func New(rows, cols int, grid [][]uint8, targetRow, targetCol, turns int) (*Engine, error) {
	cfg := Config{
		Rows:      rows,
		Cols:      cols,
		Grid:      grid,
		TargetRow: targetRow,
		TargetCol: targetCol,
		Turns:     turns,
	}
	return NewWithConfig(cfg)
}

// NewWithConfig returns an Engine configured from the provided options.
func NewWithConfig(cfg Config) (*Engine, error) {
	if cfg.Random {
		if cfg.Rows <= 0 || cfg.Cols <= 0 {
			return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, cfg.Rows, cfg.Cols)
		}
		cfg.Grid = core.NewRNG(cfg.Seed).BinaryRows(cfg.Rows, cfg.Cols)
	}
	initial, err := loadGrid(cfg.Rows, cfg.Cols, cfg.Grid)
	if err != nil {
		return nil, err
	}
	if err := checkTarget(cfg.Rows, cfg.Cols, cfg.TargetRow, cfg.TargetCol); err != nil {
		return nil, err
	}
	if cfg.Turns < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTurnCount, cfg.Turns)
	}
	cfg.Grid = nil
	e := &Engine{
		cfg:       cfg,
		rows:      cfg.Rows,
		cols:      cfg.Cols,
		initial:   initial,
		prev:      initial.Clone(),
		cur:       initial.Clone(),
		targetRow: cfg.TargetRow,
		targetCol: cfg.TargetCol,
		turns:     cfg.Turns,
	}
	return e, nil
}

func loadGrid(rows, cols int, grid [][]uint8) (*core.ByteGrid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if len(grid) != rows {
		return nil, fmt.Errorf("%w: grid has %d rows, want %d", ErrInvalidDimensions, len(grid), rows)
	}
	g := core.NewByteGrid(cols, rows)
	for y, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, y, len(row), cols)
		}
		for x, v := range row {
			if v != uint8(Red) && v != uint8(Green) {
				return nil, fmt.Errorf("%w: %d at (%d,%d)", ErrInvalidCell, v, y, x)
			}
		}
		copy(g.Row(y), row)
	}
	return g, nil
}

func checkTarget(rows, cols, row, col int) error {
	if row < 0 || row >= rows || col < 0 || col >= cols {
		return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBoundsTarget, row, col, rows, cols)
	}
	return nil
}

// CountNeighbors returns the number of green cells among the eight
// neighbours of (row, col) in the previous generation. Cells beyond the grid
// edge count as red.
func (e *Engine) CountNeighbors(row, col int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n += int(e.prev.At(col+dx, row+dy))
		}
	}
	return n
}

// NextCellState computes the next colour of (row, col) from the previous
// generation. row and col must lie inside the grid; a coordinate outside it
// is treated as a red cell bordering the grid and yields that cell's rule
// result, not an error.
func (e *Engine) NextCellState(row, col int) Cell {
	return NextState(Cell(e.prev.At(col, row)), e.CountNeighbors(row, col))
}

// AdvanceGeneration computes one full generation. Every cell is derived from
// the previous generation only; the new generation becomes visible once the
// whole pass is complete.
func (e *Engine) AdvanceGeneration() {
	for row := 0; row < e.rows; row++ {
		next := e.cur.Row(row)
		for col := 0; col < e.cols; col++ {
			next[col] = uint8(e.NextCellState(row, col))
		}
	}
	e.prev, e.cur = e.cur, e.prev
	e.generation++
}

// Run simulates all turns from the initial grid and returns the number of
// generations after which the target cell was green. Run always starts over,
// so repeated calls return the same tally.
func (e *Engine) Run() int {
	e.restart()
	for !e.Done() {
		e.Step()
	}
	return e.tally
}

// Step advances one generation and samples the target cell. It does nothing
// once all turns have been simulated.
func (e *Engine) Step() {
	if e.Done() {
		return
	}
	e.AdvanceGeneration()
	if Cell(e.prev.At(e.targetCol, e.targetRow)) == Green {
		e.tally++
	}
}

// Reset restores the initial grid and clears the tally. Engines built from a
// random grid draw a fresh grid from seed, or from the configured seed when
// seed is zero.
func (e *Engine) Reset(seed int64) {
	if e.cfg.Random {
		effective := seed
		if effective == 0 {
			effective = e.cfg.Seed
		}
		rows := core.NewRNG(effective).BinaryRows(e.rows, e.cols)
		for y, row := range rows {
			copy(e.initial.Row(y), row)
		}
	}
	e.restart()
}

func (e *Engine) restart() {
	e.prev.CopyFrom(e.initial)
	e.cur.CopyFrom(e.initial)
	e.generation = 0
	e.tally = 0
}

// Done reports whether all turns have been simulated.
func (e *Engine) Done() bool { return e.generation >= e.turns }

// Tally returns the green count accumulated so far.
func (e *Engine) Tally() int { return e.tally }

// Generation returns the number of completed generations.
func (e *Engine) Generation() int { return e.generation }

// Turns returns the number of generations a run simulates.
func (e *Engine) Turns() int { return e.turns }

// Target returns the coordinates of the sampled cell.
func (e *Engine) Target() (row, col int) { return e.targetRow, e.targetCol }

// Grid returns a copy of the latest completed generation.
func (e *Engine) Grid() [][]uint8 {
	out := make([][]uint8, e.rows)
	for y := range out {
		out[y] = append([]uint8(nil), e.prev.Row(y)...)
	}
	return out
}

// String renders the latest generation one row per line.
func (e *Engine) String() string {
	return strings.ReplaceAll(FormatGrid(e.Grid()), ",", "\n")
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "greenred" }

// Size returns the grid dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.cols, H: e.rows} }

// Cells exposes the latest generation in row-major order. Callers must not
// modify it.
func (e *Engine) Cells() []uint8 { return e.prev.Cells() }

func init() {
	core.Register("greenred", func(cfg map[string]string) (core.Sim, error) {
		c, err := ParseConfig(cfg)
		if err != nil {
			return nil, err
		}
		e, err := NewWithConfig(c)
		if err != nil {
			return nil, err
		}
		return e, nil
	})
}
