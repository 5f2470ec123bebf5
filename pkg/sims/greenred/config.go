package greenred

import (
	"fmt"
	"strconv"
	"strings"
)

// Config describes a Green vs. Red run.
type Config struct {
	Rows int
	Cols int
	Grid [][]uint8

	TargetRow int
	TargetCol int
	Turns     int

	// Random replaces Grid with a seeded random grid of Rows x Cols.
	Random bool
	Seed   int64
}

// DefaultConfig returns the 3x3 blinker run used as the first reference
// example.
func DefaultConfig() Config {
	return Config{
		Rows: 3,
		Cols: 3,
		Grid: [][]uint8{
			{0, 0, 0},
			{1, 1, 1},
			{0, 0, 0},
		},
		TargetRow: 1,
		TargetCol: 0,
		Turns:     10,
		Seed:      42,
	}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults. A parsed grid also sets Rows and
// Cols unless those keys are given explicitly.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["grid"]; ok {
		if grid, err := ParseGrid(v); err == nil {
			c.Grid = grid
			c.Rows = len(grid)
			c.Cols = len(grid[0])
		}
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["target_row"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.TargetRow = parsed
		}
	}
	if v, ok := cfg["target_col"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.TargetCol = parsed
		}
	}
	if v, ok := cfg["turns"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Turns = parsed
		}
	}
	if v, ok := cfg["random"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Random = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// ParseConfig is the strict form of FromMap: any value that does not parse
// is reported instead of falling back to the default.
func ParseConfig(cfg map[string]string) (Config, error) {
	c := FromMap(cfg)
	if v, ok := cfg["grid"]; ok {
		if _, err := ParseGrid(v); err != nil {
			return Config{}, fmt.Errorf("grid: %w", err)
		}
	}
	for _, key := range []string{"rows", "cols", "target_row", "target_col", "turns"} {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if _, err := strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", key, err)
		}
	}
	for _, key := range []string{"rows", "cols"} {
		if v, ok := cfg[key]; ok {
			if parsed, _ := strconv.Atoi(v); parsed <= 0 {
				return Config{}, fmt.Errorf("%w: %s=%d", ErrInvalidDimensions, key, parsed)
			}
		}
	}
	if v, ok := cfg["random"]; ok {
		if _, err := strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("random: %w", err)
		}
	}
	if v, ok := cfg["seed"]; ok {
		if _, err := strconv.ParseInt(v, 10, 64); err != nil {
			return Config{}, fmt.Errorf("seed: %w", err)
		}
	}
	return c, nil
}

// ParseGrid reads a grid written as rows of 0/1 digits separated by commas,
// semicolons or newlines, e.g. "000,111,000". Whitespace inside rows is
// ignored.
func ParseGrid(s string) ([][]uint8, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == '\n'
	})
	var grid [][]uint8
	for _, field := range fields {
		field = strings.Join(strings.Fields(field), "")
		if field == "" {
			continue
		}
		row := make([]uint8, 0, len(field))
		for _, r := range field {
			switch r {
			case '0':
				row = append(row, uint8(Red))
			case '1':
				row = append(row, uint8(Green))
			default:
				return nil, fmt.Errorf("%w: %q in row %d", ErrInvalidCell, r, len(grid))
			}
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidDimensions, len(grid), len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("%w: empty grid", ErrInvalidDimensions)
	}
	return grid, nil
}

// FormatGrid renders a grid as comma-separated rows of digits, the inverse of
// ParseGrid.
func FormatGrid(grid [][]uint8) string {
	rows := make([]string, len(grid))
	for i, row := range grid {
		var b strings.Builder
		for _, v := range row {
			b.WriteByte('0' + v)
		}
		rows[i] = b.String()
	}
	return strings.Join(rows, ",")
}
