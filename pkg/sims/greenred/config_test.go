package greenred

import (
	"errors"
	"slices"
	"testing"
)

func TestParseGrid(t *testing.T) {
	grid, err := ParseGrid("1001, 1111;0100\n1 0 1 0\n")
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	want := [][]uint8{{1, 0, 0, 1}, {1, 1, 1, 1}, {0, 1, 0, 0}, {1, 0, 1, 0}}
	if len(grid) != len(want) {
		t.Fatalf("got %d rows, expected %d", len(grid), len(want))
	}
	for i := range want {
		if !slices.Equal(grid[i], want[i]) {
			t.Fatalf("row %d = %v, expected %v", i, grid[i], want[i])
		}
	}
	if got := FormatGrid(grid); got != "1001,1111,0100,1010" {
		t.Fatalf("FormatGrid = %q", got)
	}
}

func TestParseGridErrors(t *testing.T) {
	cases := map[string]error{
		"":        ErrInvalidDimensions,
		" , ;":    ErrInvalidDimensions,
		"000,00":  ErrInvalidDimensions,
		"010,0x0": ErrInvalidCell,
		"012":     ErrInvalidCell,
	}
	for input, want := range cases {
		if _, err := ParseGrid(input); !errors.Is(err, want) {
			t.Fatalf("ParseGrid(%q) error = %v, expected %v", input, err, want)
		}
	}
}

func TestFromMapDefaults(t *testing.T) {
	c := FromMap(nil)
	def := DefaultConfig()
	if c.Rows != def.Rows || c.Cols != def.Cols || c.Turns != def.Turns || c.TargetRow != def.TargetRow {
		t.Fatalf("FromMap(nil) = %+v, expected defaults", c)
	}

	c = FromMap(map[string]string{"turns": "many", "rows": "-3", "grid": "01,2"})
	if c.Turns != def.Turns || c.Rows != def.Rows || len(c.Grid) != len(def.Grid) {
		t.Fatalf("invalid values must keep defaults, got %+v", c)
	}
}

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"grid":       "101,010",
		"target_row": "1",
		"target_col": "2",
		"turns":      "7",
		"random":     "true",
		"seed":       "5",
	})
	if c.Rows != 2 || c.Cols != 3 {
		t.Fatalf("dimensions %dx%d, expected 2x3 from grid", c.Rows, c.Cols)
	}
	if c.TargetRow != 1 || c.TargetCol != 2 || c.Turns != 7 || !c.Random || c.Seed != 5 {
		t.Fatalf("unexpected config %+v", c)
	}

	c = FromMap(map[string]string{"grid": "101,010", "rows": "3"})
	if _, err := NewWithConfig(c); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("explicit rows disagreeing with grid: error %v", err)
	}
}

func TestParseConfigRejectsMalformedValues(t *testing.T) {
	cases := []struct {
		cfg  map[string]string
		want error
	}{
		{map[string]string{"grid": "10,1"}, ErrInvalidDimensions},
		{map[string]string{"grid": "0012,1111"}, ErrInvalidCell},
		{map[string]string{"cols": "-2"}, ErrInvalidDimensions},
	}
	for _, tc := range cases {
		if _, err := ParseConfig(tc.cfg); !errors.Is(err, tc.want) {
			t.Fatalf("ParseConfig(%v) error = %v, expected %v", tc.cfg, err, tc.want)
		}
	}
	for _, bad := range []map[string]string{
		{"turns": "ten"},
		{"target_row": "1.5"},
		{"random": "maybe"},
		{"seed": "x"},
	} {
		if _, err := ParseConfig(bad); err == nil {
			t.Fatalf("ParseConfig(%v) accepted a malformed value", bad)
		}
	}

	c, err := ParseConfig(map[string]string{"grid": "1001,1111,0100,1010", "target_row": "2", "turns": "15"})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if c.Rows != 4 || c.Cols != 4 || c.TargetRow != 2 || c.Turns != 15 {
		t.Fatalf("unexpected config %+v", c)
	}
}
