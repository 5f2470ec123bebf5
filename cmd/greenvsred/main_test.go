package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"green-vs-red/internal/app"
	"green-vs-red/pkg/sims/greenred"
)

func TestReferenceScenarios(t *testing.T) {
	results, err := runScenarios(context.Background(), referenceScenarios(), 2, false)
	if err != nil {
		t.Fatalf("runScenarios: %v", err)
	}
	want := []struct {
		name  string
		tally int
		turns int
	}{
		{"3x3", 5, 10},
		{"4x4", 14, 15},
	}
	if len(results) != len(want) {
		t.Fatalf("got %d results", len(results))
	}
	for i, w := range want {
		r := results[i]
		if r.name != w.name || r.tally != w.tally || r.turns != w.turns {
			t.Fatalf("result %d = %+v, expected %+v", i, r, w)
		}
	}

	var out bytes.Buffer
	printResults(&out, results)
	expected := "3x3: target was green 5 of 10 generations\n4x4: target was green 14 of 15 generations\n"
	if out.String() != expected {
		t.Fatalf("output %q, expected %q", out.String(), expected)
	}
}

func TestRunScenariosReportsInvalidInput(t *testing.T) {
	bad := scenario{name: "bad", cfg: greenred.Config{Rows: 2, Cols: 2, Grid: [][]uint8{{0, 0}, {0, 0}}, TargetRow: 5}}
	scenarios := append(referenceScenarios(), bad)
	_, err := runScenarios(context.Background(), scenarios, 1, false)
	if !errors.Is(err, greenred.ErrOutOfBoundsTarget) {
		t.Fatalf("error = %v, expected out of bounds target", err)
	}
	if !strings.Contains(err.Error(), "scenario bad") {
		t.Fatalf("error %q does not name the scenario", err)
	}
}

func TestVerboseTrace(t *testing.T) {
	sc := referenceScenarios()[0]
	sc.cfg.Turns = 2
	res, err := runScenario(sc, true)
	if err != nil {
		t.Fatal(err)
	}
	if res.tally != 1 {
		t.Fatalf("tally %d, expected 1", res.tally)
	}
	for _, want := range []string{
		"initial grid:\n000\n111\n000\n",
		"generation 1 (green 0):\n010\n010\n010\n",
		"generation 2 (green 1):\n000\n111\n000\n",
	} {
		if !strings.Contains(res.trace, want) {
			t.Fatalf("trace missing %q:\n%s", want, res.trace)
		}
	}
}

func TestScenarioFromFlags(t *testing.T) {
	cfg := app.NewConfig()
	cfg.Grid = "1001,1111,0100,1010"
	cfg.TargetRow = 2
	cfg.TargetCol = 2
	cfg.Turns = 15
	sc, err := scenarioFromFlags(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if sc.name != "4x4" {
		t.Fatalf("name %q", sc.name)
	}
	res, err := runScenario(sc, false)
	if err != nil {
		t.Fatal(err)
	}
	if res.tally != 14 {
		t.Fatalf("tally %d, expected 14", res.tally)
	}

	cfg.Grid = "10,1"
	if _, err := scenarioFromFlags(cfg); !errors.Is(err, greenred.ErrInvalidDimensions) {
		t.Fatalf("error = %v, expected invalid dimensions", err)
	}

	cfg = app.NewConfig()
	cfg.Random = true
	cfg.Rows = 6
	cfg.Cols = 7
	cfg.TargetRow = 5
	cfg.TargetCol = 6
	cfg.Seed = 3
	sc, err = scenarioFromFlags(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if sc.name != "6x7 seed=3" {
		t.Fatalf("name %q", sc.name)
	}
	if _, err := runScenario(sc, false); err != nil {
		t.Fatalf("random scenario: %v", err)
	}
}
