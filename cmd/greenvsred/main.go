package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"

	"green-vs-red/internal/app"
	"green-vs-red/pkg/sims/greenred"

	"golang.org/x/sync/errgroup"
)

type scenario struct {
	name string
	cfg  greenred.Config
}

type scenarioResult struct {
	name  string
	tally int
	turns int
	trace string
}

// referenceScenarios returns the 3x3 blinker and 4x4 reference runs.
func referenceScenarios() []scenario {
	return []scenario{
		{
			name: "3x3",
			cfg: greenred.Config{
				Rows:      3,
				Cols:      3,
				Grid:      [][]uint8{{0, 0, 0}, {1, 1, 1}, {0, 0, 0}},
				TargetRow: 1,
				TargetCol: 0,
				Turns:     10,
			},
		},
		{
			name: "4x4",
			cfg: greenred.Config{
				Rows:      4,
				Cols:      4,
				Grid:      [][]uint8{{1, 0, 0, 1}, {1, 1, 1, 1}, {0, 1, 0, 0}, {1, 0, 1, 0}},
				TargetRow: 2,
				TargetCol: 2,
				Turns:     15,
			},
		},
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("greenvsred: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	examples := flag.Bool("examples", false, "run the two reference scenarios instead of -grid")
	workers := flag.Int("workers", runtime.NumCPU(), "scenarios simulated concurrently")
	verbose := flag.Bool("v", false, "print the grid after every generation")
	flag.Parse()

	var scenarios []scenario
	if *examples {
		scenarios = referenceScenarios()
	} else {
		sc, err := scenarioFromFlags(cfg)
		if err != nil {
			log.Print(err)
			os.Exit(2)
		}
		scenarios = []scenario{sc}
	}

	results, err := runScenarios(context.Background(), scenarios, *workers, *verbose)
	if err != nil {
		log.Print(err)
		os.Exit(2)
	}
	printResults(os.Stdout, results)
}

func scenarioFromFlags(cfg *app.Config) (scenario, error) {
	c, err := greenred.ParseConfig(cfg.SimConfig())
	if err != nil {
		return scenario{}, fmt.Errorf("flags: %w", err)
	}
	name := fmt.Sprintf("%dx%d", c.Rows, c.Cols)
	if cfg.Random {
		name = fmt.Sprintf("%s seed=%d", name, cfg.Seed)
	}
	return scenario{name: name, cfg: c}, nil
}

// runScenarios simulates each scenario on its own engine, at most workers at a
// time. Results keep the order of scenarios.
func runScenarios(ctx context.Context, scenarios []scenario, workers int, verbose bool) ([]scenarioResult, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([]scenarioResult, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sc := range scenarios {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := runScenario(sc, verbose)
			if err != nil {
				return fmt.Errorf("scenario %s: %w", sc.name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runScenario(sc scenario, verbose bool) (scenarioResult, error) {
	e, err := greenred.NewWithConfig(sc.cfg)
	if err != nil {
		return scenarioResult{}, err
	}
	res := scenarioResult{name: sc.name, turns: e.Turns()}
	if !verbose {
		res.tally = e.Run()
		return res, nil
	}

	var trace strings.Builder
	fmt.Fprintf(&trace, "initial grid:\n%s\n", e)
	for !e.Done() {
		e.Step()
		fmt.Fprintf(&trace, "generation %d (green %d):\n%s\n", e.Generation(), e.Tally(), e)
	}
	res.tally = e.Tally()
	res.trace = trace.String()
	return res, nil
}

func printResults(w io.Writer, results []scenarioResult) {
	for _, res := range results {
		if res.trace != "" {
			fmt.Fprintf(w, "== %s\n%s", res.name, res.trace)
		}
		fmt.Fprintf(w, "%s: target was green %d of %d generations\n", res.name, res.tally, res.turns)
	}
}
