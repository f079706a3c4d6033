// Package sweep runs batches of headless simulations in parallel.
package sweep

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"gridlife/internal/core"
	"gridlife/internal/engine"
)

// Scenario is one headless run.
type Scenario struct {
	Rule        string
	Probability float64
	Seed        int64
}

func (s Scenario) String() string {
	return fmt.Sprintf("rule=%s p=%.2f seed=%d", s.Rule, s.Probability, s.Seed)
}

// Result summarises the population trajectory of a scenario.
type Result struct {
	Scenario
	Steps   int
	Initial int
	Final   int
	Peak    int
	// Extinct is the generation at which the population first reached zero,
	// or -1 if it never did.
	Extinct int
	Density float64
}

// Options configures a sweep.
type Options struct {
	Size    core.Size
	Steps   int
	Workers int
}

// Grid builds the cross product of rules, probabilities and seeds.
func Grid(rules []string, probabilities []float64, seeds []int64) []Scenario {
	out := make([]Scenario, 0, len(rules)*len(probabilities)*len(seeds))
	for _, r := range rules {
		for _, p := range probabilities {
			for _, s := range seeds {
				out = append(out, Scenario{Rule: r, Probability: p, Seed: s})
			}
		}
	}
	return out
}

// Run evaluates every scenario and returns results in scenario order. The
// first failing scenario cancels the rest.
func Run(ctx context.Context, scenarios []Scenario, opts Options) ([]Result, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	for _, sc := range scenarios {
		if _, err := core.Lookup(sc.Rule); err != nil {
			return nil, err
		}
	}

	results := make([]Result, len(scenarios))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, sc := range scenarios {
		g.Go(func() error {
			res, err := runScenario(ctx, sc, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", sc, err)
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

func runScenario(ctx context.Context, sc Scenario, opts Options) (Result, error) {
	rule, err := core.Lookup(sc.Rule)
	if err != nil {
		return Result{}, err
	}
	e := engine.New(opts.Size, 1, rule, sc.Seed)
	e.Reseed(sc.Probability)

	res := Result{Scenario: sc, Extinct: -1}
	res.Initial = e.Population()
	res.Peak = res.Initial
	if res.Initial == 0 {
		res.Extinct = 0
	}
	for step := 1; step <= opts.Steps; step++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		e.Step()
		pop := e.Population()
		if pop > res.Peak {
			res.Peak = pop
		}
		if pop == 0 && res.Extinct < 0 {
			res.Extinct = step
		}
		res.Steps = step
	}
	res.Final = e.Population()
	if total := e.Size().Cells(); total > 0 {
		res.Density = float64(res.Final) / float64(total)
	}
	return res, nil
}

// SortByDensity orders results by final density, highest first.
func SortByDensity(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Density > results[j].Density
	})
}
