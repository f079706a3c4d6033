package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"gridlife/internal/config"
	"gridlife/internal/core"
	"gridlife/internal/engine"
	"gridlife/internal/sweep"
	"gridlife/internal/tui"
)

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctl, err := newSession(cfg)
	if err != nil {
		return err
	}
	return tui.Run(ctl, cfg.TUI.Frame)
}

func newRunCmd() *cobra.Command {
	var (
		steps   int
		every   int
		csvPath string
		plot    bool
		pattern string
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "step the simulation headless and report population",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			ctl, err := newSession(cfg)
			if err != nil {
				return err
			}
			if pattern != "" {
				if err := stamp(ctl.Engine(), pattern); err != nil {
					return err
				}
			}
			history := simulate(ctl.Engine(), steps)

			out := cmd.OutOrStdout()
			for gen, pop := range history {
				if (every > 0 && gen%every == 0) || gen == len(history)-1 {
					fmt.Fprintf(out, "gen %6d  population %d\n", gen, pop)
				}
			}
			if csvPath != "" {
				if err := writeHistoryCSV(csvPath, history); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s\n", csvPath)
			}
			if plot && len(history) > 1 {
				fmt.Fprintln(out, asciigraph.Plot(toFloats(history),
					asciigraph.Height(12),
					asciigraph.Width(72),
					asciigraph.Caption(cfg.Rule+" population"),
				))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", 200, "generations to run")
	cmd.Flags().IntVar(&every, "every", 20, "print every n generations (0 prints only the last)")
	cmd.Flags().StringVar(&csvPath, "csv", "", "write generation,population rows to a CSV file")
	cmd.Flags().BoolVar(&plot, "plot", false, "draw an ASCII population chart")
	cmd.Flags().StringVar(&pattern, "pattern", "", "start from a named pattern on an empty grid instead of a random fill")
	return cmd
}

// simulate runs steps generations and returns the population after each,
// starting with the initial one.
func simulate(e *engine.Engine, steps int) []int {
	history := make([]int, 0, max(steps, 0)+1)
	history = append(history, e.Population())
	for i := 0; i < steps; i++ {
		e.Step()
		history = append(history, e.Population())
	}
	return history
}

func writeHistoryCSV(path string, history []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := encodeHistory(f, history); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func encodeHistory(w io.Writer, history []int) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"generation", "population"}); err != nil {
		return err
	}
	for gen, pop := range history {
		if err := cw.Write([]string{strconv.Itoa(gen), strconv.Itoa(pop)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toFloats(xs []int) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = float64(x)
	}
	return out
}

func newSweepCmd() *cobra.Command {
	var (
		rules   string
		probs   string
		seeds   string
		steps   int
		workers int
		width   int
		height  int
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "run rule/density/seed combinations in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := core.RuleNames()
			if rules != "" {
				names = splitList(rules)
			}
			ps, err := parseFloats(probs)
			if err != nil {
				return err
			}
			ss, err := parseInts(seeds)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			results, err := sweep.Run(ctx, sweep.Grid(names, ps, ss), sweep.Options{
				Size:    core.Size{W: width, H: height},
				Steps:   steps,
				Workers: workers,
			})
			if err != nil {
				return err
			}
			sweep.SortByDensity(results)
			return printResults(cmd.OutOrStdout(), results)
		},
	}
	cmd.Flags().StringVar(&rules, "rules", "", "comma-separated rule sets (default all)")
	cmd.Flags().StringVar(&probs, "probs", "0.1,0.3,0.5", "comma-separated fill probabilities")
	cmd.Flags().StringVar(&seeds, "seeds", "1,2,3", "comma-separated seeds")
	cmd.Flags().IntVar(&steps, "steps", 200, "generations per scenario")
	cmd.Flags().IntVar(&workers, "workers", 0, "parallel workers (0 uses every CPU)")
	cmd.Flags().IntVar(&width, "width", 128, "grid width in cells")
	cmd.Flags().IntVar(&height, "height", 96, "grid height in cells")
	return cmd
}

func printResults(w io.Writer, results []sweep.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RULE\tP\tSEED\tINITIAL\tPEAK\tFINAL\tDENSITY\tEXTINCT")
	for _, r := range results {
		extinct := "-"
		if r.Extinct >= 0 {
			extinct = strconv.Itoa(r.Extinct)
		}
		fmt.Fprintf(tw, "%s\t%.2f\t%d\t%d\t%d\t%d\t%.4f\t%s\n",
			r.Rule, r.Probability, r.Seed, r.Initial, r.Peak, r.Final, r.Density, extinct)
	}
	return tw.Flush()
}

func listRules(cmd *cobra.Command, _ []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tSTATES")
	for _, name := range core.RuleNames() {
		rule, err := core.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s\t%d\n", name, rule.States())
	}
	return tw.Flush()
}

func newConfigCmd() *cobra.Command {
	var (
		out     string
		presets bool
	)
	cmd := &cobra.Command{
		Use:   "config",
		Short: "print the resolved configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if presets {
				for _, name := range config.ListPresets() {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if out != "" {
				return config.Save(out, cfg)
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "write to this file instead of stdout")
	cmd.Flags().BoolVar(&presets, "presets", false, "list preset names")
	return cmd
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseFloats(s string) ([]float64, error) {
	parts := splitList(s)
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("bad probability %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func parseInts(s string) ([]int64, error) {
	parts := splitList(s)
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad seed %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}
