package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"gridlife/internal/app"
	"gridlife/internal/config"
	"gridlife/internal/control"
	"gridlife/internal/core"
	"gridlife/internal/engine"
	_ "gridlife/internal/sims/briansbrain"
	_ "gridlife/internal/sims/life"
)

var (
	configFile string
	preset     string
	overrides  []string
	seed       int64
	ruleName   string
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("gridlife: ")

	rootCmd := &cobra.Command{
		Use:           "gridlife",
		Short:         "toroidal cellular automata with switchable rule sets",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to the window when no subcommand is given.
			return runGUI(cmd, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "YAML config file")
	pf.StringVar(&preset, "preset", "", "named preset (list with config --presets)")
	pf.StringArrayVar(&overrides, "set", nil, "override a config key, e.g. --set tick=100ms")
	pf.Int64Var(&seed, "seed", 0, "random seed")
	pf.StringVar(&ruleName, "rule", "", "initial rule set")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "gui",
			Short: "open the interactive window",
			Args:  cobra.NoArgs,
			RunE:  runGUI,
		},
		&cobra.Command{
			Use:   "tui",
			Short: "run in the terminal",
			Args:  cobra.NoArgs,
			RunE:  runTUI,
		},
		newRunCmd(),
		newSweepCmd(),
		&cobra.Command{
			Use:   "rules",
			Short: "list registered rule sets",
			Args:  cobra.NoArgs,
			RunE:  listRules,
		},
		newConfigCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// loadConfig layers defaults, the preset, the YAML file, --set overrides and
// the shorthand flags, in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("%w: unknown preset %q (have %v)", config.ErrInvalid, preset, config.ListPresets())
		}
	}
	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if len(overrides) > 0 {
		kv, err := config.ParseOverrides(overrides)
		if err != nil {
			return nil, err
		}
		if err := cfg.Apply(kv); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("rule") {
		cfg.Rule = ruleName
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newSession builds the engine in its startup state: every cell off, then
// one random fill at the initial density.
func newSession(cfg *config.Config) (*control.Controller, error) {
	rule, err := core.Lookup(cfg.Rule)
	if err != nil {
		return nil, err
	}
	e := engine.New(cfg.GridSize(), cfg.Display.CellSize, rule, cfg.Seed)
	e.Initialize(rule.Off())
	e.Randomize(cfg.Sim.InitialDensity)
	return control.New(e, control.Options{
		Interval:      cfg.Sim.Tick,
		ReseedDensity: cfg.Sim.ReseedDensity,
		Paused:        cfg.Sim.Paused,
	}), nil
}

func runGUI(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	ctl, err := newSession(cfg)
	if err != nil {
		return err
	}
	size := cfg.GridSize()
	log.Printf("%s on %dx%d cells, seed %d", cfg.Rule, size.W, size.H, cfg.Seed)
	return app.Run(cfg, ctl)
}
