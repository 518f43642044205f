package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"votenet-sim/internal/config"
	"votenet-sim/internal/logging"
	"votenet-sim/internal/sweep"
)

var (
	sweepConfigPath string
	sweepSchemaPath string
	sweepOutput     string
	sweepDBPath     string
	sweepPrintOnly  bool
	sweepColor      bool
	sweepTUI        bool
)

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the parameter sweep over a configuration grid",
	Long:  "sweep runs replicate simulations for every cell of the configured parameter grid, aggregates mean and 95% CI per metric, and appends one summary row per cell to the output file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.New(rootVerbose)
		ctx := logging.NewContext(context.Background(), log)

		cfg, err := config.Load(sweepConfigPath, sweepSchemaPath)
		if err != nil {
			return err
		}
		if sweepOutput != "" {
			cfg.Sweep.Output = sweepOutput
		}
		if cfg.Sweep.Seed == 0 {
			cfg.Sweep.Seed = time.Now().UnixNano()
			log.Info("no sweep seed configured, using time-based seed", "seed", cfg.Sweep.Seed)
		}

		engine := sweep.NewEngine(cfg)
		writer, tui, cleanup, err := newRowWriters(cfg)
		if err != nil {
			return err
		}
		defer cleanup()
		if tui != nil {
			engine.SetProgress(tui)
		}

		rows := engine.Run(ctx)
		if err := sweep.WriteAll(writer, rows); err != nil {
			return err
		}

		failed := 0
		for _, r := range rows {
			if r.Failed() {
				failed++
			}
		}
		log.Info("sweep rows written", "rows", len(rows), "partial", failed, "output", cfg.Sweep.Output)
		return nil
	},
}

func init() {
	f := sweepCmd.Flags()
	f.StringVar(&sweepConfigPath, "config", "config/sweep.yaml", "Path to sweep configuration YAML")
	f.StringVar(&sweepSchemaPath, "schema", "schemas/sweep.cue", "Path to CUE schema file")
	f.StringVar(&sweepOutput, "output", "", "Override the summary CSV path from the config")
	f.StringVar(&sweepDBPath, "db", "", "Also persist rows to a SQLite results store at this path")
	f.BoolVar(&sweepPrintOnly, "print-only", false, "Print rows to STDOUT instead of writing the CSV")
	f.BoolVar(&sweepColor, "color", false, "Human-friendly colorized STDOUT rows")
	f.BoolVar(&sweepTUI, "tui", false, "Render live sweep progress in a TUI")
}
