package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"votenet-sim/internal/config"
	"votenet-sim/internal/logging"
	"votenet-sim/internal/scenario"
	"votenet-sim/internal/sim"
)

var (
	simRun           config.Run
	simScenario      string
	simScenariosPath string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a single relay-chain simulation",
	Long:  "simulate pushes a sequence of votes through the Relay -> Byzantine -> Collector chain once and prints the run summary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.New(rootVerbose)

		run := simRun
		if simScenario != "" {
			presets := scenario.BuiltIn()
			if simScenariosPath != "" {
				loaded, err := scenario.Load(simScenariosPath)
				if err != nil {
					return err
				}
				for _, s := range loaded {
					presets[s.Name] = s
				}
			}
			preset, ok := presets[simScenario]
			if !ok {
				return fmt.Errorf("unknown scenario %q", simScenario)
			}
			log.Info("using scenario", "name", preset.Name, "description", preset.Description)
			run = preset.Run
			run.Seed = simRun.Seed
		}
		run.ApplyDefaults()
		if run.Seed == 0 {
			run.Seed = time.Now().UnixNano()
		}

		cfg := sim.FromRun(run)
		runID := uuid.New().String()
		log.Info("starting run",
			"run_id", runID,
			"votes", cfg.Votes,
			"failure_rate", cfg.FailureRate,
			"base_latency", cfg.BaseLatency,
			"dos", cfg.DoSAttack,
			"replication_factor", cfg.ReplicationFactor,
			"seed", run.Seed,
		)

		res, err := sim.Run(cfg)
		if err != nil {
			return err
		}
		log.Info("run finished",
			"run_id", runID,
			"accepted", res.Accepted,
			"tampered", res.TamperedDetected,
			"simulated_time", res.Elapsed,
		)
		sim.WriteSummary(os.Stdout, res)
		return nil
	},
}

func init() {
	f := simulateCmd.Flags()
	f.IntVar(&simRun.Votes, "votes", 1000, "Number of votes to replay")
	f.Float64Var(&simRun.FailureRate, "failure-rate", 0, "Baseline loss probability on the first hop")
	f.IntVar(&simRun.BaseLatencyMS, "base-latency-ms", 5, "Base hop latency in milliseconds")
	f.BoolVar(&simRun.DoSAttack, "dos", false, "Enable random DoS escalation")
	f.IntVar(&simRun.ReplicationFactor, "replication-factor", 1, "Independent forwarding attempts per vote")
	f.BoolVar(&simRun.Jitter, "jitter", false, "Add uniform jitter to hop delays")
	f.BoolVar(&simRun.BurstDrop, "burst-drop", false, "Enable bursty outages")
	f.IntVar(&simRun.BurstLength, "burst-len", 50, "Votes per burst outage")
	f.Float64Var(&simRun.BurstFailureRate, "burst-failure-rate", 0.5, "Loss probability while a burst is active")
	f.Float64Var(&simRun.TamperProbability, "tamper-probability", 0, "Byzantine tamper probability on the middle hop")
	f.Int64Var(&simRun.Seed, "seed", 0, "Random seed (0 = time-based)")
	f.StringVar(&simScenario, "scenario", "", "Run a named scenario preset instead of individual flags")
	f.StringVar(&simScenariosPath, "scenarios", "", "Path to a YAML file with additional scenario presets")
}
