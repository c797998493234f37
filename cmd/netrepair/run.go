package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netrepair/experiment"
	"github.com/katalvlaran/netrepair/metrics"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Damage the network and compare repair policies",
	Example: `  netrepair run --gml Kdl.gml --source 52 --sink 725 --mode random --percent 20
  netrepair run --builder grid --size 6 --cols 8 --source 0 --sink 47 --mode geographic --percent 40 --metrics`,
	RunE: runExperiment,
}

func init() {
	f := runCmd.Flags()
	f.String("mode", "", "failure mode: random or geographic")
	f.Float64("percent", 0, "failure percentage")
	f.Int("intervals", 0, "number of flow samples during the campaign")
	f.StringSlice("policy", nil, "repair policies to compare (random, greedy)")
	f.Bool("metrics", false, "dump Prometheus metrics after the run")
	f.String("metrics-out", "", "write the metrics dump to this file instead of stdout")

	rootCmd.AddCommand(runCmd)
}

func runExperiment(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closer, err := newLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer closer.Close()

	net, err := experiment.Prepare(cfg, logger)
	if err != nil {
		return err
	}
	policies, err := experiment.Policies(cfg)
	if err != nil {
		return err
	}
	runner, err := experiment.NewRunner(cfg, logger)
	if err != nil {
		return err
	}
	if cfg.Metrics.Enabled {
		runner.Recorder = metrics.NewRegistry()
	}

	reach, err := net.Reachable(cfg.Experiment.Source)
	if err != nil {
		return err
	}
	logger.Info("network damaged",
		"topology", net.Topology().Name(),
		"nodes", net.NodeCount(),
		"links", net.LinkCount(),
		"broken_nodes", net.BrokenNodes(),
		"broken_links", net.BrokenLinks(),
		"mode", cfg.Failure.Mode,
		"percent", cfg.Failure.Percent,
		"components", net.Components(),
		"sink_reachable", reach.Reached(cfg.Experiment.Sink))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	series, err := runner.Compare(ctx, net, policies...)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := experiment.WriteReport(out, series); err != nil {
		return err
	}
	if cfg.Metrics.Enabled {
		return dumpMetrics(runner.Recorder, cfg.Metrics.Output, out)
	}

	return nil
}

// dumpMetrics writes the registry to path, or to stdout for "" and "-".
func dumpMetrics(reg *metrics.Registry, path string, stdout io.Writer) error {
	if path == "" || path == "-" {
		fmt.Fprintln(stdout)
		return reg.WriteText(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := reg.WriteText(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
