package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netrepair/config"
)

var (
	configPath string
	logLevel   string
	logFile    string
	noColor    bool
)

var rootCmd = &cobra.Command{
	Use:   "netrepair",
	Short: "Network degradation and repair simulator",
	Long: `netrepair loads a network topology (Topology Zoo GML or a synthetic layout),
breaks part of it with a random or geographic failure, and repairs it one
component at a time under each configured policy while sampling the
max flow between a source and a sink.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML or TOML config file (defaults built in)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also write JSON logs to this rotated file")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured console logs")

	addTopologyFlags(runCmd)
	addTopologyFlags(inspectCmd)
}

// addTopologyFlags registers the flags shared by every command that builds
// a network.
func addTopologyFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("gml", "", "Topology Zoo GML file")
	f.String("builder", "", "synthetic layout: cycle, path, star, wheel, complete, grid or random")
	f.Int("size", 0, "node count (rows for grid)")
	f.Int("cols", 0, "grid columns")
	f.Float64("prob", 0, "edge probability for the random builder")
	f.Int("max-repair-time", 0, "upper bound of drawn repair times")
	f.Int("max-link-capacity", 0, "upper bound of drawn link capacities")
	f.Int("source", 0, "source node index")
	f.Int("sink", 0, "sink node index")
	f.Int64("seed", 0, "random seed (0 selects the default seed)")
	f.String("algorithm", "", "max flow algorithm: edmonds-karp, dinic or ford-fulkerson")
}

// loadConfig reads the config file (or the defaults) and applies every flag
// the user set explicitly.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return config.Config{}, err
		}
	}

	f := cmd.Flags()
	set := func(name string, apply func()) {
		if fl := f.Lookup(name); fl != nil && fl.Changed {
			apply()
		}
	}
	set("gml", func() { cfg.Topology.GML, _ = f.GetString("gml"); cfg.Topology.Builder = "" })
	set("builder", func() {
		cfg.Topology.Builder, _ = f.GetString("builder")
		if !f.Changed("gml") {
			cfg.Topology.GML = ""
		}
	})
	set("size", func() { cfg.Topology.Size, _ = f.GetInt("size") })
	set("cols", func() { cfg.Topology.Cols, _ = f.GetInt("cols") })
	set("prob", func() { cfg.Topology.Probability, _ = f.GetFloat64("prob") })
	set("max-repair-time", func() { cfg.Topology.MaxRepairTime, _ = f.GetInt("max-repair-time") })
	set("max-link-capacity", func() { cfg.Topology.MaxLinkCapacity, _ = f.GetInt("max-link-capacity") })
	set("source", func() { cfg.Experiment.Source, _ = f.GetInt("source") })
	set("sink", func() { cfg.Experiment.Sink, _ = f.GetInt("sink") })
	set("seed", func() { cfg.Experiment.Seed, _ = f.GetInt64("seed") })
	set("algorithm", func() { cfg.Experiment.Algorithm, _ = f.GetString("algorithm") })
	set("mode", func() { cfg.Failure.Mode, _ = f.GetString("mode") })
	set("percent", func() { cfg.Failure.Percent, _ = f.GetFloat64("percent") })
	set("intervals", func() { cfg.Experiment.Intervals, _ = f.GetInt("intervals") })
	set("policy", func() { cfg.Experiment.Policies, _ = f.GetStringSlice("policy") })
	set("metrics", func() { cfg.Metrics.Enabled, _ = f.GetBool("metrics") })
	set("metrics-out", func() { cfg.Metrics.Output, _ = f.GetString("metrics-out"); cfg.Metrics.Enabled = true })

	if logLevel != "" {
		cfg.Log.Level = strings.ToLower(logLevel)
	}
	if logFile != "" {
		cfg.Log.File = logFile
	}
	if noColor {
		cfg.Log.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

func parseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return l, nil
}
