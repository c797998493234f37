package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/netrepair/experiment"
	"github.com/katalvlaran/netrepair/flow"
)

var inspectCmd = &cobra.Command{
	Use:     "inspect",
	Aliases: []string{"i"},
	Short:   "Print the size, centroid and healthy max flow of a topology",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		net, err := experiment.Healthy(cfg, nil)
		if err != nil {
			return err
		}
		alg, err := flow.ParseAlgorithm(cfg.Experiment.Algorithm)
		if err != nil {
			return err
		}
		opts := flow.DefaultOptions()
		opts.Ctx, opts.Algorithm = cmd.Context(), alg
		f, err := net.MaxFlow(cfg.Experiment.Source, cfg.Experiment.Sink, &opts)
		if err != nil {
			return err
		}

		c := net.Centroid()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "topology:   %s\n", net.Topology().Name())
		fmt.Fprintf(out, "nodes:      %d\n", net.NodeCount())
		fmt.Fprintf(out, "links:      %d\n", net.LinkCount())
		fmt.Fprintf(out, "components: %d\n", net.Components())
		fmt.Fprintf(out, "centroid:   (%.4f, %.4f)\n", c.X, c.Y)
		fmt.Fprintf(out, "max flow:   %d (%d -> %d, %s)\n", f, cfg.Experiment.Source, cfg.Experiment.Sink, alg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
