package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmatch/flow"
	"github.com/katalvlaran/flowmatch/netdef"
)

// newMaxflowCmd builds the `flowmatch maxflow` subcommand.
func newMaxflowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "maxflow",
		Short: "Compute the maximum flow of a network definition",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireInput(flags); err != nil {
				return err
			}
			strategy, err := parseStrategy(flags.strategy)
			if err != nil {
				return err
			}

			net := netdef.ClassicNetwork()
			if flags.file != "" {
				if net, err = netdef.LoadNetworkFile(flags.file); err != nil {
					return err
				}
			}

			res, err := flow.MaxFlow(net,
				flow.WithStrategy(strategy),
				flow.WithContext(cmd.Context()),
				flow.WithLogger(logrus.StandardLogger()),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "max flow %d→%d: %d (%d augmentations, %s)\n",
				net.Source(), net.Sink(), res.Value, res.Iterations, strategy)
			for _, e := range res.Flow.Edges() {
				fmt.Fprintf(out, "  %d→%d: %d/%d\n", e.From, e.To, res.Flow.Get(e), net.Capacity(e))
			}

			reach, cut, err := flow.MinCut(net, res.Flow)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "min cut (source side %v):\n", reach.Values())
			for _, e := range cut.Edges() {
				fmt.Fprintf(out, "  %d→%d: %d\n", e.From, e.To, cut.Get(e))
			}

			return nil
		},
	}
}
