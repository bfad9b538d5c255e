package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/flowmatch/matching"
	"github.com/katalvlaran/flowmatch/netdef"
)

// newMatchCmd builds the `flowmatch match` subcommand.
func newMatchCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "match",
		Short: "Compute a maximum matching of a graph definition",
		Long: "Computes a maximum matching via augmenting alternating paths.\n" +
			"The guarantee is maximum cardinality on bipartite graphs; general\n" +
			"graphs may need blossom shrinking, which this solver does not do.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireInput(flags); err != nil {
				return err
			}
			strategy, err := parseStrategy(flags.strategy)
			if err != nil {
				return err
			}

			g := netdef.CompleteBipartite(3, 4)
			if flags.file != "" {
				if g, err = netdef.LoadGraphFile(flags.file); err != nil {
					return err
				}
			}

			res, err := matching.Maximum(g,
				matching.WithStrategy(strategy),
				matching.WithContext(cmd.Context()),
				matching.WithLogger(logrus.StandardLogger()),
			)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "maximum matching: %d edges (%s)\n", res.Augmentations, strategy)
			for _, p := range res.Pairs() {
				fmt.Fprintf(out, "  %d—%d\n", p[0], p[1])
			}

			return nil
		},
	}
}
