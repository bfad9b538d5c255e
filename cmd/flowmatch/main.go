// Command flowmatch is the front-end for the flowmatch solvers: it loads a
// network or graph definition (YAML) or one of the built-in demo
// instances, runs the requested solver, and prints the result.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/flowmatch/search"
)

// root-level flag values shared by the subcommands.
type rootFlags struct {
	strategy string
	file     string
	demo     bool
	verbose  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "flowmatch",
		Short: "Maximum network flow and maximum matching solvers",
		Long: "flowmatch computes classical combinatorial graph results - maximum\n" +
			"network flow (Ford-Fulkerson) and maximum bipartite matching\n" +
			"(augmenting alternating paths) - over YAML-defined instances.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			logrus.SetLevel(logrus.WarnLevel)
			if flags.verbose {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	var pf *pflag.FlagSet = cmd.PersistentFlags()
	pf.StringVarP(&flags.strategy, "strategy", "s", "bfs", "augmenting-path strategy: bfs or dfs")
	pf.StringVarP(&flags.file, "file", "f", "", "YAML definition to solve")
	pf.BoolVar(&flags.demo, "demo", false, "solve the built-in demo instance")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log every augmentation")

	cmd.AddCommand(newMaxflowCmd(flags), newMatchCmd(flags))

	return cmd
}

// parseStrategy maps the --strategy flag onto a search.Strategy.
func parseStrategy(name string) (search.Strategy, error) {
	switch name {
	case "dfs", "depth-first":
		return search.DepthFirst, nil
	case "bfs", "breadth-first":
		return search.BreadthFirst, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q (want bfs or dfs)", name)
	}
}

// requireInput enforces exactly one of --file and --demo.
func requireInput(flags *rootFlags) error {
	if flags.demo == (flags.file != "") {
		return fmt.Errorf("exactly one of --file and --demo is required")
	}

	return nil
}
