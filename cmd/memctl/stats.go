package main

import (
	"os"

	"github.com/joshuapare/memsim/mem/report"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newStatsCmd())
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <state-file>",
		Short: "Show fragmentation and usage statistics",
		Long: `The stats command reports layout-derived metrics for a state file:
capacity, allocated and free bytes, largest free region, and the
count-based fragmentation ratio. Request counters reflect the current
process only, so they are zero for a freshly loaded snapshot.

Example:
  memctl stats state.mem
  memctl stats state.mem --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args)
		},
	}
	return cmd
}

func runStats(args []string) error {
	path := args[0]

	printVerbose("Loading state: %s\n", path)
	eng, err := loadEngine(path, "", "")
	if err != nil {
		return err
	}

	r := report.Collect(eng)
	if jsonOut {
		return printJSON(r)
	}
	r.WriteText(os.Stdout)
	return nil
}
