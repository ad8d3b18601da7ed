package main

import (
	"os"

	"github.com/joshuapare/memsim/mem/report"
	"github.com/spf13/cobra"
)

var (
	simCount int
	simMin   int
	simMax   int
	simSeed  int64
	simFit   string
	simEvict string
)

func init() {
	cmd := newSimulateCmd()
	cmd.Flags().IntVarP(&simCount, "count", "n", 10, "Number of allocation requests to issue")
	cmd.Flags().IntVar(&simMin, "min", 8, "Minimum request size in bytes")
	cmd.Flags().IntVar(&simMax, "max", 128, "Maximum request size in bytes")
	cmd.Flags().Int64Var(&simSeed, "seed", 0, "Random seed (0 uses a time-based seed)")
	cmd.Flags().StringVar(&simFit, "fit", "first", "Placement policy (first|best|worst|next)")
	cmd.Flags().StringVar(&simEvict, "evict", "none", "Eviction policy (none|fifo|lru|lfu)")
	rootCmd.AddCommand(cmd)
}

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate <state-file>",
		Short: "Issue a burst of random allocation requests",
		Long: `The simulate command drives the allocator with uniformly random request
sizes and random owner identifiers, then reports the run's aggregate
statistics. The resulting layout is persisted back to the state file.

Example:
  memctl simulate state.mem -n 50 --min 16 --max 256
  memctl simulate state.mem -n 50 --seed 42 --fit worst --evict fifo`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(args)
		},
	}
	return cmd
}

func runSimulate(args []string) error {
	path := args[0]

	eng, err := loadEngine(path, simFit, simEvict)
	if err != nil {
		return err
	}
	if simSeed != 0 {
		eng.Seed(simSeed)
	}

	printVerbose("Simulating %d requests of %d-%d bytes\n", simCount, simMin, simMax)
	if err := eng.Simulate(simCount, simMin, simMax); err != nil {
		return err
	}
	if err := saveEngine(path, eng); err != nil {
		return err
	}

	r := report.Collect(eng)
	if jsonOut {
		return printJSON(r)
	}
	printInfo("Simulated %d request(s)\n\n", simCount)
	if !quiet {
		r.WriteText(os.Stdout)
	}
	return nil
}
