package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCompactCmd())
}

func newCompactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compact <state-file>",
		Short: "Slide all occupied blocks down to offset 0",
		Long: `The compact command relocates every occupied region to be contiguous
from offset 0, preserving relative order and sizes, and merges all free
capacity into a single trailing region.

Example:
  memctl compact state.mem`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompact(args)
		},
	}
	return cmd
}

func runCompact(args []string) error {
	path := args[0]

	eng, err := loadEngine(path, "", "")
	if err != nil {
		return err
	}
	before := eng.FreeRegionCount()
	eng.Compact()
	if err := saveEngine(path, eng); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"free_regions_before": before,
			"free_regions_after":  eng.FreeRegionCount(),
			"free_bytes":          eng.FreeBytes(),
		})
	}
	printInfo("Compacted: %d free region(s) merged into %d (%d bytes free)\n",
		before, eng.FreeRegionCount(), eng.FreeBytes())
	return nil
}
