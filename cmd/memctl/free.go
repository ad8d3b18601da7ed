package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newFreeCmd())
}

func newFreeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "free <state-file> <start>",
		Short: "Free the block starting at the given offset",
		Long: `The free command releases the occupied region whose start offset
matches exactly and merges it with any free neighbors.

Example:
  memctl free state.mem 128`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFree(args)
		},
	}
	return cmd
}

func runFree(args []string) error {
	path := args[0]
	start, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid start offset %q: %w", args[1], err)
	}

	eng, err := loadEngine(path, "", "")
	if err != nil {
		return err
	}
	if err := eng.Deallocate(start); err != nil {
		return fmt.Errorf("free failed: %w", err)
	}
	if err := saveEngine(path, eng); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"start":      start,
			"free_bytes": eng.FreeBytes(),
		})
	}
	printInfo("Freed block at offset %d (%d bytes now free)\n", start, eng.FreeBytes())
	return nil
}
