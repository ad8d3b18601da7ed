package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	allocFit   string
	allocEvict string
)

func init() {
	cmd := newAllocCmd()
	cmd.Flags().StringVar(&allocFit, "fit", "first", "Placement policy (first|best|worst|next)")
	cmd.Flags().StringVar(&allocEvict, "evict", "none", "Eviction policy (none|fifo|lru|lfu)")
	rootCmd.AddCommand(cmd)
}

func newAllocCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alloc <state-file> <size> <owner>",
		Short: "Allocate a block and persist the new layout",
		Long: `The alloc command places a block of the given size for the given owner
using the selected placement policy. When no free region fits and an
eviction policy is selected, occupied regions are evicted until the request
fits or the victim pool is exhausted.

Example:
  memctl alloc state.mem 128 42
  memctl alloc state.mem 128 42 --fit best --evict lru`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlloc(args)
		},
	}
	return cmd
}

func runAlloc(args []string) error {
	path := args[0]
	size, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", args[1], err)
	}
	owner, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid owner %q: %w", args[2], err)
	}

	printVerbose("Loading state: %s\n", path)
	eng, err := loadEngine(path, allocFit, allocEvict)
	if err != nil {
		return err
	}

	start, err := eng.Allocate(size, owner)
	if err != nil {
		return fmt.Errorf("allocation failed: %w", err)
	}
	if err := saveEngine(path, eng); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"start": start,
			"size":  size,
			"owner": owner,
		})
	}
	printInfo("Allocated %d bytes for owner %d at offset %d\n", size, owner, start)
	return nil
}
