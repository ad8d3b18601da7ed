package main

import (
	"github.com/joshuapare/memsim/mem/engine"
	"github.com/spf13/cobra"
)

var initCapacity int

func init() {
	cmd := newInitCmd()
	cmd.Flags().IntVar(&initCapacity, "capacity", 1024, "Total address-space size in bytes")
	rootCmd.AddCommand(cmd)
}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init <state-file>",
		Short: "Create a state file with a single free region",
		Long: `The init command creates a new snapshot whose partition is one free
region spanning the whole capacity.

Example:
  memctl init state.mem --capacity 4096`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(args)
		},
	}
	return cmd
}

func runInit(args []string) error {
	path := args[0]

	eng, err := engine.New(initCapacity)
	if err != nil {
		return err
	}
	if err := saveEngine(path, eng); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":     path,
			"capacity": initCapacity,
		})
	}
	printInfo("Initialized %s with %d bytes of free space\n", path, initCapacity)
	return nil
}
