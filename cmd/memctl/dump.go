package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newDumpCmd())
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <state-file>",
		Short: "Print the region table of a state file",
		Long: `The dump command prints every region of the partition in address
order: start offset, size, state, and owner.

Example:
  memctl dump state.mem
  memctl dump state.mem --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	path := args[0]

	eng, err := loadEngine(path, "", "")
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(eng.Export())
	}

	printInfo("%-10s %-10s %-6s %s\n", "START", "SIZE", "STATE", "OWNER")
	for _, r := range eng.ListRegions() {
		if r.Occupied {
			printInfo("%-10d %-10d %-6s %d\n", r.Start, r.Size, "used", r.Owner)
		} else {
			printInfo("%-10d %-10d %-6s\n", r.Start, r.Size, "free")
		}
	}
	return nil
}
