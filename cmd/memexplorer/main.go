package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/memsim/cmd/memexplorer/logger"
	"github.com/joshuapare/memsim/mem/engine"
	"github.com/joshuapare/memsim/mem/snapshot"
)

// Build-time variables (set via -ldflags)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const defaultCapacity = 4096

func main() {
	args := os.Args[1:]
	debugMode := false
	capacity := defaultCapacity

	// Extract flags, leave positional args
	filteredArgs := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--debug" || arg == "-d":
			debugMode = true
		case strings.HasPrefix(arg, "--capacity="):
			n, err := strconv.Atoi(strings.TrimPrefix(arg, "--capacity="))
			if err != nil || n <= 0 {
				fmt.Fprintf(os.Stderr, "Error: bad capacity %q\n", strings.TrimPrefix(arg, "--capacity="))
				os.Exit(1)
			}
			capacity = n
		case arg == "--capacity" || arg == "-c":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "Error: --capacity needs a value")
				os.Exit(1)
			}
			i++
			n, err := strconv.Atoi(args[i])
			if err != nil || n <= 0 {
				fmt.Fprintf(os.Stderr, "Error: bad capacity %q\n", args[i])
				os.Exit(1)
			}
			capacity = n
		case arg == "--help" || arg == "-h":
			printHelp()
			os.Exit(0)
		case arg == "--version" || arg == "-v":
			fmt.Printf("memexplorer %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built: %s\n", date)
			os.Exit(0)
		default:
			filteredArgs = append(filteredArgs, arg)
		}
	}

	// Initialize logger (must be before any logging calls)
	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	statePath := ""
	if len(filteredArgs) > 0 {
		statePath = filteredArgs[0]
	}

	eng, err := openEngine(statePath, capacity)
	if err != nil {
		logger.Error("failed to open partition", "path", statePath, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting memexplorer",
		"path", statePath, "capacity", eng.Capacity(), "debug", debugMode)

	p := tea.NewProgram(
		NewModel(eng, statePath),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("memexplorer exited normally")
}

// openEngine loads an existing snapshot or starts a fresh partition.
// A named but nonexistent state file starts fresh and becomes the save
// target.
func openEngine(statePath string, capacity int) (*engine.Engine, error) {
	if statePath != "" {
		if _, err := os.Stat(statePath); err == nil {
			states, err := snapshot.Load(statePath)
			if err != nil {
				return nil, err
			}
			return engine.NewFromState(states)
		}
	}
	return engine.New(capacity)
}

func printHelp() {
	fmt.Println("memexplorer - Interactive TUI for the memory allocation simulator")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  memexplorer [options] [state-file]")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Launches an interactive terminal UI over a simulated memory partition.")
	fmt.Println("  With a state-file argument the partition is loaded from that snapshot")
	fmt.Println("  (or created on first save if the file does not exist yet).")
	fmt.Println()
	fmt.Println("  Features:")
	fmt.Println("    - Proportional memory bar with owner labels")
	fmt.Println("    - Region table and live derived metrics")
	fmt.Println("    - Usage-history sparkline sampled every second")
	fmt.Println("    - Interactive allocate, free, compact, and simulated bursts")
	fmt.Println("    - Placement and eviction policy switching")
	fmt.Println()
	fmt.Println("  Keys:")
	fmt.Println("    ←/h, →/l    Select region")
	fmt.Println("    a           Allocate (prompts for size and owner)")
	fmt.Println("    d           Free the selected region")
	fmt.Println("    c           Compact the partition")
	fmt.Println("    s           Simulate a burst of random requests")
	fmt.Println("    1-4         Placement: first, best, worst, next fit")
	fmt.Println("    e           Cycle eviction: none, fifo, lru, lfu")
	fmt.Println("    w           Write snapshot to the state file")
	fmt.Println("    ?           Show help")
	fmt.Println("    q           Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -c, --capacity N  Partition size in bytes for a fresh start (default 4096)")
	fmt.Println("  -d, --debug       Enable debug logging to ~/.memexplorer/logs/")
	fmt.Println("  -h, --help        Show this help message")
	fmt.Println("  -v, --version     Show version information")
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  memexplorer")
	fmt.Println("  memexplorer --capacity 65536")
	fmt.Println("  memexplorer session.mem")
	fmt.Println()
	fmt.Println("For non-interactive operations, use the 'memctl' command instead.")
}
