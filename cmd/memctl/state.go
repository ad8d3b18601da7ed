package main

import (
	"fmt"

	"github.com/joshuapare/memsim/mem/engine"
	"github.com/joshuapare/memsim/mem/snapshot"
)

// loadEngine reads the snapshot at path into a fresh engine and applies the
// requested policies. Empty policy strings keep the engine defaults.
func loadEngine(path, fit, evict string) (*engine.Engine, error) {
	states, err := snapshot.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load state file: %w", err)
	}
	eng, err := engine.NewFromState(states)
	if err != nil {
		return nil, fmt.Errorf("failed to import state file: %w", err)
	}
	if fit != "" {
		p, err := engine.ParsePlacement(fit)
		if err != nil {
			return nil, err
		}
		eng.SetPlacement(p)
	}
	if evict != "" {
		p, err := engine.ParseEviction(evict)
		if err != nil {
			return nil, err
		}
		eng.SetEviction(p)
	}
	return eng, nil
}

// saveEngine persists the engine's partition back to path.
func saveEngine(path string, eng *engine.Engine) error {
	if err := snapshot.Save(path, eng.Export()); err != nil {
		return fmt.Errorf("failed to save state file: %w", err)
	}
	return nil
}
