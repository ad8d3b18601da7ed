package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/memsim/cmd/memexplorer/logger"
	"github.com/joshuapare/memsim/mem/engine"
	"github.com/joshuapare/memsim/mem/snapshot"
)

// Update handles all messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.sample()
		return m, tickCmd()

	case tea.KeyMsg:
		if m.inputMode == AllocMode {
			return m.handleAllocInput(msg)
		}
		return m.handleNormalKey(msg)
	}

	return m, nil
}

// handleAllocInput processes keys while the allocation prompt is open
func (m Model) handleAllocInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.inputMode = NormalMode
		m.input.Blur()
		m.input.SetValue("")
		m.statusMessage = ""
		return m, nil

	case "enter":
		value := m.input.Value()
		m.inputMode = NormalMode
		m.input.Blur()
		m.input.SetValue("")
		m.runAlloc(value)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleNormalKey processes keys in normal mode
func (m Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys

	// Any key dismisses the help overlay
	if m.showHelp && !key.Matches(msg, keys.Quit) {
		m.showHelp = false
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.Quit):
		logger.Info("quitting")
		return m, tea.Quit

	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, keys.Left):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, keys.Right):
		if m.selected < len(m.eng.ListRegions())-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, keys.Home):
		m.selected = 0
		return m, nil

	case key.Matches(msg, keys.End):
		if n := len(m.eng.ListRegions()); n > 0 {
			m.selected = n - 1
		}
		return m, nil

	case key.Matches(msg, keys.Alloc):
		m.inputMode = AllocMode
		m.input.SetValue("")
		m.input.Focus()
		m.statusMessage = ""
		m.err = nil
		return m, textinput.Blink

	case key.Matches(msg, keys.Free):
		m.runFree()
		return m, nil

	case key.Matches(msg, keys.Compact):
		m.eng.Compact()
		m.clampSelection()
		m.sample()
		m.statusMessage = "compacted"
		m.err = nil
		logger.Info("compacted partition")
		return m, nil

	case key.Matches(msg, keys.Simulate):
		m.runSimulate()
		return m, nil

	case key.Matches(msg, keys.Save):
		m.runSave()
		return m, nil

	case key.Matches(msg, keys.FirstFit):
		m.setPlacement(engine.FirstFit)
		return m, nil

	case key.Matches(msg, keys.BestFit):
		m.setPlacement(engine.BestFit)
		return m, nil

	case key.Matches(msg, keys.WorstFit):
		m.setPlacement(engine.WorstFit)
		return m, nil

	case key.Matches(msg, keys.NextFit):
		m.setPlacement(engine.NextFit)
		return m, nil

	case key.Matches(msg, keys.Eviction):
		m.cycleEviction()
		return m, nil
	}

	return m, nil
}

// runAlloc parses a "size [owner]" prompt value and performs the allocation
func (m *Model) runAlloc(value string) {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return
	}

	size, err := strconv.Atoi(fields[0])
	if err != nil {
		m.err = fmt.Errorf("bad size %q", fields[0])
		return
	}

	owner := 0
	if len(fields) > 1 {
		owner, err = strconv.Atoi(fields[1])
		if err != nil {
			m.err = fmt.Errorf("bad owner %q", fields[1])
			return
		}
	}

	start, err := m.eng.Allocate(size, owner)
	if err != nil {
		m.err = err
		logger.Warn("allocation failed", "size", size, "error", err)
		return
	}

	m.err = nil
	m.sample()
	m.statusMessage = fmt.Sprintf("allocated %d bytes at %d", size, start)
	logger.Info("allocated", "size", size, "owner", owner, "start", start)
}

// runFree deallocates the currently selected region
func (m *Model) runFree() {
	regions := m.eng.ListRegions()
	if m.selected >= len(regions) {
		return
	}

	region := regions[m.selected]
	if !region.Occupied {
		m.statusMessage = "selected region is already free"
		return
	}

	if err := m.eng.Deallocate(region.Start); err != nil {
		m.err = err
		return
	}

	m.err = nil
	m.clampSelection()
	m.sample()
	m.statusMessage = fmt.Sprintf("freed block at %d", region.Start)
	logger.Info("freed", "start", region.Start)
}

// runSimulate drives a burst of random allocations
func (m *Model) runSimulate() {
	if err := m.eng.Simulate(burstCount, burstMin, burstMax); err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.clampSelection()
	m.sample()
	m.statusMessage = fmt.Sprintf("simulated %d requests", burstCount)
	logger.Info("simulated burst", "count", burstCount)
}

// runSave writes the current partition state to the snapshot file
func (m *Model) runSave() {
	if m.statePath == "" {
		m.statusMessage = "no state file (start with one to enable saving)"
		return
	}

	if err := snapshot.Save(m.statePath, m.eng.Export()); err != nil {
		m.err = err
		logger.Error("snapshot save failed", "path", m.statePath, "error", err)
		return
	}

	m.err = nil
	m.statusMessage = fmt.Sprintf("saved %s", m.statePath)
	logger.Info("snapshot saved", "path", m.statePath)
}

func (m *Model) setPlacement(p engine.Placement) {
	m.eng.SetPlacement(p)
	m.statusMessage = fmt.Sprintf("placement: %s", p)
	logger.Info("placement changed", "policy", p.String())
}

// cycleEviction steps through none, fifo, lru, lfu
func (m *Model) cycleEviction() {
	next := engine.EvictNone
	switch m.eng.Eviction() {
	case engine.EvictNone:
		next = engine.EvictFIFO
	case engine.EvictFIFO:
		next = engine.EvictLRU
	case engine.EvictLRU:
		next = engine.EvictLFU
	case engine.EvictLFU:
		next = engine.EvictNone
	}
	m.eng.SetEviction(next)
	m.statusMessage = fmt.Sprintf("eviction: %s", next)
	logger.Info("eviction changed", "policy", next.String())
}
