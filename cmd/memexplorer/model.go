package main

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/memsim/mem/engine"
)

// InputMode represents the current input state of the UI
type InputMode int

const (
	NormalMode InputMode = iota
	AllocMode            // prompting for "size [owner]"
)

const (
	historyLimit = 240 // usage samples kept for the sparkline
	tickInterval = time.Second

	burstCount = 10
	burstMin   = 8
	burstMax   = 128
)

// tickMsg drives the periodic usage sample
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model is the main application model
type Model struct {
	eng       *engine.Engine
	statePath string // snapshot target, empty disables 'w'
	keys      KeyMap

	width  int
	height int

	inputMode InputMode
	input     textinput.Model

	selected int // index into the partition's region list

	history []float64 // allocated-percent samples, oldest first

	statusMessage string
	showHelp      bool
	err           error
}

// NewModel creates the initial model for the given engine.
// statePath may be empty, in which case snapshot writes are disabled.
func NewModel(eng *engine.Engine, statePath string) Model {
	ti := textinput.New()
	ti.Placeholder = "size [owner]"
	ti.CharLimit = 32
	ti.Width = 24

	return Model{
		eng:       eng,
		statePath: statePath,
		keys:      DefaultKeyMap(),
		input:     ti,
		history:   []float64{eng.AllocatedPercent()},
	}
}

// Init starts the periodic usage tick
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

// sample records the current allocated percentage in the usage history
func (m *Model) sample() {
	m.history = append(m.history, m.eng.AllocatedPercent())
	if len(m.history) > historyLimit {
		m.history = m.history[len(m.history)-historyLimit:]
	}
}

// clampSelection keeps the selected index inside the region list,
// which shrinks after coalescing and compaction
func (m *Model) clampSelection() {
	n := len(m.eng.ListRegions())
	if n == 0 {
		m.selected = 0
		return
	}
	if m.selected >= n {
		m.selected = n - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}
