package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/memsim/mem/engine"
)

// TestHelper wraps a Model for driving the update loop in tests
type TestHelper struct {
	model Model
}

// NewTestHelper creates a helper around a fresh partition
func NewTestHelper(capacity int) *TestHelper {
	eng, err := engine.New(capacity)
	if err != nil {
		panic(err)
	}
	return &TestHelper{model: NewModel(eng, "")}
}

// Send delivers a message through the update loop
func (h *TestHelper) Send(msg tea.Msg) {
	updated, _ := h.model.Update(msg)
	h.model = updated.(Model)
}

// SendWindowSize simulates a terminal resize
func (h *TestHelper) SendWindowSize(width, height int) {
	h.Send(tea.WindowSizeMsg{Width: width, Height: height})
}

// SendKey simulates a special key press
func (h *TestHelper) SendKey(keyType tea.KeyType) {
	h.Send(tea.KeyMsg{Type: keyType})
}

// SendKeyRune simulates a character key press
func (h *TestHelper) SendKeyRune(r rune) {
	h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// TypeString simulates typing a string rune by rune
func (h *TestHelper) TypeString(s string) {
	for _, r := range s {
		h.SendKeyRune(r)
	}
}

// GetModel returns the current model state
func (h *TestHelper) GetModel() Model {
	return h.model
}
