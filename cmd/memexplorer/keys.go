package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	// Navigation
	Left  key.Binding
	Right key.Binding
	Home  key.Binding
	End   key.Binding

	// Actions
	Alloc    key.Binding
	Free     key.Binding
	Compact  key.Binding
	Simulate key.Binding
	Save     key.Binding

	// Policy switching
	FirstFit key.Binding
	BestFit  key.Binding
	WorstFit key.Binding
	NextFit  key.Binding
	Eviction key.Binding

	Esc  key.Binding
	Help key.Binding
	Quit key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous region"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next region"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first region"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last region"),
		),

		// Actions
		Alloc: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "allocate"),
		),
		Free: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "free selected"),
		),
		Compact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "compact"),
		),
		Simulate: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "simulate burst"),
		),
		Save: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "write snapshot"),
		),

		// Policy switching
		FirstFit: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "first-fit"),
		),
		BestFit: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "best-fit"),
		),
		WorstFit: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "worst-fit"),
		),
		NextFit: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "next-fit"),
		),
		Eviction: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "cycle eviction"),
		),

		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Alloc,
		k.Free,
		k.Compact,
		k.Help,
		k.Quit,
	}
}

// FullHelp returns all key bindings for the full help view
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Home, k.End},
		{k.Alloc, k.Free, k.Compact, k.Simulate, k.Save},
		{k.FirstFit, k.BestFit, k.WorstFit, k.NextFit, k.Eviction},
		{k.Help, k.Quit},
	}
}
