package main

import (
	"strings"
	"testing"
)

// TestSparklineMapsSamplesToRunes tests the usage-to-rune mapping
func TestSparklineMapsSamplesToRunes(t *testing.T) {
	got := renderSparkline([]float64{0, 50, 100}, 10)
	if got != "▁▅█" {
		t.Errorf("Sparkline = %q, want %q", got, "▁▅█")
	}
}

// TestSparklineTruncatesToWidth tests that only the newest samples render
func TestSparklineTruncatesToWidth(t *testing.T) {
	history := []float64{0, 0, 0, 100, 100}
	got := renderSparkline(history, 2)
	if got != "██" {
		t.Errorf("Sparkline = %q, want the two newest samples", got)
	}
}

// TestViewShowsRegionTable tests that the main view lists region state
func TestViewShowsRegionTable(t *testing.T) {
	helper := NewTestHelper(1024)
	helper.SendWindowSize(120, 40)

	if _, err := helper.GetModel().eng.Allocate(128, 9); err != nil {
		t.Fatalf("Allocate: %v", err)
	}

	view := helper.GetModel().View()
	for _, want := range []string{"START", "used", "free", "memexplorer"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

// TestViewShowsPrompt tests the allocation prompt rendering
func TestViewShowsPrompt(t *testing.T) {
	helper := NewTestHelper(1024)
	helper.SendWindowSize(120, 40)

	helper.SendKeyRune('a')

	if !strings.Contains(helper.GetModel().View(), "alloc>") {
		t.Error("View should show the allocation prompt")
	}
}

// TestHelpViewListsBindings tests the help overlay content
func TestHelpViewListsBindings(t *testing.T) {
	helper := NewTestHelper(1024)
	helper.SendWindowSize(120, 40)

	helper.SendKeyRune('?')

	view := helper.GetModel().View()
	for _, want := range []string{"allocate", "compact", "cycle eviction", "quit"} {
		if !strings.Contains(view, want) {
			t.Errorf("Help view missing %q", want)
		}
	}
}
