package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joshuapare/memsim/mem/engine"
	"github.com/joshuapare/memsim/mem/report"
)

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// View renders the entire UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder

	// Header
	header := headerStyle.Render("memexplorer") + " " +
		policyStyle.Render(fmt.Sprintf("%s / %s", m.eng.Placement(), m.eng.Eviction()))
	b.WriteString(header)
	b.WriteString("\n")

	innerWidth := m.width - 4
	if innerWidth < 16 {
		innerWidth = 16
	}

	regions := m.eng.ListRegions()

	// Memory bar
	bar := renderMemoryBar(regions, m.eng.Capacity(), innerWidth, m.selected)
	b.WriteString(paneStyle.Width(m.width - 2).Render(bar))
	b.WriteString("\n")

	// Region table and metrics side by side
	table := m.renderRegionTable(regions)
	metrics := m.renderMetrics(innerWidth / 2)
	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		paneStyle.Render(table),
		paneStyle.Render(metrics),
	)
	b.WriteString(panes)
	b.WriteString("\n")

	// Status bar or input prompt
	b.WriteString(m.renderStatus())

	return b.String()
}

// renderMemoryBar draws the partition as a row of cells, one run per
// region, scaled to the bar width. Every region gets at least one cell
// so small blocks stay visible.
func renderMemoryBar(regions []engine.Region, capacity, width, selected int) string {
	if capacity <= 0 || len(regions) == 0 {
		return freeCellStyle.Render(strings.Repeat(" ", width))
	}

	var b strings.Builder
	for i, r := range regions {
		startCol := r.Start * width / capacity
		endCol := r.End() * width / capacity
		cells := endCol - startCol
		if cells < 1 {
			cells = 1
		}

		label := strings.Repeat(" ", cells)
		if r.Occupied && cells >= 2 {
			id := fmt.Sprintf("%d", r.Owner)
			if len(id) < cells {
				pad := cells - len(id)
				label = strings.Repeat(" ", pad/2) + id + strings.Repeat(" ", pad-pad/2)
			}
		}

		style := freeCellStyle
		if r.Occupied {
			style = occupiedCellStyle
		}
		if i == selected {
			style = selectedCellStyle
		}
		b.WriteString(style.Render(label))
	}

	return b.String()
}

// renderRegionTable lists regions with the selection highlighted
func (m Model) renderRegionTable(regions []engine.Region) string {
	var b strings.Builder
	b.WriteString(tableHeaderStyle.Render(fmt.Sprintf("%-8s %-8s %-6s %-6s", "START", "SIZE", "STATE", "OWNER")))
	b.WriteString("\n")

	// Keep the table inside the pane on short terminals
	maxRows := m.height - 12
	if maxRows < 4 {
		maxRows = 4
	}

	first := 0
	if m.selected >= maxRows {
		first = m.selected - maxRows + 1
	}

	for i := first; i < len(regions) && i < first+maxRows; i++ {
		r := regions[i]
		state, owner := "free", "-"
		if r.Occupied {
			state = "used"
			owner = fmt.Sprintf("%d", r.Owner)
		}
		row := fmt.Sprintf("%-8d %-8d %-6s %-6s", r.Start, r.Size, state, owner)

		style := tableRowStyle
		if i == m.selected {
			style = tableSelectedStyle
		}
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderMetrics shows the derived metrics plus the usage sparkline
func (m Model) renderMetrics(width int) string {
	r := report.Collect(m.eng)

	line := func(label, value string) string {
		return metricLabelStyle.Render(label) + metricValueStyle.Render(value) + "\n"
	}

	var b strings.Builder
	b.WriteString(line("Capacity", fmt.Sprintf("%d bytes", r.Capacity)))
	b.WriteString(line("Allocated", fmt.Sprintf("%d bytes (%.1f%%)", r.AllocatedBytes, r.AllocatedPercent)))
	b.WriteString(line("Largest free", fmt.Sprintf("%d bytes", r.LargestFree)))
	b.WriteString(line("Fragmentation", fmt.Sprintf("%.2f", r.Fragmentation)))
	b.WriteString(line("Requests", fmt.Sprintf("%d (%d failed)", r.TotalRequests, r.FailedRequests)))
	b.WriteString(line("Success rate", fmt.Sprintf("%.1f%%", r.SuccessRate*100)))
	b.WriteString(line("Compactions", fmt.Sprintf("%d", r.Compactions)))
	b.WriteString("\n")
	b.WriteString(metricLabelStyle.Render("Usage"))
	b.WriteString(sparklineStyle.Render(renderSparkline(m.history, width-16)))

	return b.String()
}

// renderSparkline maps usage samples (0-100) onto block characters,
// showing the most recent width samples
func renderSparkline(history []float64, width int) string {
	if width < 1 {
		width = 1
	}
	if len(history) > width {
		history = history[len(history)-width:]
	}

	var b strings.Builder
	for _, pct := range history {
		idx := int(pct / 100 * float64(len(sparkRunes)))
		if idx >= len(sparkRunes) {
			idx = len(sparkRunes) - 1
		}
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(sparkRunes[idx])
	}

	return b.String()
}

// renderStatus draws the bottom bar: prompt, error, message, or key hints
func (m Model) renderStatus() string {
	if m.inputMode == AllocMode {
		return statusStyle.Render(promptStyle.Render("alloc> ") + m.input.View())
	}

	if m.err != nil {
		return statusStyle.Render(errorStyle.Render(m.err.Error()))
	}

	if m.statusMessage != "" {
		return statusStyle.Render(m.statusMessage)
	}

	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, binding := range m.keys.ShortHelp() {
		hints = append(hints, fmt.Sprintf("%s %s", binding.Help().Key, binding.Help().Desc))
	}
	return statusStyle.Render(helpStyle.Render(strings.Join(hints, " • ")))
}

// renderHelp draws the full-screen help overlay
func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(helpTitleStyle.Render("memexplorer help"))
	b.WriteString("\n")

	for _, group := range m.keys.FullHelp() {
		for _, binding := range group {
			b.WriteString(helpKeyStyle.Render(binding.Help().Key))
			b.WriteString(helpDescStyle.Render(binding.Help().Desc))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(statusStyle.Render("press any key to close"))
	return b.String()
}
