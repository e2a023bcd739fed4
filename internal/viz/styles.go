package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00ffff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	StatusRunning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffaa00"))

	StatusDone = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ff88"))

	StatusFailed = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))

	MetricLabel = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	MetricValue = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444466")).
		Padding(0, 1)

	barFull  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88"))
	barEmpty = lipgloss.NewStyle().Foreground(lipgloss.Color("#444466"))
)

// Field is one labelled line of a summary.
type Field struct {
	Label string
	Value string
}

// Summary renders fields as an aligned label/value panel under title.
func Summary(title string, fields []Field) string {
	w := 0
	for _, f := range fields {
		if len(f.Label) > w {
			w = len(f.Label)
		}
	}

	lines := make([]string, 0, len(fields)+1)
	lines = append(lines, Title.Render(title))
	for _, f := range fields {
		label := MetricLabel.Render(f.Label + strings.Repeat(" ", w-len(f.Label)))
		lines = append(lines, label+"  "+MetricValue.Render(f.Value))
	}
	return Panel.Render(strings.Join(lines, "\n"))
}

// ProgressBar renders a bar of width cells, percent in [0, 1].
func ProgressBar(percent float64, width int) string {
	filled := int(percent * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return barFull.Render(strings.Repeat("█", filled)) + barEmpty.Render(strings.Repeat("░", width-filled))
}
