package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"kidslearn/internal/ui/theme"
)

// ProgressBar displays a horizontal session progress bar with an
// optional "answered/total" counter.
type ProgressBar struct {
	Label     string
	Percent   float64
	ShowCount bool
	Answered  int
	Total     int
	Width     int
}

// NewProgressBar creates a progress bar over a session counter.
func NewProgressBar(label string, answered, total, width int) ProgressBar {
	percent := 0.0
	if total > 0 {
		percent = float64(answered) / float64(total)
	}
	return ProgressBar{
		Label:     label,
		Percent:   percent,
		ShowCount: true,
		Answered:  answered,
		Total:     total,
		Width:     width,
	}
}

// View renders the progress bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	countWidth := 0
	if p.ShowCount {
		countWidth = 8 // "  10/10"
	}

	barWidth := p.Width - labelWidth - countWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	filledStr := lipgloss.NewStyle().
		Background(theme.Secondary).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if p.ShowCount {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d/%d", p.Answered, p.Total))
	}

	return result
}
