package components

import (
	"charm.land/lipgloss/v2"

	"kidslearn/internal/ui/theme"
)

// Picker is a horizontal segmented selector, used for difficulty
// levels, age bands and play modes. Navigation is handled by the
// owning screen, which calls Prev/Next on its own key bindings.
type Picker struct {
	Label    string
	Options  []string
	Selected int
}

// NewPicker creates a picker with the first option selected.
func NewPicker(label string, options []string) Picker {
	return Picker{Label: label, Options: options}
}

// Prev moves the selection left, stopping at the first option.
func (p *Picker) Prev() {
	if p.Selected > 0 {
		p.Selected--
	}
}

// Next moves the selection right, stopping at the last option.
func (p *Picker) Next() {
	if p.Selected < len(p.Options)-1 {
		p.Selected++
	}
}

// Select jumps to the option at i if it exists.
func (p *Picker) Select(i int) {
	if i >= 0 && i < len(p.Options) {
		p.Selected = i
	}
}

// Value returns the selected option, or "" for an empty picker.
func (p Picker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// View renders the segments side by side.
func (p Picker) View() string {
	var s string
	if p.Label != "" {
		s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(p.Label+":") + " "
	}
	for i, opt := range p.Options {
		if i == p.Selected {
			s += lipgloss.NewStyle().
				Foreground(theme.BgCard).
				Background(theme.Accent).
				Bold(true).
				Padding(0, 1).
				Render(opt)
		} else {
			s += lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Padding(0, 1).
				Render(opt)
		}
		if i < len(p.Options)-1 {
			s += " "
		}
	}
	return s
}
