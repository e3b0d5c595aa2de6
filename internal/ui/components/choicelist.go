package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"kidslearn/internal/ui/theme"
)

// ChoiceList renders a vertical list of answer choices. It only owns the
// cursor; lock state and the chosen index live in the quiz session, which
// is the single source of truth for scoring.
type ChoiceList struct {
	Options []string
	Cursor  int
}

// NewChoiceList creates a choice list over options.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{Options: options}
}

// SetOptions replaces the options and resets the cursor.
func (c *ChoiceList) SetOptions(options []string) {
	c.Options = options
	c.Cursor = 0
}

// Update moves the cursor. Selection itself is handled by the caller on
// enter, so a locked question can simply stop forwarding messages here.
func (c ChoiceList) Update(msg tea.Msg) ChoiceList {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c
	}
	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	}
	return c
}

// View renders the choices. Before locking, the cursor row is
// highlighted. After locking, the correct answer shows green and a wrong
// pick shows red.
func (c ChoiceList) View(correctIndex, chosenIndex int, locked bool) string {
	labels := []string{"A", "B", "C", "D", "E", "F"}

	var s string
	for i, opt := range c.Options {
		label := "?"
		if i < len(labels) {
			label = labels[i]
		}
		prefix := "  "
		if i == c.Cursor && !locked {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case locked && i == correctIndex:
			s += theme.Correct.Render(line) + "\n"
		case locked && i == chosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case locked:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
