package app

import (
	"fmt"
	"os"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"kidslearn/internal/config"
	"kidslearn/internal/router"
	"kidslearn/internal/screen"
	"kidslearn/internal/screens/home"
	"kidslearn/internal/screens/mathgame"
	"kidslearn/internal/screens/reading"
	"kidslearn/internal/screens/science"
	"kidslearn/internal/store"
	"kidslearn/internal/ui/layout"
)

// Options carries the dependencies the screens need.
type Options struct {
	Records *store.Records
	Cfg     config.Config

	// StartGame skips the home menu and opens a game directly:
	// "math", "reading" or "science". Empty starts at home.
	StartGame string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	keys   keyMap
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen, pushing the
// requested game on top when StartGame is set.
func newAppModel(opts Options) AppModel {
	r := router.New(home.New(opts.Records, opts.Cfg))

	switch opts.StartGame {
	case "math":
		r.Push(mathgame.New(opts.Records, opts.Cfg))
	case "reading":
		r.Push(reading.New(opts.Records, opts.Cfg))
	case "science":
		r.Push(science.New(opts.Records, opts.Cfg))
	}

	return AppModel{
		router: r,
		keys:   defaultKeyMap(),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		case key.Matches(msg, m.keys.Home):
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.HomeScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.width)

	footerHints := m.footerHints(active)
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// footerHints builds the footer from the active screen's own hints when
// it provides them, falling back to the stock navigation hints.
func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	} else {
		hints = append(hints,
			layout.KeyHint{Key: "↑↓", Description: "Navigate"},
			layout.KeyHint{Key: "Enter", Description: "Select"},
		)
	}
	if m.router.Depth() > 1 {
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	return hints
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
