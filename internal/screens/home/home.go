package home

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"kidslearn/internal/config"
	"kidslearn/internal/router"
	"kidslearn/internal/screen"
	"kidslearn/internal/screens/mathgame"
	"kidslearn/internal/screens/reading"
	"kidslearn/internal/screens/results"
	"kidslearn/internal/screens/science"
	"kidslearn/internal/store"
	"kidslearn/internal/ui/components"
	"kidslearn/internal/ui/theme"
)

// HomeScreen is the game picker shown at startup.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen. The science entry carries a badge once
// today's daily challenge is done for the configured age band.
func New(recs *store.Records, cfg config.Config) *HomeScreen {
	today := time.Now().Format(time.DateOnly)

	scienceHint := ""
	if res, ok := recs.DailyResult("science", cfg.Age, today); ok && res.Done {
		scienceHint = "daily done ✓"
	}

	items := []components.MenuItem{
		{Label: "MATH BLASTER", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: mathgame.New(recs, cfg)}
			}
		}},
		{Label: "STORY TIME", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: reading.New(recs, cfg)}
			}
		}},
		{Label: "SCIENCE LAB", Hint: scienceHint, Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: science.New(recs, cfg)}
			}
		}},
		{Label: "RESULTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: results.New(recs)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	banner := theme.Title.Render("KidsLearn") + "\n" +
		theme.Subtitle.Render("Three little games for curious kids")

	menu := theme.Card.Width(36).Render(h.menu.View())

	content := strings.Join([]string{banner, menu}, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
