package results

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"kidslearn/internal/content"
	"kidslearn/internal/screen"
	"kidslearn/internal/store"
	"kidslearn/internal/ui/layout"
	"kidslearn/internal/ui/theme"
)

// historyDays is how far back the daily challenge table looks.
const historyDays = 7

// ResultsScreen shows practice progress and the recent daily challenge
// history, all read straight from the usage records.
type ResultsScreen struct {
	recs *store.Records
	now  time.Time
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen.
func New(recs *store.Records) *ResultsScreen {
	return &ResultsScreen{recs: recs, now: time.Now()}
}

func (r *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (r *ResultsScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) {
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, r.renderProgress())
	sections = append(sections, r.renderDailyHistory())

	content := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (r *ResultsScreen) Title() string {
	return "Results"
}

// KeyHints is empty: the screen is read-only, so the footer only shows
// the global navigation keys.
func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	return nil
}

// renderProgress shows how much of each practice pool has been seen in
// the current no-repeat cycle.
func (r *ResultsScreen) renderProgress() string {
	type row struct {
		label string
		game  string
		bank  *content.Bank
		ages  []content.AgeTag
	}
	rows := []row{
		{"Stories read", "reading", content.Stories(), content.AgeTags},
		{"Science cards seen", "science", content.Science(), []content.AgeTag{content.Age6to8, content.Age8to10}},
	}

	var lines []string
	lines = append(lines, theme.Title.Width(44).Render("Practice progress"))
	lines = append(lines, "")
	for _, rw := range rows {
		for _, age := range rw.ages {
			pool := rw.bank.ForAge(age)
			if len(pool) == 0 {
				continue
			}
			used := len(r.recs.UsedIDs(rw.game, string(age)))
			lines = append(lines, theme.Body.Render(
				fmt.Sprintf("%-22s %s  %d/%d", rw.label, age, used, len(pool))))
		}
	}

	return theme.Card.Width(50).Render(strings.Join(lines, "\n"))
}

// renderDailyHistory lists the science daily results for the last week.
func (r *ResultsScreen) renderDailyHistory() string {
	var lines []string
	lines = append(lines, theme.Title.Width(44).Render("Daily challenges"))
	lines = append(lines, "")

	any := false
	for i := 0; i < historyDays; i++ {
		date := r.now.AddDate(0, 0, -i).Format(time.DateOnly)
		for _, age := range []content.AgeTag{content.Age6to8, content.Age8to10} {
			res, ok := r.recs.DailyResult("science", string(age), date)
			if !ok || !res.Done {
				continue
			}
			any = true
			lines = append(lines, theme.Body.Render(
				fmt.Sprintf("%s  science %-5s  ", date, age))+
				theme.Correct.Render(fmt.Sprintf("score %d", res.Score)))
		}
	}
	if !any {
		lines = append(lines, theme.Subtitle.Width(44).Render("No daily challenges finished yet."))
	}

	return theme.Card.Width(50).Render(strings.Join(lines, "\n"))
}
