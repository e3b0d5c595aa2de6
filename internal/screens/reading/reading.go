package reading

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"kidslearn/internal/config"
	"kidslearn/internal/content"
	"kidslearn/internal/deck"
	"kidslearn/internal/quiz"
	"kidslearn/internal/screen"
	"kidslearn/internal/store"
	"kidslearn/internal/ui/components"
	"kidslearn/internal/ui/layout"
	"kidslearn/internal/ui/theme"
)

// ReadingScreen runs a story comprehension session. Stories are drawn
// from the bank without repeats until the whole age band has been read.
type ReadingScreen struct {
	recs    *store.Records
	cfg     config.Config
	bank    *content.Bank
	sess    *quiz.Session
	choices components.ChoiceList
	picker  components.Picker
}

var _ screen.Screen = (*ReadingScreen)(nil)
var _ screen.KeyHintProvider = (*ReadingScreen)(nil)

// New creates the reading game for the configured age band.
func New(recs *store.Records, cfg config.Config) *ReadingScreen {
	r := &ReadingScreen{
		recs: recs,
		cfg:  cfg,
		bank: content.Stories(),
	}

	r.picker = components.NewPicker("Age", ageLabels())
	r.picker.Select(indexOfAge(cfg.AgeTag()))

	r.startSession(cfg.AgeTag())
	return r
}

func ageLabels() []string {
	labels := make([]string, len(content.AgeTags))
	for i, tag := range content.AgeTags {
		labels[i] = string(tag)
	}
	return labels
}

func indexOfAge(age content.AgeTag) int {
	for i, tag := range content.AgeTags {
		if tag == age {
			return i
		}
	}
	return 0
}

// startSession builds a fresh practice session for the age band. The
// usage record carries over, so stories read before stay excluded.
func (r *ReadingScreen) startSession(age content.AgeTag) {
	eng := deck.NewEngine(r.bank, r.recs, nil)
	src := quiz.NewDeckSource(eng, age, deck.ModePractice, time.Now().Format(time.DateOnly))
	r.sess = quiz.NewSession(src, r.recs, quiz.Params{
		Game:  "reading",
		Age:   age,
		Mode:  deck.ModePractice,
		Today: time.Now().Format(time.DateOnly),
		Total: r.cfg.Total,
	})
	r.syncChoices()
}

func (r *ReadingScreen) Init() tea.Cmd {
	return nil
}

func (r *ReadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}

	if kmsg.String() == "tab" {
		r.picker.Select((r.picker.Selected + 1) % len(r.picker.Options))
		r.startSession(content.AgeTag(r.picker.Value()))
		return r, nil
	}

	if r.sess.Finished() {
		if kmsg.String() == "r" {
			r.sess.Restart()
			r.syncChoices()
		}
		return r, nil
	}

	if r.sess.State.Locked {
		switch kmsg.String() {
		case "enter":
			r.sess.Advance()
			r.syncChoices()
		}
		return r, nil
	}

	switch kmsg.String() {
	case "enter":
		r.sess.SelectChoice(r.choices.Cursor)
	default:
		r.choices = r.choices.Update(msg)
	}
	return r, nil
}

func (r *ReadingScreen) syncChoices() {
	if _, q, ok := r.sess.Current(); ok {
		r.choices.SetOptions(q.Choices)
	}
}

func (r *ReadingScreen) View(width, height int) string {
	if r.sess.Finished() {
		return renderSummary(r.sess, width, height)
	}

	item, q, ok := r.sess.Current()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Subtitle.Render("No stories for this age band yet."))
	}

	cardWidth := 62
	if cardWidth > width-4 {
		cardWidth = width - 4
	}
	innerWidth := cardWidth - 6

	var sections []string
	sections = append(sections, r.picker.View())
	sections = append(sections,
		components.NewProgressBar("Question", r.sess.State.Answered, r.sess.Total(), 44).View())

	story := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(item.Title) +
		"\n\n" +
		theme.Body.Width(innerWidth).Render(item.Body)
	sections = append(sections, theme.Card.Width(cardWidth).Render(story))

	question := theme.Body.Bold(true).Width(innerWidth).Render(q.Prompt) +
		"\n\n" +
		r.choices.View(q.CorrectIndex, r.sess.State.Selected, r.sess.State.Locked)
	sections = append(sections, theme.Card.Width(cardWidth).Render(question))

	sections = append(sections, renderFeedback(r.sess, q))

	body := strings.Join(sections, "\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (r *ReadingScreen) Title() string {
	return "Reading"
}

func (r *ReadingScreen) KeyHints() []layout.KeyHint {
	if r.sess.Finished() {
		return []layout.KeyHint{
			{Key: "R", Description: "New stories"},
			{Key: "Tab", Description: "Age"},
		}
	}
	if r.sess.State.Locked {
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Lock in"},
		{Key: "Tab", Description: "Age"},
	}
}

func renderFeedback(sess *quiz.Session, q content.Question) string {
	if !sess.State.Locked {
		return theme.Hint.Render("Read the story, then pick the best answer.")
	}
	if sess.State.LastCorrect {
		return theme.Correct.Render(fmt.Sprintf("Correct! +%d points", quiz.PointsPerCorrect))
	}
	return theme.Incorrect.Render("Not quite. The answer is " + q.Choices[q.CorrectIndex] + ".")
}

func renderSummary(sess *quiz.Session, width, height int) string {
	best := sess.Total() * quiz.PointsPerCorrect
	panel := theme.Card.Width(40).Render(
		theme.Title.Width(34).Render("Story time is over!") + "\n\n" +
			theme.Body.Width(34).Align(lipgloss.Center).
				Render(fmt.Sprintf("Final score: %d / %d", sess.State.Score, best)) + "\n\n" +
			theme.Subtitle.Width(34).Render("Press R for a new set of stories."),
	)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(panel)
}
