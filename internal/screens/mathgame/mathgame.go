package mathgame

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"kidslearn/internal/config"
	"kidslearn/internal/content"
	"kidslearn/internal/deck"
	"kidslearn/internal/mathgen"
	"kidslearn/internal/quiz"
	"kidslearn/internal/screen"
	"kidslearn/internal/store"
	"kidslearn/internal/ui/components"
	"kidslearn/internal/ui/layout"
	"kidslearn/internal/ui/theme"
)

var levelNames = []string{"Easy", "Medium", "Hard"}

// MathScreen runs an arithmetic practice session against the question
// generator. Questions never repeat because every one is generated fresh.
type MathScreen struct {
	sess    *quiz.Session
	src     *quiz.GeneratorSource
	choices components.ChoiceList
	picker  components.Picker
}

var _ screen.Screen = (*MathScreen)(nil)
var _ screen.KeyHintProvider = (*MathScreen)(nil)

// New creates the math game at the configured difficulty level.
func New(_ *store.Records, cfg config.Config) *MathScreen {
	src := quiz.NewGeneratorSource(mathgen.New(), cfg.Level)
	sess := quiz.NewSession(src, nil, quiz.Params{
		Game:  "math",
		Mode:  deck.ModePractice,
		Today: time.Now().Format(time.DateOnly),
		Total: cfg.Total,
	})

	picker := components.NewPicker("Level", levelNames)
	picker.Select(cfg.Level - 1)

	m := &MathScreen{
		sess:   sess,
		src:    src,
		picker: picker,
	}
	m.syncChoices()
	return m
}

func (m *MathScreen) Init() tea.Cmd {
	return nil
}

func (m *MathScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.sess.Finished() {
		switch kmsg.String() {
		case "r":
			m.sess.Restart()
			m.syncChoices()
		case "1", "2", "3":
			m.setLevel(int(kmsg.String()[0] - '0'))
		}
		return m, nil
	}

	if m.sess.State.Locked {
		switch kmsg.String() {
		case "enter":
			m.sess.Advance()
			m.syncChoices()
		}
		return m, nil
	}

	switch kmsg.String() {
	case "1", "2", "3":
		m.setLevel(int(kmsg.String()[0] - '0'))
	case "enter":
		m.sess.SelectChoice(m.choices.Cursor)
	default:
		m.choices = m.choices.Update(msg)
	}
	return m, nil
}

// setLevel changes the difficulty and starts a fresh run: score, streak,
// position, and selection all reset along with the question.
func (m *MathScreen) setLevel(level int) {
	m.src.SetLevel(level)
	m.picker.Select(level - 1)
	m.sess.Restart()
	m.syncChoices()
}

// syncChoices reloads the choice list from the current question.
func (m *MathScreen) syncChoices() {
	if _, q, ok := m.sess.Current(); ok {
		m.choices.SetOptions(q.Choices)
	}
}

func (m *MathScreen) View(width, height int) string {
	if m.sess.Finished() {
		return renderSummary(m.sess, width, height)
	}

	_, q, ok := m.sess.Current()
	if !ok {
		return theme.Subtitle.Width(width).Render("No questions available.")
	}

	var sections []string

	sections = append(sections, m.picker.View())
	sections = append(sections,
		components.NewProgressBar("Question", m.sess.State.Answered, m.sess.Total(), 44).View())

	prompt := theme.Title.Render(q.Prompt)
	card := theme.Card.Width(48).Render(prompt + "\n\n" + m.choices.View(
		q.CorrectIndex, m.sess.State.Selected, m.sess.State.Locked))
	sections = append(sections, card)

	sections = append(sections, renderFeedback(m.sess, q))
	sections = append(sections, renderScoreLine(m.sess))

	body := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (m *MathScreen) Title() string {
	return "Math"
}

func (m *MathScreen) KeyHints() []layout.KeyHint {
	if m.sess.Finished() {
		return []layout.KeyHint{
			{Key: "R", Description: "Play again"},
			{Key: "1-3", Description: "Level"},
		}
	}
	if m.sess.State.Locked {
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Lock in"},
		{Key: "1-3", Description: "Level"},
	}
}

// renderFeedback shows the verdict once the current answer is locked.
func renderFeedback(sess *quiz.Session, q content.Question) string {
	if !sess.State.Locked {
		return theme.Hint.Render("Pick the right answer!")
	}
	if sess.State.LastCorrect {
		return theme.Correct.Render(fmt.Sprintf("Correct! +%d points", quiz.PointsPerCorrect))
	}
	return theme.Incorrect.Render("Not quite. The answer is " + q.Choices[q.CorrectIndex] + ".")
}

func renderScoreLine(sess *quiz.Session) string {
	line := theme.Body.Render(fmt.Sprintf("Score %d", sess.State.Score))
	if sess.State.Streak >= 2 {
		line += "   " + lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("Streak x%d", sess.State.Streak))
	}
	return line
}

// renderSummary is the end-of-session panel.
func renderSummary(sess *quiz.Session, width, height int) string {
	best := sess.Total() * quiz.PointsPerCorrect
	var verdict string
	switch {
	case sess.State.Score == best:
		verdict = "Perfect score!"
	case sess.State.Score >= best/2:
		verdict = "Great job!"
	default:
		verdict = "Keep practicing!"
	}

	panel := theme.Card.Width(40).Render(
		theme.Title.Width(34).Render("All done!") + "\n\n" +
			theme.Body.Width(34).Align(lipgloss.Center).
				Render(fmt.Sprintf("Final score: %d / %d", sess.State.Score, best)) + "\n\n" +
			theme.Subtitle.Width(34).Render(verdict),
	)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(panel)
}
