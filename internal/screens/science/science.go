package science

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

// scienceAges are the bands the science bank covers.
var scienceAges = []content.AgeTag{content.Age6to8, content.Age8to10}

// ScienceScreen runs true/false science sessions. Practice mode draws
// from the no-repeat deck; daily mode serves the one card of the day
// and records the finished score.
type ScienceScreen struct {
	recs       *store.Records
	cfg        config.Config
	bank       *content.Bank
	sess       *quiz.Session
	choices    components.ChoiceList
	agePicker  components.Picker
	modePicker components.Picker
	today      string
}

var _ screen.Screen = (*ScienceScreen)(nil)
var _ screen.KeyHintProvider = (*ScienceScreen)(nil)

// New creates the science game in practice mode.
func New(recs *store.Records, cfg config.Config) *ScienceScreen {
	s := &ScienceScreen{
		recs:  recs,
		cfg:   cfg,
		bank:  content.Science(),
		today: time.Now().Format(time.DateOnly),
	}

	labels := make([]string, len(scienceAges))
	for i, tag := range scienceAges {
		labels[i] = string(tag)
	}
	s.agePicker = components.NewPicker("Age", labels)
	for i, tag := range scienceAges {
		if tag == cfg.AgeTag() {
			s.agePicker.Select(i)
		}
	}

	s.modePicker = components.NewPicker("Mode", []string{"Practice", "Daily"})

	s.startSession()
	return s
}

func (s *ScienceScreen) age() content.AgeTag {
	return scienceAges[s.agePicker.Selected]
}

func (s *ScienceScreen) mode() deck.Mode {
	if s.modePicker.Selected == 1 {
		return deck.ModeDaily
	}
	return deck.ModePractice
}

// startSession builds a fresh session for the picked age and mode.
func (s *ScienceScreen) startSession() {
	eng := deck.NewEngine(s.bank, s.recs, nil)
	src := quiz.NewDeckSource(eng, s.age(), s.mode(), s.today)
	s.sess = quiz.NewSession(src, s.recs, quiz.Params{
		Game:  "science",
		Age:   s.age(),
		Mode:  s.mode(),
		Today: s.today,
		Total: s.cfg.Total,
	})
	s.syncChoices()
}

func (s *ScienceScreen) Init() tea.Cmd {
	return nil
}

func (s *ScienceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "tab":
		s.agePicker.Select((s.agePicker.Selected + 1) % len(s.agePicker.Options))
		s.startSession()
		return s, nil
	case "m":
		s.modePicker.Select((s.modePicker.Selected + 1) % len(s.modePicker.Options))
		s.startSession()
		return s, nil
	}

	if s.sess.Finished() {
		if kmsg.String() == "r" {
			s.sess.Restart()
			s.syncChoices()
		}
		return s, nil
	}

	if s.sess.State.Locked {
		switch kmsg.String() {
		case "enter":
			s.sess.Advance()
			s.syncChoices()
		}
		return s, nil
	}

	switch kmsg.String() {
	case "enter":
		s.sess.SelectChoice(s.choices.Cursor)
	case "t":
		s.sess.SelectChoice(0)
	case "f":
		s.sess.SelectChoice(1)
	default:
		s.choices = s.choices.Update(msg)
	}
	return s, nil
}

func (s *ScienceScreen) syncChoices() {
	if _, q, ok := s.sess.Current(); ok {
		s.choices.SetOptions(q.Choices)
	}
}

func (s *ScienceScreen) View(width, height int) string {
	if s.sess.Finished() {
		return s.renderSummary(width, height)
	}

	item, q, ok := s.sess.Current()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render(theme.Subtitle.Render("No science cards for this age band yet."))
	}

	cardWidth := 56
	if cardWidth > width-4 {
		cardWidth = width - 4
	}
	innerWidth := cardWidth - 6

	var sections []string
	sections = append(sections, s.agePicker.View()+"   "+s.modePicker.View())

	if badge := s.dailyBadge(); badge != "" {
		sections = append(sections, badge)
	}

	sections = append(sections,
		components.NewProgressBar("Question", s.sess.State.Answered, s.sess.Total(), 44).View())

	statement := theme.Body.Bold(true).Width(innerWidth).Align(lipgloss.Center).Render(q.Prompt) +
		"\n\n" +
		s.choices.View(q.CorrectIndex, s.sess.State.Selected, s.sess.State.Locked)
	sections = append(sections, theme.Card.Width(cardWidth).Render(statement))

	sections = append(sections, s.renderFeedback(item, q, innerWidth))

	body := strings.Join(sections, "\n\n")
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s *ScienceScreen) Title() string {
	return "Science"
}

func (s *ScienceScreen) KeyHints() []layout.KeyHint {
	if s.sess.Finished() {
		return []layout.KeyHint{
			{Key: "R", Description: "Play again"},
			{Key: "M", Description: "Mode"},
		}
	}
	if s.sess.State.Locked {
		return []layout.KeyHint{{Key: "Enter", Description: "Next"}}
	}
	return []layout.KeyHint{
		{Key: "T/F", Description: "Answer"},
		{Key: "Tab", Description: "Age"},
		{Key: "M", Description: "Mode"},
	}
}

// dailyBadge shows today's completion record while in daily mode.
func (s *ScienceScreen) dailyBadge() string {
	if s.mode() != deck.ModeDaily {
		return ""
	}
	res, ok := s.recs.DailyResult("science", string(s.age()), s.today)
	if !ok || !res.Done {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Render(fmt.Sprintf("✓ Done today — score %d", res.Score))
}

// renderFeedback reveals the fun fact once the answer is locked.
func (s *ScienceScreen) renderFeedback(item content.Item, q content.Question, width int) string {
	if !s.sess.State.Locked {
		return theme.Hint.Render("True or false?")
	}
	var verdict string
	if s.sess.State.LastCorrect {
		verdict = theme.Correct.Render(fmt.Sprintf("Correct! +%d points", quiz.PointsPerCorrect))
	} else {
		verdict = theme.Incorrect.Render("Not quite. It's " + strings.ToLower(q.Choices[q.CorrectIndex]) + "!")
	}
	fact := lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(width).
		Align(lipgloss.Center).
		Render("Fun fact: " + item.Fact)
	return verdict + "\n" + fact
}

func (s *ScienceScreen) renderSummary(width, height int) string {
	best := s.sess.Total() * quiz.PointsPerCorrect
	heading := "All done!"
	note := "Press R to play again."
	if s.mode() == deck.ModeDaily {
		heading = "Daily challenge complete!"
		note = "Come back tomorrow for a new card."
	}

	panel := theme.Card.Width(44).Render(
		theme.Title.Width(38).Render(heading) + "\n\n" +
			theme.Body.Width(38).Align(lipgloss.Center).
				Render(fmt.Sprintf("Final score: %d / %d", s.sess.State.Score, best)) + "\n\n" +
			theme.Subtitle.Width(38).Render(note),
	)
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(panel)
}
