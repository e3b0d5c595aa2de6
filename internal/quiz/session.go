package quiz

import (
	"kidslearn/internal/content"
	"kidslearn/internal/deck"
	"kidslearn/internal/store"
)

// PointsPerCorrect is the fixed score award for a right answer.
const PointsPerCorrect = 10

// DefaultTotal is the standard question count per session.
const DefaultTotal = 10

// State is the mutable position of one play-through. Mutated only by the
// Session transition methods; discarded when the player leaves the game.
type State struct {
	// SubIndex is the index into the current item's questions.
	SubIndex int

	// Answered counts locked answers, across items.
	Answered int

	// Score is the accumulated points.
	Score int

	// Streak counts consecutive correct answers since the last miss.
	Streak int

	// Selected is the locked choice index, or -1 before locking.
	Selected int

	// Locked is true once a choice has been recorded for the current
	// question. The first choice is final.
	Locked bool

	// LastCorrect records whether the most recent locked answer was right.
	LastCorrect bool
}

// Params configures a session.
type Params struct {
	// Game names the persistence namespace ("math", "reading", "science").
	Game string

	// Age is the content age band. Unused by the math game.
	Age content.AgeTag

	// Mode distinguishes practice from daily play.
	Mode deck.Mode

	// Today is the ISO calendar date used for daily completion records.
	Today string

	// Total is the target question count. Zero means DefaultTotal.
	Total int
}

// Session drives one play-through: it owns the State and applies the
// select/advance/restart transitions against a content source.
type Session struct {
	src    Source
	recs   *store.Records
	params Params

	// State is read by views and mutated only through Session methods.
	State State
}

// NewSession creates a session in the initial unanswered state.
// recs may be nil for games that never persist (math).
func NewSession(src Source, recs *store.Records, params Params) *Session {
	if params.Total <= 0 {
		params.Total = DefaultTotal
	}
	return &Session{
		src:    src,
		recs:   recs,
		params: params,
		State:  State{Selected: -1},
	}
}

// Total returns the target question count.
func (s *Session) Total() int {
	return s.params.Total
}

// Mode returns the session mode.
func (s *Session) Mode() deck.Mode {
	return s.params.Mode
}

// Current returns the item and sub-question being played. ok is false
// when the source has no content, which views render as an explicit
// "no content" state instead of indexing into an empty deck.
func (s *Session) Current() (content.Item, content.Question, bool) {
	item, ok := s.src.Current()
	if !ok || s.State.SubIndex >= len(item.Questions) {
		return content.Item{}, content.Question{}, false
	}
	return item, item.Questions[s.State.SubIndex], true
}

// SelectChoice locks choice i for the current question and scores it.
// Legal only while unanswered; repeated calls and out-of-range indices
// are ignored, so the first choice is final.
func (s *Session) SelectChoice(i int) {
	if s.State.Locked {
		return
	}
	_, q, ok := s.Current()
	if !ok || i < 0 || i >= len(q.Choices) {
		return
	}

	s.State.Selected = i
	s.State.Locked = true
	s.State.Answered++

	if i == q.CorrectIndex {
		s.State.Score += PointsPerCorrect
		s.State.Streak++
		s.State.LastCorrect = true
	} else {
		s.State.Streak = 0
		s.State.LastCorrect = false
	}

	// The daily completion record is written the instant the session
	// finishes, with the final score.
	if s.Finished() && s.params.Mode == deck.ModeDaily && s.recs != nil {
		s.recs.SetDailyResult(s.params.Game, string(s.params.Age), s.params.Today, s.State.Score)
	}
}

// Advance clears the lock and moves to the next sub-question, or to the
// next item when the current one is exhausted. Legal only while locked
// and before the session finishes.
func (s *Session) Advance() {
	if !s.State.Locked || s.Finished() {
		return
	}
	item, _, ok := s.Current()
	if !ok {
		return
	}

	s.State.Selected = -1
	s.State.Locked = false

	s.State.SubIndex++
	if s.State.SubIndex >= len(item.Questions) {
		s.State.SubIndex = 0
		s.src.Advance()
	}
}

// Restart resets score, streak, position, and selection, and rebuilds the
// content source. Usage records survive a restart; only the run resets.
func (s *Session) Restart() {
	s.State = State{Selected: -1}
	s.src.Reset()
}

// Finished reports whether the target count has been answered and the
// final question is still locked. Score and streak stay visible;
// Restart is the only exit.
func (s *Session) Finished() bool {
	return s.State.Answered >= s.params.Total && s.State.Locked
}

// Progress returns completion in [0, 1].
func (s *Session) Progress() float64 {
	answered := s.State.Answered
	if answered > s.params.Total {
		answered = s.params.Total
	}
	return float64(answered) / float64(s.params.Total)
}
