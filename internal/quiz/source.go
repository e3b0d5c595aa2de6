package quiz

import (
	"kidslearn/internal/content"
	"kidslearn/internal/deck"
	"kidslearn/internal/mathgen"
)

// Source supplies the items a session walks through. The math game draws
// from a generator; reading and science draw from a deck.
type Source interface {
	// Current returns the item being played, or false when no content
	// is available.
	Current() (content.Item, bool)

	// Advance moves to the next item after the current one's questions
	// are exhausted.
	Advance()

	// Reset rebuilds the source for a fresh session.
	Reset()
}

// GeneratorSource serves freshly generated math questions, one item per
// question, without end.
type GeneratorSource struct {
	gen     *mathgen.Generator
	level   int
	current content.Item
}

var _ Source = (*GeneratorSource)(nil)

// NewGeneratorSource creates a source generating questions at level.
func NewGeneratorSource(gen *mathgen.Generator, level int) *GeneratorSource {
	s := &GeneratorSource{gen: gen, level: level}
	s.regenerate()
	return s
}

func (s *GeneratorSource) regenerate() {
	q := s.gen.Generate(s.level)
	s.current = content.Item{
		ID: q.ID,
		Questions: []content.Question{
			{Prompt: q.Prompt, Choices: q.Choices, CorrectIndex: q.CorrectIndex},
		},
	}
}

func (s *GeneratorSource) Current() (content.Item, bool) {
	return s.current, true
}

func (s *GeneratorSource) Advance() {
	s.regenerate()
}

func (s *GeneratorSource) Reset() {
	s.regenerate()
}

// SetLevel changes the difficulty and generates a fresh question.
func (s *GeneratorSource) SetLevel(level int) {
	s.level = level
	s.regenerate()
}

// Level returns the current difficulty level.
func (s *GeneratorSource) Level() int {
	return s.level
}

// DeckSource serves items from a deck built by the selection engine.
// Practice decks refill with a reshuffle when exhausted mid-session;
// daily decks stay pinned to their single item.
type DeckSource struct {
	eng   *deck.Engine
	age   content.AgeTag
	mode  deck.Mode
	today string
	deck  deck.Deck
	index int
}

var _ Source = (*DeckSource)(nil)

// NewDeckSource builds the deck for one session and marks its first item
// as started.
func NewDeckSource(eng *deck.Engine, age content.AgeTag, mode deck.Mode, today string) *DeckSource {
	s := &DeckSource{eng: eng, age: age, mode: mode, today: today}
	s.Reset()
	return s
}

func (s *DeckSource) Current() (content.Item, bool) {
	if s.deck.Empty() {
		return content.Item{}, false
	}
	return s.deck.Items[s.index], true
}

func (s *DeckSource) Advance() {
	if s.deck.Empty() {
		return
	}
	if s.mode == deck.ModeDaily {
		// The daily item is pinned; its questions cycle until the
		// session reaches its target count.
		return
	}
	s.index++
	if s.index >= len(s.deck.Items) {
		s.deck.Items = s.eng.Refill(s.age)
		s.index = 0
		if s.deck.Empty() {
			return
		}
	}
	s.markStarted()
}

func (s *DeckSource) Reset() {
	s.deck = s.eng.Build(s.age, s.mode, s.today)
	s.index = 0
	if !s.deck.Empty() {
		s.markStarted()
	}
}

// markStarted records the current item into the usage record the moment
// it is offered, so a reload mid-session cannot re-offer it.
func (s *DeckSource) markStarted() {
	if s.mode != deck.ModePractice {
		return
	}
	s.eng.MarkStarted(s.age, s.deck.Items[s.index].ID)
}
