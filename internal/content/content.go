package content

import "fmt"

// AgeTag is the coarse readability tier used to filter content.
type AgeTag string

const (
	Age6to8   AgeTag = "6-8"
	Age8to10  AgeTag = "8-10"
	Age10to12 AgeTag = "10-12"
)

// AgeTags lists the recognized age bands in display order.
var AgeTags = []AgeTag{Age6to8, Age8to10, Age10to12}

// Question is a single-choice sub-question attached to an item.
type Question struct {
	// Prompt is the question text shown to the player.
	Prompt string

	// Choices are the selectable answers, in display order.
	Choices []string

	// CorrectIndex is the index into Choices of the right answer.
	CorrectIndex int
}

// Item is one immutable unit of playable content: a story with its
// comprehension questions, or a science statement with its single
// true/false question.
type Item struct {
	// ID is stable across builds and is what usage records store.
	ID string

	// AgeTag places the item in one age band.
	AgeTag AgeTag

	// Title is shown above the body. Empty for science cards.
	Title string

	// Body is the story text or the science statement.
	Body string

	// Questions holds the ordered sub-questions. Never empty.
	Questions []Question

	// Fact is the explanation revealed after answering. Empty for stories.
	Fact string
}

// Bank is a read-only catalog of items for one game. Defined at process
// start and never mutated afterwards.
type Bank struct {
	game  string
	items []Item
}

// NewBank creates a bank for the named game.
func NewBank(game string, items []Item) *Bank {
	return &Bank{game: game, items: items}
}

// Game returns the game this bank belongs to.
func (b *Bank) Game() string {
	return b.game
}

// Len returns the total number of items in the bank.
func (b *Bank) Len() int {
	return len(b.items)
}

// Items returns all items in catalog order.
func (b *Bank) Items() []Item {
	return b.items
}

// ForAge returns the items matching the given age band, in catalog order.
func (b *Bank) ForAge(age AgeTag) []Item {
	var out []Item
	for _, it := range b.items {
		if it.AgeTag == age {
			out = append(out, it)
		}
	}
	return out
}

// Validate checks the structural invariants of the bank: unique ids,
// non-empty question lists, and in-range correct indices.
func (b *Bank) Validate() error {
	seen := make(map[string]bool, len(b.items))
	for _, it := range b.items {
		if it.ID == "" {
			return fmt.Errorf("%s: item with empty id", b.game)
		}
		if seen[it.ID] {
			return fmt.Errorf("%s: duplicate item id %q", b.game, it.ID)
		}
		seen[it.ID] = true

		if len(it.Questions) == 0 {
			return fmt.Errorf("%s/%s: no questions", b.game, it.ID)
		}
		for qi, q := range it.Questions {
			if len(q.Choices) < 2 {
				return fmt.Errorf("%s/%s question %d: needs at least 2 choices", b.game, it.ID, qi)
			}
			if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
				return fmt.Errorf("%s/%s question %d: correct index %d out of range", b.game, it.ID, qi, q.CorrectIndex)
			}
		}
	}
	return nil
}
