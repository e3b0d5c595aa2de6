package quiz

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kidslearn/internal/content"
	"kidslearn/internal/deck"
	"kidslearn/internal/mathgen"
	"kidslearn/internal/store"
)

func deckFixture(t *testing.T, n int) (*deck.Engine, *store.Records) {
	t.Helper()
	items := make([]content.Item, n)
	for i := range items {
		items[i] = twoChoiceItem(string(rune('a'+i)), 0)
	}
	recs := store.NewRecords(store.NewMemory())
	return deck.NewEngine(content.NewBank("test", items), recs, rand.New(rand.NewPCG(1, 2))), recs
}

func TestDeckSourceMarksItemsAsOffered(t *testing.T) {
	eng, recs := deckFixture(t, 3)
	src := NewDeckSource(eng, content.Age6to8, deck.ModePractice, "2024-01-01")

	first, ok := src.Current()
	require.True(t, ok)
	// Marked the moment it becomes current, not on completion.
	assert.Equal(t, []string{first.ID}, recs.UsedIDs("test", "6-8"))

	src.Advance()
	second, ok := src.Current()
	require.True(t, ok)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Len(t, recs.UsedIDs("test", "6-8"), 2)
}

func TestDeckSourceRefillsWhenExhausted(t *testing.T) {
	eng, _ := deckFixture(t, 2)
	src := NewDeckSource(eng, content.Age6to8, deck.ModePractice, "2024-01-01")

	// Walk past the end of the two-item deck; play continues seamlessly.
	for i := 0; i < 5; i++ {
		src.Advance()
		_, ok := src.Current()
		require.True(t, ok, "source ran dry after %d advances", i+1)
	}
}

func TestDeckSourceDailyStaysPinned(t *testing.T) {
	eng, _ := deckFixture(t, 3)
	src := NewDeckSource(eng, content.Age6to8, deck.ModeDaily, "2024-01-01")

	first, ok := src.Current()
	require.True(t, ok)

	src.Advance()
	src.Advance()
	still, ok := src.Current()
	require.True(t, ok)
	assert.Equal(t, first.ID, still.ID)
}

func TestDeckSourceEmptyBank(t *testing.T) {
	eng, _ := deckFixture(t, 0)
	src := NewDeckSource(eng, content.Age6to8, deck.ModePractice, "2024-01-01")

	_, ok := src.Current()
	assert.False(t, ok)

	src.Advance() // must not panic
	_, ok = src.Current()
	assert.False(t, ok)
}

func TestGeneratorSourceServesFreshQuestions(t *testing.T) {
	gen := mathgen.NewWithRand(rand.New(rand.NewPCG(9, 9)))
	src := NewGeneratorSource(gen, 1)

	item, ok := src.Current()
	require.True(t, ok)
	require.Len(t, item.Questions, 1)
	assert.Len(t, item.Questions[0].Choices, mathgen.NumChoices)

	src.Advance()
	next, ok := src.Current()
	require.True(t, ok)
	assert.NotEqual(t, item.ID, next.ID)
}

func TestGeneratorSourceSetLevel(t *testing.T) {
	gen := mathgen.NewWithRand(rand.New(rand.NewPCG(9, 9)))
	src := NewGeneratorSource(gen, 1)

	before, _ := src.Current()
	src.SetLevel(3)
	assert.Equal(t, 3, src.Level())

	after, ok := src.Current()
	require.True(t, ok)
	assert.NotEqual(t, before.ID, after.ID)
}
