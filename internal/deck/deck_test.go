package deck

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kidslearn/internal/content"
	"kidslearn/internal/store"
)

func testBank() *content.Bank {
	q := []content.Question{{Prompt: "p", Choices: []string{"a", "b"}, CorrectIndex: 0}}
	return content.NewBank("test", []content.Item{
		{ID: "i1", AgeTag: content.Age6to8, Questions: q},
		{ID: "i2", AgeTag: content.Age6to8, Questions: q},
		{ID: "i3", AgeTag: content.Age8to10, Questions: q},
		{ID: "i4", AgeTag: content.Age8to10, Questions: q},
		{ID: "i5", AgeTag: content.Age8to10, Questions: q},
	})
}

func testEngine(seed uint64) (*Engine, *store.Records) {
	recs := store.NewRecords(store.NewMemory())
	rng := rand.New(rand.NewPCG(seed, seed))
	return NewEngine(testBank(), recs, rng), recs
}

func ids(items []content.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestHash31MatchesReference(t *testing.T) {
	// h = h*31 + charCode with unsigned 32-bit wraparound.
	tests := []struct {
		in   string
		want uint32
	}{
		{"", 0},
		{"a", 97},
		{"ab", 97*31 + 98},
		{"2024-01-01:6-8", hashRef("2024-01-01:6-8")},
	}
	for _, tt := range tests {
		if got := hash31(tt.in); got != tt.want {
			t.Errorf("hash31(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func hashRef(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*31 + uint32(s[i])
	}
	return h
}

func TestDailyIndexDeterministic(t *testing.T) {
	a := DailyIndex("2024-01-01", content.Age6to8, 20)
	b := DailyIndex("2024-01-01", content.Age6to8, 20)
	assert.Equal(t, a, b)

	want := int(hashRef("2024-01-01:6-8") % 20)
	assert.Equal(t, want, a)

	assert.Equal(t, 0, DailyIndex("2024-01-01", content.Age6to8, 0))
}

func TestDailyBuildPinsOneItem(t *testing.T) {
	eng1, _ := testEngine(1)
	eng2, _ := testEngine(99)

	d1 := eng1.Build(content.Age8to10, ModeDaily, "2024-01-01")
	d2 := eng2.Build(content.Age8to10, ModeDaily, "2024-01-01")

	require.Len(t, d1.Items, 1)
	require.Len(t, d2.Items, 1)
	// Independent of the engines' random state.
	assert.Equal(t, d1.Items[0].ID, d2.Items[0].ID)

	pool := testBank().ForAge(content.Age8to10)
	want := pool[DailyIndex("2024-01-01", content.Age8to10, len(pool))]
	assert.Equal(t, want.ID, d1.Items[0].ID)
}

func TestPracticeExcludesUsedItems(t *testing.T) {
	eng, recs := testEngine(5)
	recs.MarkUsed("test", "6-8", "i1")

	d := eng.Build(content.Age6to8, ModePractice, "2024-01-01")
	assert.Equal(t, []string{"i2"}, ids(d.Items))
}

func TestPracticeResetsWhenExhausted(t *testing.T) {
	eng, recs := testEngine(5)
	recs.MarkUsed("test", "6-8", "i1")
	recs.MarkUsed("test", "6-8", "i2")

	d := eng.Build(content.Age6to8, ModePractice, "2024-01-01")
	assert.ElementsMatch(t, []string{"i1", "i2"}, ids(d.Items))
	// Usage record was cleared for the new cycle.
	assert.Empty(t, recs.UsedIDs("test", "6-8"))
}

func TestNoRepeatAcrossSessions(t *testing.T) {
	eng, _ := testEngine(11)

	// Start sessions until the 8-10 pool (3 items) is exhausted,
	// marking each offered item as started.
	seen := make(map[string]bool)
	for i := 0; i < 3; i++ {
		d := eng.Build(content.Age8to10, ModePractice, "2024-01-01")
		require.NotEmpty(t, d.Items)
		first := d.Items[0]
		assert.False(t, seen[first.ID], "item %s repeated before exhaustion", first.ID)
		seen[first.ID] = true
		eng.MarkStarted(content.Age8to10, first.ID)
	}

	// Pool exhausted: the next session may repeat anything.
	d := eng.Build(content.Age8to10, ModePractice, "2024-01-01")
	assert.Len(t, d.Items, 3)
}

func TestEmptyPoolYieldsEmptyDeck(t *testing.T) {
	eng, _ := testEngine(5)
	d := eng.Build(content.Age10to12, ModePractice, "2024-01-01")
	assert.True(t, d.Empty())

	d = eng.Build(content.Age10to12, ModeDaily, "2024-01-01")
	assert.True(t, d.Empty())
}

func TestRefillReturnsFullPool(t *testing.T) {
	eng, recs := testEngine(5)
	recs.MarkUsed("test", "8-10", "i3")

	// Refill ignores the usage record: it only restocks a running session.
	items := eng.Refill(content.Age8to10)
	assert.ElementsMatch(t, []string{"i3", "i4", "i5"}, ids(items))
}
