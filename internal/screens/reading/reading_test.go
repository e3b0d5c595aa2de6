package reading

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kidslearn/internal/config"
	"kidslearn/internal/content"
	"kidslearn/internal/store"
)

func testConfig(total int) config.Config {
	return config.Config{Total: total, Level: 1, Age: "6-8"}
}

func newTestScreen(total int) (*ReadingScreen, *store.Records) {
	recs := store.NewRecords(store.NewMemory())
	return New(recs, testConfig(total)), recs
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestTitle(t *testing.T) {
	r, _ := newTestScreen(10)
	assert.Equal(t, "Reading", r.Title())
}

func TestOfferedStoryIsRecordedAsUsed(t *testing.T) {
	r, recs := newTestScreen(10)

	item, _, ok := r.sess.Current()
	require.True(t, ok)
	assert.Contains(t, recs.UsedIDs("reading", "6-8"), item.ID)
}

func TestAnswerWalksThroughStoryQuestions(t *testing.T) {
	r, _ := newTestScreen(10)

	item, q, ok := r.sess.Current()
	require.True(t, ok)
	require.Len(t, item.Questions, 2)

	// Lock the correct answer on the first question.
	for i := 0; i < q.CorrectIndex; i++ {
		r.Update(keyPress('j'))
	}
	r.Update(enter())
	require.True(t, r.sess.State.Locked)
	assert.Equal(t, 10, r.sess.State.Score)

	// Advancing stays on the same story for its second question.
	r.Update(enter())
	next, _, ok := r.sess.Current()
	require.True(t, ok)
	assert.Equal(t, item.ID, next.ID)
	assert.Equal(t, 1, r.sess.State.SubIndex)
}

func TestTabChangesAgeBand(t *testing.T) {
	r, _ := newTestScreen(10)

	r.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	item, _, ok := r.sess.Current()
	require.True(t, ok)
	assert.Equal(t, content.Age8to10, item.AgeTag)
	assert.Equal(t, 0, r.sess.State.Answered)
}

func TestRestartKeepsUsageHistory(t *testing.T) {
	r, recs := newTestScreen(2)

	item, q, _ := r.sess.Current()
	for i := 0; i < q.CorrectIndex; i++ {
		r.Update(keyPress('j'))
	}
	r.Update(enter())
	r.Update(enter())
	_, q2, _ := r.sess.Current()
	for i := 0; i < q2.CorrectIndex; i++ {
		r.Update(keyPress('j'))
	}
	r.Update(enter())
	require.True(t, r.sess.Finished())

	r.Update(keyPress('r'))
	assert.False(t, r.sess.Finished())

	// The first story stays excluded after the restart.
	next, _, ok := r.sess.Current()
	require.True(t, ok)
	assert.NotEqual(t, item.ID, next.ID)
	assert.Contains(t, recs.UsedIDs("reading", "6-8"), item.ID)
}
