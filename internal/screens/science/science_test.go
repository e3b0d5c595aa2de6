package science

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kidslearn/internal/config"
	"kidslearn/internal/deck"
	"kidslearn/internal/store"
)

func testConfig(total int) config.Config {
	return config.Config{Total: total, Level: 1, Age: "6-8"}
}

func newTestScreen(total int) (*ScienceScreen, *store.Records) {
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
	s, _ := newTestScreen(10)
	assert.Equal(t, "Science", s.Title())
}

func TestTrueFalseShortcuts(t *testing.T) {
	s, _ := newTestScreen(10)

	s.Update(keyPress('t'))
	assert.True(t, s.sess.State.Locked)
	assert.Equal(t, 0, s.sess.State.Selected)

	s.Update(enter())
	s.Update(keyPress('f'))
	assert.True(t, s.sess.State.Locked)
	assert.Equal(t, 1, s.sess.State.Selected)
}

func TestModeToggleStartsFreshSession(t *testing.T) {
	s, _ := newTestScreen(10)
	require.Equal(t, deck.ModePractice, s.mode())

	s.Update(keyPress('t'))
	s.Update(keyPress('m'))

	assert.Equal(t, deck.ModeDaily, s.mode())
	assert.Equal(t, 0, s.sess.State.Answered)
	assert.False(t, s.sess.State.Locked)
}

func TestAgeTabStartsFreshSession(t *testing.T) {
	s, _ := newTestScreen(10)
	require.Equal(t, "6-8", string(s.age()))

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	assert.Equal(t, "8-10", string(s.age()))
	assert.Equal(t, 0, s.sess.State.Answered)
}

func TestDailyRunRecordsResult(t *testing.T) {
	s, recs := newTestScreen(2)
	s.Update(keyPress('m'))
	require.Equal(t, deck.ModeDaily, s.mode())

	s.Update(keyPress('t'))
	s.Update(enter())
	s.Update(keyPress('t'))
	require.True(t, s.sess.Finished())

	res, ok := recs.DailyResult("science", string(s.age()), s.today)
	require.True(t, ok)
	assert.True(t, res.Done)

	// The home badge reads the same record.
	assert.NotEmpty(t, s.dailyBadge())
}

func TestDailyDoesNotTouchPracticeHistory(t *testing.T) {
	s, recs := newTestScreen(2)
	s.Update(keyPress('m'))

	s.Update(keyPress('t'))
	s.Update(enter())
	s.Update(keyPress('t'))

	assert.Empty(t, recs.UsedIDs("science", string(s.age())))
}
