package mathgame

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kidslearn/internal/config"
)

func testConfig(total int) config.Config {
	return config.Config{Total: total, Level: 1, Age: "6-8"}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

// answerCurrent moves the cursor onto the given index and locks it in.
func answerCurrent(t *testing.T, m *MathScreen, index int) {
	t.Helper()
	for i := 0; i < index; i++ {
		m.Update(keyPress('j'))
	}
	m.Update(enter())
	require.True(t, m.sess.State.Locked)
}

func TestTitle(t *testing.T) {
	m := New(nil, testConfig(10))
	assert.Equal(t, "Math", m.Title())
}

func TestCorrectAnswerScoresAndAdvances(t *testing.T) {
	m := New(nil, testConfig(10))

	_, q, ok := m.sess.Current()
	require.True(t, ok)

	answerCurrent(t, m, q.CorrectIndex)
	assert.Equal(t, 10, m.sess.State.Score)
	assert.True(t, m.sess.State.LastCorrect)

	m.Update(enter())
	assert.False(t, m.sess.State.Locked)
	assert.Equal(t, 1, m.sess.State.Answered)

	_, next, ok := m.sess.Current()
	require.True(t, ok)
	assert.Len(t, next.Choices, 4)
}

func TestLevelKeyStartsFreshRun(t *testing.T) {
	m := New(nil, testConfig(10))

	// Bank some progress at level 1.
	_, q, ok := m.sess.Current()
	require.True(t, ok)
	answerCurrent(t, m, q.CorrectIndex)
	m.Update(enter())
	require.Equal(t, 1, m.sess.State.Answered)
	require.Equal(t, 10, m.sess.State.Score)

	// Changing difficulty restarts the run: nothing carries over.
	m.Update(keyPress('3'))
	assert.Equal(t, 3, m.src.Level())
	assert.Equal(t, 2, m.picker.Selected)
	assert.Equal(t, 0, m.sess.State.Score)
	assert.Equal(t, 0, m.sess.State.Streak)
	assert.Equal(t, 0, m.sess.State.Answered)
	assert.False(t, m.sess.State.Locked)

	// Level keys are ignored while the answer reveal is showing.
	_, q, _ = m.sess.Current()
	answerCurrent(t, m, q.CorrectIndex)
	m.Update(keyPress('1'))
	assert.Equal(t, 3, m.src.Level())
}

func TestLevelKeyRestartsFromSummary(t *testing.T) {
	m := New(nil, testConfig(1))

	_, q, _ := m.sess.Current()
	answerCurrent(t, m, q.CorrectIndex)
	require.True(t, m.sess.Finished())

	m.Update(keyPress('2'))
	assert.False(t, m.sess.Finished())
	assert.Equal(t, 2, m.src.Level())
	assert.Equal(t, 0, m.sess.State.Score)
	assert.Equal(t, 0, m.sess.State.Answered)
}

func TestFinishAndRestart(t *testing.T) {
	m := New(nil, testConfig(1))

	_, q, _ := m.sess.Current()
	answerCurrent(t, m, q.CorrectIndex)
	assert.True(t, m.sess.Finished())

	// Enter no longer advances a finished session.
	m.Update(enter())
	assert.True(t, m.sess.Finished())

	m.Update(keyPress('r'))
	assert.False(t, m.sess.Finished())
	assert.Equal(t, 0, m.sess.State.Score)
	assert.Equal(t, 0, m.sess.State.Answered)
}

func TestKeyHintsFollowPhase(t *testing.T) {
	m := New(nil, testConfig(1))

	hints := m.KeyHints()
	require.NotEmpty(t, hints)
	assert.Equal(t, "↑↓", hints[0].Key)

	_, q, _ := m.sess.Current()
	answerCurrent(t, m, q.CorrectIndex)
	assert.Equal(t, "R", m.KeyHints()[0].Key)
}
