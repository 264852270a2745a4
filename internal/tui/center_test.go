package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flattr/adblockpluschrome/internal/notification"
	"github.com/flattr/adblockpluschrome/internal/platform"
	"github.com/flattr/adblockpluschrome/internal/presenter"
)

type stubQueue struct {
	texts    map[string]notification.LocalizedTexts
	shown    []string
	answers  map[string]bool
	nextCall int
}

func newStubQueue() *stubQueue {
	return &stubQueue{
		texts:   make(map[string]notification.LocalizedTexts),
		answers: make(map[string]bool),
	}
}

func (q *stubQueue) LocalizedTexts(n *notification.Notification) notification.LocalizedTexts {
	return q.texts[n.ID]
}

func (q *stubQueue) MarkAsShown(id string) error {
	q.shown = append(q.shown, id)
	return nil
}

func (q *stubQueue) TriggerQuestionListeners(id string, approved bool) error {
	q.answers[id] = approved
	return nil
}

func (q *stubQueue) AddShowListener(listener func(n *notification.Notification)) {}

func (q *stubQueue) ShowNext(currentURL string) error {
	q.nextCall++
	return nil
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestPresenter(q *stubQueue) *presenter.Presenter {
	flags := platform.Flags{NativeNotifications: true, Buttons: true}
	return presenter.New(q, flags, presenter.Options{})
}

func TestModel_ListsRetainedNotifications(t *testing.T) {
	q := newStubQueue()
	p := newTestPresenter(q)
	n := &notification.Notification{ID: "n1", Type: notification.TypeNormal}
	q.texts["n1"] = notification.LocalizedTexts{Title: "Stashed", Message: "hello"}
	p.Show(n)
	p.Closed("n1", false)

	m := NewModel(p, q)
	view := m.View()
	assert.Contains(t, view, "Stashed")
	assert.Contains(t, view, "[normal]")
}

func TestModel_DismissDeletesRegistryEntry(t *testing.T) {
	q := newStubQueue()
	p := newTestPresenter(q)
	n := &notification.Notification{ID: "n1", Type: notification.TypeNormal}
	q.texts["n1"] = notification.LocalizedTexts{Title: "Stashed"}
	p.Show(n)
	p.Closed("n1", false)

	m := NewModel(p, q)
	require.Len(t, m.entries, 1)

	updated, _ := m.Update(keyPress('d'))
	m = updated.(*Model)

	assert.Empty(t, m.entries)
	assert.Nil(t, p.Buttons("n1"))
}

func TestModel_AnswerQuestion(t *testing.T) {
	q := newStubQueue()
	p := newTestPresenter(q)
	n := &notification.Notification{ID: "q1", Type: notification.TypeQuestion}
	q.texts["q1"] = notification.LocalizedTexts{Title: "Allow?"}
	p.Show(n)

	m := NewModel(p, q)
	require.Len(t, m.entries, 1)

	updated, _ := m.Update(keyPress('y'))
	m = updated.(*Model)

	approved, ok := q.answers["q1"]
	require.True(t, ok)
	assert.True(t, approved)
	assert.Contains(t, q.shown, "q1")
	assert.Empty(t, m.entries)
}

func TestModel_AnswerIgnoresNonQuestions(t *testing.T) {
	q := newStubQueue()
	p := newTestPresenter(q)
	n := &notification.Notification{ID: "n1", Type: notification.TypeNormal}
	q.texts["n1"] = notification.LocalizedTexts{Title: "Plain"}
	p.Show(n)

	m := NewModel(p, q)
	updated, _ := m.Update(keyPress('y'))
	m = updated.(*Model)

	assert.Empty(t, q.answers)
	require.Len(t, m.entries, 1)
}

func TestModel_ShowNextKeyPollsQueue(t *testing.T) {
	q := newStubQueue()
	p := newTestPresenter(q)

	m := NewModel(p, q)
	updated, _ := m.Update(keyPress('s'))
	m = updated.(*Model)

	assert.Equal(t, 1, q.nextCall)
}

func TestModel_QuitKey(t *testing.T) {
	q := newStubQueue()
	m := NewModel(newTestPresenter(q), q)

	_, cmd := m.Update(keyPress('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_CursorMovement(t *testing.T) {
	q := newStubQueue()
	p := newTestPresenter(q)
	for _, id := range []string{"a1", "b2"} {
		n := &notification.Notification{ID: id, Type: notification.TypeNormal}
		q.texts[id] = notification.LocalizedTexts{Title: id}
		p.Show(n)
		p.Closed(id, false)
	}

	m := NewModel(p, q)
	require.Len(t, m.entries, 2)
	assert.Equal(t, 0, m.cursor)

	updated, _ := m.Update(keyPress('j'))
	m = updated.(*Model)
	assert.Equal(t, 1, m.cursor)

	// Cursor stops at the end of the list.
	updated, _ = m.Update(keyPress('j'))
	m = updated.(*Model)
	assert.Equal(t, 1, m.cursor)

	updated, _ = m.Update(keyPress('k'))
	m = updated.(*Model)
	assert.Equal(t, 0, m.cursor)
}
