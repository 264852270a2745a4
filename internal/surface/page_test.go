package surface

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flattr/adblockpluschrome/internal/presenter"
)

type recordedEvents struct {
	buttonClicks []int
	clicks       []string
	closes       []string
	byUser       []bool
}

func (e *recordedEvents) ButtonClicked(id string, index int) {
	e.buttonClicks = append(e.buttonClicks, index)
}

func (e *recordedEvents) Clicked(id string) {
	e.clicks = append(e.clicks, id)
}

func (e *recordedEvents) Closed(id string, byUser bool) {
	e.closes = append(e.closes, id)
	e.byUser = append(e.byUser, byUser)
}

func TestPage_ShowRendersView(t *testing.T) {
	var out bytes.Buffer
	p := NewPage(&recordedEvents{}, &out)

	err := p.Show(presenter.View{ID: "n1", Title: "Hello", Message: "world"})
	require.NoError(t, err)
	assert.True(t, p.Showing("n1"))
	assert.Contains(t, out.String(), "Hello")
	assert.Contains(t, out.String(), "world")
}

func TestPage_ClickForwardsToEvents(t *testing.T) {
	events := &recordedEvents{}
	p := NewPage(events, nil)
	require.NoError(t, p.Show(presenter.View{ID: "n1", Title: "Hello"}))

	p.Click("n1")
	assert.Equal(t, []string{"n1"}, events.clicks)

	// Clicks on unknown notifications are dropped.
	p.Click("missing")
	assert.Len(t, events.clicks, 1)
}

func TestPage_CloseCountsAsUserDismissal(t *testing.T) {
	events := &recordedEvents{}
	p := NewPage(events, nil)
	require.NoError(t, p.Show(presenter.View{ID: "n1", Title: "Hello"}))

	p.Close("n1")
	assert.Equal(t, []string{"n1"}, events.closes)
	assert.Equal(t, []bool{true}, events.byUser)
	assert.False(t, p.Showing("n1"))

	// A second close is a no-op.
	p.Close("n1")
	assert.Len(t, events.closes, 1)
}

func TestPage_Clear(t *testing.T) {
	p := NewPage(&recordedEvents{}, nil)
	require.NoError(t, p.Show(presenter.View{ID: "n1"}))
	require.NoError(t, p.Clear("n1"))
	assert.False(t, p.Showing("n1"))
	// Clearing twice is safe.
	require.NoError(t, p.Clear("n1"))
}

func TestActionArgs(t *testing.T) {
	id, key, ok := actionArgs([]any{uint32(7), "default"})
	require.True(t, ok)
	assert.Equal(t, uint32(7), id)
	assert.Equal(t, "default", key)

	_, _, ok = actionArgs([]any{uint32(7)})
	assert.False(t, ok)

	_, _, ok = actionArgs([]any{"bad", "default"})
	assert.False(t, ok)
}

func TestClosedArgs(t *testing.T) {
	id, reason, ok := closedArgs([]any{uint32(7), closeReasonDismissed})
	require.True(t, ok)
	assert.Equal(t, uint32(7), id)
	assert.Equal(t, closeReasonDismissed, reason)

	_, _, ok = closedArgs([]any{uint32(7), "bad"})
	assert.False(t, ok)
}
