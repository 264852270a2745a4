package surface

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/flattr/adblockpluschrome/internal/presenter"
)

// Page is the fallback in-page surface used when native notifications are
// unsupported. It renders views to a writer and exposes the click and
// close entry points the hosting page wires its DOM events to; both feed
// the presenter's dismissal transitions.
type Page struct {
	events presenter.Events
	out    io.Writer

	mu    sync.Mutex
	views map[string]presenter.View
}

var (
	pageTitleStyle = lipgloss.NewStyle().Bold(true)
	pageBodyStyle  = lipgloss.NewStyle().PaddingLeft(2)
	pageFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// NewPage creates a fallback surface writing rendered notifications to out.
// out may be nil for a purely event-driven surface.
func NewPage(events presenter.Events, out io.Writer) *Page {
	return &Page{
		events: events,
		out:    out,
		views:  make(map[string]presenter.View),
	}
}

// Show stores the view and renders it.
func (p *Page) Show(view presenter.View) error {
	p.mu.Lock()
	p.views[view.ID] = view
	p.mu.Unlock()

	if p.out == nil {
		return nil
	}
	body := pageTitleStyle.Render(view.Title) + "\n" + pageBodyStyle.Render(view.Message)
	if _, err := fmt.Fprintln(p.out, pageFrameStyle.Render(body)); err != nil {
		return fmt.Errorf("surface: render page notification: %w", err)
	}
	return nil
}

// Clear removes the stored view.
func (p *Page) Clear(id string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.views, id)
	return nil
}

// Showing reports whether a view for the id is currently held.
func (p *Page) Showing(id string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, ok := p.views[id]
	return ok
}

// Click simulates a click on the notification body. The page surface has
// no notification center, so the click also closes the notification.
func (p *Page) Click(id string) {
	p.mu.Lock()
	_, ok := p.views[id]
	p.mu.Unlock()
	if !ok {
		return
	}
	p.events.Clicked(id)
}

// Close reports that the notification left the page. The page surface
// cannot stash notifications, so every close counts as a user dismissal.
func (p *Page) Close(id string) {
	p.mu.Lock()
	_, ok := p.views[id]
	delete(p.views, id)
	p.mu.Unlock()
	if !ok {
		return
	}
	p.events.Closed(id, true)
}
