// Package presenter owns the active-notification slot and the button
// registry, and mediates every show and dismissal transition between the
// queue engine and the presentation surfaces.
//
// All failures inside this package are silent no-ops: an unknown id, an
// out-of-range button index or a broken local link never surfaces an error
// to the user. Correctness is defined by these no-op policies.
package presenter

import (
	"sync"

	"github.com/flattr/adblockpluschrome/internal/buttons"
	"github.com/flattr/adblockpluschrome/internal/display"
	"github.com/flattr/adblockpluschrome/internal/notification"
	"github.com/flattr/adblockpluschrome/internal/platform"
)

// SettingsSection is the settings section the Configure button opens.
const SettingsSection = "notifications"

// entry is one button-registry record. It keeps the rendered texts around
// so surfaces that outlive the active slot (the notification center) can
// still display the notification.
type entry struct {
	record  *notification.Notification
	texts   notification.LocalizedTexts
	buttons []buttons.Button
}

// Retained describes a notification whose registry entry is still alive.
type Retained struct {
	Record  *notification.Notification
	Texts   notification.LocalizedTexts
	Buttons []buttons.Button
}

// Options carries the collaborators of a Presenter. Surface, Opener and
// Animator may be nil; the corresponding side effects are then skipped
// while the state transitions stay intact.
type Options struct {
	Surface  Surface
	Opener   Opener
	Animator IconAnimator
	// IconPath is handed to surfaces on every view.
	IconPath string
}

// Presenter is the presentation state machine. It is either idle or holds
// exactly one active notification. Event handlers run to completion under
// a single lock, which serializes all mutations of the slot, the registry
// and the animation flag.
type Presenter struct {
	queue Queue
	flags platform.Flags

	mu        sync.Mutex
	surface   Surface
	opener    Opener
	animator  IconAnimator
	iconPath  string
	active    *notification.Notification
	registry  map[string]*entry
	animating bool
}

// New creates a Presenter for the given queue engine and capability flags.
func New(queue Queue, flags platform.Flags, opts Options) *Presenter {
	return &Presenter{
		queue:    queue,
		flags:    flags,
		surface:  opts.Surface,
		opener:   opts.Opener,
		animator: opts.Animator,
		iconPath: opts.IconPath,
		registry: make(map[string]*entry),
	}
}

// SetSurface installs the presentation surface. Surfaces are constructed
// with the presenter as their event sink, so installation happens after
// construction.
func (p *Presenter) SetSurface(s Surface) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.surface = s
}

// Active returns the currently active notification, or nil when idle.
func (p *Presenter) Active() *notification.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.active
}

// Buttons returns the registered buttons for a notification id, or nil.
func (p *Presenter) Buttons(id string) []buttons.Button {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, ok := p.registry[id]
	if !ok {
		return nil
	}
	return e.buttons
}

// RetainedEntries returns every notification still held in the button
// registry, the active one included.
func (p *Presenter) RetainedEntries() []Retained {
	p.mu.Lock()
	defer p.mu.Unlock()
	retained := make([]Retained, 0, len(p.registry))
	for _, e := range p.registry {
		retained = append(retained, Retained{
			Record:  e.record,
			Texts:   e.texts,
			Buttons: e.buttons,
		})
	}
	return retained
}

// Show presents a notification record. Showing the record that is already
// active is a no-op, as is a question on a platform without buttons and a
// record referencing an unknown local page. On success the record becomes
// the active notification, its buttons are registered, the policy-selected
// surfaces are activated and, unless the record is a question, it is
// marked as shown in the queue engine.
func (p *Presenter) Show(n *notification.Notification) {
	if n == nil {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active != nil && p.active.ID == n.ID {
		return
	}
	// A question with no way to answer it is useless.
	if n.Type == notification.TypeQuestion && !p.flags.Buttons {
		return
	}

	texts := p.queue.LocalizedTexts(n)
	built := buttons.Build(n, texts.Message)
	if !linksResolvable(buttons.Links(built)) {
		return
	}

	// Buttons are registered even when every display surface ends up
	// disabled, so click handling from other surfaces still works.
	p.registry[n.ID] = &entry{record: n, texts: texts, buttons: built}
	p.active = n

	if display.ShouldDisplay(display.SurfaceNotification, n.Type) && p.surface != nil {
		view := View{
			ID:                 n.ID,
			Title:              texts.Title,
			Message:            notification.StripMarkup(texts.Message),
			IconPath:           p.iconPath,
			RequireInteraction: p.flags.RequireInteraction,
		}
		if p.flags.Buttons {
			view.ButtonTitles = buttons.Titles(built)
		}
		_ = p.surface.Show(view)
	}

	if display.ShouldDisplay(display.SurfaceIcon, n.Type) && len(n.URLFilters) == 0 {
		if p.animator != nil {
			p.animator.Start(n.Type)
		}
		p.animating = true
	}

	// Questions are marked as shown only once answered.
	if n.Type != notification.TypeQuestion {
		_ = p.queue.MarkAsShown(n.ID)
	}
}

// ButtonClicked dispatches the side effect of the button at the given
// index. Unknown ids and out-of-range indices are ignored.
func (p *Presenter) ButtonClicked(id string, index int) {
	p.mu.Lock()
	e, ok := p.registry[id]
	if !ok || index < 0 || index >= len(e.buttons) {
		p.mu.Unlock()
		return
	}
	clicked := e.buttons[index]
	opener := p.opener
	queue := p.queue
	p.mu.Unlock()

	switch b := clicked.(type) {
	case buttons.Link:
		p.openLink(opener, b.Target)
	case buttons.OpenAll:
		for _, link := range b.Targets {
			p.openLink(opener, link)
		}
	case buttons.Configure:
		if opener != nil {
			_ = opener.OpenSettings(SettingsSection)
		}
	case buttons.Question:
		_ = queue.TriggerQuestionListeners(id, b.IsYes)
		_ = queue.MarkAsShown(id)
	}
}

// Clicked handles a click on the notification body. On platforms without
// button support the click opens every link the notification references;
// either way the click dismisses the notification.
func (p *Presenter) Clicked(id string) {
	if !p.flags.Buttons {
		p.OpenLinksFallback(id)
	}
	p.mu.Lock()
	surface := p.surface
	p.mu.Unlock()
	if surface != nil {
		_ = surface.Clear(id)
	}
	p.Dismiss(id, false)
}

// Closed handles the platform close signal. When the platform merely
// stashed the notification into its notification center (byUser false),
// the buttons stay registered and clickable.
func (p *Presenter) Closed(id string, byUser bool) {
	p.Dismiss(id, !byUser)
}

// Dismiss unwinds presentation state for a notification. If it is the
// active one, the slot is cleared and a running icon animation stopped.
// Unless the notification is retained in the notification center, its
// registry entry is deleted. Dismissing an unknown or already dismissed id
// is a safe no-op, so redundant close signals are harmless.
func (p *Presenter) Dismiss(id string, retainedInCenter bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.active != nil && p.active.ID == id {
		p.active = nil
		if p.animating {
			if p.animator != nil {
				p.animator.Stop()
			}
			p.animating = false
		}
	}
	if !retainedInCenter {
		delete(p.registry, id)
	}
}

// OpenLinksFallback opens every link referenced by the registered buttons
// of a notification. It backs body clicks on platforms whose notifications
// cannot carry buttons.
func (p *Presenter) OpenLinksFallback(id string) {
	p.mu.Lock()
	e, ok := p.registry[id]
	if !ok {
		p.mu.Unlock()
		return
	}
	links := buttons.Links(e.buttons)
	opener := p.opener
	p.mu.Unlock()

	for _, link := range links {
		p.openLink(opener, link)
	}
}

// openLink routes a link to the opener, translating local-page aliases.
func (p *Presenter) openLink(opener Opener, link string) {
	if opener == nil {
		return
	}
	if notification.IsLocalLink(link) {
		path, ok := localPagePath(link)
		if !ok {
			return
		}
		_ = opener.OpenLocalPage(path)
		return
	}
	_ = opener.OpenURL(link)
}
