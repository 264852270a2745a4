package surface

import (
	"sync"

	"github.com/flattr/adblockpluschrome/internal/logging"
	"github.com/flattr/adblockpluschrome/internal/notification"
)

// IconAnimator is the daemon's icon animation hook. The companion has no
// extension icon to animate, so it only tracks and logs the state the icon
// surface would be in.
type IconAnimator struct {
	Log logging.Logger

	mu      sync.Mutex
	running bool
	current notification.Type
}

// Start begins animating for the given notification type.
func (a *IconAnimator) Start(t notification.Type) {
	a.mu.Lock()
	a.running = true
	a.current = t
	a.mu.Unlock()
	if a.Log != nil {
		a.Log.Debug("icon animation started", "type", t.String())
	}
}

// Stop ends the animation.
func (a *IconAnimator) Stop() {
	a.mu.Lock()
	a.running = false
	a.current = ""
	a.mu.Unlock()
	if a.Log != nil {
		a.Log.Debug("icon animation stopped")
	}
}

// Running reports whether the animation is active.
func (a *IconAnimator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}
