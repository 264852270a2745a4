// Package surface provides the presentation surfaces the presenter renders
// to: the native desktop notification service and an in-process fallback
// for hosts without one.
package surface

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/godbus/dbus/v5"

	"github.com/flattr/adblockpluschrome/internal/logging"
	"github.com/flattr/adblockpluschrome/internal/presenter"
)

const (
	dbusNotifyDest      = "org.freedesktop.Notifications"
	dbusNotifyPath      = "/org/freedesktop/Notifications"
	dbusNotifyInterface = "org.freedesktop.Notifications"

	signalActionInvoked      = dbusNotifyInterface + ".ActionInvoked"
	signalNotificationClosed = dbusNotifyInterface + ".NotificationClosed"

	// defaultActionKey is the reserved action key for body clicks.
	defaultActionKey = "default"

	appName = "Adblock Plus"
)

// Close reasons from the freedesktop notification spec.
const (
	closeReasonExpired   uint32 = 1
	closeReasonDismissed uint32 = 2
	closeReasonClosed    uint32 = 3
)

// DBus is the native notification surface backed by the session bus
// org.freedesktop.Notifications service.
type DBus struct {
	conn   *dbus.Conn
	obj    dbus.BusObject
	events presenter.Events
	log    logging.Logger

	mu       sync.Mutex
	systemID map[string]uint32 // notification id -> dbus server id
	byID     map[uint32]string
}

// NewDBus connects to the session bus and starts routing action and close
// signals to the given event sink.
func NewDBus(events presenter.Events, log logging.Logger) (*DBus, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, fmt.Errorf("surface: connect session bus: %w", err)
	}
	if log == nil {
		log = logging.Noop{}
	}
	d := &DBus{
		conn:     conn,
		obj:      conn.Object(dbusNotifyDest, dbusNotifyPath),
		events:   events,
		log:      log,
		systemID: make(map[string]uint32),
		byID:     make(map[uint32]string),
	}
	if err := d.listen(); err != nil {
		return nil, err
	}
	return d, nil
}

// listen subscribes to the notification service signals.
func (d *DBus) listen() error {
	err := d.conn.AddMatchSignal(
		dbus.WithMatchObjectPath(dbusNotifyPath),
		dbus.WithMatchInterface(dbusNotifyInterface),
	)
	if err != nil {
		return fmt.Errorf("surface: match signals: %w", err)
	}
	signals := make(chan *dbus.Signal, 16)
	d.conn.Signal(signals)
	go d.route(signals)
	return nil
}

// route translates bus signals into presenter events.
func (d *DBus) route(signals <-chan *dbus.Signal) {
	for sig := range signals {
		switch sig.Name {
		case signalActionInvoked:
			systemID, actionKey, ok := actionArgs(sig.Body)
			if !ok {
				continue
			}
			id, known := d.lookup(systemID)
			if !known {
				continue
			}
			if actionKey == defaultActionKey {
				d.log.Debug("notification clicked", "id", id)
				d.events.Clicked(id)
				continue
			}
			index, err := strconv.Atoi(actionKey)
			if err != nil {
				continue
			}
			d.log.Debug("notification button clicked", "id", id, "button", index)
			d.events.ButtonClicked(id, index)

		case signalNotificationClosed:
			systemID, reason, ok := closedArgs(sig.Body)
			if !ok {
				continue
			}
			id, known := d.forget(systemID)
			if !known {
				continue
			}
			byUser := reason == closeReasonDismissed
			d.log.Debug("notification closed", "id", id, "by_user", byUser)
			d.events.Closed(id, byUser)
		}
	}
}

// Show renders the view via the Notify call. Button titles become
// freedesktop actions keyed by their click index; a "default" action maps
// body clicks.
func (d *DBus) Show(view presenter.View) error {
	actions := []string{defaultActionKey, "Open"}
	for i, title := range view.ButtonTitles {
		actions = append(actions, strconv.Itoa(i), title)
	}

	hints := map[string]dbus.Variant{
		"desktop-entry": dbus.MakeVariant("adblockplus"),
	}
	if view.RequireInteraction {
		hints["resident"] = dbus.MakeVariant(true)
	}

	// Never expire pinned notifications, otherwise use the server default.
	timeout := int32(-1)
	if view.RequireInteraction {
		timeout = 0
	}

	d.mu.Lock()
	replaces := d.systemID[view.ID]
	d.mu.Unlock()

	call := d.obj.Call(
		dbusNotifyInterface+".Notify",
		0,
		appName,
		replaces,
		view.IconPath,
		view.Title,
		view.Message,
		actions,
		hints,
		timeout,
	)
	if call.Err != nil {
		return fmt.Errorf("surface: notify: %w", call.Err)
	}
	var systemID uint32
	if err := call.Store(&systemID); err != nil {
		return fmt.Errorf("surface: notify result: %w", err)
	}

	d.mu.Lock()
	d.systemID[view.ID] = systemID
	d.byID[systemID] = view.ID
	d.mu.Unlock()
	return nil
}

// Clear closes the notification on the server.
func (d *DBus) Clear(id string) error {
	d.mu.Lock()
	systemID, ok := d.systemID[id]
	d.mu.Unlock()
	if !ok {
		return nil
	}
	call := d.obj.Call(dbusNotifyInterface+".CloseNotification", 0, systemID)
	if call.Err != nil {
		return fmt.Errorf("surface: close notification: %w", call.Err)
	}
	return nil
}

// lookup resolves a server id to a notification id.
func (d *DBus) lookup(systemID uint32) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id, ok := d.byID[systemID]
	return id, ok
}

// forget resolves and drops the mapping for a server id.
func (d *DBus) forget(systemID uint32) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	id, ok := d.byID[systemID]
	if ok {
		delete(d.byID, systemID)
		delete(d.systemID, id)
	}
	return id, ok
}

func actionArgs(body []any) (systemID uint32, actionKey string, ok bool) {
	if len(body) < 2 {
		return 0, "", false
	}
	systemID, okID := body[0].(uint32)
	actionKey, okKey := body[1].(string)
	return systemID, actionKey, okID && okKey
}

func closedArgs(body []any) (systemID uint32, reason uint32, ok bool) {
	if len(body) < 2 {
		return 0, 0, false
	}
	systemID, okID := body[0].(uint32)
	reason, okReason := body[1].(uint32)
	return systemID, reason, okID && okReason
}
