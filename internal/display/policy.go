// Package display maps notification types to the presentation surfaces they
// activate.
package display

import "github.com/flattr/adblockpluschrome/internal/notification"

// Surface is a presentation channel for a notification.
type Surface string

// Available surfaces.
const (
	// SurfaceIcon animates the extension icon.
	SurfaceIcon Surface = "icon"
	// SurfaceNotification shows a native (tray) notification.
	SurfaceNotification Surface = "notification"
	// SurfacePopup badges the popup.
	SurfacePopup Surface = "popup"
)

// methods maps each notification type to its fixed surface set.
var methods = map[notification.Type][]Surface{
	notification.TypeCritical:    {SurfaceIcon, SurfaceNotification, SurfacePopup},
	notification.TypeQuestion:    {SurfaceNotification},
	notification.TypeNormal:      {SurfaceNotification},
	notification.TypeRelentless:  {SurfaceNotification},
	notification.TypeInformation: {SurfaceIcon, SurfacePopup},
}

// defaultMethods is used for types absent from the table.
var defaultMethods = []Surface{SurfacePopup}

// ShouldDisplay reports whether the given surface is activated for
// notifications of the given type.
func ShouldDisplay(surface Surface, t notification.Type) bool {
	surfaces, ok := methods[t]
	if !ok {
		surfaces = defaultMethods
	}
	for _, s := range surfaces {
		if s == surface {
			return true
		}
	}
	return false
}

// IsOptional reports whether the user may opt out of notifications of the
// given type. Optional notifications are offered a configure button.
func IsOptional(t notification.Type) bool {
	return t != notification.TypeCritical && t != notification.TypeRelentless
}
