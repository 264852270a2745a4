// Package platform resolves browser platform metadata into the capability
// flags that decide how notifications are presented.
package platform

import (
	"strconv"
	"strings"
)

// Known platform and application identifiers.
const (
	PlatformChromium = "chromium"
	PlatformGecko    = "gecko"
	PlatformEdgeHTML = "edgehtml"

	ApplicationOpera = "opera"
)

// minRequireInteractionVersion is the first Chromium major version whose
// notifications honor the require-interaction attribute.
const minRequireInteractionVersion = 50

// Info is the platform metadata capabilities are resolved from.
type Info struct {
	// Platform names the browser engine, e.g. "chromium" or "gecko".
	Platform string
	// Application names the hosting browser, e.g. "adblockplus" or "opera".
	Application string
	// PlatformVersion is the engine version string, e.g. "119.0.6045.123".
	PlatformVersion string
}

// Flags are the resolved presentation capabilities.
type Flags struct {
	// NativeNotifications reports whether the platform can show native
	// notifications at all.
	NativeNotifications bool
	// Buttons reports whether native notifications can carry buttons.
	Buttons bool
	// RequireInteraction reports whether notifications can be pinned until
	// the user interacts with them.
	RequireInteraction bool
}

// Resolve derives the capability flags from platform metadata. Resolution
// is pure: equal inputs always yield equal flags.
func Resolve(info Info) Flags {
	native := info.Platform != PlatformEdgeHTML
	chromium := info.Platform == PlatformChromium
	return Flags{
		NativeNotifications: native,
		Buttons:             native && chromium && info.Application != ApplicationOpera,
		RequireInteraction:  chromium && majorVersion(info.PlatformVersion) >= minRequireInteractionVersion,
	}
}

// majorVersion extracts the leading numeric component of a version string.
// Malformed or negative versions count as 0.
func majorVersion(version string) int {
	major, _, _ := strings.Cut(version, ".")
	n, err := strconv.Atoi(major)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
