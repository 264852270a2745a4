package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want Flags
	}{
		{
			name: "chromium supports everything",
			info: Info{Platform: "chromium", Application: "adblockplus", PlatformVersion: "119.0.6045.123"},
			want: Flags{NativeNotifications: true, Buttons: true, RequireInteraction: true},
		},
		{
			name: "chromium below require-interaction version",
			info: Info{Platform: "chromium", Application: "adblockplus", PlatformVersion: "49.0.2623.75"},
			want: Flags{NativeNotifications: true, Buttons: true, RequireInteraction: false},
		},
		{
			name: "opera never gets buttons",
			info: Info{Platform: "chromium", Application: "opera", PlatformVersion: "105.0"},
			want: Flags{NativeNotifications: true, Buttons: false, RequireInteraction: true},
		},
		{
			name: "edgehtml has no native notifications",
			info: Info{Platform: "edgehtml", Application: "edge", PlatformVersion: "18.0"},
			want: Flags{NativeNotifications: false, Buttons: false, RequireInteraction: false},
		},
		{
			name: "gecko has native notifications but no buttons",
			info: Info{Platform: "gecko", Application: "firefox", PlatformVersion: "120.0"},
			want: Flags{NativeNotifications: true, Buttons: false, RequireInteraction: false},
		},
		{
			name: "malformed version fails the minimum check",
			info: Info{Platform: "chromium", Application: "adblockplus", PlatformVersion: "unknown"},
			want: Flags{NativeNotifications: true, Buttons: true, RequireInteraction: false},
		},
		{
			name: "empty version fails the minimum check",
			info: Info{Platform: "chromium", Application: "adblockplus", PlatformVersion: ""},
			want: Flags{NativeNotifications: true, Buttons: true, RequireInteraction: false},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.info))
		})
	}
}

func TestMajorVersion(t *testing.T) {
	tests := []struct {
		version string
		want    int
	}{
		{"50", 50},
		{"50.0.2661.102", 50},
		{"119.0", 119},
		{"", 0},
		{"abc", 0},
		{"-1.2", 0},
		{"49.9999", 49},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			assert.Equal(t, tt.want, majorVersion(tt.version))
		})
	}
}
