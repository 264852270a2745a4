package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flattr/adblockpluschrome/internal/notification"
	"github.com/flattr/adblockpluschrome/internal/platform"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "settings.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
	assert.True(t, s.Notifications.Enabled)
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	content := `
[notifications]
enabled = false
ignored-types = ["information", "critical", "bogus"]
icon-path = "/usr/share/icons/abp.png"

[platform]
name = "gecko"
application = "firefox"
version = "120.0"

[logging]
level = "debug"
json = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.False(t, s.Notifications.Enabled)
	// Non-optional and unknown types are dropped from the ignore list.
	assert.Equal(t, []string{"information"}, s.Notifications.IgnoredTypes)
	assert.Equal(t, "/usr/share/icons/abp.png", s.Notifications.IconPath)
	assert.Equal(t, "gecko", s.Platform.Name)
	assert.Equal(t, "debug", s.Logging.Level)
	assert.True(t, s.Logging.JSON)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, []byte("not [valid toml"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.toml")
	s := Default()
	s.SetIgnored(notification.TypeInformation, true)

	require.NoError(t, Save(path, s))
	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s, reloaded)
}

func TestIsIgnored(t *testing.T) {
	s := Default()
	assert.False(t, s.IsIgnored(notification.TypeInformation))

	require.True(t, s.SetIgnored(notification.TypeInformation, true))
	assert.True(t, s.IsIgnored(notification.TypeInformation))

	// Setting twice changes nothing.
	assert.False(t, s.SetIgnored(notification.TypeInformation, true))

	require.True(t, s.SetIgnored(notification.TypeInformation, false))
	assert.False(t, s.IsIgnored(notification.TypeInformation))
}

func TestSetIgnored_RefusesMandatoryTypes(t *testing.T) {
	s := Default()
	assert.False(t, s.SetIgnored(notification.TypeCritical, true))
	assert.False(t, s.IsIgnored(notification.TypeCritical))
	assert.False(t, s.SetIgnored(notification.TypeRelentless, true))
}

func TestPlatformInfo(t *testing.T) {
	s := Default()
	s.Platform = Platform{Name: "chromium", Application: "adblockplus", Version: "119.0"}
	assert.Equal(t, platform.Info{
		Platform:        "chromium",
		Application:     "adblockplus",
		PlatformVersion: "119.0",
	}, s.PlatformInfo())
}
