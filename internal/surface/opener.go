package surface

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/flattr/adblockpluschrome/internal/logging"
)

// ExecOpener opens links through the desktop's URL handler. Local pages
// are resolved against a base URL before opening.
type ExecOpener struct {
	// Command launches a URL, defaulting to xdg-open.
	Command string
	// BaseURL prefixes local page paths.
	BaseURL string
	// SettingsURL is opened by the configure action. The section is
	// appended as a fragment.
	SettingsURL string
	Log         logging.Logger
}

const defaultOpenCommand = "xdg-open"

// OpenURL opens an external URL.
func (o *ExecOpener) OpenURL(url string) error {
	return o.launch(url)
}

// OpenLocalPage opens an extension-internal page by its path.
func (o *ExecOpener) OpenLocalPage(path string) error {
	return o.launch(strings.TrimSuffix(o.BaseURL, "/") + path)
}

// OpenSettings opens the settings surface at the given section.
func (o *ExecOpener) OpenSettings(section string) error {
	if o.SettingsURL == "" {
		return nil
	}
	url := o.SettingsURL
	if section != "" {
		url += "#" + section
	}
	return o.launch(url)
}

func (o *ExecOpener) launch(url string) error {
	command := o.Command
	if command == "" {
		command = defaultOpenCommand
	}
	if o.Log != nil {
		o.Log.Debug("opening link", "url", url)
	}
	if err := exec.Command(command, url).Start(); err != nil {
		return fmt.Errorf("surface: open %s: %w", url, err)
	}
	return nil
}
