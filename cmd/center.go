package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/flattr/adblockpluschrome/internal/platform"
	"github.com/flattr/adblockpluschrome/internal/presenter"
	"github.com/flattr/adblockpluschrome/internal/queue"
	"github.com/flattr/adblockpluschrome/internal/surface"
	"github.com/flattr/adblockpluschrome/internal/tui"
)

// centerCmd opens the interactive notification center.
var centerCmd = &cobra.Command{
	Use:   "center",
	Short: "Open the interactive notification center",
	Long: `Open the interactive notification center.

The center is the fallback presentation for hosts without native
notifications: queued notifications are presented into it, and links,
question answers and dismissals are driven from the keyboard.`,
	RunE: runCenter,
}

func init() {
	rootCmd.AddCommand(centerCmd)
}

func runCenter(cmd *cobra.Command, args []string) error {
	prefs, prefsPath, err := loadSettings()
	if err != nil {
		return err
	}
	log := initLogging(prefs)

	dbPath, err := databasePath()
	if err != nil {
		return err
	}
	engine, err := queue.Open(dbPath, &prefs)
	if err != nil {
		return err
	}
	defer engine.Close()

	flags := platform.Resolve(prefs.PlatformInfo())
	opener := &surface.ExecOpener{
		BaseURL:     "https://adblockplus.org",
		SettingsURL: "file://" + prefsPath,
		Log:         log,
	}
	p := presenter.New(engine, flags, presenter.Options{
		Opener:   opener,
		Animator: &surface.IconAnimator{Log: log},
		IconPath: prefs.Notifications.IconPath,
	})
	// The center renders notifications itself; the page surface only keeps
	// the click/close contract alive.
	p.SetSurface(surface.NewPage(p, nil))
	engine.AddShowListener(p.Show)

	if err := engine.ShowNext(""); err != nil {
		log.Warn("show next failed", "error", err)
	}

	program := tea.NewProgram(tui.NewModel(p, engine))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("notification center: %w", err)
	}
	return nil
}
