package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/flattr/adblockpluschrome/internal/platform"
	"github.com/flattr/adblockpluschrome/internal/presenter"
	"github.com/flattr/adblockpluschrome/internal/queue"
	"github.com/flattr/adblockpluschrome/internal/surface"
)

// daemonCmd runs the presenter daemon.
var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Run the notification presenter daemon",
	Long: `Run the notification presenter daemon.

The daemon watches the notification queue, presents eligible notifications
on the native surface (or the fallback surface when native notifications
are unsupported) and routes clicks, button presses and close signals back
into the queue engine.`,
	RunE: runDaemon,
}

var daemonPoll time.Duration

func init() {
	rootCmd.AddCommand(daemonCmd)
	daemonCmd.Flags().DurationVar(&daemonPoll, "poll", 30*time.Second, "Queue poll interval")
}

func runDaemon(cmd *cobra.Command, args []string) error {
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
	log.Info("capabilities resolved",
		"native", flags.NativeNotifications,
		"buttons", flags.Buttons,
		"require_interaction", flags.RequireInteraction)

	opener := &surface.ExecOpener{
		BaseURL:     "https://adblockplus.org",
		SettingsURL: "file://" + prefsPath,
		Log:         log,
	}
	animator := &surface.IconAnimator{Log: log}

	p := presenter.New(engine, flags, presenter.Options{
		Opener:   opener,
		Animator: animator,
		IconPath: prefs.Notifications.IconPath,
	})

	if flags.NativeNotifications {
		native, err := surface.NewDBus(p, log)
		if err != nil {
			log.Warn("native surface unavailable, using fallback", "error", err)
			p.SetSurface(surface.NewPage(p, os.Stdout))
		} else {
			p.SetSurface(native)
		}
	} else {
		p.SetSurface(surface.NewPage(p, os.Stdout))
	}

	engine.AddShowListener(p.Show)
	engine.AddQuestionListener(func(id string, approved bool) {
		log.Info("question answered", "id", id, "approved", approved)
	})

	// Kick once at startup, then poll. The poll stands in for the
	// navigation and blocked-count events that drive showNext in the
	// extension.
	if err := engine.ShowNext(""); err != nil {
		log.Warn("show next failed", "error", err)
	}
	ticker := time.NewTicker(daemonPoll)
	defer ticker.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	log.Info("daemon started", "database", dbPath, "poll", daemonPoll.String())
	for {
		select {
		case <-ticker.C:
			if err := engine.ShowNext(""); err != nil {
				log.Warn("show next failed", "error", err)
			}
		case <-stop:
			log.Info("daemon stopping")
			return nil
		}
	}
}
