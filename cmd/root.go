// Package cmd implements the abp-notifier command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/flattr/adblockpluschrome/internal/logging"
	"github.com/flattr/adblockpluschrome/internal/settings"
	"github.com/flattr/adblockpluschrome/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "abp-notifier",
	Short:         "Desktop notification presenter for Adblock Plus",
	Long:          "Presents queued Adblock Plus notifications on the desktop and routes clicks, button presses and dismissals back into the extension's behavior.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	flagSettings string
	flagDatabase string
	flagDebug    bool
)

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}

func init() {
	rootCmd.Version = version.String()
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&flagSettings, "settings", "", "Path to the settings file")
	rootCmd.PersistentFlags().StringVar(&flagDatabase, "database", "", "Path to the notification database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

// loadSettings resolves and loads the settings file.
func loadSettings() (settings.Settings, string, error) {
	path := flagSettings
	if path == "" {
		defaultPath, err := settings.DefaultPath()
		if err != nil {
			return settings.Settings{}, "", err
		}
		path = defaultPath
	}
	s, err := settings.Load(path)
	if err != nil {
		return settings.Settings{}, "", err
	}
	return s, path, nil
}

// databasePath resolves the notification database location.
func databasePath() (string, error) {
	if flagDatabase != "" {
		return flagDatabase, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("determine config directory: %w", err)
	}
	return dir + "/abp-notifier/notifications.db", nil
}

// initLogging builds the logger from settings and the debug flag.
func initLogging(s settings.Settings) logging.Logger {
	cfg := logging.Config{Level: s.Logging.Level, JSON: s.Logging.JSON}
	if flagDebug {
		cfg.Level = "debug"
	}
	return logging.InitGlobal(cfg)
}
