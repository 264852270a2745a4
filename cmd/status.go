package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flattr/adblockpluschrome/internal/queue"
)

// statusCmd prints the queue state.
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the notification queue state",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	prefs, _, err := loadSettings()
	if err != nil {
		return err
	}
	initLogging(prefs)

	dbPath, err := databasePath()
	if err != nil {
		return err
	}
	engine, err := queue.Open(dbPath, &prefs)
	if err != nil {
		return err
	}
	defer engine.Close()

	records, err := engine.List()
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Println("No notifications queued")
		return nil
	}

	pending := 0
	for _, rec := range records {
		state := "shown"
		if !rec.Shown {
			state = "pending"
			pending++
		}
		fmt.Printf("%-20s %-12s %-8s %s\n",
			rec.Notification.ID, rec.Notification.Type, state, rec.Texts.Title)
	}
	fmt.Printf("%d notification(s), %d pending\n", len(records), pending)
	return nil
}
