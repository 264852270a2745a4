package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flattr/adblockpluschrome/internal/notification"
	"github.com/flattr/adblockpluschrome/internal/queue"
)

// showCmd queues a notification record.
var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Queue a notification for presentation",
	Long: `Queue a notification for presentation.

The record is persisted in the notification database; a running daemon
picks it up on its next poll. The message may embed <a>...</a> anchor
placeholders that map positionally to --link values.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

var (
	showType       string
	showTitle      string
	showMessage    string
	showLinks      []string
	showURLFilters []string
)

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVar(&showType, "type", "information", "Notification type: critical, question, normal, relentless, information")
	showCmd.Flags().StringVar(&showTitle, "title", "", "Notification title")
	showCmd.Flags().StringVar(&showMessage, "message", "", "Notification message, may contain <a> placeholders")
	showCmd.Flags().StringArrayVar(&showLinks, "link", nil, "Link for the matching <a> placeholder (repeatable)")
	showCmd.Flags().StringArrayVar(&showURLFilters, "url-filter", nil, "Restrict the notification to matching URLs (repeatable)")
}

func runShow(cmd *cobra.Command, args []string) error {
	prefs, _, err := loadSettings()
	if err != nil {
		return err
	}
	initLogging(prefs)

	t, err := notification.ParseType(showType)
	if err != nil {
		return err
	}

	dbPath, err := databasePath()
	if err != nil {
		return err
	}
	engine, err := queue.Open(dbPath, &prefs)
	if err != nil {
		return err
	}
	defer engine.Close()

	record := notification.Notification{
		ID:         args[0],
		Type:       t,
		Links:      showLinks,
		URLFilters: showURLFilters,
	}
	texts := notification.LocalizedTexts{Title: showTitle, Message: showMessage}
	if err := engine.Add(record, texts); err != nil {
		return err
	}
	fmt.Printf("Notification %s queued\n", record.ID)
	return nil
}
