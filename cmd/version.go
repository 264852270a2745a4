package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/flattr/adblockpluschrome/internal/version"
)

// versionCmd prints the program version.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("abp-notifier %s\n", version.String())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
