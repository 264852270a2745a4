package main

import (
	"os"

	"github.com/flattr/adblockpluschrome/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
