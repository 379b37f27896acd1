package main

import (
	"fmt"
	"os"

	"trends-dashboard/cmd/api-server/app"
	"trends-dashboard/cmd/api-server/app/options"
	_ "trends-dashboard/docs"
	log "trends-dashboard/internal/logger"
)

// @title Trends Dashboard API
// @version 1.0
// @description Daily search volume and related queries of a keyword, as JSON, PNG charts and dashboard pages.
// @BasePath /
func main() {
	option, err := options.NewOptions()
	if err != nil {
		fmt.Print(option.Usage(err))
		os.Exit(1)
	}

	logger, err := log.SetupLogger(*option.LogFile, *option.Mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := app.Run(option, logger); err != nil {
		os.Exit(1)
	}
}
