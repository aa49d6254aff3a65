package main

import (
	"fmt"
	"os"

	"shipment-tracker/internal/cli"
	"shipment-tracker/internal/core/logger"

	_ "time/tzdata"
)

func main() {
	if err := logger.Init("development", os.Getenv("LOG_LEVEL")); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := cli.TrackCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
