package main

import (
	"log"
	"os"

	"github.com/hydrotrack/core/cmd/api/commands"
)

// @title HydroTrack API
// @version 1.0
// @description Hydroponic garden tracker: setups, plants, lifecycle timelines, inventory and AI advice

// @host localhost:8080
// @BasePath /api/v1

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
