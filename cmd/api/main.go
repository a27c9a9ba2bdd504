package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/omerl/unirest/internal/pkg/logger"
	"github.com/omerl/unirest/internal/server"
)

// @title Unirest API
// @version 1.0
// @description Academic records service: courses, students, enrollments and grade aggregates

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api
// @schemes http

func main() {
	// A .env file is optional; real environment variables win either way.
	if err := godotenv.Load(); err == nil {
		logger.Debug().Msg("Loaded environment from .env file")
	}

	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
