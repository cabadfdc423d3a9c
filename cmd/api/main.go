package main

import (
	"os"

	"github.com/f24tech/edumate/internal/pkg/logger"
	"github.com/f24tech/edumate/internal/server"
)

// @title EduMate API
// @version 1.0
// @description REST API for teacher-managed school records: classes, students, assignments, notes, fees and attendance.

// @contact.name API Support
// @contact.email support@edumate.f24tech.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	// Run blocks until a shutdown signal arrives.
	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
