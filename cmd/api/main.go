package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/clubstride/interntrack/internal/pkg/logger"
	"github.com/clubstride/interntrack/internal/server"
)

func main() {
	// A missing .env file is fine; config falls back to yaml defaults and
	// whatever the environment already carries.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
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
