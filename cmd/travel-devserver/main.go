package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"github.com/wanderlust/travel-client/internal/config"
	"github.com/wanderlust/travel-client/internal/devserver"
	"github.com/wanderlust/travel-client/internal/logger"
)

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Error().Err(err).Msg("travel-devserver exited with error")
		os.Exit(1)
	}
	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		os.Exit(1)
	}
	lg := logger.New("travel-devserver", cfg.LogFile)
	log.Logger = lg
	if err := devserver.Run(cfg, lg); err != nil {
		lg.Error().Err(err).Msg("travel-devserver exited with error")
		os.Exit(1)
	}
}
