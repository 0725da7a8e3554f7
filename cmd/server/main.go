package main

import (
	"flag"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"timetabler/internal/catalog"
	"timetabler/internal/config"
	"timetabler/internal/logger"
	"timetabler/internal/server"
)

func main() {
	configPath := flag.String("config", "config.yml", "Path to the configuration file")
	flag.Parse()

	// A .env file is optional; when present it feeds the same keys as the
	// environment overrides.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load configuration")
	}
	logger.Configure(cfg.Logging.Level, cfg.Logging.Format)

	cat, err := catalog.Load(cfg.Catalog.File, cfg.Catalog.Sheet)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load timetable catalog")
	}

	srv := server.New(cat, cfg.Generator.MaxResults, cfg.Server.Mode)
	log.Info().Str("port", cfg.Server.Port).Msg("starting timetable analyzer API")
	if err := srv.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
