package main

import (
	"context"
	"flag"
	"os"
	"time"

	"student_portal/internal/app/di"
	"student_portal/internal/app/seed"
	"student_portal/internal/platform/logger"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := di.LoadConfig(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("startup failed")
		os.Exit(1)
	}

	// Seeding always migrates first so a fresh database works.
	gdb, err := di.OpenDatabase(cfg, true)
	if err != nil {
		logger.Error().Err(err).Msg("database unavailable")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	res, err := seed.Run(ctx, gdb)
	if err != nil {
		logger.Error().Err(err).Msg("seed failed")
		os.Exit(1)
	}
	logger.Info().
		Int("accounts", res.Accounts).
		Int("projects", res.Projects).
		Int("announcements", res.Announcements).
		Msg("seed ok")
}
