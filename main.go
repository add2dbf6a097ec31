package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	listingURL := flag.String("url", "", "Google Maps listing URL (overrides LISTING_URL)")
	outputPath := flag.String("out", "", "CSV output path (overrides OUTPUT_PATH)")
	refDate := flag.String("ref-date", "", "Pin the review window to YYYY-MM-DD instead of today")
	flag.Parse()

	_ = godotenv.Load()
	log.Logger = newLogger(os.Getenv("APP_ENV"), os.Getenv("LOG_LEVEL"))

	cfg, err := loadConfig()
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return
	}
	if *listingURL != "" {
		cfg.ListingURL = *listingURL
	}
	if *outputPath != "" {
		cfg.OutputPath = *outputPath
	}
	if *refDate != "" {
		if err := cfg.setReferenceDate(*refDate); err != nil {
			log.Error().Err(err).Msg("invalid -ref-date")
			return
		}
	}

	log.Logger = newLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, cfg.RunTimeout)
	defer cancel()

	if err := run(ctx, cfg); err != nil {
		log.Error().Err(err).Msg("scrape failed")
	}
}
