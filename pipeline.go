package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// run drives one scrape of the configured listing. The browser is always shut
// down before it returns.
func run(ctx context.Context, cfg config) error {
	browserCtx, closeBrowser, err := newBrowser(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeBrowser()

	log.Info().Str("url", cfg.ListingURL).Msg("loading listing")
	if err := loadListing(browserCtx, cfg); err != nil {
		return fmt.Errorf("load listing: %w", err)
	}

	attempts := scrollReviews(browserCtx, cfg)
	log.Info().Int("attempts", attempts).Msg("finished scrolling reviews")

	html, ok, err := snapshotReviews(browserCtx, cfg)
	if err != nil {
		return err
	}
	if !ok {
		log.Error().Msg("no review elements found")
		return nil
	}

	now := time.Now()
	kept, err := processSnapshot(html, now, cfg.windowAnchor(now))
	if err != nil {
		return err
	}
	return saveReviews(cfg.OutputPath, kept)
}

// processSnapshot turns a page snapshot into the reviews that fall inside the
// acceptance window.
func processSnapshot(html string, now, anchor time.Time) ([]review, error) {
	reviews, err := extractReviews(html)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}
	log.Info().Int("reviews", len(reviews)).Msg("extracted reviews")

	kept := filterReviews(reviews, now, anchor)
	for _, r := range kept {
		log.Info().Str("author", r.Author).Str("date", r.Date).Msg("review within window")
	}
	return kept, nil
}

func saveReviews(path string, reviews []review) error {
	if len(reviews) == 0 {
		log.Error().Msg("no reviews were extracted within the window")
		return nil
	}
	if err := writeReviewsCSV(path, reviews); err != nil {
		return fmt.Errorf("save reviews: %w", err)
	}
	log.Info().Int("reviews", len(reviews)).Str("path", path).Msg("saved reviews")
	return nil
}
