package main

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
)

// newBrowser starts Chrome and returns a context bound to its first tab.
// The returned cancel func shuts the browser down.
func newBrowser(parent context.Context, cfg config) (context.Context, context.CancelFunc, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.WindowSize(cfg.WindowWidth, cfg.WindowHeight),
		chromedp.UserAgent(cfg.UserAgent),
	)
	if cfg.ChromePath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ChromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(parent, opts...)
	// chromedp reports unknown CDP events as errors; they are harmless.
	ctx, ctxCancel := chromedp.NewContext(allocCtx,
		chromedp.WithErrorf(func(format string, args ...interface{}) {
			log.Debug().Msgf(format, args...)
		}),
	)
	cancel := func() {
		ctxCancel()
		allocCancel()
	}

	if err := chromedp.Run(ctx); err != nil {
		cancel()
		return nil, nil, fmt.Errorf("start browser: %w", err)
	}
	return ctx, cancel, nil
}

func loadListing(ctx context.Context, cfg config) error {
	return chromedp.Run(ctx,
		chromedp.Navigate(cfg.ListingURL),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var dismissed bool
			if err := chromedp.Evaluate(consentScript, &dismissed).Do(ctx); err != nil {
				log.Debug().Err(err).Msg("consent check failed")
				return nil
			}
			if dismissed {
				log.Info().Msg("dismissed consent dialog")
			}
			return nil
		}),
		chromedp.Sleep(cfg.NavSettle),
	)
}

// waitForElement blocks until selector is present or timeout elapses.
func waitForElement(ctx context.Context, selector string, timeout time.Duration) bool {
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := chromedp.Run(waitCtx, chromedp.WaitReady(selector, chromedp.ByQuery)); err != nil {
		log.Warn().Err(err).Str("selector", selector).Msg("timeout waiting for element")
		return false
	}
	return true
}

func scrollReviews(ctx context.Context, cfg config) int {
	if !waitForElement(ctx, reviewPanelSelector, cfg.ElementWait) {
		log.Warn().Msg("could not find reviews container")
		return 0
	}
	return scrollUntilSettled(ctx, chromeScrollStep(cfg.ScrollPause), cfg.ScrollMax, cfg.ScrollStall)
}

func chromeScrollStep(pause time.Duration) scrollStep {
	return func(ctx context.Context) (panelState, error) {
		var found bool
		var payload string
		err := chromedp.Run(ctx,
			chromedp.Evaluate(scrollScript, &found),
			chromedp.Sleep(pause),
			chromedp.Evaluate(panelStateScript, &payload),
		)
		if err != nil {
			return panelState{}, err
		}
		if !found {
			return panelState{}, errPanelMissing
		}

		var state panelState
		if err := jsoniter.Unmarshal([]byte(payload), &state); err != nil {
			return panelState{}, fmt.Errorf("decode panel state: %w", err)
		}
		return state, nil
	}
}

// snapshotReviews expands truncated review text and returns the page HTML.
// ok is false when no review node shows up in time.
func snapshotReviews(ctx context.Context, cfg config) (html string, ok bool, err error) {
	if !waitForElement(ctx, reviewNodeSelector, cfg.ElementWait) {
		return "", false, nil
	}

	var expanded int
	err = chromedp.Run(ctx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			if err := chromedp.Evaluate(expandScript, &expanded).Do(ctx); err != nil {
				log.Warn().Err(err).Msg("unable to expand reviews")
			}
			return nil
		}),
		chromedp.Sleep(cfg.ExpandPause),
		chromedp.OuterHTML("body", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", false, fmt.Errorf("snapshot reviews: %w", err)
	}
	log.Debug().Int("expanded", expanded).Msg("expanded truncated reviews")
	return html, true, nil
}
