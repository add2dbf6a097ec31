package main

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"
)

var errPanelMissing = errors.New("review panel not found")

type panelState struct {
	Reviews int `json:"reviews"`
	Height  int `json:"height"`
}

func (s panelState) grewFrom(prev panelState) bool {
	return s.Reviews > prev.Reviews || s.Height > prev.Height
}

// scrollStep performs one scroll of the review panel and reports what is
// loaded afterwards.
type scrollStep func(ctx context.Context) (panelState, error)

// scrollUntilSettled keeps scrolling until the panel stops growing for
// stallLimit consecutive attempts or maxScrolls attempts have been made.
// Failed attempts count as stalls. It returns the number of attempts made.
func scrollUntilSettled(ctx context.Context, step scrollStep, maxScrolls, stallLimit int) int {
	if stallLimit < 1 {
		stallLimit = 1
	}

	var last panelState
	stalls := 0
	attempts := 0
	for attempts < maxScrolls {
		if err := ctx.Err(); err != nil {
			log.Warn().Err(err).Int("attempts", attempts).Msg("scrolling interrupted")
			break
		}

		state, err := step(ctx)
		attempts++
		switch {
		case err != nil:
			stalls++
			log.Error().Err(err).Int("scroll", attempts).Msg("scroll attempt failed")
		case state.grewFrom(last):
			stalls = 0
			last = state
		default:
			stalls++
		}

		log.Info().
			Int("scroll", attempts).
			Int("max", maxScrolls).
			Int("reviews", last.Reviews).
			Msg("completed scroll")

		if stalls >= stallLimit {
			log.Info().Int("reviews", last.Reviews).Msg("review panel stopped growing")
			break
		}
	}
	return attempts
}
