package main

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	day = 24 * time.Hour

	// Google's relative labels are coarse; a month is counted as 30 days.
	approxMonth = 30 * day

	windowNewest = 300 * day
	windowOldest = 365 * day

	absoluteDateLayout = "January 2, 2006"
)

var (
	errUnrecognizedDate = errors.New("unrecognized review date")

	pluralAgoRegex   = regexp.MustCompile(`^(\d+) (months|weeks|days) ago`)
	singularAgoRegex = regexp.MustCompile(`^a (month|week|day) ago`)
)

// parseReviewDate converts a review's display date into a point in time.
// Relative labels are measured back from now.
func parseReviewDate(raw string, now time.Time) (time.Time, error) {
	value := strings.TrimSpace(raw)

	if m := pluralAgoRegex.FindStringSubmatch(value); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w %q: %v", errUnrecognizedDate, raw, err)
		}
		unit := unitDuration(m[2])
		if int64(n) > math.MaxInt64/int64(unit) {
			return time.Time{}, fmt.Errorf("%w %q: out of range", errUnrecognizedDate, raw)
		}
		return now.Add(-time.Duration(n) * unit), nil
	}

	if m := singularAgoRegex.FindStringSubmatch(value); m != nil {
		return now.Add(-unitDuration(m[1])), nil
	}

	parsed, err := time.ParseInLocation(absoluteDateLayout, value, now.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q", errUnrecognizedDate, raw)
	}
	return parsed, nil
}

func unitDuration(unit string) time.Duration {
	switch strings.TrimSuffix(unit, "s") {
	case "month":
		return approxMonth
	case "week":
		return 7 * day
	default:
		return day
	}
}

// reviewWindow returns the inclusive [oldest, newest] bounds measured from anchor.
func reviewWindow(anchor time.Time) (time.Time, time.Time) {
	return anchor.Add(-windowOldest), anchor.Add(-windowNewest)
}

func inWindow(t, oldest, newest time.Time) bool {
	return !t.Before(oldest) && !t.After(newest)
}

// filterReviews parses every review date against now and keeps the ones that
// fall inside the window anchored at anchor. Reviews without a usable date are
// dropped.
func filterReviews(reviews []review, now, anchor time.Time) []review {
	oldest, newest := reviewWindow(anchor)

	kept := make([]review, 0, len(reviews))
	for _, r := range reviews {
		if strings.TrimSpace(r.Date) == "" {
			log.Debug().Str("author", r.Author).Msg("review has no date, skipping")
			continue
		}
		parsed, err := parseReviewDate(r.Date, now)
		if err != nil {
			log.Warn().Err(err).Str("author", r.Author).Msg("unable to parse review date")
			continue
		}
		r.ParsedDate = &parsed
		if !inWindow(parsed, oldest, newest) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}
