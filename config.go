package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultListingURL   = "https://www.google.com/maps/place/Ganga+Seva+Nidhi/@25.3067739,83.007694,17z/data=!4m8!3m7!1s0x398e31e1eeb5faed:0xe6e05d67d04cbf8e!8m2!3d25.3067739!4d83.0102689!9m1!1b1!16s%2Fg%2F11b6qf900s?entry=ttu&g_ep=EgoyMDI0MTAwMi4xIKXMDSoASAFQAw%3D%3D"
	defaultUserAgent    = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36"
	defaultOutputPath   = "google_reviews.csv"
	referenceDateLayout = "2006-01-02"
)

type config struct {
	AppEnv        string
	LogLevel      string
	Headless      bool
	ChromePath    string
	UserAgent     string
	WindowWidth   int
	WindowHeight  int
	ListingURL    string
	OutputPath    string
	NavSettle     time.Duration
	ScrollMax     int
	ScrollStall   int
	ScrollPause   time.Duration
	ExpandPause   time.Duration
	ElementWait   time.Duration
	RunTimeout    time.Duration
	ReferenceDate time.Time
}

func loadConfig() (config, error) {
	headless, err := parseHeadless(os.Getenv("HEADLESS"))
	if err != nil {
		return config{}, err
	}

	cfg := config{
		AppEnv:       valueOrDefault(os.Getenv("APP_ENV"), "prod"),
		LogLevel:     valueOrDefault(os.Getenv("LOG_LEVEL"), "info"),
		Headless:     headless,
		ChromePath:   strings.TrimSpace(os.Getenv("CHROME_PATH")),
		UserAgent:    valueOrDefault(os.Getenv("USER_AGENT"), defaultUserAgent),
		WindowWidth:  parseIntEnv("WINDOW_WIDTH", 1920),
		WindowHeight: parseIntEnv("WINDOW_HEIGHT", 1080),
		ListingURL:   valueOrDefault(os.Getenv("LISTING_URL"), defaultListingURL),
		OutputPath:   valueOrDefault(os.Getenv("OUTPUT_PATH"), defaultOutputPath),
		NavSettle:    parseDurationEnv("NAV_SETTLE_MS", 5000),
		ScrollMax:    parseIntEnv("SCROLL_MAX", 20),
		ScrollStall:  parseIntEnv("SCROLL_STALL_LIMIT", 3),
		ScrollPause:  parseDurationEnv("SCROLL_PAUSE_MS", 2000),
		ExpandPause:  parseDurationEnv("EXPAND_PAUSE_MS", 500),
		ElementWait:  parseDurationEnv("ELEMENT_WAIT_MS", 10000),
		RunTimeout:   parseDurationEnv("RUN_TIMEOUT_MS", 10*60*1000),
	}

	if raw := strings.TrimSpace(os.Getenv("REFERENCE_DATE")); raw != "" {
		if err := cfg.setReferenceDate(raw); err != nil {
			return config{}, err
		}
	}

	return cfg, nil
}

// setReferenceDate pins the acceptance window anchor to a calendar day.
func (c *config) setReferenceDate(raw string) error {
	ref, err := time.ParseInLocation(referenceDateLayout, strings.TrimSpace(raw), time.Local)
	if err != nil {
		return fmt.Errorf("invalid reference date %q: %w", raw, err)
	}
	c.ReferenceDate = ref
	return nil
}

// windowAnchor returns the time the acceptance window is measured from.
func (c config) windowAnchor(now time.Time) time.Time {
	if c.ReferenceDate.IsZero() {
		return now
	}
	return c.ReferenceDate
}

func parseHeadless(value string) (bool, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return true, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid HEADLESS value: %w", err)
	}
	return b, nil
}

func valueOrDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return strings.TrimSpace(value)
}

func parseDurationEnv(key string, defaultMs int) time.Duration {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return time.Duration(defaultMs) * time.Millisecond
	}
	ms, err := strconv.Atoi(value)
	if err != nil || ms < 0 {
		return time.Duration(defaultMs) * time.Millisecond
	}
	return time.Duration(ms) * time.Millisecond
}

func parseIntEnv(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
