package helpers

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// ParseDuration parses a duration string, returning the default on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseClock parses a wall-clock value in "HH:MM" form.
func ParseClock(value string) (time.Time, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", value, err)
	}
	return t, nil
}

// ClockSpanHours returns the span between two "HH:MM" values in fractional
// hours. The end must be strictly after the start.
func ClockSpanHours(start, end string) (float64, error) {
	startT, err := ParseClock(start)
	if err != nil {
		return 0, err
	}
	endT, err := ParseClock(end)
	if err != nil {
		return 0, err
	}
	span := endT.Sub(startT)
	if span <= 0 {
		return 0, fmt.Errorf("end time %q is not after start time %q", end, start)
	}
	return span.Hours(), nil
}
