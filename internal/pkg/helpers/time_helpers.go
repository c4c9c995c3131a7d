package helpers

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bisplatform/bisbackend/internal/app/models/dto"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = dto.DateLayout

// TimeLayout is the wire format for times of day.
const TimeLayout = "15:04:05"

// ParseDuration parses a duration string, returning the default on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDate parses a calendar date in the wire format.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ParseTimeOfDay parses a time of day, accepting both HH:MM:SS and HH:MM.
func ParseTimeOfDay(value string) (time.Time, error) {
	t, err := time.Parse(TimeLayout, value)
	if err == nil {
		return t, nil
	}
	return time.Parse("15:04", value)
}
