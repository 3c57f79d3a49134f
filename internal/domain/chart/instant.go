package chart

import (
	"strings"
	"time"

	apperrors "github.com/astrarium/natalchart/pkg/errors"
)

const (
	dateLayout  = "2006-01-02"
	clockLayout = "15:04"

	// local noon stands in when the birth time is unknown; the Sun moves
	// under 1°/day so any in-day instant maps to the same sign.
	defaultHour = 12
)

// resolveInstant combines a calendar date, an optional "HH:MM" clock
// time, and a timezone into a UTC instant. A clock string without a
// colon counts as absent. The zone's historical offset rules apply.
func resolveInstant(date, clock string, loc *time.Location, zone string) (Instant, error) {
	date = strings.TrimSpace(date)
	if date == "" {
		return Instant{}, apperrors.Wrap(apperrors.CodeInvalidInput, "date is required (YYYY-MM-DD)", nil)
	}
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return Instant{}, apperrors.Wrap(apperrors.CodeInvalidInput, "date must be a valid YYYY-MM-DD calendar date", err)
	}

	hour, minute := defaultHour, 0
	known := false
	if clock = strings.TrimSpace(clock); strings.Contains(clock, ":") {
		parsed, err := time.Parse(clockLayout, clock)
		if err != nil {
			return Instant{}, apperrors.Wrap(apperrors.CodeInvalidInput, "time must be a valid HH:MM clock time", err)
		}
		hour, minute = parsed.Hour(), parsed.Minute()
		known = true
	}

	local := time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, loc)
	if local.Hour() != hour || local.Minute() != minute || local.Day() != day.Day() {
		// time.Date silently shifted the wall clock: a spring-forward gap.
		return Instant{}, apperrors.Wrap(apperrors.CodeInvalidInput, "local time does not exist in "+zone+" (DST gap)", nil)
	}

	return Instant{UTC: local.UTC(), Zone: zone, TimeKnown: known}, nil
}
