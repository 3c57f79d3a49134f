package chart

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/astrarium/natalchart/pkg/errors"
)

func parisLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)
	return loc
}

func TestResolveInstantKnownTime(t *testing.T) {
	loc := parisLocation(t)
	got, err := resolveInstant("2000-01-01", "14:30", loc, "Europe/Paris")
	require.NoError(t, err)
	require.True(t, got.TimeKnown)
	require.Equal(t, "Europe/Paris", got.Zone)
	// Paris is UTC+1 in January
	require.Equal(t, time.Date(2000, 1, 1, 13, 30, 0, 0, time.UTC), got.UTC)
}

func TestResolveInstantDefaultsToLocalNoon(t *testing.T) {
	loc := parisLocation(t)
	got, err := resolveInstant("2000-01-01", "", loc, "Europe/Paris")
	require.NoError(t, err)
	require.False(t, got.TimeKnown)
	require.Equal(t, time.Date(2000, 1, 1, 11, 0, 0, 0, time.UTC), got.UTC)
}

func TestResolveInstantClockWithoutColonIsUnknown(t *testing.T) {
	loc := parisLocation(t)
	got, err := resolveInstant("2000-01-01", "1430", loc, "Europe/Paris")
	require.NoError(t, err)
	require.False(t, got.TimeKnown)
	require.Equal(t, 11, got.UTC.Hour())
}

func TestResolveInstantHonorsSummerOffset(t *testing.T) {
	loc := parisLocation(t)
	got, err := resolveInstant("2000-07-01", "14:30", loc, "Europe/Paris")
	require.NoError(t, err)
	// Paris is UTC+2 in July
	require.Equal(t, time.Date(2000, 7, 1, 12, 30, 0, 0, time.UTC), got.UTC)
}

func TestResolveInstantRejectsImpossibleDate(t *testing.T) {
	loc := parisLocation(t)
	for _, date := range []string{"2021-02-30", "2021-13-01", "not-a-date", ""} {
		_, err := resolveInstant(date, "", loc, "Europe/Paris")
		require.Error(t, err, "date %q", date)
		require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
	}
}

func TestResolveInstantRejectsMalformedClock(t *testing.T) {
	loc := parisLocation(t)
	_, err := resolveInstant("2021-06-01", "99:99", loc, "Europe/Paris")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestResolveInstantRejectsDSTGap(t *testing.T) {
	loc := parisLocation(t)
	// clocks in Paris jumped from 02:00 to 03:00 on 2021-03-28
	_, err := resolveInstant("2021-03-28", "02:30", loc, "Europe/Paris")
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}
