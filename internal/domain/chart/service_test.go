package chart

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	apperrors "github.com/astrarium/natalchart/pkg/errors"
)

const (
	parisLat = 48.8566
	parisLon = 2.3522
)

func newServiceUnderTest(geocoder Geocoder, zones ZoneFinder, eph Ephemeris, history HistoryRepository) *service {
	return &service{
		cfg:       Config{RecentLimit: 10},
		geocoder:  geocoder,
		zones:     zones,
		ephemeris: eph,
		history:   history,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:       func() time.Time { return time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC) },
		newID:     func() uuid.UUID { return uuid.MustParse("7b4a3e62-1df0-4a61-9a61-000000000001") },
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestServiceComputeTimeUnknown(t *testing.T) {
	history := &captureHistory{}
	svc := newServiceUnderTest(&stubGeocoder{}, &stubZones{zone: "Europe/Paris"}, &stubEphemeris{sun: 280.5}, history)

	resp, err := svc.Compute(context.Background(), Request{
		Date: "2000-01-01",
		Lat:  floatPtr(parisLat),
		Lon:  floatPtr(parisLon),
	})
	require.NoError(t, err)
	require.Equal(t, "Europe/Paris", resp.Tz)
	require.Equal(t, "Capricorne", resp.SunSign)
	require.Nil(t, resp.MoonSign)
	require.Nil(t, resp.AscendantSign)
	require.Equal(t, parisLat, resp.Lat)
	require.Equal(t, parisLon, resp.Lon)

	require.Len(t, history.records, 1)
	rec := history.records[0]
	require.False(t, rec.TimeKnown)
	require.Equal(t, "2000-01-01", rec.BirthDate)
	require.Equal(t, "Capricorne", rec.SunSign)
	require.Nil(t, rec.MoonSign)
}

func TestServiceComputeTimeKnown(t *testing.T) {
	history := &captureHistory{}
	eph := &stubEphemeris{sun: 280.5, moon: 213.2, sidereal: 6.0, jd: 2451545.0}
	svc := newServiceUnderTest(&stubGeocoder{}, &stubZones{zone: "Europe/Paris"}, eph, history)

	resp, err := svc.Compute(context.Background(), Request{
		Date: "2000-01-01",
		Time: "14:30",
		Lat:  floatPtr(parisLat),
		Lon:  floatPtr(parisLon),
	})
	require.NoError(t, err)
	require.Equal(t, "Capricorne", resp.SunSign)
	require.NotNil(t, resp.MoonSign)
	require.Equal(t, "Scorpion", *resp.MoonSign)
	require.NotNil(t, resp.AscendantSign)
	require.Contains(t, signNames, *resp.AscendantSign)

	require.Len(t, history.records, 1)
	require.True(t, history.records[0].TimeKnown)
}

func TestServiceComputeIdempotent(t *testing.T) {
	req := Request{Date: "1987-11-23", Time: "06:15", Lat: floatPtr(parisLat), Lon: floatPtr(parisLon)}
	eph := &stubEphemeris{sun: 240.1, moon: 95.4, sidereal: 10.2, jd: 2447122.5}
	svc := newServiceUnderTest(&stubGeocoder{}, &stubZones{zone: "Europe/Paris"}, eph, &captureHistory{})

	first, err := svc.Compute(context.Background(), req)
	require.NoError(t, err)
	second, err := svc.Compute(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestServiceComputeResolvesPlace(t *testing.T) {
	geocoder := &stubGeocoder{coords: Coordinates{Lat: parisLat, Lon: parisLon}}
	svc := newServiceUnderTest(geocoder, &stubZones{zone: "Europe/Paris"}, &stubEphemeris{sun: 280.5}, &captureHistory{})

	resp, err := svc.Compute(context.Background(), Request{Date: "2000-01-01", Place: "Paris, France"})
	require.NoError(t, err)
	require.Equal(t, "Paris, France", geocoder.lastPlace)
	require.Equal(t, parisLat, resp.Lat)
	require.Equal(t, parisLon, resp.Lon)
}

func TestServiceComputeGeocodingFailure(t *testing.T) {
	geocoder := &stubGeocoder{err: errors.New("no match")}
	svc := newServiceUnderTest(geocoder, &stubZones{zone: "Europe/Paris"}, &stubEphemeris{}, &captureHistory{})

	_, err := svc.Compute(context.Background(), Request{Date: "2000-01-01", Place: "Nowhereville"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeGeocodingError))
}

func TestServiceComputeMissingLocation(t *testing.T) {
	svc := newServiceUnderTest(&stubGeocoder{}, &stubZones{zone: "Europe/Paris"}, &stubEphemeris{}, &captureHistory{})

	_, err := svc.Compute(context.Background(), Request{Date: "2000-01-01"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeLocationError))

	_, err = svc.Compute(context.Background(), Request{Date: "2000-01-01", Lat: floatPtr(parisLat)})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeLocationError))
}

func TestServiceComputeCoordinatesOutOfRange(t *testing.T) {
	svc := newServiceUnderTest(&stubGeocoder{}, &stubZones{zone: "Europe/Paris"}, &stubEphemeris{}, &captureHistory{})

	_, err := svc.Compute(context.Background(), Request{Date: "2000-01-01", Lat: floatPtr(91), Lon: floatPtr(0)})
	require.True(t, apperrors.IsCode(err, apperrors.CodeLocationError))

	_, err = svc.Compute(context.Background(), Request{Date: "2000-01-01", Lat: floatPtr(0), Lon: floatPtr(-181)})
	require.True(t, apperrors.IsCode(err, apperrors.CodeLocationError))
}

func TestServiceComputeInvalidDate(t *testing.T) {
	svc := newServiceUnderTest(&stubGeocoder{}, &stubZones{zone: "Europe/Paris"}, &stubEphemeris{}, &captureHistory{})

	_, err := svc.Compute(context.Background(), Request{Date: "2021-02-30", Lat: floatPtr(parisLat), Lon: floatPtr(parisLon)})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestServiceComputePolarLatitude(t *testing.T) {
	svc := newServiceUnderTest(&stubGeocoder{}, &stubZones{zone: "Arctic/Longyearbyen"}, &stubEphemeris{sun: 280.5}, &captureHistory{})

	_, err := svc.Compute(context.Background(), Request{Date: "2000-01-01", Time: "14:30", Lat: floatPtr(90), Lon: floatPtr(0)})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestServiceComputeHistoryFailureIsIgnored(t *testing.T) {
	history := &captureHistory{err: errors.New("db down")}
	svc := newServiceUnderTest(&stubGeocoder{}, &stubZones{zone: "Europe/Paris"}, &stubEphemeris{sun: 280.5}, history)

	_, err := svc.Compute(context.Background(), Request{Date: "2000-01-01", Lat: floatPtr(parisLat), Lon: floatPtr(parisLon)})
	require.NoError(t, err)
}

func TestServiceComputeZoneLookupFailure(t *testing.T) {
	svc := newServiceUnderTest(&stubGeocoder{}, &stubZones{err: errors.New("open ocean")}, &stubEphemeris{}, &captureHistory{})

	_, err := svc.Compute(context.Background(), Request{Date: "2000-01-01", Lat: floatPtr(0), Lon: floatPtr(-140)})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeLocationError))
}

func TestServiceRecent(t *testing.T) {
	history := &captureHistory{}
	svc := newServiceUnderTest(&stubGeocoder{}, &stubZones{zone: "Europe/Paris"}, &stubEphemeris{sun: 10}, history)

	_, err := svc.Compute(context.Background(), Request{Date: "2000-01-01", Lat: floatPtr(parisLat), Lon: floatPtr(parisLon)})
	require.NoError(t, err)

	records, err := svc.Recent(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Bélier", records[0].SunSign)
}

type stubGeocoder struct {
	coords    Coordinates
	err       error
	lastPlace string
}

func (s *stubGeocoder) Resolve(_ context.Context, place string) (Coordinates, error) {
	s.lastPlace = place
	if s.err != nil {
		return Coordinates{}, s.err
	}
	return s.coords, nil
}

type stubZones struct {
	zone string
	err  error
}

func (s *stubZones) ZoneName(_, _ float64) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.zone, nil
}

type stubEphemeris struct {
	sun, moon, sidereal, jd float64
}

func (s *stubEphemeris) SunLongitude(time.Time) float64 { return s.sun }

func (s *stubEphemeris) MoonLongitude(time.Time) float64 { return s.moon }

func (s *stubEphemeris) SiderealHours(time.Time) float64 { return s.sidereal }

func (s *stubEphemeris) JulianDay(time.Time) float64 { return s.jd }

type captureHistory struct {
	records []Record
	err     error
}

func (h *captureHistory) Insert(_ context.Context, rec Record) error {
	if h.err != nil {
		return h.err
	}
	h.records = append(h.records, rec)
	return nil
}

func (h *captureHistory) Recent(_ context.Context, limit int) ([]Record, error) {
	if h.err != nil {
		return nil, h.err
	}
	if len(h.records) > limit {
		return h.records[:limit], nil
	}
	return h.records, nil
}
