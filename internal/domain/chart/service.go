package chart

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/astrarium/natalchart/pkg/errors"
)

// Service exposes natal chart computation.
type Service interface {
	Compute(ctx context.Context, req Request) (Response, error)
	Recent(ctx context.Context) ([]Record, error)
}

// Geocoder resolves a free-text place name to coordinates.
type Geocoder interface {
	Resolve(ctx context.Context, place string) (Coordinates, error)
}

// ZoneFinder maps coordinates to an IANA timezone identifier.
type ZoneFinder interface {
	ZoneName(lat, lon float64) (string, error)
}

// Ephemeris supplies the astronomical quantities the chart needs for a
// UTC instant. Longitudes are geocentric apparent ecliptic longitudes
// in degrees; sidereal time is GMST in hours.
type Ephemeris interface {
	SunLongitude(t time.Time) float64
	MoonLongitude(t time.Time) float64
	SiderealHours(t time.Time) float64
	JulianDay(t time.Time) float64
}

type service struct {
	cfg       Config
	geocoder  Geocoder
	zones     ZoneFinder
	ephemeris Ephemeris
	history   HistoryRepository
	logger    *slog.Logger
	now       func() time.Time
	newID     func() uuid.UUID
}

// NewService wires up the chart domain.
func NewService(cfg Config, geocoder Geocoder, zones ZoneFinder, ephemeris Ephemeris, history HistoryRepository, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		geocoder:  geocoder,
		zones:     zones,
		ephemeris: ephemeris,
		history:   history,
		logger:    logger.With("component", "chart.service"),
		now:       time.Now,
		newID:     uuid.New,
	}
}

// Compute resolves the birth moment and maps Sun, Moon and ascendant
// longitudes to signs. Moon and ascendant are withheld when the birth
// time is unknown: both move too fast for a defaulted clock time.
func (s *service) Compute(ctx context.Context, req Request) (Response, error) {
	coords, err := s.resolveLocation(ctx, req)
	if err != nil {
		return Response{}, err
	}

	zone, err := s.zones.ZoneName(coords.Lat, coords.Lon)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeLocationError, "no timezone found for coordinates", err)
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return Response{}, apperrors.Wrap(apperrors.CodeLocationError, "unknown timezone "+zone, err)
	}

	instant, err := resolveInstant(req.Date, req.Time, loc, zone)
	if err != nil {
		return Response{}, err
	}

	res := Response{
		Tz:      zone,
		SunSign: SignFromLongitude(s.ephemeris.SunLongitude(instant.UTC)),
		Lat:     coords.Lat,
		Lon:     coords.Lon,
	}

	if instant.TimeKnown {
		moon := SignFromLongitude(s.ephemeris.MoonLongitude(instant.UTC))
		ascLon, err := AscendantLongitude(
			s.ephemeris.SiderealHours(instant.UTC),
			coords.Lat, coords.Lon,
			MeanObliquity(s.ephemeris.JulianDay(instant.UTC)),
		)
		if err != nil {
			return Response{}, err
		}
		asc := SignFromLongitude(ascLon)
		res.MoonSign = &moon
		res.AscendantSign = &asc
	}

	s.record(ctx, req, instant, res)
	return res, nil
}

// Recent lists the newest computed charts.
func (s *service) Recent(ctx context.Context) ([]Record, error) {
	return s.history.Recent(ctx, s.cfg.RecentLimit)
}

func (s *service) resolveLocation(ctx context.Context, req Request) (Coordinates, error) {
	switch {
	case req.Lat != nil && req.Lon != nil:
		c := Coordinates{Lat: *req.Lat, Lon: *req.Lon}
		if c.Lat < -90 || c.Lat > 90 {
			return Coordinates{}, apperrors.Wrap(apperrors.CodeLocationError, "lat must be within [-90,90]", nil)
		}
		if c.Lon < -180 || c.Lon > 180 {
			return Coordinates{}, apperrors.Wrap(apperrors.CodeLocationError, "lon must be within [-180,180]", nil)
		}
		return c, nil
	case req.Lat != nil || req.Lon != nil:
		return Coordinates{}, apperrors.Wrap(apperrors.CodeLocationError, "lat and lon must be provided together", nil)
	case strings.TrimSpace(req.Place) != "":
		coords, err := s.geocoder.Resolve(ctx, req.Place)
		if err != nil {
			return Coordinates{}, apperrors.Wrap(apperrors.CodeGeocodingError,
				`could not resolve place; try the "City, Country" format`, err)
		}
		return coords, nil
	default:
		return Coordinates{}, apperrors.Wrap(apperrors.CodeLocationError, "provide lat and lon, or a place name", nil)
	}
}

// record stores the result best-effort; history failures never fail a
// computed chart.
func (s *service) record(ctx context.Context, req Request, instant Instant, res Response) {
	rec := Record{
		ID:            s.newID(),
		CreatedAt:     s.now().UTC(),
		BirthDate:     strings.TrimSpace(req.Date),
		TimeKnown:     instant.TimeKnown,
		Lat:           res.Lat,
		Lon:           res.Lon,
		Tz:            res.Tz,
		SunSign:       res.SunSign,
		MoonSign:      res.MoonSign,
		AscendantSign: res.AscendantSign,
	}
	if err := s.history.Insert(ctx, rec); err != nil {
		s.logger.Warn("chart history insert failed", "error", err)
	}
}
