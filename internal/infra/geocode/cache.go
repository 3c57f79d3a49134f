// Package geocode layers result caching over a chart.Geocoder so
// repeated place lookups do not hammer the upstream service.
package geocode

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/astrarium/natalchart/internal/domain/chart"
)

// Store is the persistence contract for cached geocode results.
type Store interface {
	Get(ctx context.Context, key string) (chart.Coordinates, bool, error)
	Save(ctx context.Context, key string, coords chart.Coordinates, ttl time.Duration) error
}

// CachedGeocoder consults the store before the wrapped geocoder. Store
// failures degrade to a plain lookup, never to a request failure.
type CachedGeocoder struct {
	inner  chart.Geocoder
	store  Store
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedGeocoder wraps a geocoder with a cache.
func NewCachedGeocoder(inner chart.Geocoder, store Store, ttl time.Duration, logger *slog.Logger) *CachedGeocoder {
	return &CachedGeocoder{
		inner:  inner,
		store:  store,
		ttl:    ttl,
		logger: logger.With("component", "geocode.cache"),
	}
}

// Resolve implements chart.Geocoder.
func (g *CachedGeocoder) Resolve(ctx context.Context, place string) (chart.Coordinates, error) {
	key := canonicalKey(place)

	if coords, ok, err := g.store.Get(ctx, key); err != nil {
		g.logger.Warn("geocode cache read failed", "error", err)
	} else if ok {
		return coords, nil
	}

	coords, err := g.inner.Resolve(ctx, place)
	if err != nil {
		return chart.Coordinates{}, err
	}
	if err := g.store.Save(ctx, key, coords, g.ttl); err != nil {
		g.logger.Warn("geocode cache write failed", "error", err)
	}
	return coords, nil
}

// canonicalKey folds case and collapses whitespace so "Paris,France"
// and "paris, france" share an entry.
func canonicalKey(place string) string {
	return strings.Join(strings.Fields(strings.ToLower(place)), " ")
}

var _ chart.Geocoder = (*CachedGeocoder)(nil)
