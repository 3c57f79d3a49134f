// Package tzlookup resolves IANA timezone identifiers from geographic
// coordinates using embedded timezone boundary data.
package tzlookup

import (
	"fmt"

	"github.com/ringsaturn/tzf"
)

// Finder wraps the tzf polygon index. Construction is expensive (the
// boundary data is decompressed once); lookups are cheap and
// goroutine-safe.
type Finder struct {
	inner tzf.F
}

// New builds a finder from the embedded release data.
func New() (*Finder, error) {
	inner, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("init timezone finder: %w", err)
	}
	return &Finder{inner: inner}, nil
}

// ZoneName returns the IANA zone containing the point. tzf expects
// longitude first.
func (f *Finder) ZoneName(lat, lon float64) (string, error) {
	name := f.inner.GetTimezoneName(lon, lat)
	if name == "" {
		return "", fmt.Errorf("no timezone at lat=%.4f lon=%.4f", lat, lon)
	}
	return name, nil
}
