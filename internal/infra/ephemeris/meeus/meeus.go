// Package meeus adapts the learnmeeus implementation of Meeus's
// Astronomical Algorithms to the chart domain's ephemeris contract.
package meeus

import (
	"time"

	"github.com/mooncaker816/learnmeeus/v3/base"
	"github.com/mooncaker816/learnmeeus/v3/julian"
	"github.com/mooncaker816/learnmeeus/v3/moonposition"
	"github.com/mooncaker816/learnmeeus/v3/sidereal"
	"github.com/mooncaker816/learnmeeus/v3/solar"
)

// Ephemeris is stateless; a single value serves all requests.
type Ephemeris struct{}

// New constructs the ephemeris adapter.
func New() *Ephemeris {
	return &Ephemeris{}
}

// JulianDay converts an instant to a Julian day number.
func (Ephemeris) JulianDay(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// SunLongitude returns the Sun's geocentric apparent ecliptic
// longitude in degrees, corrected for aberration.
func (e Ephemeris) SunLongitude(t time.Time) float64 {
	return solar.ApparentLongitude(base.J2000Century(e.JulianDay(t))).Deg()
}

// MoonLongitude returns the Moon's geocentric apparent ecliptic
// longitude in degrees (ELP 2000-82 truncation per Meeus ch. 47).
func (e Ephemeris) MoonLongitude(t time.Time) float64 {
	lon, _, _ := moonposition.Position(e.JulianDay(t))
	return lon.Deg()
}

// SiderealHours returns Greenwich Mean Sidereal Time in hours.
func (e Ephemeris) SiderealHours(t time.Time) float64 {
	return sidereal.Mean(e.JulianDay(t)).Hour()
}
