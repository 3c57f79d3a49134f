package chart

import (
	"fmt"
	"math"

	apperrors "github.com/astrarium/natalchart/pkg/errors"
)

// maxAscendantLatitude bounds the tan(latitude) term of the ascendant
// formula, which is singular at the poles. Inside the last half degree
// the result carries no sign-level meaning anyway.
const maxAscendantLatitude = 89.5

// MeanObliquity returns the mean obliquity of the ecliptic in degrees
// for a Julian day, using the IAU low-order polynomial. Nutation is
// ignored; 30°-wide sign sectors do not need it.
func MeanObliquity(jd float64) float64 {
	t := (jd - 2451545.0) / 36525.0
	arcsec := 84381.448 + t*(-46.8150+t*(-0.00059+t*0.001813))
	return arcsec / 3600
}

// AscendantLongitude computes the ecliptic longitude in degrees of the
// point rising on the eastern horizon. gmstHours is Greenwich Mean
// Sidereal Time; latitude and longitude are in degrees, east-positive.
func AscendantLongitude(gmstHours, latDeg, lonDeg, obliquityDeg float64) (float64, error) {
	if math.Abs(latDeg) > maxAscendantLatitude {
		return 0, apperrors.Wrap(apperrors.CodeInvalidInput,
			fmt.Sprintf("ascendant is undefined for latitudes beyond ±%.1f°", maxAscendantLatitude), nil)
	}

	gmstDeg := NormalizeDegrees(gmstHours * 15)
	lst := radians(NormalizeDegrees(gmstDeg + lonDeg))
	eps := radians(obliquityDeg)
	lat := radians(latDeg)

	// atan2 keeps the quadrant correct across the full circle; a plain
	// atan mis-resolves the ascendant near the horizon's cardinal points.
	y := math.Sin(lst)*math.Cos(eps) - math.Tan(lat)*math.Sin(eps)
	x := math.Cos(lst)
	return NormalizeDegrees(degrees(math.Atan2(y, x))), nil
}
