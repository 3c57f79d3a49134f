package chart

// signNames lists the twelve zodiac sectors in ecliptic order, index 0
// starting at 0° (the vernal equinox point).
var signNames = [12]string{
	"Bélier",
	"Taureau",
	"Gémeaux",
	"Cancer",
	"Lion",
	"Vierge",
	"Balance",
	"Scorpion",
	"Sagittaire",
	"Capricorne",
	"Verseau",
	"Poissons",
}

// SignFromLongitude maps an ecliptic longitude in degrees to the sign
// whose 30° sector contains it. Sectors are half-open, lower-inclusive.
func SignFromLongitude(lonDeg float64) string {
	k := int(NormalizeDegrees(lonDeg) / 30)
	if k > 11 {
		// a tiny negative input can normalize to 360 after float rounding
		k = 11
	}
	return signNames[k]
}
