package chart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignFromLongitudeBoundaries(t *testing.T) {
	require.Equal(t, "Bélier", SignFromLongitude(0))
	require.Equal(t, "Bélier", SignFromLongitude(29.999))
	require.Equal(t, "Taureau", SignFromLongitude(30))
	require.Equal(t, "Capricorne", SignFromLongitude(280.5))
	require.Equal(t, "Poissons", SignFromLongitude(359.999))
	require.Equal(t, "Bélier", SignFromLongitude(360))
}

func TestSignFromLongitudePartition(t *testing.T) {
	// twelve consecutive 30° sectors, exhaustive and non-overlapping
	for k := 0; k < 12; k++ {
		lower := float64(k) * 30
		require.Equal(t, signNames[k], SignFromLongitude(lower))
		require.Equal(t, signNames[k], SignFromLongitude(lower+15))
		require.Equal(t, signNames[k], SignFromLongitude(lower+29.9999))
	}
}

func TestSignFromLongitudeWrapped(t *testing.T) {
	require.Equal(t, SignFromLongitude(45), SignFromLongitude(45+720))
	require.Equal(t, "Poissons", SignFromLongitude(-10))
	// a tiny negative longitude normalizes to just under (or exactly) 360
	require.Equal(t, "Poissons", SignFromLongitude(-1e-13))
}
