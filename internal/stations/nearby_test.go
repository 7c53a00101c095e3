package stations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNearby(t *testing.T) {
	all := Fallback()

	// Hauptbahnhof and Elberfeld are a few hundred meters apart; the rest are
	// several kilometers away.
	result := Nearby(all, 51.2565, 7.1496, 1000)

	require.Len(t, result, 2)
	assert.Equal(t, "1", result[0].Station.ID)
	assert.InDelta(t, 0, result[0].Distance, 1)
	assert.Equal(t, "2", result[1].Station.ID)
	assert.Less(t, result[1].Distance, 1000.0)
}

func TestNearbyOrdering(t *testing.T) {
	result := Nearby(Fallback(), CityCenter.Lat, CityCenter.Lon, 0)

	require.Len(t, result, 5)
	for i := 1; i < len(result); i++ {
		assert.LessOrEqual(t, result[i-1].Distance, result[i].Distance)
	}
}

func TestNearbyNothingInRange(t *testing.T) {
	assert.Empty(t, Nearby(Fallback(), 0, 0, 5000))
}
