package stations

import (
	"sort"

	"github.com/tkrajina/gpxgo/gpx"
)

// StationWithDistance associates a Station with its distance in meters from a
// reference point.
type StationWithDistance struct {
	Station  Station
	Distance float64
}

// Nearby returns the stations within radius meters of (lat, lng), closest
// first. A radius <= 0 disables the cut-off.
func Nearby(all []Station, lat, lng, radius float64) []StationWithDistance {
	var nearby []StationWithDistance
	for _, station := range all {
		distance := gpx.Distance2D(lat, lng, station.Lat, station.Lon, true)
		if radius > 0 && distance > radius {
			continue
		}
		nearby = append(nearby, StationWithDistance{Station: station, Distance: distance})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})
	return nearby
}
