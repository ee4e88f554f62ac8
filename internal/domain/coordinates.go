package domain

import "fmt"

// Immutable geographic coordinates (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lng float64
}

// Valid reports whether the coordinates fall inside the WGS84 range.
// A zero pair is treated as "no coordinate": depots without a usable
// position are excluded from markers and routing.
func (c Coordinates) Valid() bool {
	if c.Lat == 0 && c.Lng == 0 {
		return false
	}
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

// WaypointString renders the coordinates as "lat,lng" for external API compatibility.
func (c Coordinates) WaypointString() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}
