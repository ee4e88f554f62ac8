package domain

import "testing"

func TestCoordinatesValid(t *testing.T) {
	cases := []struct {
		name string
		c    Coordinates
		want bool
	}{
		{"jura", Coordinates{Lat: 46.664, Lng: 5.574}, true},
		{"zero pair", Coordinates{}, false},
		{"lat out of range", Coordinates{Lat: 91, Lng: 5}, false},
		{"lng out of range", Coordinates{Lat: 46, Lng: 181}, false},
		{"negative valid", Coordinates{Lat: -33.86, Lng: -70.66}, true},
	}

	for _, c := range cases {
		if got := c.c.Valid(); got != c.want {
			t.Fatalf("%s: Valid() = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestWaypointString(t *testing.T) {
	c := Coordinates{Lat: 46.664, Lng: 5.574}
	if got := c.WaypointString(); got != "46.664000,5.574000" {
		t.Fatalf("WaypointString() = %q", got)
	}
}
