package domain

import (
	"fmt"
	"math"
)

// Location is a geodetic position: latitude in [-90,90], longitude in
// [-180,180] east-positive. Altitude is accepted for display purposes
// only; the core never factors it into a computation.
type Location struct {
	Name      string  `json:"name,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"`
	Elevation float64 `json:"elevation,omitempty"`
}

// NewLocation creates a new Location.
func NewLocation(name string, lat, lon float64, timezone string) *Location {
	return &Location{Name: name, Latitude: lat, Longitude: lon, Timezone: timezone}
}

// IsValidCoordinates reports whether the coordinates are in range.
func (l Location) IsValidCoordinates() bool {
	return l.Latitude >= -90 && l.Latitude <= 90 &&
		l.Longitude >= -180 && l.Longitude <= 180
}

// FormatLatitude formats latitude for display with hemisphere direction.
func (l Location) FormatLatitude() string {
	return formatCoordinate(l.Latitude, "N", "S")
}

// FormatLongitude formats longitude for display with hemisphere direction.
func (l Location) FormatLongitude() string {
	return formatCoordinate(l.Longitude, "E", "W")
}

func formatCoordinate(value float64, positive, negative string) string {
	direction := positive
	v := value
	if v < 0 {
		direction = negative
		v = -v
	}
	degrees := int(v)
	minutes := (v - float64(degrees)) * 60
	return fmt.Sprintf("%d°%02.0f'%s", degrees, minutes, direction)
}

// FormatCoordinates formats both latitude and longitude for display.
func (l Location) FormatCoordinates() string {
	return fmt.Sprintf("%s, %s", l.FormatLatitude(), l.FormatLongitude())
}

// IsNorthernHemisphere reports whether the location lies north of the equator.
func (l Location) IsNorthernHemisphere() bool { return l.Latitude > 0 }

// IsPolar reports whether the latitude is within the polar-degeneracy band
// where Placidus/Koch cusp formulae diverge.
func (l Location) IsPolar() bool {
	return math.Abs(l.Latitude) > 66.5
}

// Validate checks that the location carries usable coordinates.
func (l Location) Validate() error {
	if !l.IsValidCoordinates() {
		return fmt.Errorf("invalid coordinates: latitude must be between -90 and 90, longitude between -180 and 180")
	}
	return nil
}

// String returns a display representation of the location.
func (l Location) String() string {
	if l.Name != "" {
		return fmt.Sprintf("%s (%s)", l.Name, l.FormatCoordinates())
	}
	return l.FormatCoordinates()
}

// Equals reports whether two locations are approximately the same point.
func (l Location) Equals(other Location) bool {
	const tolerance = 0.001 // ~100 meters
	return math.Abs(l.Latitude-other.Latitude) < tolerance &&
		math.Abs(l.Longitude-other.Longitude) < tolerance
}

// GetDisplayName returns the most appropriate display name for the location.
func (l Location) GetDisplayName() string {
	if l.Name != "" {
		return l.Name
	}
	return l.String()
}
