package kernel

import (
	"errors"
	"fmt"
	"math"

	"bistro/internal/pkg/errs"
	"bistro/internal/pkg/guard"
)

const (
	// MinLatitude is the minimum valid latitude in degrees.
	MinLatitude float64 = -90
	// MaxLatitude is the maximum valid latitude in degrees.
	MaxLatitude float64 = 90
	// MinLongitude is the minimum valid longitude in degrees.
	MinLongitude float64 = -180
	// MaxLongitude is the maximum valid longitude in degrees.
	MaxLongitude float64 = 180

	// earthRadiusKm is the Earth radius used by the haversine formula.
	earthRadiusKm = 6371.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. GeoPoints must be created via the NewGeoPoint constructor.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a GPS coordinate in signed decimal degrees.
// GeoPoint is an immutable value object that guarantees latitude is within
// [-90, 90] and longitude within [-180, 180]. The zero value is invalid and
// fails validation - use NewGeoPoint to create instances.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(28.6139, 77.2090)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Point: %s", point) // Output: GeoPoint(28.613900,77.209000)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the specified coordinates.
// Latitude must be within [MinLatitude..MaxLatitude] and longitude within
// [MinLongitude..MaxLongitude]. Returns an error if either coordinate is
// outside the valid bounds; both violations are reported together.
func NewGeoPoint(latitude float64, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks if the GeoPoint was properly constructed via NewGeoPoint.
// The zero value of GeoPoint is invalid and fails this validation.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in signed decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in signed decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String returns a human-readable representation in the form
// "GeoPoint(lat,lon)" with six decimal places.
// This method implements the fmt.Stringer interface.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%.6f,%.6f)", p.latitude, p.longitude)
}

// IsEqual compares two points for coordinate equality.
// Both points must be properly constructed for the comparison to succeed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceKm calculates the great-circle distance in kilometers between two
// points using the haversine formula with an Earth radius of 6371 km.
// The returned value keeps full floating-point precision; use RoundKm when a
// presentation value is needed. Distance is symmetric: a.DistanceKm(b) equals
// b.DistanceKm(a). Both points must be properly constructed.
//
// Example:
//
//	delhi, _ := kernel.NewGeoPoint(28.7041, 77.1025)
//	connaught, _ := kernel.NewGeoPoint(28.6139, 77.2090)
//	km, _ := connaught.DistanceKm(delhi)
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	dLat := radians(other.latitude - p.latitude)
	dLon := radians(other.longitude - p.longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	a := sinLat*sinLat + math.Cos(radians(p.latitude))*math.Cos(radians(other.latitude))*sinLon*sinLon
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c, nil
}

// RoundKm rounds a distance to two decimal places, half up.
// Presentation values use this rounding while range comparisons keep full
// precision, so boundary rounding can never change which zones qualify.
func RoundKm(km float64) float64 {
	return math.Round(km*100) / 100
}

// setLatitude sets the latitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < MinLatitude || latitude > MaxLatitude {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, MinLatitude, MaxLatitude)
	}

	p.latitude = latitude
	return nil
}

// setLongitude sets the longitude with validation.
// Note: We intentionally use a pointer receiver here while other methods use value receivers.
// Although mixing receiver types is generally not recommended, in this case we use pointer
// receivers for these private setters to enable self-encapsulated validation of business
// requirements during object construction.
func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < MinLongitude || longitude > MaxLongitude {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, MinLongitude, MaxLongitude)
	}

	p.longitude = longitude
	return nil
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
