package kernel

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0

	maxAddressLength = 512
)

// ErrLocationIsNotConstructed is returned when a Location was not built by NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a pickup or drop-off point of a load: the address as typed by the client
// plus the coordinates resolved by the geocoding collaborator.
//
// Location is immutable. Its zero value is invalid.
//
// Example:
//
//	pickup, err := kernel.NewLocation("Almaty, Tole Bi 59", 43.2567, 76.9286)
//	if err != nil {
//	    return err
//	}
type Location struct { //nolint:recvcheck //using for validation
	address   string
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation validates the address (required, at most 512 characters) and the
// coordinates (latitude in [-90, 90], longitude in [-180, 180]).
// All violations are reported together.
func NewLocation(address string, latitude, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		loc.setAddress(address),
		loc.setLatitude(latitude),
		loc.setLongitude(longitude),
	); err != nil {
		return Location{}, err
	}

	return loc, nil
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) Address() string {
	return l.address
}

func (l Location) Latitude() float64 {
	return l.latitude
}

func (l Location) Longitude() float64 {
	return l.longitude
}

// IsEqual compares all components of two locations.
func (l Location) IsEqual(other Location) bool {
	return l.address == other.address &&
		l.latitude == other.latitude &&
		l.longitude == other.longitude
}

func (l Location) String() string {
	return fmt.Sprintf("%s (%.6f, %.6f)", l.address, l.latitude, l.longitude)
}

func (l *Location) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	if len(address) > maxAddressLength {
		return errs.NewValueIsInvalidErrorWithCause(
			"address",
			fmt.Errorf("%d characters exceed the limit of %d", len(address), maxAddressLength),
		)
	}
	l.address = address
	return nil
}

func (l *Location) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	l.longitude = longitude
	return nil
}
