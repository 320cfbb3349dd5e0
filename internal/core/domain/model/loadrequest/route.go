package loadrequest

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrRouteIsNotConstructed = errors.New("Route must be created via NewRoute constructor")

// Route is where the cargo is picked up and dropped off. The distance is computed by the
// routing collaborator and stored as given.
type Route struct {
	pickup     kernel.Location
	dropoff    kernel.Location
	distanceKm float64
	guard      guard.ConstructorGuard
}

func NewRoute(pickup, dropoff kernel.Location, distanceKm float64) (Route, error) {
	r := Route{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		wrapLocation("pickup", pickup.Validate()),
		wrapLocation("dropoff", dropoff.Validate()),
		validateDistance(distanceKm),
	); err != nil {
		return Route{}, err
	}

	r.pickup = pickup
	r.dropoff = dropoff
	r.distanceKm = distanceKm
	return r, nil
}

func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r Route) Pickup() kernel.Location {
	return r.pickup
}

func (r Route) Dropoff() kernel.Location {
	return r.dropoff
}

func (r Route) DistanceKm() float64 {
	return r.distanceKm
}

func wrapLocation(name string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsRequiredErrorWithCause(name, err)
}

func validateDistance(distanceKm float64) error {
	if distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm", fmt.Errorf("%g is negative", distanceKm))
	}
	return nil
}
