package truck

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var (
	ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck or RestoreTruck")

	// ErrTruckUnavailable is returned when a truck that is not on standby is asked
	// to serve a bid.
	ErrTruckUnavailable = errors.New("truck unavailable")
)

// Truck is a vehicle registered by a trucker. The registry is the single source of
// truth for truck availability: a truck is on Standby exactly when no bid occupies it.
//
// Only the lifecycle coordinator moves a truck between statuses, always on behalf of
// the bid recorded in occupyingBidID.
type Truck struct {
	id             kernel.UUID
	truckerID      kernel.UUID
	truckType      string
	maxWeightTons  float64
	plateNumber    string
	driverName     string
	driverPhone    string
	status         Status
	occupyingBidID *kernel.UUID
	version        int

	guard guard.ConstructorGuard
}

// NewTruck registers a truck on Standby.
//
// Parameters:
//   - id, truckerID: identifiers of the truck and of its owner
//   - truckType: body type as declared by the trucker (e.g. "refrigerator", "flatbed")
//   - maxWeightTons: payload capacity, must be positive
//   - plateNumber, driverName: required
//   - driverPhone: optional contact of the assigned driver
//
// Example:
//
//	t, err := truck.NewTruck(kernel.NewUUID(), truckerID, "tent", 20, "123ABC02", "Arman", "+77010000000")
func NewTruck(
	id kernel.UUID,
	truckerID kernel.UUID,
	truckType string,
	maxWeightTons float64,
	plateNumber string,
	driverName string,
	driverPhone string,
) (*Truck, error) {
	t := &Truck{
		status: Standby,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setTruckerID(truckerID),
		t.setTruckType(truckType),
		t.setMaxWeightTons(maxWeightTons),
		t.setPlateNumber(plateNumber),
		t.setDriverName(driverName),
	); err != nil {
		return nil, err
	}
	t.driverPhone = strings.TrimSpace(driverPhone)

	return t, nil
}

// RestoreTruck rebuilds a truck from storage, re-checking the Standby/occupancy invariant.
func RestoreTruck(
	id kernel.UUID,
	truckerID kernel.UUID,
	truckType string,
	maxWeightTons float64,
	plateNumber string,
	driverName string,
	driverPhone string,
	status Status,
	occupyingBidID *kernel.UUID,
	version int,
) (*Truck, error) {
	t, err := NewTruck(id, truckerID, truckType, maxWeightTons, plateNumber, driverName, driverPhone)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if (status == Standby) != (occupyingBidID == nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"occupyingBidId",
			fmt.Errorf("truck in status %s cannot have occupying bid %v", status, occupyingBidID),
		)
	}

	t.status = status
	t.occupyingBidID = occupyingBidID
	t.version = version
	return t, nil
}

func (t *Truck) Validate() error {
	if t == nil {
		return ErrTruckIsNotConstructed
	}
	return t.guard.Validate(ErrTruckIsNotConstructed)
}

func (t *Truck) ID() kernel.UUID {
	return t.id
}

func (t *Truck) TruckerID() kernel.UUID {
	return t.truckerID
}

func (t *Truck) TruckType() string {
	return t.truckType
}

func (t *Truck) MaxWeightTons() float64 {
	return t.maxWeightTons
}

func (t *Truck) PlateNumber() string {
	return t.plateNumber
}

func (t *Truck) DriverName() string {
	return t.driverName
}

func (t *Truck) DriverPhone() string {
	return t.driverPhone
}

func (t *Truck) Status() Status {
	return t.status
}

// OccupyingBidID is nil while the truck is on Standby.
func (t *Truck) OccupyingBidID() *kernel.UUID {
	return t.occupyingBidID
}

// Version is the optimistic concurrency counter last read from storage.
func (t *Truck) Version() int {
	return t.version
}

// BumpVersion is called by the persistence layer after a successful versioned write.
func (t *Truck) BumpVersion() {
	t.version++
}

func (t *Truck) IsStandby() bool {
	return t.status == Standby
}

func (t *Truck) BelongsTo(truckerID kernel.UUID) bool {
	return t.truckerID.IsEqual(truckerID)
}

// CheckAvailable returns ErrTruckUnavailable unless the truck is on Standby.
func (t *Truck) CheckAvailable() error {
	if !t.IsStandby() {
		return fmt.Errorf("%w: truck %s is %s", ErrTruckUnavailable, t.id, t.status)
	}
	return nil
}

// Reserve hands a standby truck to an accepted bid.
func (t *Truck) Reserve(bidID kernel.UUID) error {
	if err := bidID.Validate(); err != nil {
		return err
	}
	if err := t.CheckAvailable(); err != nil {
		return err
	}

	t.status = Reserved
	t.occupyingBidID = &bidID
	return nil
}

// Load marks the cargo of bidID as loaded onto the truck.
func (t *Truck) Load(bidID kernel.UUID) error {
	return t.advance(bidID, Loaded)
}

// StartTransit marks the truck as departed with the cargo of bidID.
func (t *Truck) StartTransit(bidID kernel.UUID) error {
	return t.advance(bidID, InTransit)
}

// Release returns the truck to Standby once the load of bidID is delivered.
func (t *Truck) Release(bidID kernel.UUID) error {
	if err := t.advance(bidID, Standby); err != nil {
		return err
	}
	t.occupyingBidID = nil
	return nil
}

func (t *Truck) advance(bidID kernel.UUID, target Status) error {
	if t.occupyingBidID == nil || !t.occupyingBidID.IsEqual(bidID) {
		return errs.NewInvalidTransitionErrorWithCause(
			"truck", t.status.String(), target.String(),
			fmt.Errorf("truck %s is not occupied by bid %s", t.id, bidID),
		)
	}

	next, err := t.status.moveTo(target)
	if err != nil {
		return err
	}
	t.status = next
	return nil
}

func (t *Truck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Truck) setTruckerID(truckerID kernel.UUID) error {
	if err := truckerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("truckerId", err)
	}
	t.truckerID = truckerID
	return nil
}

func (t *Truck) setTruckType(truckType string) error {
	truckType = strings.TrimSpace(truckType)
	if truckType == "" {
		return errs.NewValueIsRequiredError("truckType")
	}
	t.truckType = truckType
	return nil
}

func (t *Truck) setMaxWeightTons(maxWeightTons float64) error {
	if maxWeightTons <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxWeightTons", fmt.Errorf("%g is not greater than 0", maxWeightTons))
	}
	t.maxWeightTons = maxWeightTons
	return nil
}

func (t *Truck) setPlateNumber(plateNumber string) error {
	plateNumber = strings.ToUpper(strings.TrimSpace(plateNumber))
	if plateNumber == "" {
		return errs.NewValueIsRequiredError("plateNumber")
	}
	t.plateNumber = plateNumber
	return nil
}

func (t *Truck) setDriverName(driverName string) error {
	driverName = strings.TrimSpace(driverName)
	if driverName == "" {
		return errs.NewValueIsRequiredError("driverName")
	}
	t.driverName = driverName
	return nil
}
