package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrListTruckerTrucksQueryIsNotConstructed = errors.New(
	"ListTruckerTrucksQuery must be created via NewListTruckerTrucksQuery constructor",
)

// ListTruckerTrucksQuery lists the fleet of one trucker with current availability.
type ListTruckerTrucksQuery struct {
	truckerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListTruckerTrucksQuery(truckerID kernel.UUID) (ListTruckerTrucksQuery, error) {
	q := ListTruckerTrucksQuery{guard: guard.NewConstructorGuard()}
	if err := requireID("truckerId", truckerID, &q.truckerID); err != nil {
		return ListTruckerTrucksQuery{}, err
	}
	return q, nil
}

func (q ListTruckerTrucksQuery) Validate() error {
	return q.guard.Validate(ErrListTruckerTrucksQueryIsNotConstructed)
}

func (q ListTruckerTrucksQuery) TruckerID() kernel.UUID {
	return q.truckerID
}

type TruckView struct {
	ID             kernel.UUID  `json:"id"`
	TruckerID      kernel.UUID  `json:"truckerId"`
	TruckType      string       `json:"truckType"`
	MaxWeightTons  float64      `json:"maxWeightTons"`
	PlateNumber    string       `json:"plateNumber"`
	DriverName     string       `json:"driverName"`
	DriverPhone    string       `json:"driverPhone"`
	Status         string       `json:"status"`
	OccupyingBidID *kernel.UUID `json:"occupyingBidId,omitempty"`
}
