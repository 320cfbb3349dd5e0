package queries

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrListVisibleLoadsQueryIsNotConstructed = errors.New(
	"ListVisibleLoadsQuery must be created via NewListVisibleLoadsQuery constructor",
)

// ListVisibleLoadsQuery asks for the load board of one trucker: every open load
// request the trucker has not rejected.
type ListVisibleLoadsQuery struct {
	truckerID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListVisibleLoadsQuery(truckerID kernel.UUID) (ListVisibleLoadsQuery, error) {
	q := ListVisibleLoadsQuery{guard: guard.NewConstructorGuard()}
	if err := requireID("truckerId", truckerID, &q.truckerID); err != nil {
		return ListVisibleLoadsQuery{}, err
	}
	return q, nil
}

func (q ListVisibleLoadsQuery) Validate() error {
	return q.guard.Validate(ErrListVisibleLoadsQueryIsNotConstructed)
}

func (q ListVisibleLoadsQuery) TruckerID() kernel.UUID {
	return q.truckerID
}
