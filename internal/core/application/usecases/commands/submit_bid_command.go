package commands

import (
	"errors"
	"fmt"
	"slices"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrSubmitBidCommandIsNotConstructed = errors.New(
	"SubmitBidCommand must be created via NewSubmitBidCommand constructor",
)

// SubmitBidCommand offers trucks and a counter price for an open load request.
type SubmitBidCommand struct { //nolint:recvcheck //using for validation
	loadRequestID kernel.UUID
	truckerID     kernel.UUID
	truckIDs      []kernel.UUID
	price         float64

	guard guard.ConstructorGuard
}

// NewSubmitBidCommand rejects an empty or repeating truck list and a non-positive price.
func NewSubmitBidCommand(
	loadRequestID kernel.UUID,
	truckerID kernel.UUID,
	truckIDs []kernel.UUID,
	price float64,
) (SubmitBidCommand, error) {
	c := SubmitBidCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setLoadRequestID(loadRequestID),
		c.setTruckerID(truckerID),
		c.setTruckIDs(truckIDs),
		c.setPrice(price),
	); err != nil {
		return SubmitBidCommand{}, err
	}

	return c, nil
}

func (c SubmitBidCommand) Validate() error {
	return c.guard.Validate(ErrSubmitBidCommandIsNotConstructed)
}

func (c SubmitBidCommand) LoadRequestID() kernel.UUID {
	return c.loadRequestID
}

func (c SubmitBidCommand) TruckerID() kernel.UUID {
	return c.truckerID
}

func (c SubmitBidCommand) TruckIDs() []kernel.UUID {
	return slices.Clone(c.truckIDs)
}

func (c SubmitBidCommand) Price() float64 {
	return c.price
}

func (c *SubmitBidCommand) setLoadRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadRequestId", err)
	}
	c.loadRequestID = id
	return nil
}

func (c *SubmitBidCommand) setTruckerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("truckerId", err)
	}
	c.truckerID = id
	return nil
}

func (c *SubmitBidCommand) setTruckIDs(truckIDs []kernel.UUID) error {
	if len(truckIDs) == 0 {
		return errs.NewValueIsRequiredError("truckIds")
	}

	seen := make(map[kernel.UUID]struct{}, len(truckIDs))
	for _, id := range truckIDs {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("truckIds", err)
		}
		if _, ok := seen[id]; ok {
			return errs.NewValueIsInvalidErrorWithCause("truckIds", fmt.Errorf("truck %s is listed twice", id))
		}
		seen[id] = struct{}{}
	}

	c.truckIDs = slices.Clone(truckIDs)
	return nil
}

func (c *SubmitBidCommand) setPrice(price float64) error {
	if price <= 0 {
		return errs.NewValueIsInvalidError("price")
	}
	c.price = price
	return nil
}
