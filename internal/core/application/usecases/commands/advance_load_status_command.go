package commands

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrAdvanceLoadStatusCommandIsNotConstructed = errors.New(
	"AdvanceLoadStatusCommand must be created via NewAdvanceLoadStatusCommand constructor",
)

// AdvanceLoadStatusCommand is a trucker's report that the accepted load was loaded,
// departed or delivered.
type AdvanceLoadStatusCommand struct { //nolint:recvcheck //using for validation
	loadRequestID kernel.UUID
	truckerID     kernel.UUID
	target        loadrequest.Status

	guard guard.ConstructorGuard
}

// NewAdvanceLoadStatusCommand accepts Loaded, InTransit and Delivered as target.
func NewAdvanceLoadStatusCommand(
	loadRequestID kernel.UUID,
	truckerID kernel.UUID,
	target loadrequest.Status,
) (AdvanceLoadStatusCommand, error) {
	c := AdvanceLoadStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		required("loadRequestId", loadRequestID, &c.loadRequestID),
		required("truckerId", truckerID, &c.truckerID),
		c.setTarget(target),
	); err != nil {
		return AdvanceLoadStatusCommand{}, err
	}

	return c, nil
}

func (c AdvanceLoadStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceLoadStatusCommandIsNotConstructed)
}

func (c AdvanceLoadStatusCommand) LoadRequestID() kernel.UUID {
	return c.loadRequestID
}

func (c AdvanceLoadStatusCommand) TruckerID() kernel.UUID {
	return c.truckerID
}

func (c AdvanceLoadStatusCommand) Target() loadrequest.Status {
	return c.target
}

func (c *AdvanceLoadStatusCommand) setTarget(target loadrequest.Status) error {
	switch target {
	case loadrequest.Loaded, loadrequest.InTransit, loadrequest.Delivered:
		c.target = target
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status", fmt.Errorf("%s is not a status a trucker can report", target))
	}
}
