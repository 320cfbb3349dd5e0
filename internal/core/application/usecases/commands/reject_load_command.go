package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrRejectLoadCommandIsNotConstructed = errors.New(
	"RejectLoadCommand must be created via NewRejectLoadCommand constructor",
)

// RejectLoadCommand hides a load request from one trucker.
type RejectLoadCommand struct { //nolint:recvcheck //using for validation
	loadRequestID kernel.UUID
	truckerID     kernel.UUID
	reason        string

	guard guard.ConstructorGuard
}

// NewRejectLoadCommand creates the command. The reason is optional.
func NewRejectLoadCommand(loadRequestID, truckerID kernel.UUID, reason string) (RejectLoadCommand, error) {
	c := RejectLoadCommand{
		reason: reason,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setLoadRequestID(loadRequestID),
		c.setTruckerID(truckerID),
	); err != nil {
		return RejectLoadCommand{}, err
	}

	return c, nil
}

func (c RejectLoadCommand) Validate() error {
	return c.guard.Validate(ErrRejectLoadCommandIsNotConstructed)
}

func (c RejectLoadCommand) LoadRequestID() kernel.UUID {
	return c.loadRequestID
}

func (c RejectLoadCommand) TruckerID() kernel.UUID {
	return c.truckerID
}

func (c RejectLoadCommand) Reason() string {
	return c.reason
}

func (c *RejectLoadCommand) setLoadRequestID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("loadRequestId", err)
	}
	c.loadRequestID = id
	return nil
}

func (c *RejectLoadCommand) setTruckerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("truckerId", err)
	}
	c.truckerID = id
	return nil
}
