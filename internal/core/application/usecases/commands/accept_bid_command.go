package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrAcceptBidCommandIsNotConstructed = errors.New(
	"AcceptBidCommand must be created via NewAcceptBidCommand constructor",
)

// AcceptBidCommand is the client's choice of one bid for their load request.
//
// Example:
//
//	cmd, err := NewAcceptBidCommand(loadID, clientID, bidID)
//	if err != nil {
//	    return err
//	}
//	load, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConflict) {
//	    // another bid was accepted first, re-read the load
//	}
type AcceptBidCommand struct { //nolint:recvcheck //using for validation
	loadRequestID kernel.UUID
	clientID      kernel.UUID
	bidID         kernel.UUID

	guard guard.ConstructorGuard
}

func NewAcceptBidCommand(loadRequestID, clientID, bidID kernel.UUID) (AcceptBidCommand, error) {
	c := AcceptBidCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		required("loadRequestId", loadRequestID, &c.loadRequestID),
		required("clientId", clientID, &c.clientID),
		required("bidId", bidID, &c.bidID),
	); err != nil {
		return AcceptBidCommand{}, err
	}

	return c, nil
}

func (c AcceptBidCommand) Validate() error {
	return c.guard.Validate(ErrAcceptBidCommandIsNotConstructed)
}

func (c AcceptBidCommand) LoadRequestID() kernel.UUID {
	return c.loadRequestID
}

func (c AcceptBidCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c AcceptBidCommand) BidID() kernel.UUID {
	return c.bidID
}

// required copies id into dst when it is a valid identifier.
func required(paramName string, id kernel.UUID, dst *kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	*dst = id
	return nil
}
