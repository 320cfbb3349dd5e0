package commands

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrCreateLoadRequestCommandIsNotConstructed = errors.New(
	"CreateLoadRequestCommand must be created via NewCreateLoadRequestCommand constructor",
)

// CreateLoadRequestCommand publishes a new load request on behalf of a client.
//
// Example:
//
//	pickup, _ := kernel.NewLocation("Almaty, Suyunbay 2", 43.28, 76.95)
//	dropoff, _ := kernel.NewLocation("Shymkent, Tauke Khan 31", 42.32, 69.59)
//	cmd, err := NewCreateLoadRequestCommand(clientID, pickup, dropoff, 690,
//	    "cement", 40, 2, "on delivery", 180000, "")
//	if err != nil {
//	    return fmt.Errorf("invalid load request: %w", err)
//	}
//	load, err := handler.Handle(ctx, cmd)
type CreateLoadRequestCommand struct { //nolint:recvcheck //using for validation
	clientID     kernel.UUID
	route        loadrequest.Route
	cargo        loadrequest.Cargo
	paymentTerms string
	rate         float64
	comments     string

	guard guard.ConstructorGuard
}

// NewCreateLoadRequestCommand validates the client id, the route and the cargo.
// All violations are reported together.
func NewCreateLoadRequestCommand(
	clientID kernel.UUID,
	pickup kernel.Location,
	dropoff kernel.Location,
	distanceKm float64,
	goodsType string,
	weightTons float64,
	requestedTruckCount int,
	paymentTerms string,
	rate float64,
	comments string,
) (CreateLoadRequestCommand, error) {
	c := CreateLoadRequestCommand{
		paymentTerms: strings.TrimSpace(paymentTerms),
		comments:     comments,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setClientID(clientID),
		c.setRoute(pickup, dropoff, distanceKm),
		c.setCargo(goodsType, weightTons, requestedTruckCount),
		c.setRate(rate),
	); err != nil {
		return CreateLoadRequestCommand{}, err
	}

	return c, nil
}

func (c CreateLoadRequestCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadRequestCommandIsNotConstructed)
}

func (c CreateLoadRequestCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c CreateLoadRequestCommand) Route() loadrequest.Route {
	return c.route
}

func (c CreateLoadRequestCommand) Cargo() loadrequest.Cargo {
	return c.cargo
}

func (c CreateLoadRequestCommand) PaymentTerms() string {
	return c.paymentTerms
}

// Rate is the client's asking price.
func (c CreateLoadRequestCommand) Rate() float64 {
	return c.rate
}

func (c CreateLoadRequestCommand) Comments() string {
	return c.comments
}

func (c *CreateLoadRequestCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientId", err)
	}
	c.clientID = clientID
	return nil
}

func (c *CreateLoadRequestCommand) setRoute(pickup, dropoff kernel.Location, distanceKm float64) error {
	route, err := loadrequest.NewRoute(pickup, dropoff, distanceKm)
	if err != nil {
		return err
	}
	c.route = route
	return nil
}

func (c *CreateLoadRequestCommand) setCargo(goodsType string, weightTons float64, requestedTruckCount int) error {
	cargo, err := loadrequest.NewCargo(goodsType, weightTons, requestedTruckCount)
	if err != nil {
		return err
	}
	c.cargo = cargo
	return nil
}

func (c *CreateLoadRequestCommand) setRate(rate float64) error {
	if rate <= 0 {
		return errs.NewValueIsInvalidError("rate")
	}
	c.rate = rate
	return nil
}
