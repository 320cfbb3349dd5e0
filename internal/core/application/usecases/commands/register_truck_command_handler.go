package commands

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
)

type RegisterTruckCommandHandler struct {
	uowFactory TruckUoWFactory
}

func NewRegisterTruckCommandHandler(uowFactory TruckUoWFactory) RegisterTruckCommandHandler {
	return RegisterTruckCommandHandler{uowFactory: uowFactory}
}

// Handle creates the truck on standby and returns it.
func (h RegisterTruckCommandHandler) Handle(ctx context.Context, command RegisterTruckCommand) (*truck.Truck, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := truck.NewTruck(
		kernel.NewUUID(),
		command.TruckerID(),
		command.TruckType(),
		command.MaxWeightTons(),
		command.PlateNumber(),
		command.DriverName(),
		command.DriverPhone(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.TruckRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
