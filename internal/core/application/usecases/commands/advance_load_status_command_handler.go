package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"
)

type AdvanceLoadStatusCommandHandler struct {
	uowFactory  LifecycleUoWFactory
	coordinator services.LifecycleCoordinator
}

func NewAdvanceLoadStatusCommandHandler(uowFactory LifecycleUoWFactory) AdvanceLoadStatusCommandHandler {
	return AdvanceLoadStatusCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewLifecycleCoordinator(),
	}
}

// Handle moves the load, its accepted bid and the bid's trucks one step forward and
// returns the updated load request. Replaying the current status fails with
// errs.ErrConflict and changes nothing.
func (h AdvanceLoadStatusCommandHandler) Handle(
	ctx context.Context,
	command AdvanceLoadStatusCommand,
) (*loadrequest.LoadRequest, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRequestRepository()
	bidRepo := uow.BidRepository()
	truckRepo := uow.TruckRepository()

	load, err := loadRepo.GetForUpdate(ctx, command.LoadRequestID())
	if err != nil {
		return nil, err
	}

	acceptedID := load.AcceptedBidID()
	if acceptedID == nil {
		return nil, errs.NewInvalidTransitionErrorWithCause(
			"load request", load.Status().String(), command.Target().String(),
			errors.New("no bid has been accepted"),
		)
	}

	accepted, err := bidRepo.Get(ctx, *acceptedID)
	if err != nil {
		return nil, err
	}

	trucks, err := truckRepo.GetManyForUpdate(ctx, accepted.TruckIDs())
	if err != nil {
		return nil, err
	}

	if err = h.coordinator.Advance(load, command.TruckerID(), accepted, trucks, command.Target(), time.Now()); err != nil {
		return nil, err
	}

	if err = loadRepo.Update(ctx, load); err != nil {
		return nil, err
	}
	if err = bidRepo.Update(ctx, accepted); err != nil {
		return nil, err
	}
	for _, t := range trucks {
		if err = truckRepo.Update(ctx, t); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return load, nil
}
