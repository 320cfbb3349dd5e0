package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/core/domain/services"
)

// AcceptBidCommandHandler applies the client's choice of a bid.
//
// The load request row is locked first. Of two concurrent accepts the second waits
// for the lock, then sees the committed Accepted status and fails with
// errs.ErrConflict. The winner's trucks are locked in id order and every update is
// checked against the aggregate's version, so a lost race never leaves a partial write.
type AcceptBidCommandHandler struct {
	uowFactory  LifecycleUoWFactory
	coordinator services.LifecycleCoordinator
}

func NewAcceptBidCommandHandler(uowFactory LifecycleUoWFactory) AcceptBidCommandHandler {
	return AcceptBidCommandHandler{
		uowFactory:  uowFactory,
		coordinator: services.NewLifecycleCoordinator(),
	}
}

// Handle returns the load request in status Accepted.
func (h AcceptBidCommandHandler) Handle(ctx context.Context, command AcceptBidCommand) (*loadrequest.LoadRequest, error) {
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

	winner, err := bidRepo.Get(ctx, command.BidID())
	if err != nil {
		return nil, err
	}

	bids, err := bidRepo.GetByLoadRequest(ctx, load.ID())
	if err != nil {
		return nil, err
	}

	trucks, err := truckRepo.GetManyForUpdate(ctx, winner.TruckIDs())
	if err != nil {
		return nil, err
	}

	superseded, err := h.coordinator.Accept(load, command.ClientID(), winner, bids, trucks, time.Now())
	if err != nil {
		return nil, err
	}

	if err = loadRepo.Update(ctx, load); err != nil {
		return nil, err
	}
	if err = bidRepo.Update(ctx, winner); err != nil {
		return nil, err
	}
	for _, t := range trucks {
		if err = truckRepo.Update(ctx, t); err != nil {
			return nil, err
		}
	}
	for _, b := range superseded {
		if err = bidRepo.Update(ctx, b); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return load, nil
}
