package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"
)

// SubmitBidCommandHandler adds a bid to the ledger.
//
// The load request row is locked for the duration of the transaction, so a bid can
// never slip in after the load was accepted, and two bids of the same trucker on one
// load are decided one after the other. The offered trucks are locked as well.
type SubmitBidCommandHandler struct {
	uowFactory LifecycleUoWFactory
	admission  services.BidAdmission
}

func NewSubmitBidCommandHandler(uowFactory LifecycleUoWFactory) SubmitBidCommandHandler {
	return SubmitBidCommandHandler{
		uowFactory: uowFactory,
		admission:  services.NewBidAdmission(),
	}
}

// Handle returns the stored bid in status Submitted.
//
// Errors: errs.ErrObjectNotFound (load or truck), errs.ErrInvalidTransition (load not
// open or rejected by the trucker), errs.ErrValueIsInvalid (foreign truck),
// bid.ErrInvalidTruckCount, truck.ErrTruckUnavailable, bid.ErrDuplicateBid.
func (h SubmitBidCommandHandler) Handle(ctx context.Context, command SubmitBidCommand) (*bid.Bid, error) {
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

	rejected := true
	if _, err = bidRepo.GetRejection(ctx, load.ID(), command.TruckerID()); errors.Is(err, errs.ErrObjectNotFound) {
		rejected = false
	} else if err != nil {
		return nil, err
	}

	trucks, err := truckRepo.GetManyForUpdate(ctx, command.TruckIDs())
	if err != nil {
		return nil, err
	}

	truckerBids, err := bidRepo.GetActiveByTrucker(ctx, command.TruckerID())
	if err != nil {
		return nil, err
	}
	loadBids, err := bidRepo.GetByLoadRequest(ctx, load.ID())
	if err != nil {
		return nil, err
	}
	for _, b := range loadBids {
		if b.OwnedBy(command.TruckerID()) && !b.IsSubmitted() {
			truckerBids = append(truckerBids, b)
		}
	}

	candidate, err := bid.NewBid(
		kernel.NewUUID(),
		load.ID(),
		command.TruckerID(),
		command.TruckIDs(),
		command.Price(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = h.admission.Admit(load, candidate, rejected, trucks, truckerBids); err != nil {
		return nil, err
	}

	if err = bidRepo.Add(ctx, candidate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return candidate, nil
}
