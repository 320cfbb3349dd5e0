package commands

import (
	"context"
	"errors"
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/pkg/errs"
)

// RejectLoadCommandHandler records a trucker's rejection of a load request.
//
// The operation is idempotent: rejecting the same load twice returns the first
// rejection unchanged. A first rejection needs the load to be Open, and withdraws
// the trucker's bid on it if the bid still waits for the client. The status of the
// load request itself never changes.
type RejectLoadCommandHandler struct {
	uowFactory LifecycleUoWFactory
}

func NewRejectLoadCommandHandler(uowFactory LifecycleUoWFactory) RejectLoadCommandHandler {
	return RejectLoadCommandHandler{uowFactory: uowFactory}
}

func (h RejectLoadCommandHandler) Handle(ctx context.Context, command RejectLoadCommand) (bid.Rejection, error) {
	if err := command.Validate(); err != nil {
		return bid.Rejection{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return bid.Rejection{}, err
	}
	defer func() {
		_ = uow.Rollback(ctx)
	}()

	loadRepo := uow.LoadRequestRepository()
	bidRepo := uow.BidRepository()

	load, err := loadRepo.GetForUpdate(ctx, command.LoadRequestID())
	if err != nil {
		return bid.Rejection{}, err
	}

	existing, err := bidRepo.GetRejection(ctx, load.ID(), command.TruckerID())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return bid.Rejection{}, err
	}

	if !load.IsOpen() {
		return bid.Rejection{}, errs.NewInvalidTransitionErrorWithCause(
			"load request", load.Status().String(), "rejected",
			errors.New("only open load requests can be rejected"),
		)
	}

	now := time.Now()
	rejection, err := bid.NewRejection(load.ID(), command.TruckerID(), command.Reason(), now)
	if err != nil {
		return bid.Rejection{}, err
	}

	bids, err := bidRepo.GetByLoadRequest(ctx, load.ID())
	if err != nil {
		return bid.Rejection{}, err
	}
	for _, b := range bids {
		if !b.OwnedBy(command.TruckerID()) || !b.IsSubmitted() {
			continue
		}
		if err = b.Withdraw(now); err != nil {
			return bid.Rejection{}, err
		}
		if err = bidRepo.Update(ctx, b); err != nil {
			return bid.Rejection{}, err
		}
	}

	if err = bidRepo.AddRejection(ctx, rejection); err != nil {
		return bid.Rejection{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return bid.Rejection{}, err
	}

	return rejection, nil
}
