package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rating"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"
)

// SubmitRatingCommandHandler stores a rating of a delivered load.
//
// One rating per load and rater role: a second attempt fails with
// rating.ErrDuplicateRating, whether it is caught by the lookup here or by the unique
// index when two attempts race.
type SubmitRatingCommandHandler struct {
	uowFactory RatingUoWFactory
	policy     services.RatingPolicy
}

func NewSubmitRatingCommandHandler(uowFactory RatingUoWFactory) SubmitRatingCommandHandler {
	return SubmitRatingCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewRatingPolicy(),
	}
}

func (h SubmitRatingCommandHandler) Handle(ctx context.Context, command SubmitRatingCommand) (*rating.Rating, error) {
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

	ratingRepo := uow.RatingRepository()

	load, err := uow.LoadRequestRepository().Get(ctx, command.LoadRequestID())
	if err != nil {
		return nil, err
	}

	var accepted *bid.Bid
	if id := load.AcceptedBidID(); id != nil {
		if accepted, err = uow.BidRepository().Get(ctx, *id); err != nil {
			return nil, err
		}
	}

	participants := command.Participants()
	if err = h.policy.Check(load, accepted, participants); err != nil {
		return nil, err
	}

	_, err = ratingRepo.GetByLoadRequestAndRole(ctx, load.ID(), participants.RaterRole)
	if err == nil {
		return nil, fmt.Errorf("%w: the %s has already rated load request %s",
			rating.ErrDuplicateRating, participants.RaterRole, load.ID())
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, err
	}

	aggregate, err := rating.NewRating(
		kernel.NewUUID(),
		load.ID(),
		accepted.ID(),
		participants,
		command.Score(),
		command.Comment(),
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if err = ratingRepo.Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
