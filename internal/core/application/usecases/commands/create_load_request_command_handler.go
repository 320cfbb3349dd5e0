package commands

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/loadrequest"
)

// CreateLoadRequestCommandHandler stores a new Open load request. The request becomes
// visible to every trucker that has not rejected it.
type CreateLoadRequestCommandHandler struct {
	uowFactory LoadRequestUoWFactory
}

func NewCreateLoadRequestCommandHandler(uowFactory LoadRequestUoWFactory) CreateLoadRequestCommandHandler {
	return CreateLoadRequestCommandHandler{uowFactory: uowFactory}
}

func (h CreateLoadRequestCommandHandler) Handle(
	ctx context.Context,
	command CreateLoadRequestCommand,
) (*loadrequest.LoadRequest, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := loadrequest.NewLoadRequest(
		kernel.NewUUID(),
		command.ClientID(),
		command.Route(),
		command.Cargo(),
		command.Rate(),
		command.PaymentTerms(),
		command.Comments(),
		time.Now(),
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

	if err = uow.LoadRequestRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
