package commands_test

import (
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func acceptedLoad(t *testing.T) (*loadrequest.LoadRequest, kernel.UUID, *bid.Bid, []*truck.Truck) {
	t.Helper()
	clientID := kernel.NewUUID()
	load := openLoad(t, clientID, 2)
	truckerID := kernel.NewUUID()
	trucks := standbyTrucks(t, truckerID, 2)
	winner := submittedBid(t, load, truckerID, trucks)
	_, err := services.NewLifecycleCoordinator().Accept(load, clientID, winner, []*bid.Bid{winner}, trucks, time.Now())
	require.NoError(t, err)
	return load, truckerID, winner, trucks
}

func TestNewAdvanceLoadStatusCommand_Target(t *testing.T) {
	for _, target := range []loadrequest.Status{loadrequest.Loaded, loadrequest.InTransit, loadrequest.Delivered} {
		_, err := commands.NewAdvanceLoadStatusCommand(kernel.NewUUID(), kernel.NewUUID(), target)
		require.NoError(t, err, target.String())
	}

	for _, target := range []loadrequest.Status{loadrequest.Open, loadrequest.Accepted, loadrequest.Status(42)} {
		_, err := commands.NewAdvanceLoadStatusCommand(kernel.NewUUID(), kernel.NewUUID(), target)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid, target.String())
	}
}

func TestAdvanceLoadStatusCommandHandler_Handle_Loaded(t *testing.T) {
	ctx := t.Context()
	load, truckerID, winner, trucks := acceptedLoad(t)

	cmd, err := commands.NewAdvanceLoadStatusCommand(load.ID(), truckerID, loadrequest.Loaded)
	require.NoError(t, err)

	m := newLifecycleMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("LoadRequestRepository").Return(m.loads).Once(),
		m.uow.On("BidRepository").Return(m.bids).Once(),
		m.uow.On("TruckRepository").Return(m.trucks).Once(),
		m.loads.On("GetForUpdate", ctx, load.ID()).Return(load, nil).Once(),
		m.bids.On("Get", ctx, winner.ID()).Return(winner, nil).Once(),
		m.trucks.On("GetManyForUpdate", ctx, idsOf(trucks)).Return(trucks, nil).Once(),
		m.loads.On("Update", ctx, load).Return(nil).Once(),
		m.bids.On("Update", ctx, winner).Return(nil).Once(),
		m.trucks.On("Update", ctx, trucks[0]).Return(nil).Once(),
		m.trucks.On("Update", ctx, trucks[1]).Return(nil).Once(),
		m.uow.On("Commit", ctx).Return(nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAdvanceLoadStatusCommandHandler(m.factory)
	advanced, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, loadrequest.Loaded, advanced.Status())
	assert.NotNil(t, advanced.Timeline().LoadedAt)
	assert.Equal(t, bid.Loaded, winner.Status())
	for _, tr := range trucks {
		assert.Equal(t, truck.Loaded, tr.Status())
	}
	m.assertExpectations(t)
}

func TestAdvanceLoadStatusCommandHandler_Handle_SkippingIsRejected(t *testing.T) {
	ctx := t.Context()
	load, truckerID, winner, trucks := acceptedLoad(t)

	cmd, err := commands.NewAdvanceLoadStatusCommand(load.ID(), truckerID, loadrequest.Delivered)
	require.NoError(t, err)

	m := newLifecycleMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("LoadRequestRepository").Return(m.loads).Once(),
		m.uow.On("BidRepository").Return(m.bids).Once(),
		m.uow.On("TruckRepository").Return(m.trucks).Once(),
		m.loads.On("GetForUpdate", ctx, load.ID()).Return(load, nil).Once(),
		m.bids.On("Get", ctx, winner.ID()).Return(winner, nil).Once(),
		m.trucks.On("GetManyForUpdate", ctx, idsOf(trucks)).Return(trucks, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAdvanceLoadStatusCommandHandler(m.factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	assert.Equal(t, loadrequest.Accepted, load.Status())
	m.assertExpectations(t)
}

func TestAdvanceLoadStatusCommandHandler_Handle_WrongTrucker(t *testing.T) {
	ctx := t.Context()
	load, _, winner, trucks := acceptedLoad(t)

	cmd, err := commands.NewAdvanceLoadStatusCommand(load.ID(), kernel.NewUUID(), loadrequest.Loaded)
	require.NoError(t, err)

	m := newLifecycleMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("LoadRequestRepository").Return(m.loads).Once(),
		m.uow.On("BidRepository").Return(m.bids).Once(),
		m.uow.On("TruckRepository").Return(m.trucks).Once(),
		m.loads.On("GetForUpdate", ctx, load.ID()).Return(load, nil).Once(),
		m.bids.On("Get", ctx, winner.ID()).Return(winner, nil).Once(),
		m.trucks.On("GetManyForUpdate", ctx, idsOf(trucks)).Return(trucks, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAdvanceLoadStatusCommandHandler(m.factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	m.assertExpectations(t)
}

func TestAdvanceLoadStatusCommandHandler_Handle_OpenLoad(t *testing.T) {
	ctx := t.Context()
	load := openLoad(t, kernel.NewUUID(), 1)

	cmd, err := commands.NewAdvanceLoadStatusCommand(load.ID(), kernel.NewUUID(), loadrequest.Loaded)
	require.NoError(t, err)

	m := newLifecycleMocks()
	mock.InOrder(
		m.uow.On("Begin", ctx).Return(nil).Once(),
		m.uow.On("LoadRequestRepository").Return(m.loads).Once(),
		m.uow.On("BidRepository").Return(m.bids).Once(),
		m.uow.On("TruckRepository").Return(m.trucks).Once(),
		m.loads.On("GetForUpdate", ctx, load.ID()).Return(load, nil).Once(),
		m.uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewAdvanceLoadStatusCommandHandler(m.factory)
	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidTransition)
	m.assertExpectations(t)
}
