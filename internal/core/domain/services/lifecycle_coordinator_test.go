package services_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/core/domain/model/truck"
	"freight/internal/core/domain/services"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLifecycleCoordinator_Accept(t *testing.T) {
	coordinator := services.NewLifecycleCoordinator()

	t.Run("accepts winner, reserves its trucks and supersedes rivals", func(t *testing.T) {
		clientID := kernel.NewUUID()
		load := newLoad(t, clientID, 2)

		winnerTrucker := kernel.NewUUID()
		winnerTrucks := newTrucks(t, winnerTrucker, 2)
		winner := newBid(t, load, winnerTrucker, winnerTrucks)

		rivalTrucker := kernel.NewUUID()
		rival := newBid(t, load, rivalTrucker, newTrucks(t, rivalTrucker, 1))

		superseded, err := coordinator.Accept(load, clientID, winner, []*bid.Bid{winner, rival}, winnerTrucks, time.Now())

		require.NoError(t, err)
		assert.Equal(t, loadrequest.Accepted, load.Status())
		require.NotNil(t, load.AcceptedBidID())
		assert.True(t, load.AcceptedBidID().IsEqual(winner.ID()))
		assert.Equal(t, bid.Accepted, winner.Status())
		assert.Equal(t, bid.Superseded, rival.Status())
		require.Len(t, superseded, 1)
		assert.True(t, superseded[0].ID().IsEqual(rival.ID()))
		for _, tr := range winnerTrucks {
			assert.Equal(t, truck.Reserved, tr.Status())
			assert.True(t, tr.OccupyingBidID().IsEqual(winner.ID()))
		}
	})

	t.Run("foreign client cannot accept", func(t *testing.T) {
		load := newLoad(t, kernel.NewUUID(), 1)
		trucker := kernel.NewUUID()
		trucks := newTrucks(t, trucker, 1)
		winner := newBid(t, load, trucker, trucks)

		_, err := coordinator.Accept(load, kernel.NewUUID(), winner, []*bid.Bid{winner}, trucks, time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, loadrequest.Open, load.Status())
		assert.Equal(t, bid.Submitted, winner.Status())
	})

	t.Run("second accept conflicts", func(t *testing.T) {
		clientID := kernel.NewUUID()
		load := newLoad(t, clientID, 1)
		first := kernel.NewUUID()
		firstTrucks := newTrucks(t, first, 1)
		firstBid := newBid(t, load, first, firstTrucks)
		second := kernel.NewUUID()
		secondTrucks := newTrucks(t, second, 1)
		secondBid := newBid(t, load, second, secondTrucks)
		all := []*bid.Bid{firstBid, secondBid}

		_, err := coordinator.Accept(load, clientID, firstBid, all, firstTrucks, time.Now())
		require.NoError(t, err)

		_, err = coordinator.Accept(load, clientID, secondBid, all, secondTrucks, time.Now())
		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, truck.Standby, secondTrucks[0].Status())
	})

	t.Run("bid of another load is not found", func(t *testing.T) {
		clientID := kernel.NewUUID()
		load := newLoad(t, clientID, 1)
		other := newLoad(t, clientID, 1)
		trucker := kernel.NewUUID()
		trucks := newTrucks(t, trucker, 1)
		foreign := newBid(t, other, trucker, trucks)

		_, err := coordinator.Accept(load, clientID, foreign, nil, trucks, time.Now())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("too many trucks", func(t *testing.T) {
		clientID := kernel.NewUUID()
		load := newLoad(t, clientID, 1)
		trucker := kernel.NewUUID()
		trucks := newTrucks(t, trucker, 2)
		winner := newBid(t, load, trucker, trucks)

		_, err := coordinator.Accept(load, clientID, winner, []*bid.Bid{winner}, trucks, time.Now())

		require.ErrorIs(t, err, bid.ErrInvalidTruckCount)
		assert.Equal(t, loadrequest.Open, load.Status())
	})

	t.Run("busy truck leaves everything untouched", func(t *testing.T) {
		clientID := kernel.NewUUID()
		trucker := kernel.NewUUID()
		trucks := newTrucks(t, trucker, 2)

		busyLoad := newLoad(t, clientID, 1)
		busyBid := newBid(t, busyLoad, trucker, trucks[:1])
		_, err := coordinator.Accept(busyLoad, clientID, busyBid, []*bid.Bid{busyBid}, trucks[:1], time.Now())
		require.NoError(t, err)

		load := newLoad(t, clientID, 2)
		winner := newBid(t, load, trucker, trucks)

		_, err = coordinator.Accept(load, clientID, winner, []*bid.Bid{winner}, trucks, time.Now())

		require.ErrorIs(t, err, truck.ErrTruckUnavailable)
		assert.Equal(t, loadrequest.Open, load.Status())
		assert.Equal(t, bid.Submitted, winner.Status())
		assert.Equal(t, truck.Standby, trucks[1].Status())
	})

	t.Run("missing truck is not found", func(t *testing.T) {
		clientID := kernel.NewUUID()
		load := newLoad(t, clientID, 1)
		trucker := kernel.NewUUID()
		winner := newBid(t, load, trucker, newTrucks(t, trucker, 1))

		_, err := coordinator.Accept(load, clientID, winner, []*bid.Bid{winner}, nil, time.Now())

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestLifecycleCoordinator_Advance(t *testing.T) {
	coordinator := services.NewLifecycleCoordinator()

	accepted := func(t *testing.T) (*loadrequest.LoadRequest, kernel.UUID, *bid.Bid, []*truck.Truck) {
		t.Helper()
		clientID := kernel.NewUUID()
		load := newLoad(t, clientID, 2)
		trucker := kernel.NewUUID()
		trucks := newTrucks(t, trucker, 2)
		winner := newBid(t, load, trucker, trucks)
		_, err := coordinator.Accept(load, clientID, winner, []*bid.Bid{winner}, trucks, time.Now())
		require.NoError(t, err)
		return load, trucker, winner, trucks
	}

	t.Run("full cycle moves load, bid and trucks together", func(t *testing.T) {
		load, trucker, winner, trucks := accepted(t)

		steps := []struct {
			target      loadrequest.Status
			bidStatus   bid.Status
			truckStatus truck.Status
		}{
			{loadrequest.Loaded, bid.Loaded, truck.Loaded},
			{loadrequest.InTransit, bid.InTransit, truck.InTransit},
			{loadrequest.Delivered, bid.Delivered, truck.Standby},
		}
		for _, step := range steps {
			require.NoError(t, coordinator.Advance(load, trucker, winner, trucks, step.target, time.Now()))
			assert.Equal(t, step.target, load.Status())
			assert.Equal(t, step.bidStatus, winner.Status())
			for _, tr := range trucks {
				assert.Equal(t, step.truckStatus, tr.Status())
			}
		}

		for _, tr := range trucks {
			assert.Nil(t, tr.OccupyingBidID())
		}
		timeline := load.Timeline()
		assert.NotNil(t, timeline.LoadedAt)
		assert.NotNil(t, timeline.InTransitAt)
		assert.NotNil(t, timeline.DeliveredAt)
	})

	t.Run("other trucker cannot advance", func(t *testing.T) {
		load, _, winner, trucks := accepted(t)

		err := coordinator.Advance(load, kernel.NewUUID(), winner, trucks, loadrequest.Loaded, time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, loadrequest.Accepted, load.Status())
	})

	t.Run("skipping a step is an invalid transition", func(t *testing.T) {
		load, trucker, winner, trucks := accepted(t)

		err := coordinator.Advance(load, trucker, winner, trucks, loadrequest.Delivered, time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, bid.Accepted, winner.Status())
		assert.Equal(t, truck.Reserved, trucks[0].Status())
	})

	t.Run("repeating the current status conflicts", func(t *testing.T) {
		load, trucker, winner, trucks := accepted(t)
		require.NoError(t, coordinator.Advance(load, trucker, winner, trucks, loadrequest.Loaded, time.Now()))

		err := coordinator.Advance(load, trucker, winner, trucks, loadrequest.Loaded, time.Now())

		require.ErrorIs(t, err, errs.ErrConflict)
	})

	t.Run("bid that is not the accepted one", func(t *testing.T) {
		load, trucker, _, trucks := accepted(t)
		stranger := newBid(t, load, trucker, trucks)

		err := coordinator.Advance(load, trucker, stranger, trucks, loadrequest.Loaded, time.Now())

		require.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}
