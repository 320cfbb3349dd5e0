package commands_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/core/domain/model/truck"

	"github.com/stretchr/testify/require"
)

func testLocations(t *testing.T) (kernel.Location, kernel.Location) {
	t.Helper()
	pickup, err := kernel.NewLocation("Karaganda, Bukhar Zhyrau 47", 49.80, 73.10)
	require.NoError(t, err)
	dropoff, err := kernel.NewLocation("Pavlodar, Toraigyrov 64", 52.28, 76.97)
	require.NoError(t, err)
	return pickup, dropoff
}

func openLoad(t *testing.T, clientID kernel.UUID, trucksWanted int) *loadrequest.LoadRequest {
	t.Helper()
	pickup, dropoff := testLocations(t)
	route, err := loadrequest.NewRoute(pickup, dropoff, 410)
	require.NoError(t, err)
	cargo, err := loadrequest.NewCargo("coal", 30, trucksWanted)
	require.NoError(t, err)
	lr, err := loadrequest.NewLoadRequest(kernel.NewUUID(), clientID, route, cargo, 150000, "", "", time.Now())
	require.NoError(t, err)
	return lr
}

func standbyTrucks(t *testing.T, truckerID kernel.UUID, n int) []*truck.Truck {
	t.Helper()
	trucks := make([]*truck.Truck, 0, n)
	for range n {
		tr, err := truck.NewTruck(kernel.NewUUID(), truckerID, "tipper", 30, "555AAA09", "Nurlan", "+77051112233")
		require.NoError(t, err)
		trucks = append(trucks, tr)
	}
	return trucks
}

func idsOf(trucks []*truck.Truck) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(trucks))
	for _, tr := range trucks {
		ids = append(ids, tr.ID())
	}
	return ids
}

func submittedBid(t *testing.T, load *loadrequest.LoadRequest, truckerID kernel.UUID, trucks []*truck.Truck) *bid.Bid {
	t.Helper()
	b, err := bid.NewBid(kernel.NewUUID(), load.ID(), truckerID, idsOf(trucks), 140000, time.Now())
	require.NoError(t, err)
	return b
}

// lifecycleMocks wires a MockUoW that hands out the three lifecycle repositories.
type lifecycleMocks struct {
	factory *MockLifecycleUoWFactory
	uow     *MockUoW
	loads   *MockLoadRequestRepository
	bids    *MockBidRepository
	trucks  *MockTruckRepository
}

func newLifecycleMocks() lifecycleMocks {
	m := lifecycleMocks{
		factory: new(MockLifecycleUoWFactory),
		uow:     new(MockUoW),
		loads:   new(MockLoadRequestRepository),
		bids:    new(MockBidRepository),
		trucks:  new(MockTruckRepository),
	}
	m.factory.On("Create").Return(m.uow).Once()
	return m
}

func (m lifecycleMocks) assertExpectations(t *testing.T) {
	m.factory.AssertExpectations(t)
	m.uow.AssertExpectations(t)
	m.loads.AssertExpectations(t)
	m.bids.AssertExpectations(t)
	m.trucks.AssertExpectations(t)
}
