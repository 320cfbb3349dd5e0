package services_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/core/domain/model/truck"

	"github.com/stretchr/testify/require"
)

func newLoad(t *testing.T, clientID kernel.UUID, trucksWanted int) *loadrequest.LoadRequest {
	t.Helper()
	pickup, err := kernel.NewLocation("Almaty, Suyunbay 2", 43.28, 76.95)
	require.NoError(t, err)
	dropoff, err := kernel.NewLocation("Shymkent, Tauke Khan 31", 42.32, 69.59)
	require.NoError(t, err)
	route, err := loadrequest.NewRoute(pickup, dropoff, 690)
	require.NoError(t, err)
	cargo, err := loadrequest.NewCargo("cement", 40, trucksWanted)
	require.NoError(t, err)

	lr, err := loadrequest.NewLoadRequest(kernel.NewUUID(), clientID, route, cargo,
		180000, "on delivery", "", time.Now())
	require.NoError(t, err)
	return lr
}

func newTrucks(t *testing.T, truckerID kernel.UUID, n int) []*truck.Truck {
	t.Helper()
	trucks := make([]*truck.Truck, 0, n)
	for range n {
		tr, err := truck.NewTruck(kernel.NewUUID(), truckerID, "dump", 25, "777KZ02", "Serik", "+77020000000")
		require.NoError(t, err)
		trucks = append(trucks, tr)
	}
	return trucks
}

func truckIDs(trucks []*truck.Truck) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(trucks))
	for _, tr := range trucks {
		ids = append(ids, tr.ID())
	}
	return ids
}

func newBid(t *testing.T, load *loadrequest.LoadRequest, truckerID kernel.UUID, trucks []*truck.Truck) *bid.Bid {
	t.Helper()
	b, err := bid.NewBid(kernel.NewUUID(), load.ID(), truckerID, truckIDs(trucks), 175000, time.Now())
	require.NoError(t, err)
	return b
}
