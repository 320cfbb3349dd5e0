package bid_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubmittedBid(t *testing.T, truckIDs ...kernel.UUID) *bid.Bid {
	t.Helper()
	if len(truckIDs) == 0 {
		truckIDs = []kernel.UUID{kernel.NewUUID()}
	}
	b, err := bid.NewBid(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), truckIDs, 1200, time.Now())
	require.NoError(t, err)
	return b
}

func TestNewBid(t *testing.T) {
	truckA, truckB := kernel.NewUUID(), kernel.NewUUID()

	b := newSubmittedBid(t, truckA, truckB)

	require.NoError(t, b.Validate())
	assert.Equal(t, bid.Submitted, b.Status())
	assert.True(t, b.IsActive())
	assert.True(t, b.NamesTruck(truckA))
	assert.False(t, b.NamesTruck(kernel.NewUUID()))
	assert.Len(t, b.TruckIDs(), 2)

	events := b.DomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, "bid.submitted", events[0].Name())
	assert.Equal(t, "2", events[0].Attributes()["truckCount"])
}

func TestNewBid_Validation(t *testing.T) {
	truckID := kernel.NewUUID()

	tests := []struct {
		name     string
		truckIDs []kernel.UUID
		price    float64
		wantErr  error
	}{
		{"no trucks", nil, 100, errs.ErrValueIsRequired},
		{"duplicate truck", []kernel.UUID{truckID, truckID}, 100, errs.ErrValueIsInvalid},
		{"nil truck id", []kernel.UUID{{}}, 100, errs.ErrValueIsInvalid},
		{"zero price", []kernel.UUID{truckID}, 0, errs.ErrValueIsInvalid},
		{"negative price", []kernel.UUID{truckID}, -5, errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := bid.NewBid(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), tt.truckIDs, tt.price, time.Now())

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBid_TruckIDsAreCopied(t *testing.T) {
	ids := []kernel.UUID{kernel.NewUUID()}
	b := newSubmittedBid(t, ids...)
	original := ids[0]

	ids[0] = kernel.NewUUID()
	b.TruckIDs()[0] = kernel.NewUUID()

	assert.True(t, b.NamesTruck(original))
}

func TestBid_CheckTruckCount(t *testing.T) {
	b := newSubmittedBid(t, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())

	require.NoError(t, b.CheckTruckCount(3))
	require.ErrorIs(t, b.CheckTruckCount(2), bid.ErrInvalidTruckCount)
}

func TestBid_LeavingSubmitted(t *testing.T) {
	tests := []struct {
		name   string
		act    func(*bid.Bid) error
		status bid.Status
		event  string
	}{
		{"accept", func(b *bid.Bid) error { return b.Accept(time.Now()) }, bid.Accepted, "bid.accepted"},
		{"supersede", func(b *bid.Bid) error { return b.Supersede(time.Now()) }, bid.Superseded, "bid.superseded"},
		{"withdraw", func(b *bid.Bid) error { return b.Withdraw(time.Now()) }, bid.Rejected, "bid.withdrawn"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newSubmittedBid(t)
			b.ClearDomainEvents()

			require.NoError(t, tt.act(b))
			assert.Equal(t, tt.status, b.Status())
			require.Len(t, b.DomainEvents(), 1)
			assert.Equal(t, tt.event, b.DomainEvents()[0].Name())

			require.ErrorIs(t, tt.act(b), errs.ErrInvalidTransition)
		})
	}
}

func TestBid_FollowsLoadLifecycle(t *testing.T) {
	b := newSubmittedBid(t)

	require.ErrorIs(t, b.MarkLoaded(time.Now()), errs.ErrInvalidTransition)

	require.NoError(t, b.Accept(time.Now()))
	require.ErrorIs(t, b.MarkInTransit(time.Now()), errs.ErrInvalidTransition)
	require.NoError(t, b.MarkLoaded(time.Now()))
	require.NoError(t, b.MarkInTransit(time.Now()))
	require.NoError(t, b.MarkDelivered(time.Now()))

	assert.Equal(t, bid.Delivered, b.Status())
	assert.True(t, b.IsActive())
	require.ErrorIs(t, b.Supersede(time.Now()), errs.ErrInvalidTransition)
}

func TestRestoreBid(t *testing.T) {
	created := time.Now().Add(-time.Hour)

	b, err := bid.RestoreBid(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]kernel.UUID{kernel.NewUUID()}, 900, bid.Superseded, created, created, 2)

	require.NoError(t, err)
	assert.False(t, b.IsActive())
	assert.Equal(t, 2, b.Version())
	assert.Empty(t, b.DomainEvents())

	_, err = bid.RestoreBid(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]kernel.UUID{kernel.NewUUID()}, 900, bid.Unknown, created, created, 2)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestNewRejection(t *testing.T) {
	loadID, truckerID := kernel.NewUUID(), kernel.NewUUID()

	r, err := bid.NewRejection(loadID, truckerID, "  route too long ", time.Now())
	require.NoError(t, err)
	require.NoError(t, r.Validate())
	assert.Equal(t, "route too long", r.Reason())
	assert.True(t, r.LoadRequestID().IsEqual(loadID))

	_, err = bid.NewRejection(kernel.UUID{}, truckerID, "", time.Now())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	var zero bid.Rejection
	require.ErrorIs(t, zero.Validate(), bid.ErrRejectionIsNotConstructed)
}
