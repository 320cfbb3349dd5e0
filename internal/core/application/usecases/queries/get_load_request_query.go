package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrGetLoadRequestQueryIsNotConstructed = errors.New(
	"GetLoadRequestQuery must be created via NewGetLoadRequestQuery constructor",
)

// GetLoadRequestQuery reads one load request with its full bid history.
type GetLoadRequestQuery struct {
	loadRequestID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLoadRequestQuery(loadRequestID kernel.UUID) (GetLoadRequestQuery, error) {
	q := GetLoadRequestQuery{guard: guard.NewConstructorGuard()}
	if err := requireID("loadRequestId", loadRequestID, &q.loadRequestID); err != nil {
		return GetLoadRequestQuery{}, err
	}
	return q, nil
}

func (q GetLoadRequestQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadRequestQueryIsNotConstructed)
}

func (q GetLoadRequestQuery) LoadRequestID() kernel.UUID {
	return q.loadRequestID
}

type TimelineView struct {
	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
	LoadedAt    *time.Time `json:"loadedAt,omitempty"`
	InTransitAt *time.Time `json:"inTransitAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

// BidView is one entry of the bid history; superseded and rejected bids are kept.
type BidView struct {
	ID        kernel.UUID   `json:"id"`
	TruckerID kernel.UUID   `json:"truckerId"`
	TruckIDs  []kernel.UUID `json:"truckIds"`
	Price     float64       `json:"price"`
	Status    string        `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

type LoadRequestDetails struct {
	LoadView

	AcceptedBidID *kernel.UUID `json:"acceptedBidId,omitempty"`
	Timeline      TimelineView `json:"timeline"`
	Bids          []BidView    `json:"bids"`
}
