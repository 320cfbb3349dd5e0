package http

import (
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/core/domain/model/rating"
	"freight/internal/core/domain/model/truck"
)

// Write operations answer with the state of the aggregate after the change, shaped
// like the read models so that clients handle one representation.

func locationView(l kernel.Location) queries.LocationView {
	return queries.LocationView{
		Address:   l.Address(),
		Latitude:  l.Latitude(),
		Longitude: l.Longitude(),
	}
}

func loadResponse(load *loadrequest.LoadRequest) queries.LoadRequestDetails {
	timeline := load.Timeline()
	return queries.LoadRequestDetails{
		LoadView: queries.LoadView{
			ID:                  load.ID(),
			ClientID:            load.ClientID(),
			Pickup:              locationView(load.Route().Pickup()),
			Dropoff:             locationView(load.Route().Dropoff()),
			DistanceKm:          load.Route().DistanceKm(),
			GoodsType:           load.Cargo().GoodsType(),
			WeightTons:          load.Cargo().WeightTons(),
			RequestedTruckCount: load.Cargo().RequestedTruckCount(),
			Rate:                load.Rate(),
			PaymentTerms:        load.PaymentTerms(),
			Comments:            load.Comments(),
			Status:              load.Status().String(),
			CreatedAt:           timeline.CreatedAt,
		},
		AcceptedBidID: load.AcceptedBidID(),
		Timeline: queries.TimelineView{
			AcceptedAt:  timeline.AcceptedAt,
			LoadedAt:    timeline.LoadedAt,
			InTransitAt: timeline.InTransitAt,
			DeliveredAt: timeline.DeliveredAt,
		},
	}
}

func bidResponse(b *bid.Bid) queries.BidView {
	return queries.BidView{
		ID:        b.ID(),
		TruckerID: b.TruckerID(),
		TruckIDs:  b.TruckIDs(),
		Price:     b.Price(),
		Status:    b.Status().String(),
		CreatedAt: b.CreatedAt(),
		UpdatedAt: b.UpdatedAt(),
	}
}

type RejectionResponse struct {
	LoadRequestID kernel.UUID `json:"loadRequestId"`
	TruckerID     kernel.UUID `json:"truckerId"`
	Reason        string      `json:"reason"`
	CreatedAt     time.Time   `json:"createdAt"`
}

func rejectionResponse(r bid.Rejection) RejectionResponse {
	return RejectionResponse{
		LoadRequestID: r.LoadRequestID(),
		TruckerID:     r.TruckerID(),
		Reason:        r.Reason(),
		CreatedAt:     r.CreatedAt(),
	}
}

func ratingResponse(r *rating.Rating) queries.RatingView {
	p := r.Participants()
	return queries.RatingView{
		ID:            r.ID(),
		LoadRequestID: r.LoadRequestID(),
		BidID:         r.BidID(),
		RaterID:       p.RaterID,
		RaterRole:     p.RaterRole.String(),
		RatedID:       p.RatedID,
		RatedRole:     p.RatedRole.String(),
		Score:         r.Score().Value(),
		Comment:       r.Comment(),
		CreatedAt:     r.CreatedAt(),
	}
}

func truckResponse(t *truck.Truck) queries.TruckView {
	return queries.TruckView{
		ID:             t.ID(),
		TruckerID:      t.TruckerID(),
		TruckType:      t.TruckType(),
		MaxWeightTons:  t.MaxWeightTons(),
		PlateNumber:    t.PlateNumber(),
		DriverName:     t.DriverName(),
		DriverPhone:    t.DriverPhone(),
		Status:         t.Status().String(),
		OccupyingBidID: t.OccupyingBidID(),
	}
}
