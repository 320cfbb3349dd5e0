package queries

import (
	"context"
	"database/sql"
	"errors"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GetLoadRequestQueryHandler struct {
	db *gorm.DB
}

func NewGetLoadRequestQueryHandler(db *gorm.DB) GetLoadRequestQueryHandler {
	return GetLoadRequestQueryHandler{db: db}
}

// Handle returns errs.ErrObjectNotFound for an unknown load request.
func (h GetLoadRequestQueryHandler) Handle(
	ctx context.Context,
	query GetLoadRequestQuery,
) (LoadRequestDetails, error) {
	if err := query.Validate(); err != nil {
		return LoadRequestDetails{}, err
	}

	db := h.db.WithContext(ctx)

	var acceptedBidID *uuid.UUID
	var details LoadRequestDetails
	row := db.Raw(`
		SELECT `+loadColumns+`,
			accepted_bid_id,
			accepted_at,
			loaded_at,
			in_transit_at,
			delivered_at
		FROM load_requests
		WHERE id = ?
	`, query.LoadRequestID().Bytes()).Row()

	view, err := scanLoad(row,
		&acceptedBidID,
		&details.Timeline.AcceptedAt,
		&details.Timeline.LoadedAt,
		&details.Timeline.InTransitAt,
		&details.Timeline.DeliveredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LoadRequestDetails{}, errs.NewObjectNotFoundError("loadRequestId", query.LoadRequestID().String())
		}
		return LoadRequestDetails{}, err
	}
	details.LoadView = view

	if acceptedBidID != nil {
		id, idErr := kernel.UUIDFromBytes(acceptedBidID[:])
		if idErr != nil {
			return LoadRequestDetails{}, idErr
		}
		details.AcceptedBidID = &id
	}

	if details.Bids, err = h.bids(db, query.LoadRequestID()); err != nil {
		return LoadRequestDetails{}, err
	}

	return details, nil
}

func (h GetLoadRequestQueryHandler) bids(db *gorm.DB, loadRequestID kernel.UUID) ([]BidView, error) {
	rows, err := db.Raw(`
		SELECT
			id,
			trucker_id,
			truck_ids,
			price,
			status,
			created_at,
			updated_at
		FROM bids
		WHERE load_request_id = ?
		ORDER BY created_at, id
	`, loadRequestID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bids := make([]BidView, 0)
	for rows.Next() {
		var view BidView
		var id, truckerID uuid.UUID
		var truckIDs pq.StringArray
		var status int

		if err = rows.Scan(&id, &truckerID, &truckIDs, &view.Price, &status, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.TruckerID, err = kernel.UUIDFromBytes(truckerID[:]); err != nil {
			return nil, err
		}
		view.TruckIDs = make([]kernel.UUID, 0, len(truckIDs))
		for _, raw := range truckIDs {
			truckID, parseErr := kernel.UUIDFromString(raw)
			if parseErr != nil {
				return nil, parseErr
			}
			view.TruckIDs = append(view.TruckIDs, truckID)
		}
		view.Status = bid.Status(status).String()

		bids = append(bids, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return bids, nil
}
