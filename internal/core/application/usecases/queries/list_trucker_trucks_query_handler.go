package queries

import (
	"context"
	"database/sql"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListTruckerTrucksQueryHandler struct {
	db *gorm.DB
}

func NewListTruckerTrucksQueryHandler(db *gorm.DB) ListTruckerTrucksQueryHandler {
	return ListTruckerTrucksQueryHandler{db: db}
}

// Handle returns the trucker's trucks ordered by plate number.
func (h ListTruckerTrucksQueryHandler) Handle(
	ctx context.Context,
	query ListTruckerTrucksQuery,
) ([]TruckView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			trucker_id,
			truck_type,
			max_weight_tons,
			plate_number,
			driver_name,
			driver_phone,
			status,
			occupying_bid_id
		FROM trucks
		WHERE trucker_id = ?
		ORDER BY plate_number, id
	`, query.TruckerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trucks := make([]TruckView, 0)
	for rows.Next() {
		var view TruckView
		var id, truckerID uuid.UUID
		var occupyingBidID *uuid.UUID
		var driverPhone sql.NullString
		var status int

		err = rows.Scan(
			&id,
			&truckerID,
			&view.TruckType,
			&view.MaxWeightTons,
			&view.PlateNumber,
			&view.DriverName,
			&driverPhone,
			&status,
			&occupyingBidID,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.TruckerID, err = kernel.UUIDFromBytes(truckerID[:]); err != nil {
			return nil, err
		}
		if occupyingBidID != nil {
			bidID, idErr := kernel.UUIDFromBytes(occupyingBidID[:])
			if idErr != nil {
				return nil, idErr
			}
			view.OccupyingBidID = &bidID
		}
		view.DriverPhone = driverPhone.String
		view.Status = truck.Status(status).String()

		trucks = append(trucks, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return trucks, nil
}
