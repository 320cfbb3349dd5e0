// Package queries contains the read side of the service. Query handlers read
// committed rows with plain SQL through GORM and never take locks.
package queries

import (
	"database/sql"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
)

type LocationView struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LoadView is what a trucker sees of an open load request.
type LoadView struct {
	ID                  kernel.UUID  `json:"id"`
	ClientID            kernel.UUID  `json:"clientId"`
	Pickup              LocationView `json:"pickup"`
	Dropoff             LocationView `json:"dropoff"`
	DistanceKm          float64      `json:"distanceKm"`
	GoodsType           string       `json:"goodsType"`
	WeightTons          float64      `json:"weightTons"`
	RequestedTruckCount int          `json:"requestedTruckCount"`
	Rate                float64      `json:"rate"`
	PaymentTerms        string       `json:"paymentTerms"`
	Comments            string       `json:"comments"`
	Status              string       `json:"status"`
	CreatedAt           time.Time    `json:"createdAt"`
}

// loadColumns matches the destinations of scanLoad.
const loadColumns = `
	id,
	client_id,
	pickup_address, pickup_latitude, pickup_longitude,
	dropoff_address, dropoff_latitude, dropoff_longitude,
	distance_km,
	goods_type,
	weight_tons,
	requested_truck_count,
	rate,
	payment_terms,
	comments,
	status,
	created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLoad(row rowScanner, extra ...any) (LoadView, error) {
	var view LoadView
	var id, clientID uuid.UUID
	var status int
	var paymentTerms, comments sql.NullString

	dest := []any{
		&id,
		&clientID,
		&view.Pickup.Address, &view.Pickup.Latitude, &view.Pickup.Longitude,
		&view.Dropoff.Address, &view.Dropoff.Latitude, &view.Dropoff.Longitude,
		&view.DistanceKm,
		&view.GoodsType,
		&view.WeightTons,
		&view.RequestedTruckCount,
		&view.Rate,
		&paymentTerms,
		&comments,
		&status,
		&view.CreatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return LoadView{}, err
	}

	var err error
	if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return LoadView{}, err
	}
	if view.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return LoadView{}, err
	}
	view.PaymentTerms = paymentTerms.String
	view.Comments = comments.String
	view.Status = loadrequest.Status(status).String()
	return view, nil
}

func requireID(paramName string, id kernel.UUID, dst *kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	*dst = id
	return nil
}
