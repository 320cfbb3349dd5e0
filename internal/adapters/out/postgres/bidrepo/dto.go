// Package bidrepo persists the Bid Ledger: bids and the per-trucker rejections of loads.
package bidrepo

import (
	"time"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type BidDTO struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey"`
	LoadRequestID uuid.UUID      `gorm:"type:uuid;not null;index"`
	TruckerID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	TruckIDs      pq.StringArray `gorm:"type:text[];not null"`
	Price         float64        `gorm:"not null"`
	Status        int            `gorm:"not null;index"`
	CreatedAt     time.Time      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt     time.Time      `gorm:"not null;autoUpdateTime:false"`
	Version       int            `gorm:"not null;default:0"`
}

func (BidDTO) TableName() string {
	return "bids"
}

// RejectionDTO is one row of the per-trucker exclusion relation.
type RejectionDTO struct {
	LoadRequestID uuid.UUID `gorm:"type:uuid;primaryKey"`
	TruckerID     uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	Reason        string
	CreatedAt     time.Time `gorm:"not null;autoCreateTime:false"`
}

func (RejectionDTO) TableName() string {
	return "load_rejections"
}

func fromDomain(aggregate *bid.Bid) BidDTO {
	truckIDs := make(pq.StringArray, 0, len(aggregate.TruckIDs()))
	for _, id := range aggregate.TruckIDs() {
		truckIDs = append(truckIDs, id.String())
	}

	return BidDTO{
		ID:            aggregate.ID().Bytes(),
		LoadRequestID: aggregate.LoadRequestID().Bytes(),
		TruckerID:     aggregate.TruckerID().Bytes(),
		TruckIDs:      truckIDs,
		Price:         aggregate.Price(),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
		Version:       aggregate.Version(),
	}
}

func toDomain(dto BidDTO) (*bid.Bid, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	loadRequestID, err := kernel.UUIDFromBytes(dto.LoadRequestID[:])
	if err != nil {
		return nil, err
	}
	truckerID, err := kernel.UUIDFromBytes(dto.TruckerID[:])
	if err != nil {
		return nil, err
	}
	truckIDs, err := TruckIDsFromArray(dto.TruckIDs)
	if err != nil {
		return nil, err
	}

	return bid.RestoreBid(
		id,
		loadRequestID,
		truckerID,
		truckIDs,
		dto.Price,
		bid.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}

// TruckIDsFromArray parses the text[] column that lists a bid's trucks.
func TruckIDsFromArray(raw pq.StringArray) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func rejectionFromDomain(r bid.Rejection) RejectionDTO {
	return RejectionDTO{
		LoadRequestID: r.LoadRequestID().Bytes(),
		TruckerID:     r.TruckerID().Bytes(),
		Reason:        r.Reason(),
		CreatedAt:     r.CreatedAt(),
	}
}

func rejectionToDomain(dto RejectionDTO) (bid.Rejection, error) {
	loadRequestID, err := kernel.UUIDFromBytes(dto.LoadRequestID[:])
	if err != nil {
		return bid.Rejection{}, err
	}
	truckerID, err := kernel.UUIDFromBytes(dto.TruckerID[:])
	if err != nil {
		return bid.Rejection{}, err
	}
	return bid.NewRejection(loadRequestID, truckerID, dto.Reason, dto.CreatedAt)
}
