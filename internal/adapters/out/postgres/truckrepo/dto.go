// Package truckrepo persists the Truck Registry.
package truckrepo

import (
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"

	"github.com/google/uuid"
)

type TruckDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TruckerID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	TruckType      string     `gorm:"not null"`
	MaxWeightTons  float64    `gorm:"not null"`
	PlateNumber    string     `gorm:"not null"`
	DriverName     string     `gorm:"not null"`
	DriverPhone    string
	Status         int        `gorm:"not null;index"`
	OccupyingBidID *uuid.UUID `gorm:"type:uuid;index"`
	Version        int        `gorm:"not null;default:0"`
}

func (TruckDTO) TableName() string {
	return "trucks"
}

func fromDomain(aggregate *truck.Truck) TruckDTO {
	var occupyingBidID *uuid.UUID
	if id := aggregate.OccupyingBidID(); id != nil {
		raw := id.Bytes()
		occupyingBidID = &raw
	}

	return TruckDTO{
		ID:             aggregate.ID().Bytes(),
		TruckerID:      aggregate.TruckerID().Bytes(),
		TruckType:      aggregate.TruckType(),
		MaxWeightTons:  aggregate.MaxWeightTons(),
		PlateNumber:    aggregate.PlateNumber(),
		DriverName:     aggregate.DriverName(),
		DriverPhone:    aggregate.DriverPhone(),
		Status:         int(aggregate.Status()),
		OccupyingBidID: occupyingBidID,
		Version:        aggregate.Version(),
	}
}

func toDomain(dto TruckDTO) (*truck.Truck, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	truckerID, err := kernel.UUIDFromBytes(dto.TruckerID[:])
	if err != nil {
		return nil, err
	}

	var occupyingBidID *kernel.UUID
	if dto.OccupyingBidID != nil {
		bidID, bidErr := kernel.UUIDFromBytes((*dto.OccupyingBidID)[:])
		if bidErr != nil {
			return nil, bidErr
		}
		occupyingBidID = &bidID
	}

	return truck.RestoreTruck(
		id,
		truckerID,
		dto.TruckType,
		dto.MaxWeightTons,
		dto.PlateNumber,
		dto.DriverName,
		dto.DriverPhone,
		truck.Status(dto.Status),
		occupyingBidID,
		dto.Version,
	)
}
