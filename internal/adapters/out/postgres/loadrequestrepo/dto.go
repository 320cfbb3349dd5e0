// Package loadrequestrepo persists load requests. Route and cargo are flattened into
// the load_requests table; the timeline is one nullable column per status.
package loadrequestrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/loadrequest"

	"github.com/google/uuid"
)

type LoadRequestDTO struct {
	ID                  uuid.UUID   `gorm:"type:uuid;primaryKey"`
	ClientID            uuid.UUID   `gorm:"type:uuid;not null;index"`
	Pickup              LocationDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff             LocationDTO `gorm:"embedded;embeddedPrefix:dropoff_"`
	DistanceKm          float64     `gorm:"not null"`
	GoodsType           string      `gorm:"not null"`
	WeightTons          float64     `gorm:"not null"`
	RequestedTruckCount int         `gorm:"not null"`
	Rate                float64     `gorm:"not null"`
	PaymentTerms        string
	Comments            string
	Status              int        `gorm:"not null;index;autoCreateTime:false"`
	AcceptedBidID       *uuid.UUID `gorm:"type:uuid"`
	CreatedAt           time.Time  `gorm:"not null;index;autoCreateTime:false"`
	AcceptedAt          *time.Time
	LoadedAt            *time.Time
	InTransitAt         *time.Time
	DeliveredAt         *time.Time
	Version             int `gorm:"not null;default:0"`
}

func (LoadRequestDTO) TableName() string {
	return "load_requests"
}

type LocationDTO struct {
	Address   string  `gorm:"not null"`
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
}

func fromDomain(aggregate *loadrequest.LoadRequest) LoadRequestDTO {
	var acceptedBidID *uuid.UUID
	if id := aggregate.AcceptedBidID(); id != nil {
		raw := id.Bytes()
		acceptedBidID = &raw
	}

	route := aggregate.Route()
	cargo := aggregate.Cargo()
	timeline := aggregate.Timeline()

	return LoadRequestDTO{
		ID:                  aggregate.ID().Bytes(),
		ClientID:            aggregate.ClientID().Bytes(),
		Pickup:              locationFromDomain(route.Pickup()),
		Dropoff:             locationFromDomain(route.Dropoff()),
		DistanceKm:          route.DistanceKm(),
		GoodsType:           cargo.GoodsType(),
		WeightTons:          cargo.WeightTons(),
		RequestedTruckCount: cargo.RequestedTruckCount(),
		Rate:                aggregate.Rate(),
		PaymentTerms:        aggregate.PaymentTerms(),
		Comments:            aggregate.Comments(),
		Status:              int(aggregate.Status()),
		AcceptedBidID:       acceptedBidID,
		CreatedAt:           timeline.CreatedAt,
		AcceptedAt:          timeline.AcceptedAt,
		LoadedAt:            timeline.LoadedAt,
		InTransitAt:         timeline.InTransitAt,
		DeliveredAt:         timeline.DeliveredAt,
		Version:             aggregate.Version(),
	}
}

func locationFromDomain(l kernel.Location) LocationDTO {
	return LocationDTO{
		Address:   l.Address(),
		Latitude:  l.Latitude(),
		Longitude: l.Longitude(),
	}
}

func toDomain(dto LoadRequestDTO) (*loadrequest.LoadRequest, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	var acceptedBidID *kernel.UUID
	if dto.AcceptedBidID != nil {
		bidID, bidErr := kernel.UUIDFromBytes((*dto.AcceptedBidID)[:])
		if bidErr != nil {
			return nil, bidErr
		}
		acceptedBidID = &bidID
	}

	pickup, err := kernel.NewLocation(dto.Pickup.Address, dto.Pickup.Latitude, dto.Pickup.Longitude)
	if err != nil {
		return nil, err
	}
	dropoff, err := kernel.NewLocation(dto.Dropoff.Address, dto.Dropoff.Latitude, dto.Dropoff.Longitude)
	if err != nil {
		return nil, err
	}
	route, err := loadrequest.NewRoute(pickup, dropoff, dto.DistanceKm)
	if err != nil {
		return nil, err
	}
	cargo, err := loadrequest.NewCargo(dto.GoodsType, dto.WeightTons, dto.RequestedTruckCount)
	if err != nil {
		return nil, err
	}

	return loadrequest.RestoreLoadRequest(
		id,
		clientID,
		route,
		cargo,
		dto.Rate,
		dto.PaymentTerms,
		dto.Comments,
		loadrequest.Status(dto.Status),
		acceptedBidID,
		loadrequest.Timeline{
			CreatedAt:   dto.CreatedAt,
			AcceptedAt:  dto.AcceptedAt,
			LoadedAt:    dto.LoadedAt,
			InTransitAt: dto.InTransitAt,
			DeliveredAt: dto.DeliveredAt,
		},
		dto.Version,
	)
}
