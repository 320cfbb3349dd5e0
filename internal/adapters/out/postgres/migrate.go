package postgres

import (
	"freight/internal/adapters/out/postgres/bidrepo"
	"freight/internal/adapters/out/postgres/loadrequestrepo"
	"freight/internal/adapters/out/postgres/outboxrepo"
	"freight/internal/adapters/out/postgres/ratingrepo"
	"freight/internal/adapters/out/postgres/truckrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table owned by the coordinator.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&truckrepo.TruckDTO{},
		&loadrequestrepo.LoadRequestDTO{},
		&bidrepo.BidDTO{},
		&bidrepo.RejectionDTO{},
		&ratingrepo.RatingDTO{},
		&outboxrepo.OutboxMessageDTO{},
	)
}
