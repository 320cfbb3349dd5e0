package loadrequestrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/loadrequest"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLoadRequestRepository implements ports.LoadRequestRepository using GORM.
type GormLoadRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormLoadRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormLoadRequestRepository {
	return &GormLoadRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormLoadRequestRepository) Add(ctx context.Context, aggregate *loadrequest.LoadRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update is a compare-and-set on the version column. Zero affected rows means
// another transaction committed a newer version first.
func (r *GormLoadRequestRepository) Update(ctx context.Context, aggregate *loadrequest.LoadRequest) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&LoadRequestDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("loadRequestId", aggregate.ID().String())
	}

	aggregate.BumpVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormLoadRequestRepository) Get(ctx context.Context, id kernel.UUID) (*loadrequest.LoadRequest, error) {
	return r.get(r.db.WithContext(ctx), id)
}

func (r *GormLoadRequestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*loadrequest.LoadRequest, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormLoadRequestRepository) get(db *gorm.DB, id kernel.UUID) (*loadrequest.LoadRequest, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadRequestDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("loadRequestId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
