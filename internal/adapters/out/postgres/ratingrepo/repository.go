package ratingrepo

import (
	"context"
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rating"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormRatingRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormRatingRepository(db *gorm.DB, tracker aggregateTracker) *GormRatingRepository {
	return &GormRatingRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add relies on gorm.Config.TranslateError to surface the unique index violation
// as gorm.ErrDuplicatedKey.
func (r *GormRatingRepository) Add(ctx context.Context, aggregate *rating.Rating) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: load request %s already rated by the %s",
				rating.ErrDuplicateRating, aggregate.LoadRequestID(), aggregate.Participants().RaterRole)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormRatingRepository) GetByLoadRequestAndRole(
	ctx context.Context,
	loadRequestID kernel.UUID,
	raterRole rating.Role,
) (*rating.Rating, error) {
	if err := raterRole.Validate(); err != nil {
		return nil, err
	}

	var dto RatingDTO
	err := r.db.WithContext(ctx).
		First(&dto, "load_request_id = ? AND rater_role = ?", loadRequestID.Bytes(), int(raterRole)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("ratingId", loadRequestID.String()+"/"+raterRole.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
