package bidrepo

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormBidRepository implements ports.BidRepository using GORM.
type GormBidRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormBidRepository(db *gorm.DB, tracker aggregateTracker) *GormBidRepository {
	return &GormBidRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormBidRepository) Add(ctx context.Context, aggregate *bid.Bid) error {
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

func (r *GormBidRepository) Update(ctx context.Context, aggregate *bid.Bid) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&BidDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("bidId", aggregate.ID().String())
	}

	aggregate.BumpVersion()
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormBidRepository) Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto BidDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("bidId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormBidRepository) GetByLoadRequest(ctx context.Context, loadRequestID kernel.UUID) ([]*bid.Bid, error) {
	if err := loadRequestID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BidDTO
	err := r.db.WithContext(ctx).
		Where("load_request_id = ?", loadRequestID.Bytes()).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

func (r *GormBidRepository) GetActiveByTrucker(ctx context.Context, truckerID kernel.UUID) ([]*bid.Bid, error) {
	if err := truckerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []BidDTO
	err := r.db.WithContext(ctx).
		Where("trucker_id = ? AND status = ?", truckerID.Bytes(), int(bid.Submitted)).
		Order("created_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos)
}

// AddRejection ignores a second rejection of the same load by the same trucker.
func (r *GormBidRepository) AddRejection(ctx context.Context, rejection bid.Rejection) error {
	if err := rejection.Validate(); err != nil {
		return err
	}

	dto := rejectionFromDomain(rejection)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}

func (r *GormBidRepository) GetRejection(
	ctx context.Context,
	loadRequestID kernel.UUID,
	truckerID kernel.UUID,
) (bid.Rejection, error) {
	var dto RejectionDTO
	err := r.db.WithContext(ctx).
		First(&dto, "load_request_id = ? AND trucker_id = ?", loadRequestID.Bytes(), truckerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return bid.Rejection{}, errs.NewObjectNotFoundError("rejection", truckerID.String())
		}
		return bid.Rejection{}, err
	}

	return rejectionToDomain(dto)
}

func toDomainList(dtos []BidDTO) ([]*bid.Bid, error) {
	bids := make([]*bid.Bid, 0, len(dtos))
	for _, dto := range dtos {
		b, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		bids = append(bids, b)
	}
	return bids, nil
}
