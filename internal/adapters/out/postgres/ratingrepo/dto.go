// Package ratingrepo persists the Rating Service records.
package ratingrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rating"

	"github.com/google/uuid"
)

// RatingDTO keeps one row per (load request, rater role); the unique index
// makes a second submission from the same side fail.
type RatingDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	LoadRequestID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_load_role,priority:1"`
	BidID         uuid.UUID `gorm:"type:uuid;not null"`
	RaterID       uuid.UUID `gorm:"type:uuid;not null;index"`
	RaterRole     int       `gorm:"not null;uniqueIndex:idx_ratings_load_role,priority:2"`
	RatedID       uuid.UUID `gorm:"type:uuid;not null;index"`
	RatedRole     int       `gorm:"not null"`
	Score         int       `gorm:"not null"`
	Comment       string
	CreatedAt     time.Time `gorm:"not null;autoCreateTime:false"`
}

func (RatingDTO) TableName() string {
	return "ratings"
}

func fromDomain(aggregate *rating.Rating) RatingDTO {
	p := aggregate.Participants()
	return RatingDTO{
		ID:            aggregate.ID().Bytes(),
		LoadRequestID: aggregate.LoadRequestID().Bytes(),
		BidID:         aggregate.BidID().Bytes(),
		RaterID:       p.RaterID.Bytes(),
		RaterRole:     int(p.RaterRole),
		RatedID:       p.RatedID.Bytes(),
		RatedRole:     int(p.RatedRole),
		Score:         aggregate.Score().Value(),
		Comment:       aggregate.Comment(),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto RatingDTO) (*rating.Rating, error) {
	ids := make([]kernel.UUID, 0, 5)
	for _, raw := range []uuid.UUID{dto.ID, dto.LoadRequestID, dto.BidID, dto.RaterID, dto.RatedID} {
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	score, err := rating.NewScore(dto.Score)
	if err != nil {
		return nil, err
	}

	return rating.RestoreRating(
		ids[0],
		ids[1],
		ids[2],
		rating.Participants{
			RaterID:   ids[3],
			RaterRole: rating.Role(dto.RaterRole),
			RatedID:   ids[4],
			RatedRole: rating.Role(dto.RatedRole),
		},
		score,
		dto.Comment,
		dto.CreatedAt,
	)
}
