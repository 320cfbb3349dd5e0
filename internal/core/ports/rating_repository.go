package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rating"
)

type RatingRepository interface {
	// Add stores the rating. A second rating for the same load and rater role
	// fails with rating.ErrDuplicateRating.
	Add(ctx context.Context, aggregate *rating.Rating) error

	// GetByLoadRequestAndRole returns the rating or errs.ErrObjectNotFound.
	GetByLoadRequestAndRole(ctx context.Context, loadRequestID kernel.UUID, raterRole rating.Role) (*rating.Rating, error)
}
