package queries

import (
	"errors"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rating"
	"freight/internal/pkg/guard"
)

var ErrGetRatingQueryIsNotConstructed = errors.New(
	"GetRatingQuery must be created via NewGetRatingQuery constructor",
)

// GetRatingQuery reads the rating one side left on a delivered load.
type GetRatingQuery struct {
	loadRequestID kernel.UUID
	raterRole     rating.Role

	guard guard.ConstructorGuard
}

func NewGetRatingQuery(loadRequestID kernel.UUID, raterRole rating.Role) (GetRatingQuery, error) {
	q := GetRatingQuery{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		requireID("loadRequestId", loadRequestID, &q.loadRequestID),
		raterRole.Validate(),
	); err != nil {
		return GetRatingQuery{}, err
	}
	q.raterRole = raterRole
	return q, nil
}

func (q GetRatingQuery) Validate() error {
	return q.guard.Validate(ErrGetRatingQueryIsNotConstructed)
}

func (q GetRatingQuery) LoadRequestID() kernel.UUID {
	return q.loadRequestID
}

func (q GetRatingQuery) RaterRole() rating.Role {
	return q.raterRole
}

type RatingView struct {
	ID            kernel.UUID `json:"id"`
	LoadRequestID kernel.UUID `json:"loadRequestId"`
	BidID         kernel.UUID `json:"bidId"`
	RaterID       kernel.UUID `json:"raterId"`
	RaterRole     string      `json:"raterRole"`
	RatedID       kernel.UUID `json:"ratedId"`
	RatedRole     string      `json:"ratedRole"`
	Score         int         `json:"score"`
	Comment       string      `json:"comment"`
	CreatedAt     time.Time   `json:"createdAt"`
}
