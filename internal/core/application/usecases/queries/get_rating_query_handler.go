package queries

import (
	"context"
	"database/sql"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/rating"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetRatingQueryHandler struct {
	db *gorm.DB
}

func NewGetRatingQueryHandler(db *gorm.DB) GetRatingQueryHandler {
	return GetRatingQueryHandler{db: db}
}

func (h GetRatingQueryHandler) Handle(ctx context.Context, query GetRatingQuery) (RatingView, error) {
	if err := query.Validate(); err != nil {
		return RatingView{}, err
	}

	var view RatingView
	var raw [5]uuid.UUID
	var raterRole, ratedRole int
	var comment sql.NullString

	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			load_request_id,
			bid_id,
			rater_id,
			rater_role,
			rated_id,
			rated_role,
			score,
			comment,
			created_at
		FROM ratings
		WHERE load_request_id = ? AND rater_role = ?
	`, query.LoadRequestID().Bytes(), int(query.RaterRole())).Row().Scan(
		&raw[0], &raw[1], &raw[2], &raw[3], &raterRole, &raw[4], &ratedRole,
		&view.Score, &comment, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RatingView{}, errs.NewObjectNotFoundError(
				"ratingId", query.LoadRequestID().String()+"/"+query.RaterRole().String())
		}
		return RatingView{}, err
	}

	ids := make([]kernel.UUID, len(raw))
	for i := range raw {
		if ids[i], err = kernel.UUIDFromBytes(raw[i][:]); err != nil {
			return RatingView{}, err
		}
	}

	view.ID, view.LoadRequestID, view.BidID, view.RaterID, view.RatedID = ids[0], ids[1], ids[2], ids[3], ids[4]
	view.RaterRole = rating.Role(raterRole).String()
	view.RatedRole = rating.Role(ratedRole).String()
	view.Comment = comment.String
	return view, nil
}
