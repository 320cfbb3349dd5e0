package queries

import (
	"context"

	"freight/internal/core/domain/model/loadrequest"

	"gorm.io/gorm"
)

type ListVisibleLoadsQueryHandler struct {
	db *gorm.DB
}

func NewListVisibleLoadsQueryHandler(db *gorm.DB) ListVisibleLoadsQueryHandler {
	return ListVisibleLoadsQueryHandler{db: db}
}

// Handle returns open loads minus the trucker's rejections, oldest first.
func (h ListVisibleLoadsQueryHandler) Handle(
	ctx context.Context,
	query ListVisibleLoadsQuery,
) ([]LoadView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+loadColumns+`
		FROM load_requests lr
		WHERE lr.status = ?
		  AND NOT EXISTS (
			SELECT 1 FROM load_rejections r
			WHERE r.load_request_id = lr.id AND r.trucker_id = ?
		  )
		ORDER BY lr.created_at, lr.id
	`, int(loadrequest.Open), query.TruckerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	loads := make([]LoadView, 0)
	for rows.Next() {
		view, scanErr := scanLoad(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		loads = append(loads, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return loads, nil
}
