package ports

import (
	"context"

	"freight/internal/core/domain/model/bid"
	"freight/internal/core/domain/model/kernel"
)

// BidRepository stores bids and the per-trucker rejections of loads.
type BidRepository interface {
	Add(ctx context.Context, aggregate *bid.Bid) error

	// Update writes the bid if its stored version still matches, else errs.ErrConflict.
	Update(ctx context.Context, aggregate *bid.Bid) error

	Get(ctx context.Context, id kernel.UUID) (*bid.Bid, error)

	// GetByLoadRequest returns every bid on the load, oldest first, whatever its status.
	GetByLoadRequest(ctx context.Context, loadRequestID kernel.UUID) ([]*bid.Bid, error)

	// GetActiveByTrucker returns the trucker's bids that still wait for a client decision
	// (status Submitted) across all loads.
	GetActiveByTrucker(ctx context.Context, truckerID kernel.UUID) ([]*bid.Bid, error)

	// AddRejection stores a rejection. Storing the same (load, trucker) pair twice is a no-op.
	AddRejection(ctx context.Context, rejection bid.Rejection) error

	// GetRejection returns the trucker's rejection of the load or errs.ErrObjectNotFound.
	GetRejection(ctx context.Context, loadRequestID, truckerID kernel.UUID) (bid.Rejection, error)
}
