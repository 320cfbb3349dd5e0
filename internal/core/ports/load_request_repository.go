// Package ports defines the persistence and delivery contracts the application layer
// depends on. Adapters under internal/adapters implement them.
package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/loadrequest"
)

// LoadRequestRepository stores load request aggregates.
type LoadRequestRepository interface {
	// Add persists a new load request.
	Add(ctx context.Context, aggregate *loadrequest.LoadRequest) error

	// Update writes the aggregate if its stored version still matches.
	// Returns errs.ErrConflict when another transaction updated it first.
	Update(ctx context.Context, aggregate *loadrequest.LoadRequest) error

	// Get returns the load request or errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*loadrequest.LoadRequest, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	// Concurrent accepts and advances on the same load serialize here.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*loadrequest.LoadRequest, error)
}
