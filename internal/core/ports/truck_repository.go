package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/truck"
)

// TruckRepository is the Truck Registry store.
type TruckRepository interface {
	Add(ctx context.Context, aggregate *truck.Truck) error

	// Update writes the truck if its stored version still matches, else errs.ErrConflict.
	Update(ctx context.Context, aggregate *truck.Truck) error

	Get(ctx context.Context, id kernel.UUID) (*truck.Truck, error)

	// GetMany returns the trucks with the given ids. Unknown ids are reported
	// with errs.ErrObjectNotFound.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*truck.Truck, error)

	// GetManyForUpdate is GetMany with row locks taken in id order.
	GetManyForUpdate(ctx context.Context, ids []kernel.UUID) ([]*truck.Truck, error)
}
