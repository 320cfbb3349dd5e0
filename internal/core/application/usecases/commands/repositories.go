// Package commands contains the write operations of the service. Every command is
// validated on construction, and its handler runs inside one unit of work: Begin,
// load and lock aggregates, let the domain decide, persist, Commit.
package commands

import (
	"context"

	"freight/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	LoadRequestRepoFactory interface {
		LoadRequestRepository() ports.LoadRequestRepository
	}

	BidRepoFactory interface {
		BidRepository() ports.BidRepository
	}

	TruckRepoFactory interface {
		TruckRepository() ports.TruckRepository
	}

	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// TruckUoW is used by Truck Registry commands.
	TruckUoW interface {
		TxManager
		TruckRepoFactory
	}

	TruckUoWFactory interface {
		Create() TruckUoW
	}

	// LoadRequestUoW is used by commands that touch a single load request.
	LoadRequestUoW interface {
		TxManager
		LoadRequestRepoFactory
	}

	LoadRequestUoWFactory interface {
		Create() LoadRequestUoW
	}

	// LifecycleUoW spans the three stores the Bid Ledger and the Lifecycle Coordinator
	// keep consistent with each other.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   load, err := uow.LoadRequestRepository().GetForUpdate(ctx, loadID)
	//   trucks, err := uow.TruckRepository().GetManyForUpdate(ctx, truckIDs)
	//   // ... coordinate, then Update every changed aggregate
	//
	//   err = uow.Commit(ctx)
	LifecycleUoW interface {
		TxManager
		LoadRequestRepoFactory
		BidRepoFactory
		TruckRepoFactory
	}

	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// RatingUoW reads the delivered load and its accepted bid, and stores the rating.
	RatingUoW interface {
		TxManager
		LoadRequestRepoFactory
		BidRepoFactory
		RatingRepoFactory
	}

	RatingUoWFactory interface {
		Create() RatingUoW
	}

	// OutboxUoW settles outbox messages after publishing.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
