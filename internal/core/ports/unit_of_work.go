package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories handed out by it
// share the transaction started by Begin. Domain events recorded on aggregates
// written through them are stored in the outbox on Commit.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit writes pending domain events to the outbox and commits.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction. Calling it after Commit is a no-op.
	Rollback(ctx context.Context) error

	LoadRequestRepository() LoadRequestRepository
	BidRepository() BidRepository
	TruckRepository() TruckRepository
	RatingRepository() RatingRepository
	OutboxRepository() OutboxRepository
}
