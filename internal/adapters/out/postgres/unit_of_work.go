// Package postgres provides the GORM implementation of the Unit of Work.
//
// A unit of work owns one database transaction. Repositories handed out by it run on
// that transaction and report every aggregate they write back to it, so that Commit can
// move the domain events recorded on those aggregates into the outbox before the
// transaction is committed. A transition and its notification are therefore stored
// atomically; publishing happens later, from the notification dispatch job.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.LoadRequestRepository().Update(ctx, load); err != nil {
//	    return err
//	}
//	if err := uow.BidRepository().Update(ctx, winner); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Concurrency Considerations:
//   - Each UnitOfWork instance is used by one goroutine only
//   - Row locks taken through GetForUpdate are held until Commit or Rollback
//   - Versioned updates turn lost races into errs.ErrConflict
package postgres

import (
	"context"
	"errors"

	"freight/internal/adapters/out/postgres/bidrepo"
	"freight/internal/adapters/out/postgres/loadrequestrepo"
	"freight/internal/adapters/out/postgres/outboxrepo"
	"freight/internal/adapters/out/postgres/ratingrepo"
	"freight/internal/adapters/out/postgres/truckrepo"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"

	"gorm.io/gorm"
)

// eventSource is implemented by aggregates that embed kernel.EventRecorder.
type eventSource interface {
	DomainEvents() []kernel.Event
	ClearDomainEvents()
}

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and tracked aggregates.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and collects the aggregates
// written within it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts the transaction. A second call on an active unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit stores the pending domain events of every tracked aggregate in the outbox,
// then commits. If the outbox write fails the whole transaction is rolled back.
// Events are cleared from the aggregates only after a successful commit.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	sources, events := uow.pendingEvents()
	if err := outboxrepo.NewGormOutboxRepository(uow.tx).AddEvents(ctx, events); err != nil {
		rollbackErr := uow.tx.Rollback().Error
		uow.tx = nil
		return errors.Join(err, rollbackErr)
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	if err != nil {
		return err
	}

	for _, source := range sources {
		source.ClearDomainEvents()
	}
	return nil
}

// Rollback discards the transaction. After Commit or a previous Rollback it does nothing,
// which lets handlers defer it unconditionally.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return nil
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.trackedAggregates = uow.trackedAggregates[:0]
	return err
}

func (uow *GormUnitOfWork) LoadRequestRepository() ports.LoadRequestRepository {
	return loadrequestrepo.NewGormLoadRequestRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) BidRepository() ports.BidRepository {
	return bidrepo.NewGormBidRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) TruckRepository() ports.TruckRepository {
	return truckrepo.NewGormTruckRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) RatingRepository() ports.RatingRepository {
	return ratingrepo.NewGormRatingRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate is called by repositories after every successful write.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// conn returns the transaction when one is active, otherwise the pool.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// pendingEvents collects events once per aggregate, even if it was written twice.
func (uow *GormUnitOfWork) pendingEvents() ([]eventSource, []kernel.Event) {
	seen := make(map[any]struct{}, len(uow.trackedAggregates))
	var sources []eventSource
	var events []kernel.Event

	for _, tracked := range uow.trackedAggregates {
		source, ok := tracked.Aggregate.(eventSource)
		if !ok {
			continue
		}
		if _, dup := seen[tracked.Aggregate]; dup {
			continue
		}
		seen[tracked.Aggregate] = struct{}{}

		sources = append(sources, source)
		events = append(events, source.DomainEvents()...)
	}
	return sources, events
}
