package cmd

import (
	"fmt"
	"io"
	"log/slog"

	httpapi "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/notifier"
	"freight/internal/adapters/out/postgres"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/ports"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	notifier ports.Notifier
	closers  []io.Closer
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	c := &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	n, err := c.createNotifier()
	if err != nil {
		return nil, err
	}
	c.notifier = n
	return c, nil
}

func (c *CompositionRoot) createNotifier() (ports.Notifier, error) {
	switch c.cfg.NotifierDriver {
	case NotifierKafka:
		n, err := notifier.NewKafkaNotifier(c.cfg.KafkaBrokers, c.cfg.KafkaTransitionsTopic)
		if err != nil {
			return nil, fmt.Errorf("create kafka notifier: %w", err)
		}
		c.closers = append(c.closers, n)
		return n, nil
	case NotifierRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     c.cfg.RedisAddr,
			Password: c.cfg.RedisPassword,
			DB:       c.cfg.RedisDB,
		})
		c.closers = append(c.closers, client)
		return notifier.NewRedisNotifier(client, c.cfg.RedisChannel), nil
	default:
		return notifier.NewLogNotifier(c.logger), nil
	}
}

// Close releases the connections held by the notifier.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *CompositionRoot) CreateRegisterTruckCommandHandler() commands.RegisterTruckCommandHandler {
	var f commands.TruckUoWFactory = FuncTruckUoWFactory(func() commands.TruckUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterTruckCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateLoadRequestCommandHandler() commands.CreateLoadRequestCommandHandler {
	var f commands.LoadRequestUoWFactory = FuncLoadRequestUoWFactory(func() commands.LoadRequestUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateLoadRequestCommandHandler(f)
}

func (c *CompositionRoot) CreateSubmitBidCommandHandler() commands.SubmitBidCommandHandler {
	return commands.NewSubmitBidCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateRejectLoadCommandHandler() commands.RejectLoadCommandHandler {
	return commands.NewRejectLoadCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateAcceptBidCommandHandler() commands.AcceptBidCommandHandler {
	return commands.NewAcceptBidCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceLoadStatusCommandHandler() commands.AdvanceLoadStatusCommandHandler {
	return commands.NewAdvanceLoadStatusCommandHandler(c.lifecycleUoWFactory())
}

func (c *CompositionRoot) CreateSubmitRatingCommandHandler() commands.SubmitRatingCommandHandler {
	var f commands.RatingUoWFactory = FuncRatingUoWFactory(func() commands.RatingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSubmitRatingCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchNotificationsCommandHandler() commands.DispatchNotificationsCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchNotificationsCommandHandler(f, c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetLoadRequestQueryHandler() queries.GetLoadRequestQueryHandler {
	return queries.NewGetLoadRequestQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListVisibleLoadsQueryHandler() queries.ListVisibleLoadsQueryHandler {
	return queries.NewListVisibleLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRatingQueryHandler() queries.GetRatingQueryHandler {
	return queries.NewGetRatingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTruckerTrucksQueryHandler() queries.ListTruckerTrucksQueryHandler {
	return queries.NewListTruckerTrucksQueryHandler(c.gormDB)
}

// HTTPHandlers wires every use case exposed by the HTTP adapter.
func (c *CompositionRoot) HTTPHandlers() httpapi.Handlers {
	return httpapi.Handlers{
		CreateLoadRequest: c.CreateCreateLoadRequestCommandHandler(),
		SubmitBid:         c.CreateSubmitBidCommandHandler(),
		RejectLoad:        c.CreateRejectLoadCommandHandler(),
		AcceptBid:         c.CreateAcceptBidCommandHandler(),
		AdvanceLoadStatus: c.CreateAdvanceLoadStatusCommandHandler(),
		SubmitRating:      c.CreateSubmitRatingCommandHandler(),
		RegisterTruck:     c.CreateRegisterTruckCommandHandler(),
		GetLoadRequest:    c.CreateGetLoadRequestQueryHandler(),
		ListVisibleLoads:  c.CreateListVisibleLoadsQueryHandler(),
		GetRating:         c.CreateGetRatingQueryHandler(),
		ListTruckerTrucks: c.CreateListTruckerTrucksQueryHandler(),
	}
}

func (c *CompositionRoot) lifecycleUoWFactory() commands.LifecycleUoWFactory {
	return FuncLifecycleUoWFactory(func() commands.LifecycleUoW {
		return c.uowFactory.Create()
	})
}

type FuncTruckUoWFactory func() commands.TruckUoW

func (f FuncTruckUoWFactory) Create() commands.TruckUoW {
	return f()
}

type FuncLoadRequestUoWFactory func() commands.LoadRequestUoW

func (f FuncLoadRequestUoWFactory) Create() commands.LoadRequestUoW {
	return f()
}

type FuncLifecycleUoWFactory func() commands.LifecycleUoW

func (f FuncLifecycleUoWFactory) Create() commands.LifecycleUoW {
	return f()
}

type FuncRatingUoWFactory func() commands.RatingUoW

func (f FuncRatingUoWFactory) Create() commands.RatingUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
