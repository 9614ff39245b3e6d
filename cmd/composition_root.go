package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/eventlog"
	"restaurant/internal/adapters/out/memory/catalogrepo"
	"restaurant/internal/adapters/out/memory/orderrepo"
	"restaurant/internal/adapters/out/memory/preparationrepo"
	"restaurant/internal/adapters/out/rabbitmq"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/ports"
	"restaurant/internal/jobs"
	"restaurant/internal/pkg/keylock"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger
	clock  kernel.Clock

	products  *catalogrepo.Repository
	consumers *orderrepo.ConsumerRepository
	payments  *orderrepo.PaymentRepository
	orders    *orderrepo.Repository
	snapshots *preparationrepo.Repository

	// One lock table shared by every handler that appends snapshots.
	locker    *keylock.Locker[kernel.UUID]
	publisher ports.PreparationEventPublisher
	closers   []func() error
}

// NewCompositionRoot builds the in-memory stores and the event publisher. With
// RABBITMQ_URL set it connects to the broker; otherwise events go to the log.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	root := &CompositionRoot{
		config:    config,
		logger:    logger,
		clock:     kernel.SystemClock{},
		products:  catalogrepo.NewRepository(),
		consumers: orderrepo.NewConsumerRepository(),
		payments:  orderrepo.NewPaymentRepository(),
		orders:    orderrepo.NewRepository(),
		snapshots: preparationrepo.NewRepository(),
		locker:    &keylock.Locker[kernel.UUID]{},
	}

	if config.RabbitMQURL == "" {
		root.publisher = eventlog.NewPublisher(logger)
		return root, nil
	}

	publisher, err := rabbitmq.NewPublisher(config.RabbitMQURL, config.RabbitMQExchange)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	root.publisher = publisher
	root.closers = append(root.closers, publisher.Close)
	logger.Info("Publishing preparation events to RabbitMQ", "exchange", publisher.Exchange())

	return root, nil
}

// SeedCatalog loads the default menu when enabled in the configuration.
func (c *CompositionRoot) SeedCatalog(ctx context.Context) error {
	if !c.config.SeedCatalog {
		return nil
	}

	products, err := catalogrepo.Seed(ctx, c.products, c.clock)
	if err != nil {
		return err
	}
	c.logger.InfoContext(ctx, "Catalog seeded", "products", len(products))
	return nil
}

// Close releases external connections.
func (c *CompositionRoot) Close() error {
	var firstErr error
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.products, c.consumers, c.payments, c.orders, c.clock)
}

func (c *CompositionRoot) CreateCreateProductCommandHandler() commands.CreateProductCommandHandler {
	return commands.NewCreateProductCommandHandler(c.products, c.clock)
}

func (c *CompositionRoot) CreateStartPreparationCommandHandler() commands.StartPreparationCommandHandler {
	return commands.NewStartPreparationCommandHandler(
		c.orders, c.snapshots, c.publisher, c.locker, c.clock, c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateStationCommandHandler() commands.UpdateStationCommandHandler {
	return commands.NewUpdateStationCommandHandler(
		c.orders, c.snapshots, c.publisher, c.locker, c.clock, c.config.PreparationFirstUpdate, c.logger,
	)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orders, c.CreateIsOrderReadyQueryHandler(), c.clock)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders, c.consumers, c.payments, c.products)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.orders, c.consumers, c.payments, c.products)
}

func (c *CompositionRoot) CreateGetAllProductsQueryHandler() queries.GetAllProductsQueryHandler {
	return queries.NewGetAllProductsQueryHandler(c.products)
}

func (c *CompositionRoot) CreateGetPreparationStatusQueryHandler() queries.GetPreparationStatusQueryHandler {
	return queries.NewGetPreparationStatusQueryHandler(c.snapshots)
}

func (c *CompositionRoot) CreateGetPreparationHistoryQueryHandler() queries.GetPreparationHistoryQueryHandler {
	return queries.NewGetPreparationHistoryQueryHandler(c.snapshots)
}

func (c *CompositionRoot) CreateGetPendingPreparationsQueryHandler() queries.GetPendingPreparationsQueryHandler {
	return queries.NewGetPendingPreparationsQueryHandler(c.snapshots)
}

func (c *CompositionRoot) CreateIsOrderReadyQueryHandler() queries.IsOrderReadyQueryHandler {
	return queries.NewIsOrderReadyQueryHandler(c.snapshots)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateOrder:            c.CreateCreateOrderCommandHandler(),
		CreateProduct:          c.CreateCreateProductCommandHandler(),
		StartPreparation:       c.CreateStartPreparationCommandHandler(),
		UpdateStation:          c.CreateUpdateStationCommandHandler(),
		DeliverOrder:           c.CreateDeliverOrderCommandHandler(),
		GetOrder:               c.CreateGetOrderQueryHandler(),
		GetAllOrders:           c.CreateGetAllOrdersQueryHandler(),
		GetAllProducts:         c.CreateGetAllProductsQueryHandler(),
		GetPreparationStatus:   c.CreateGetPreparationStatusQueryHandler(),
		GetPreparationHistory:  c.CreateGetPreparationHistoryQueryHandler(),
		GetPendingPreparations: c.CreateGetPendingPreparationsQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetPendingPreparationsQueryHandler(),
		c.config.BacklogReportSchedule,
		c.clock,
		c.logger,
	)
}
