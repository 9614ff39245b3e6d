package commands_test

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"restaurant/internal/adapters/out/memory/catalogrepo"
	"restaurant/internal/adapters/out/memory/orderrepo"
	"restaurant/internal/adapters/out/memory/preparationrepo"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/preparation"
	"restaurant/internal/pkg/keylock"

	"github.com/stretchr/testify/require"
)

var startOfService = time.Date(2026, 3, 14, 11, 30, 0, 0, time.UTC)

// steppingClock advances one second per reading.
func steppingClock() kernel.Clock {
	var ticks atomic.Int64
	return kernel.ClockFunc(func() time.Time {
		return startOfService.Add(time.Duration(ticks.Add(1)) * time.Second)
	})
}

func fixedClock() kernel.Clock {
	return kernel.ClockFunc(func() time.Time { return startOfService })
}

type recordingPublisher struct {
	mu        sync.Mutex
	snapshots []*preparation.Snapshot
}

func (p *recordingPublisher) Publish(_ context.Context, snapshot *preparation.Snapshot) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.snapshots = append(p.snapshots, snapshot)
	return nil
}

func (p *recordingPublisher) Published() []*preparation.Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*preparation.Snapshot(nil), p.snapshots...)
}

type kitchen struct {
	products  *catalogrepo.Repository
	consumers *orderrepo.ConsumerRepository
	payments  *orderrepo.PaymentRepository
	orders    *orderrepo.Repository
	snapshots *preparationrepo.Repository
	locker    *keylock.Locker[kernel.UUID]
	publisher *recordingPublisher
	clock     kernel.Clock
	logger    *slog.Logger

	bigMac *catalog.Product
	fries  *catalog.Product
}

func newKitchen(t *testing.T, clock kernel.Clock) *kitchen {
	t.Helper()
	k := &kitchen{
		products:  catalogrepo.NewRepository(),
		consumers: orderrepo.NewConsumerRepository(),
		payments:  orderrepo.NewPaymentRepository(),
		orders:    orderrepo.NewRepository(),
		snapshots: preparationrepo.NewRepository(),
		locker:    &keylock.Locker[kernel.UUID]{},
		publisher: &recordingPublisher{},
		clock:     clock,
		logger:    slog.New(slog.DiscardHandler),
	}

	var err error
	k.bigMac, err = catalog.NewProduct(kernel.NewUUID(), "Big Mac", kernel.MustMoney("5.99"), catalog.Grelha, startOfService)
	require.NoError(t, err)
	k.fries, err = catalog.NewProduct(kernel.NewUUID(), "Batata Media", kernel.MustMoney("2.49"), catalog.Fritas, startOfService)
	require.NoError(t, err)
	require.NoError(t, k.products.Add(t.Context(), k.bigMac))
	require.NoError(t, k.products.Add(t.Context(), k.fries))
	return k
}

func (k *kitchen) createOrderHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(k.products, k.consumers, k.payments, k.orders, k.clock)
}

func (k *kitchen) startHandler() commands.StartPreparationCommandHandler {
	return commands.NewStartPreparationCommandHandler(k.orders, k.snapshots, k.publisher, k.locker, k.clock, k.logger)
}

func (k *kitchen) updateHandler(policy preparation.FirstUpdatePolicy) commands.UpdateStationCommandHandler {
	return commands.NewUpdateStationCommandHandler(k.orders, k.snapshots, k.publisher, k.locker, k.clock, policy, k.logger)
}

// placeOrder records an order without starting its preparation.
func (k *kitchen) placeOrder(t *testing.T) kernel.UUID {
	t.Helper()
	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, "Ana", "Cash", []kernel.UUID{k.bigMac.ID()})
	require.NoError(t, err)
	require.NoError(t, k.createOrderHandler().Handle(t.Context(), cmd))
	return orderID
}

func (k *kitchen) start(t *testing.T, orderID kernel.UUID) *preparation.Snapshot {
	t.Helper()
	cmd, err := commands.NewStartPreparationCommand(orderID)
	require.NoError(t, err)
	seed, err := k.startHandler().Handle(t.Context(), cmd)
	require.NoError(t, err)
	return seed
}

func (k *kitchen) update(
	t *testing.T,
	policy preparation.FirstUpdatePolicy,
	orderID kernel.UUID,
	station string,
) *preparation.Snapshot {
	t.Helper()
	cmd, err := commands.NewUpdateStationCommand(orderID, station)
	require.NoError(t, err)
	snapshot, err := k.updateHandler(policy).Handle(t.Context(), cmd)
	require.NoError(t, err)
	return snapshot
}
