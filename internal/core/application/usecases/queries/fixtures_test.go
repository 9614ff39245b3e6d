package queries_test

import (
	"testing"
	"time"

	"restaurant/internal/adapters/out/memory/catalogrepo"
	"restaurant/internal/adapters/out/memory/orderrepo"
	"restaurant/internal/adapters/out/memory/preparationrepo"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/consumer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/core/domain/model/preparation"

	"github.com/stretchr/testify/require"
)

var opening = time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)

type store struct {
	products  *catalogrepo.Repository
	consumers *orderrepo.ConsumerRepository
	payments  *orderrepo.PaymentRepository
	orders    *orderrepo.Repository
	snapshots *preparationrepo.Repository
}

func newStore() *store {
	return &store{
		products:  catalogrepo.NewRepository(),
		consumers: orderrepo.NewConsumerRepository(),
		payments:  orderrepo.NewPaymentRepository(),
		orders:    orderrepo.NewRepository(),
		snapshots: preparationrepo.NewRepository(),
	}
}

func (s *store) addProduct(t *testing.T, name, price string, category catalog.Category) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(kernel.NewUUID(), name, kernel.MustMoney(price), category, opening)
	require.NoError(t, err)
	require.NoError(t, s.products.Add(t.Context(), p))
	return p
}

func (s *store) addOrder(t *testing.T, consumerName, method string, products ...*catalog.Product) *order.Order {
	t.Helper()
	ctx := t.Context()

	total := kernel.ZeroMoney()
	ids := make([]kernel.UUID, 0, len(products))
	for _, p := range products {
		total = total.Add(p.Price())
		ids = append(ids, p.ID())
	}

	c, err := consumer.NewConsumer(kernel.NewUUID(), consumerName, method)
	require.NoError(t, err)
	require.NoError(t, s.consumers.Add(ctx, c))

	p, err := payment.NewPayment(kernel.NewUUID(), method, total, opening)
	require.NoError(t, err)
	require.NoError(t, s.payments.Add(ctx, p))

	o, err := order.NewOrder(kernel.NewUUID(), c.ID(), ids, total, p.ID(), opening)
	require.NoError(t, err)
	require.NoError(t, s.orders.Add(ctx, o))
	return o
}

// prepare appends a seed at the given instant followed by one snapshot per station,
// one minute apart.
func (s *store) prepare(
	t *testing.T,
	orderID kernel.UUID,
	at time.Time,
	stations ...preparation.Station,
) *preparation.Snapshot {
	t.Helper()
	current, err := preparation.NewSeedSnapshot(s.snapshots.NextID(), orderID, at)
	require.NoError(t, err)
	require.NoError(t, s.snapshots.Append(t.Context(), current))

	for i, station := range stations {
		current, err = current.Advance(s.snapshots.NextID(), station, at.Add(time.Duration(i+1)*time.Minute))
		require.NoError(t, err)
		require.NoError(t, s.snapshots.Append(t.Context(), current))
	}
	return current
}
