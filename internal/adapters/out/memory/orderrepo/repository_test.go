package orderrepo_test

import (
	"testing"
	"time"

	"restaurant/internal/adapters/out/memory/orderrepo"
	"restaurant/internal/core/domain/model/consumer"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/model/payment"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]kernel.UUID{kernel.NewUUID()},
		kernel.MustMoney("5.99"),
		kernel.NewUUID(),
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func TestRepository_AddGet(t *testing.T) {
	ctx := t.Context()
	repo := orderrepo.NewRepository()
	o := newOrder(t)

	require.NoError(t, repo.Add(ctx, o))

	got, err := repo.Get(ctx, o.ID())
	require.NoError(t, err)
	assert.True(t, got.IsEqual(o))

	require.ErrorIs(t, repo.Add(ctx, o), errs.ErrValueIsInvalid)
	require.ErrorIs(t, repo.Add(ctx, &order.Order{}), order.ErrOrderIsNotConstructed)
}

func TestRepository_GetMissing(t *testing.T) {
	_, err := orderrepo.NewRepository().Get(t.Context(), kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestRepository_GetAll(t *testing.T) {
	ctx := t.Context()
	repo := orderrepo.NewRepository()

	empty, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	first, second := newOrder(t), newOrder(t)
	require.NoError(t, repo.Add(ctx, first))
	require.NoError(t, repo.Add(ctx, second))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.True(t, all[0].IsEqual(first))
	assert.True(t, all[1].IsEqual(second))
}

func TestRepository_ConcurrentAdds(t *testing.T) {
	ctx := t.Context()
	repo := orderrepo.NewRepository()

	var g errgroup.Group
	for range 64 {
		g.Go(func() error {
			return repo.Add(ctx, newOrder(t))
		})
	}
	require.NoError(t, g.Wait())

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 64)
}

func TestConsumerRepository(t *testing.T) {
	ctx := t.Context()
	repo := orderrepo.NewConsumerRepository()
	c, err := consumer.NewConsumer(kernel.NewUUID(), "Ana", "Cash")
	require.NoError(t, err)

	require.NoError(t, repo.Add(ctx, c))
	require.Error(t, repo.Add(ctx, c))

	got, err := repo.Get(ctx, c.ID())
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name())

	_, err = repo.Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestPaymentRepository(t *testing.T) {
	ctx := t.Context()
	repo := orderrepo.NewPaymentRepository()
	p, err := payment.NewPayment(kernel.NewUUID(), "Card", kernel.MustMoney("3.49"), time.Now().UTC())
	require.NoError(t, err)

	require.NoError(t, repo.Add(ctx, p))
	require.Error(t, repo.Add(ctx, p))

	got, err := repo.Get(ctx, p.ID())
	require.NoError(t, err)
	assert.Equal(t, "Card", got.Method())

	_, err = repo.Get(ctx, kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
