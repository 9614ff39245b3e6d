package queries_test

import (
	"testing"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetOrderQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	s := newStore()
	bigMac := s.addProduct(t, "Big Mac", "5.99", catalog.Grelha)
	refill := s.addProduct(t, "Refil Coca Cola", "1.99", catalog.Bebida)
	o := s.addOrder(t, "Bruno", "Debit Card", bigMac, refill, refill)

	h := queries.NewGetOrderQueryHandler(s.orders, s.consumers, s.payments, s.products)
	query, err := queries.NewGetOrderQuery(o.ID())
	require.NoError(t, err)

	view, err := h.Handle(t.Context(), query)
	require.NoError(t, err)
	assert.Equal(t, o.ID(), view.ID)
	assert.Equal(t, "Bruno", view.ConsumerName)
	assert.Equal(t, "Debit Card", view.PaymentMethod)
	assert.Equal(t, "9.97", view.TotalAmount.String())
	assert.Equal(t, order.Pending, view.Status)
	assert.Equal(t, opening, view.CreatedAt)
	require.Len(t, view.Items, 3)
	assert.Equal(t, "Big Mac", view.Items[0].Name)
	assert.Equal(t, catalog.Grelha, view.Items[0].Category)
	assert.Equal(t, refill.ID(), view.Items[1].ProductID)
	assert.Equal(t, refill.ID(), view.Items[2].ProductID)
}

func TestGetOrderQueryHandler_Handle_NotFound(t *testing.T) {
	s := newStore()
	h := queries.NewGetOrderQueryHandler(s.orders, s.consumers, s.payments, s.products)
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	require.NoError(t, err)

	_, err = h.Handle(t.Context(), query)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGetOrderQueryHandler_Handle_ValidationError(t *testing.T) {
	s := newStore()
	h := queries.NewGetOrderQueryHandler(s.orders, s.consumers, s.payments, s.products)

	_, err := h.Handle(t.Context(), queries.GetOrderQuery{})
	require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
}

func TestGetAllOrdersQueryHandler_Handle(t *testing.T) {
	s := newStore()
	h := queries.NewGetAllOrdersQueryHandler(s.orders, s.consumers, s.payments, s.products)

	views, err := h.Handle(t.Context(), queries.NewGetAllOrdersQuery())
	require.NoError(t, err)
	assert.NotNil(t, views)
	assert.Empty(t, views)

	fries := s.addProduct(t, "Batata Grande", "3.49", catalog.Fritas)
	first := s.addOrder(t, "Ana", "Cash", fries)
	second := s.addOrder(t, "Bruno", "Pix", fries, fries)

	views, err = h.Handle(t.Context(), queries.NewGetAllOrdersQuery())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, first.ID(), views[0].ID)
	assert.Equal(t, second.ID(), views[1].ID)
	assert.Equal(t, "6.98", views[1].TotalAmount.String())
}

func TestGetAllOrdersQueryHandler_Handle_ValidationError(t *testing.T) {
	s := newStore()
	h := queries.NewGetAllOrdersQueryHandler(s.orders, s.consumers, s.payments, s.products)

	_, err := h.Handle(t.Context(), queries.GetAllOrdersQuery{})
	require.ErrorIs(t, err, queries.ErrGetAllOrdersQueryIsNotConstructed)
}
