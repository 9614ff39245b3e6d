package commands_test

import (
	"context"
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/preparation"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPreparationEventPublisher struct{ mock.Mock }

func (m *MockPreparationEventPublisher) Publish(ctx context.Context, s *preparation.Snapshot) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func TestNewStartPreparationCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewStartPreparationCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestStartPreparationCommandHandler_Handle_AppendsSeed(t *testing.T) {
	ctx := t.Context()
	k := newKitchen(t, steppingClock())
	orderID := k.placeOrder(t)

	seed := k.start(t, orderID)
	assert.True(t, seed.OrderID().IsEqual(orderID))
	assert.False(t, seed.Grill())
	assert.False(t, seed.Salad())
	assert.False(t, seed.Fries())
	assert.False(t, seed.Refill())
	assert.False(t, seed.Ready())

	history, err := k.snapshots.History(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, seed.ID(), history[0].ID())
	assert.Equal(t, []*preparation.Snapshot{seed}, k.publisher.Published())
}

func TestStartPreparationCommandHandler_Handle_RepeatedSeedsResetStations(t *testing.T) {
	ctx := t.Context()
	k := newKitchen(t, steppingClock())
	orderID := k.placeOrder(t)

	k.start(t, orderID)
	k.update(t, preparation.SeedOnly, orderID, "grill")
	second := k.start(t, orderID)

	history, err := k.snapshots.History(ctx, orderID)
	require.NoError(t, err)
	assert.Len(t, history, 3)

	latest, err := k.snapshots.Latest(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, second.ID(), latest.ID())
	assert.False(t, latest.Grill())
}

func TestStartPreparationCommandHandler_Handle_UnknownOrder(t *testing.T) {
	ctx := t.Context()
	k := newKitchen(t, steppingClock())
	cmd, err := commands.NewStartPreparationCommand(kernel.NewUUID())
	require.NoError(t, err)

	_, err = k.startHandler().Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, k.publisher.Published())
}

func TestStartPreparationCommandHandler_Handle_ValidationError(t *testing.T) {
	k := newKitchen(t, steppingClock())
	_, err := k.startHandler().Handle(t.Context(), commands.StartPreparationCommand{})
	require.ErrorIs(t, err, commands.ErrStartPreparationCommandIsNotConstructed)
}

func TestStartPreparationCommandHandler_Handle_PublishFailureIsNotReturned(t *testing.T) {
	ctx := t.Context()
	k := newKitchen(t, steppingClock())
	orderID := k.placeOrder(t)

	publisher := new(MockPreparationEventPublisher)
	publisher.On("Publish", ctx, mock.AnythingOfType("*preparation.Snapshot")).
		Return(errors.New("broker unavailable")).Once()

	h := commands.NewStartPreparationCommandHandler(k.orders, k.snapshots, publisher, k.locker, k.clock, k.logger)
	cmd, err := commands.NewStartPreparationCommand(orderID)
	require.NoError(t, err)

	seed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	latest, err := k.snapshots.Latest(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, seed.ID(), latest.ID())
	publisher.AssertExpectations(t)
}
