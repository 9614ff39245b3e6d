package commands_test

import (
	"context"
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *catalog.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id kernel.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*catalog.Product); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*catalog.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func TestCreateProductCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(id, "Refil Guarana", kernel.MustMoney("1.79"), "Bebida")
	require.NoError(t, err)

	repo := new(MockProductRepository)
	repo.On("Add", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil).Once()

	h := commands.NewCreateProductCommandHandler(repo, fixedClock())
	product, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.Equal(t, id, product.ID())
	assert.Equal(t, catalog.Bebida, product.Category())
	assert.Equal(t, startOfService, product.CreatedAt())
	repo.AssertExpectations(t)
}

func TestCreateProductCommandHandler_Handle_ValidationError(t *testing.T) {
	repo := new(MockProductRepository)
	h := commands.NewCreateProductCommandHandler(repo, fixedClock())

	_, err := h.Handle(t.Context(), commands.CreateProductCommand{})
	require.ErrorIs(t, err, commands.ErrCreateProductCommandIsNotConstructed)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateProductCommandHandler_Handle_RejectsDomainRules(t *testing.T) {
	tests := map[string]struct {
		name  string
		price kernel.Money
		want  error
	}{
		"blank name": {name: "  ", price: kernel.MustMoney("1.00"), want: errs.ErrValueIsRequired},
		"zero price": {name: "Agua", price: kernel.ZeroMoney(), want: errs.ErrValueIsInvalid},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), tt.name, tt.price, "Bebida")
			require.NoError(t, err)

			repo := new(MockProductRepository)
			_, err = commands.NewCreateProductCommandHandler(repo, fixedClock()).Handle(t.Context(), cmd)
			require.ErrorIs(t, err, tt.want)
			repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateProductCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), "Agua", kernel.MustMoney("1.00"), "Bebida")
	require.NoError(t, err)

	addErr := errors.New("add failed")
	repo := new(MockProductRepository)
	repo.On("Add", ctx, mock.Anything).Return(addErr).Once()

	_, err = commands.NewCreateProductCommandHandler(repo, fixedClock()).Handle(ctx, cmd)
	require.ErrorIs(t, err, addErr)
	repo.AssertExpectations(t)
}
