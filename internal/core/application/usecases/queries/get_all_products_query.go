package queries

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGetAllProductsQueryIsNotConstructed = errors.New(
	"GetAllProductsQuery must be created via NewGetAllProductsQuery constructor",
)

// GetAllProductsQuery lists the menu.
type GetAllProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllProductsQuery creates a query for the whole menu.
func NewGetAllProductsQuery() GetAllProductsQuery {
	return GetAllProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAllProductsQueryIsNotConstructed)
}

// ProductView is the read model of a menu item.
type ProductView struct {
	ID        kernel.UUID
	Name      string
	Price     kernel.Money
	Category  catalog.Category
	CreatedAt time.Time
}

// NewProductView copies the product into its read model.
func NewProductView(p *catalog.Product) ProductView {
	return ProductView{
		ID:        p.ID(),
		Name:      p.Name(),
		Price:     p.Price(),
		Category:  p.Category(),
		CreatedAt: p.CreatedAt(),
	}
}
