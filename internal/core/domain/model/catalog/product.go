package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product was not built by NewProduct.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a menu entry. It is immutable after construction.
type Product struct {
	id        kernel.UUID
	name      string
	price     kernel.Money
	category  Category
	createdAt time.Time

	isConstructed bool
}

// NewProduct validates and builds a product. All failing fields are reported together.
//
// Example:
//
//	category, _ := catalog.ParseCategory("grelha")
//	p, err := catalog.NewProduct(kernel.NewUUID(), "Big Mac", kernel.MustMoney("5.99"), category, clock.Now())
func NewProduct(id kernel.UUID, name string, price kernel.Money, category Category, createdAt time.Time) (*Product, error) {
	p := &Product{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPrice(price),
		p.setCategory(category),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the product was built by NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the product's unique identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name shown on the menu.
func (p *Product) Name() string {
	return p.name
}

// Price returns the unit price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// Category returns the menu category.
func (p *Product) Category() Category {
	return p.category
}

// CreatedAt returns when the product was added to the menu.
func (p *Product) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"product price",
			fmt.Errorf("%s is not greater than 0", price),
		)
	}
	p.price = price
	return nil
}

func (p *Product) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}
