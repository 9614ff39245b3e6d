package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateProductCommandIsNotConstructed = errors.New(
	"CreateProductCommand must be created via NewCreateProductCommand constructor",
)

// CreateProductCommand adds an item to the menu.
//
// Example:
//
//	cmd, err := NewCreateProductCommand(kernel.NewUUID(), "Big Mac", kernel.MustMoney("5.99"), "grelha")
//	if err != nil {
//	    return fmt.Errorf("invalid product: %w", err)
//	}
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	name      string
	price     kernel.Money
	category  catalog.Category

	guard guard.ConstructorGuard
}

// NewCreateProductCommand validates the identifier and resolves the category name.
// Name and price rules are enforced by catalog.NewProduct.
func NewCreateProductCommand(
	productID kernel.UUID,
	name string,
	price kernel.Money,
	category string,
) (CreateProductCommand, error) {
	cmd := CreateProductCommand{
		name:  name,
		price: price,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setProductID(productID),
		cmd.setCategory(category),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return cmd, nil
}

// Validate returns ErrCreateProductCommandIsNotConstructed for a zero-value command.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// ProductID returns the identifier the new product will get.
func (c CreateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Name returns the product name as given.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the unit price.
func (c CreateProductCommand) Price() kernel.Money {
	return c.price
}

// Category returns the resolved menu category.
func (c CreateProductCommand) Category() catalog.Category {
	return c.category
}

func (c *CreateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateProductCommand) setCategory(name string) error {
	category, err := catalog.ParseCategory(name)
	if err != nil {
		return err
	}

	c.category = category
	return nil
}
