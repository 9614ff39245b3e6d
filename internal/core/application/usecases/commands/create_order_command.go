package commands

import (
	"errors"
	"slices"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
	"restaurant/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand places an order for one or more catalog products.
// Repeated product ids are kept: each occurrence is a separate line item.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, "Ana", "Credit Card", []kernel.UUID{bigMacID, friesID})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(products, consumers, payments, orders, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	consumerName  string
	paymentMethod string
	productIDs    []kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order identifier, requires a consumer name and
// payment method, and requires at least one product.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	consumerName string,
	paymentMethod string,
	productIDs []kernel.UUID,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setConsumerName(consumerName),
		cmd.setPaymentMethod(paymentMethod),
		cmd.setProductIDs(productIDs),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier the new order will get.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ConsumerName returns the trimmed consumer name.
func (c CreateOrderCommand) ConsumerName() string {
	return c.consumerName
}

// PaymentMethod returns the trimmed payment method.
func (c CreateOrderCommand) PaymentMethod() string {
	return c.paymentMethod
}

// ProductIDs returns a copy of the requested products in order.
func (c CreateOrderCommand) ProductIDs() []kernel.UUID {
	return slices.Clone(c.productIDs)
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setConsumerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("consumer name")
	}

	c.consumerName = name
	return nil
}

func (c *CreateOrderCommand) setPaymentMethod(method string) error {
	method = strings.TrimSpace(method)
	if method == "" {
		return errs.NewValueIsRequiredError("payment method")
	}

	c.paymentMethod = method
	return nil
}

func (c *CreateOrderCommand) setProductIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredErrorWithCause("product ids", errors.New("at least one product is required"))
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("product ids", err)
		}
	}

	c.productIDs = slices.Clone(ids)
	return nil
}
