package commands

import (
	"context"
	"time"

	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/ports"
)

// DeliveryConfirmationMessage is returned to the consumer with every delivered order.
const DeliveryConfirmationMessage = "Enjoy your meal!"

// DeliverOrderCommandResult confirms a delivery.
type DeliverOrderCommandResult struct {
	OrderID     kernel.UUID
	IsReady     bool
	Message     string
	DeliveredAt time.Time
}

// DeliverOrderCommandHandler checks that an order is ready and confirms its delivery.
// The order record itself is left untouched.
type DeliverOrderCommandHandler struct {
	orders  ports.OrderRepository
	isReady queries.IsOrderReadyQueryHandler
	clock   kernel.Clock
}

// NewDeliverOrderCommandHandler creates a handler that resolves the order through orders
// and asks isReady whether the kitchen finished it.
func NewDeliverOrderCommandHandler(
	orders ports.OrderRepository,
	isReady queries.IsOrderReadyQueryHandler,
	clock kernel.Clock,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		orders:  orders,
		isReady: isReady,
		clock:   clock,
	}
}

// Handle fails with an errs.ObjectNotFoundError for an unknown order and with
// order.ErrOrderIsNotReady while any station is still pending.
func (h DeliverOrderCommandHandler) Handle(
	ctx context.Context,
	cmd DeliverOrderCommand,
) (DeliverOrderCommandResult, error) {
	if err := cmd.Validate(); err != nil {
		return DeliverOrderCommandResult{}, err
	}

	if _, err := h.orders.Get(ctx, cmd.OrderID()); err != nil {
		return DeliverOrderCommandResult{}, err
	}

	query, err := queries.NewIsOrderReadyQuery(cmd.OrderID())
	if err != nil {
		return DeliverOrderCommandResult{}, err
	}
	ready, err := h.isReady.Handle(ctx, query)
	if err != nil {
		return DeliverOrderCommandResult{}, err
	}
	if !ready {
		return DeliverOrderCommandResult{}, order.ErrOrderIsNotReady
	}

	return DeliverOrderCommandResult{
		OrderID:     cmd.OrderID(),
		IsReady:     true,
		Message:     DeliveryConfirmationMessage,
		DeliveredAt: h.clock.Now(),
	}, nil
}
