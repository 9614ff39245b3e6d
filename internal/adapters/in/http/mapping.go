package http

import (
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/generated/servers"
)

func toOrder(view queries.OrderView) servers.Order {
	items := make([]servers.OrderItem, len(view.Items))
	for i, item := range view.Items {
		items[i] = servers.OrderItem{
			Id:       item.ProductID.Bytes(),
			Name:     item.Name,
			Price:    item.Price.Float64(),
			Category: item.Category.String(),
		}
	}

	return servers.Order{
		Id:            view.ID.Bytes(),
		ConsumerName:  view.ConsumerName,
		Items:         items,
		TotalAmount:   view.TotalAmount.Float64(),
		PaymentMethod: view.PaymentMethod,
		CreatedAt:     view.CreatedAt,
		Status:        view.Status.String(),
	}
}

func toProduct(view queries.ProductView) servers.Product {
	return servers.Product{
		Id:        view.ID.Bytes(),
		Name:      view.Name,
		Price:     view.Price.Float64(),
		Category:  view.Category.String(),
		CreatedAt: view.CreatedAt,
	}
}

func toPreparationStatus(view queries.SnapshotView) servers.PreparationStatus {
	return servers.PreparationStatus{
		Id:        int64(view.ID), //nolint:gosec // ids are allocated from 1 upwards
		OrderId:   view.OrderID.Bytes(),
		Grill:     view.Grill,
		Salad:     view.Salad,
		Fries:     view.Fries,
		Refill:    view.Refill,
		Ready:     view.Ready,
		Timestamp: view.Timestamp,
	}
}

func toPendingPreparation(item queries.GetPendingPreparationsQueryResponse) servers.PendingPreparation {
	missing := make([]string, len(item.Missing))
	for i, station := range item.Missing {
		missing[i] = station.String()
	}

	return servers.PendingPreparation{
		OrderId:    item.OrderID.Bytes(),
		SnapshotId: int64(item.SnapshotID), //nolint:gosec // ids are allocated from 1 upwards
		UpdatedAt:  item.UpdatedAt,
		Missing:    missing,
	}
}
