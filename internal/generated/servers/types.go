// Package servers provides the request/response types and echo routing glue for the
// HTTP API described in api/openapi.yaml.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// DeliveryConfirmation defines model for DeliveryConfirmation.
type DeliveryConfirmation struct {
	DeliveredAt time.Time          `json:"deliveredAt"`
	IsReady     bool               `json:"isReady"`
	Message     string             `json:"message"`
	OrderId     openapi_types.UUID `json:"orderId"`
}

// Error defines model for Error.
type Error struct {
	Error string `json:"error"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	ConsumerName  string               `json:"consumerName"`
	PaymentMethod string               `json:"paymentMethod"`
	ProductIds    []openapi_types.UUID `json:"productIds"`
}

// NewProduct defines model for NewProduct.
type NewProduct struct {
	// Category One of Grelha, Fritas, Bebida, Salada (case-insensitive).
	Category string  `json:"category"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
}

// Order defines model for Order.
type Order struct {
	ConsumerName  string             `json:"consumerName"`
	CreatedAt     time.Time          `json:"createdAt"`
	Id            openapi_types.UUID `json:"id"`
	Items         []OrderItem        `json:"items"`
	PaymentMethod string             `json:"paymentMethod"`
	Status        string             `json:"status"`
	TotalAmount   float64            `json:"totalAmount"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	Category string             `json:"category"`
	Id       openapi_types.UUID `json:"id"`
	Name     string             `json:"name"`
	Price    float64            `json:"price"`
}

// OrderReference defines model for OrderReference.
type OrderReference struct {
	OrderId openapi_types.UUID `json:"orderId"`
}

// PendingPreparation defines model for PendingPreparation.
type PendingPreparation struct {
	Missing    []string           `json:"missing"`
	OrderId    openapi_types.UUID `json:"orderId"`
	SnapshotId int64              `json:"snapshotId"`
	UpdatedAt  time.Time          `json:"updatedAt"`
}

// PreparationStatus defines model for PreparationStatus.
type PreparationStatus struct {
	Fries     bool               `json:"fries"`
	Grill     bool               `json:"grill"`
	Id        int64              `json:"id"`
	OrderId   openapi_types.UUID `json:"orderId"`
	Ready     bool               `json:"ready"`
	Refill    bool               `json:"refill"`
	Salad     bool               `json:"salad"`
	Timestamp time.Time          `json:"timestamp"`
}

// Product defines model for Product.
type Product struct {
	Category  string             `json:"category"`
	CreatedAt time.Time          `json:"createdAt"`
	Id        openapi_types.UUID `json:"id"`
	Name      string             `json:"name"`
	Price     float64            `json:"price"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// DeliverOrderJSONRequestBody defines body for DeliverOrder for application/json ContentType.
type DeliverOrderJSONRequestBody = OrderReference

// UpdatePreparationStationJSONRequestBody defines body for UpdatePreparationStation for application/json ContentType.
type UpdatePreparationStationJSONRequestBody = OrderReference

// CreateProductJSONRequestBody defines body for CreateProduct for application/json ContentType.
type CreateProductJSONRequestBody = NewProduct
