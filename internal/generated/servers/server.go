package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// Place an order and start its preparation
	// (POST /api/restaurant/downeystore/order)
	CreateOrder(ctx echo.Context) error
	// Get an order
	// (GET /api/restaurant/downeystore/order/{id})
	GetOrder(ctx echo.Context, id openapi_types.UUID) error
	// List every order
	// (GET /api/restaurant/downeystore/orders)
	GetOrders(ctx echo.Context) error
	// List the menu
	// (GET /api/restaurant/downeystore/products)
	GetProducts(ctx echo.Context) error
	// Add a product to the menu
	// (POST /api/restaurant/downeystore/product)
	CreateProduct(ctx echo.Context) error
	// Report that a station finished its part of an order
	// (POST /api/restaurant/downeystore/preparation/{station})
	UpdatePreparationStation(ctx echo.Context, station string) error
	// Current preparation snapshot of an order
	// (GET /api/restaurant/downeystore/preparation/status/{orderId})
	GetPreparationStatus(ctx echo.Context, orderId openapi_types.UUID) error
	// Every preparation snapshot of an order, newest first
	// (GET /api/restaurant/downeystore/preparation/history/{orderId})
	GetPreparationHistory(ctx echo.Context, orderId openapi_types.UUID) error
	// Kitchen backlog
	// (GET /api/restaurant/downeystore/preparation/pending)
	GetPendingPreparations(ctx echo.Context) error
	// Deliver a ready order
	// (POST /api/restaurant/downeystore/deliver)
	DeliverOrder(ctx echo.Context) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}

	return w.Handler.GetOrder(ctx, id)
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	return w.Handler.GetOrders(ctx)
}

// GetProducts converts echo context to params.
func (w *ServerInterfaceWrapper) GetProducts(ctx echo.Context) error {
	return w.Handler.GetProducts(ctx)
}

// CreateProduct converts echo context to params.
func (w *ServerInterfaceWrapper) CreateProduct(ctx echo.Context) error {
	return w.Handler.CreateProduct(ctx)
}

// UpdatePreparationStation converts echo context to params.
func (w *ServerInterfaceWrapper) UpdatePreparationStation(ctx echo.Context) error {
	var station string

	err := runtime.BindStyledParameterWithOptions("simple", "station", ctx.Param("station"), &station,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter station: %s", err))
	}

	return w.Handler.UpdatePreparationStation(ctx, station)
}

// GetPreparationStatus converts echo context to params.
func (w *ServerInterfaceWrapper) GetPreparationStatus(ctx echo.Context) error {
	var orderId openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	return w.Handler.GetPreparationStatus(ctx, orderId)
}

// GetPreparationHistory converts echo context to params.
func (w *ServerInterfaceWrapper) GetPreparationHistory(ctx echo.Context) error {
	var orderId openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	return w.Handler.GetPreparationHistory(ctx, orderId)
}

// GetPendingPreparations converts echo context to params.
func (w *ServerInterfaceWrapper) GetPendingPreparations(ctx echo.Context) error {
	return w.Handler.GetPendingPreparations(ctx)
}

// DeliverOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeliverOrder(ctx echo.Context) error {
	return w.Handler.DeliverOrder(ctx)
}

// EchoRouter is implemented by both echo.Echo and echo.Group.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the paths,
// so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.POST(baseURL+"/api/restaurant/downeystore/deliver", wrapper.DeliverOrder)
	router.POST(baseURL+"/api/restaurant/downeystore/order", wrapper.CreateOrder)
	router.GET(baseURL+"/api/restaurant/downeystore/order/:id", wrapper.GetOrder)
	router.GET(baseURL+"/api/restaurant/downeystore/orders", wrapper.GetOrders)
	router.GET(baseURL+"/api/restaurant/downeystore/preparation/history/:orderId", wrapper.GetPreparationHistory)
	router.GET(baseURL+"/api/restaurant/downeystore/preparation/pending", wrapper.GetPendingPreparations)
	router.GET(baseURL+"/api/restaurant/downeystore/preparation/status/:orderId", wrapper.GetPreparationStatus)
	router.POST(baseURL+"/api/restaurant/downeystore/preparation/:station", wrapper.UpdatePreparationStation)
	router.POST(baseURL+"/api/restaurant/downeystore/product", wrapper.CreateProduct)
	router.GET(baseURL+"/api/restaurant/downeystore/products", wrapper.GetProducts)
}
