package http

import (
	"log/slog"
	"net/http"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	msgOrderNotFound             = "Order not found"
	msgPreparationStatusNotFound = "Preparation status not found for this order"
	msgInvalidRequestBody        = "Invalid request body"
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder      commands.CreateOrderCommandHandler
	CreateProduct    commands.CreateProductCommandHandler
	StartPreparation commands.StartPreparationCommandHandler
	UpdateStation    commands.UpdateStationCommandHandler
	DeliverOrder     commands.DeliverOrderCommandHandler

	GetOrder               queries.GetOrderQueryHandler
	GetAllOrders           queries.GetAllOrdersQueryHandler
	GetAllProducts         queries.GetAllProductsQueryHandler
	GetPreparationStatus   queries.GetPreparationStatusQueryHandler
	GetPreparationHistory  queries.GetPreparationHistoryQueryHandler
	GetPendingPreparations queries.GetPendingPreparationsQueryHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		logger:   logger.With("component", "HTTPServer"),
	}
}

// entityID converts a bound identifier. The nil UUID is well formed but never names an
// order, so reads treat it like any other unknown id.
func entityID(id openapi_types.UUID) (kernel.UUID, bool) {
	converted, err := kernel.UUIDFromBytes(id[:])
	return converted, err == nil
}

// CreateOrder handles POST order: records the order, seeds its preparation and
// returns the order view.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, msgInvalidRequestBody)
	}

	productIDs := make([]kernel.UUID, 0, len(body.ProductIds))
	for _, id := range body.ProductIds {
		productID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return s.writeError(ctx, err, http.StatusBadRequest)
		}
		productIDs = append(productIDs, productID)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, body.ConsumerName, body.PaymentMethod, productIDs)
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	reqCtx := ctx.Request().Context()
	if err = s.handlers.CreateOrder.Handle(reqCtx, cmd); err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	// The order stands even when seeding fails; the first station update seeds it.
	start, err := commands.NewStartPreparationCommand(orderID)
	if err == nil {
		_, err = s.handlers.StartPreparation.Handle(reqCtx, start)
	}
	if err != nil {
		s.logger.ErrorContext(reqCtx, "failed to start preparation", "order_id", orderID.String(), "error", err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err, http.StatusInternalServerError)
	}
	view, err := s.handlers.GetOrder.Handle(reqCtx, query)
	if err != nil {
		return s.writeError(ctx, err, http.StatusInternalServerError)
	}

	return ctx.JSON(http.StatusCreated, toOrder(view))
}

// GetOrder handles GET order/{id}.
func (s *Server) GetOrder(ctx echo.Context, id openapi_types.UUID) error {
	orderID, ok := entityID(id)
	if !ok {
		return notFound(ctx, msgOrderNotFound)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err, http.StatusNotFound)
	}

	view, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		if isNotFound(err) {
			return notFound(ctx, msgOrderNotFound)
		}
		return s.writeError(ctx, err, http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, toOrder(view))
}

// GetOrders handles GET orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	views, err := s.handlers.GetAllOrders.Handle(ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return s.writeError(ctx, err, http.StatusNotFound)
	}

	response := make([]servers.Order, len(views))
	for i, view := range views {
		response[i] = toOrder(view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetProducts handles GET products.
func (s *Server) GetProducts(ctx echo.Context) error {
	views, err := s.handlers.GetAllProducts.Handle(ctx.Request().Context(), queries.NewGetAllProductsQuery())
	if err != nil {
		return s.writeError(ctx, err, http.StatusNotFound)
	}

	response := make([]servers.Product, len(views))
	for i, view := range views {
		response[i] = toProduct(view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateProduct handles POST product.
func (s *Server) CreateProduct(ctx echo.Context) error {
	var body servers.CreateProductJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, msgInvalidRequestBody)
	}

	price, err := kernel.MoneyFromFloat("price", body.Price)
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	cmd, err := commands.NewCreateProductCommand(kernel.NewUUID(), body.Name, price, body.Category)
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	product, err := s.handlers.CreateProduct.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusCreated, toProduct(queries.NewProductView(product)))
}

// UpdatePreparationStation handles POST preparation/{station}.
func (s *Server) UpdatePreparationStation(ctx echo.Context, station string) error {
	var body servers.UpdatePreparationStationJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, msgInvalidRequestBody)
	}

	orderID, err := kernel.UUIDFromBytes(body.OrderId[:])
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	cmd, err := commands.NewUpdateStationCommand(orderID, station)
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	snapshot, err := s.handlers.UpdateStation.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	return ctx.JSON(http.StatusOK, toPreparationStatus(queries.NewSnapshotView(snapshot)))
}

// GetPreparationStatus handles GET preparation/status/{orderId}.
func (s *Server) GetPreparationStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, ok := entityID(orderId)
	if !ok {
		return notFound(ctx, msgPreparationStatusNotFound)
	}

	query, err := queries.NewGetPreparationStatusQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err, http.StatusNotFound)
	}

	view, found, err := s.handlers.GetPreparationStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, http.StatusNotFound)
	}
	if !found {
		return notFound(ctx, msgPreparationStatusNotFound)
	}

	return ctx.JSON(http.StatusOK, toPreparationStatus(view))
}

// GetPreparationHistory handles GET preparation/history/{orderId}.
func (s *Server) GetPreparationHistory(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, ok := entityID(orderId)
	if !ok {
		return ctx.JSON(http.StatusOK, []servers.PreparationStatus{})
	}

	query, err := queries.NewGetPreparationHistoryQuery(orderID)
	if err != nil {
		return s.writeError(ctx, err, http.StatusNotFound)
	}

	views, err := s.handlers.GetPreparationHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err, http.StatusNotFound)
	}

	response := make([]servers.PreparationStatus, len(views))
	for i, view := range views {
		response[i] = toPreparationStatus(view)
	}
	return ctx.JSON(http.StatusOK, response)
}

// GetPendingPreparations handles GET preparation/pending.
func (s *Server) GetPendingPreparations(ctx echo.Context) error {
	backlog, err := s.handlers.GetPendingPreparations.Handle(
		ctx.Request().Context(),
		queries.NewGetPendingPreparationsQuery(),
	)
	if err != nil {
		return s.writeError(ctx, err, http.StatusNotFound)
	}

	response := make([]servers.PendingPreparation, len(backlog))
	for i, item := range backlog {
		response[i] = toPendingPreparation(item)
	}
	return ctx.JSON(http.StatusOK, response)
}

// DeliverOrder handles POST deliver.
func (s *Server) DeliverOrder(ctx echo.Context) error {
	var body servers.DeliverOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, msgInvalidRequestBody)
	}

	orderID, ok := entityID(body.OrderId)
	if !ok {
		return notFound(ctx, msgOrderNotFound)
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID)
	if err != nil {
		return s.writeError(ctx, err, http.StatusBadRequest)
	}

	result, err := s.handlers.DeliverOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if isNotFound(err) {
			return notFound(ctx, msgOrderNotFound)
		}
		return s.writeError(ctx, err, http.StatusNotFound)
	}

	return ctx.JSON(http.StatusOK, servers.DeliveryConfirmation{
		OrderId:     result.OrderID.Bytes(),
		IsReady:     result.IsReady,
		Message:     result.Message,
		DeliveredAt: result.DeliveredAt,
	})
}
