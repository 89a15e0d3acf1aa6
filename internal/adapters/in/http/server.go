package http

import (
	"errors"
	"net/http"

	"bistro/internal/adapters/out/pdf"
	"bistro/internal/core/application/usecases/commands"
	"bistro/internal/core/application/usecases/queries"
	"bistro/internal/core/domain/model/courier"
	"bistro/internal/core/domain/model/kernel"
	"bistro/internal/core/domain/model/order"
	"bistro/internal/generated/servers"
	"bistro/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createZoneHandler            commands.CreateZoneCommandHandler
	setZoneActivationHandler     commands.SetZoneActivationCommandHandler
	createCourierHandler         commands.CreateCourierCommandHandler
	updateCourierLocationHandler commands.UpdateCourierLocationCommandHandler
	createOrderHandler           commands.CreateOrderCommandHandler
	completeDeliveryHandler      commands.CompleteDeliveryCommandHandler
	cancelOrderHandler           commands.CancelOrderCommandHandler
	recordPayoutHandler          commands.RecordPayoutCommandHandler

	// Query handlers
	getActiveZonesHandler       queries.GetActiveZonesQueryHandler
	resolveZoneHandler          queries.ResolveZoneQueryHandler
	getAllCouriersHandler       queries.GetAllCouriersQueryHandler
	getCourierBalanceHandler    queries.GetCourierBalanceQueryHandler
	getCourierPayoutsHandler    queries.GetCourierPayoutsQueryHandler
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler
	getOrderInvoiceHandler      queries.GetOrderInvoiceQueryHandler

	invoiceRenderer pdf.InvoiceRenderer
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createZoneHandler commands.CreateZoneCommandHandler,
	setZoneActivationHandler commands.SetZoneActivationCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	updateCourierLocationHandler commands.UpdateCourierLocationCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	recordPayoutHandler commands.RecordPayoutCommandHandler,
	getActiveZonesHandler queries.GetActiveZonesQueryHandler,
	resolveZoneHandler queries.ResolveZoneQueryHandler,
	getAllCouriersHandler queries.GetAllCouriersQueryHandler,
	getCourierBalanceHandler queries.GetCourierBalanceQueryHandler,
	getCourierPayoutsHandler queries.GetCourierPayoutsQueryHandler,
	getUncompletedOrdersHandler queries.GetUncompletedOrdersQueryHandler,
	getOrderInvoiceHandler queries.GetOrderInvoiceQueryHandler,
	invoiceRenderer pdf.InvoiceRenderer,
) *Server {
	return &Server{
		createZoneHandler:            createZoneHandler,
		setZoneActivationHandler:     setZoneActivationHandler,
		createCourierHandler:         createCourierHandler,
		updateCourierLocationHandler: updateCourierLocationHandler,
		createOrderHandler:           createOrderHandler,
		completeDeliveryHandler:      completeDeliveryHandler,
		cancelOrderHandler:           cancelOrderHandler,
		recordPayoutHandler:          recordPayoutHandler,
		getActiveZonesHandler:        getActiveZonesHandler,
		resolveZoneHandler:           resolveZoneHandler,
		getAllCouriersHandler:        getAllCouriersHandler,
		getCourierBalanceHandler:     getCourierBalanceHandler,
		getCourierPayoutsHandler:     getCourierPayoutsHandler,
		getUncompletedOrdersHandler:  getUncompletedOrdersHandler,
		getOrderInvoiceHandler:       getOrderInvoiceHandler,
		invoiceRenderer:              invoiceRenderer,
	}
}

// GetActiveZones handles GET /api/v1/zones - retrieves all active delivery zones.
func (s *Server) GetActiveZones(ctx echo.Context) error {
	query := queries.NewGetActiveZonesQuery()

	zones, err := s.getActiveZonesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve zones",
		})
	}

	response := make([]servers.Zone, len(zones))
	for i, zone := range zones {
		response[i] = servers.Zone{
			Id:             zone.ID.Bytes(),
			Name:           zone.Name,
			Center:         toGeoPointResponse(zone.Center),
			RadiusKm:       zone.RadiusKm,
			DeliveryCharge: zone.DeliveryCharge,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateZone handles POST /api/v1/zones - creates a new delivery zone.
func (s *Server) CreateZone(ctx echo.Context) error {
	var newZone servers.NewZone
	if err := ctx.Bind(&newZone); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	var center *kernel.GeoPoint
	if newZone.Center != nil {
		point, err := kernel.NewGeoPoint(newZone.Center.Lat, newZone.Center.Lon)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid zone center: " + err.Error(),
			})
		}
		center = &point
	}

	cmd, err := commands.NewCreateZoneCommand(
		kernel.NewUUID(), newZone.Name, center, newZone.RadiusKm, newZone.DeliveryCharge)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid zone data: " + err.Error(),
		})
	}

	if handleErr := s.createZoneHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Failed to create zone",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// ResolveZone handles GET /api/v1/zones/resolve - resolves the zone covering a coordinate.
func (s *Server) ResolveZone(ctx echo.Context, params servers.ResolveZoneParams) error {
	query, err := queries.NewResolveZoneQuery(params.Lat, params.Lon)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid coordinate: " + err.Error(),
		})
	}

	resolution, err := s.resolveZoneHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to resolve zone",
		})
	}

	alternatives := make([]servers.ZoneCandidate, len(resolution.Alternatives))
	for i, candidate := range resolution.Alternatives {
		alternatives[i] = toZoneCandidateResponse(candidate)
	}

	response := servers.ZoneResolution{
		Outcome:      servers.ZoneResolutionOutcome(resolution.Outcome),
		Alternatives: alternatives,
	}
	if resolution.Primary != nil {
		primary := toZoneCandidateResponse(*resolution.Primary)
		response.Primary = &primary
	}
	if resolution.Nearest != nil {
		nearest := toZoneCandidateResponse(*resolution.Nearest)
		response.Nearest = &nearest
	}

	return ctx.JSON(http.StatusOK, response)
}

// SetZoneActivation handles PUT /api/v1/zones/{zoneId}/activation - toggles a zone.
func (s *Server) SetZoneActivation(ctx echo.Context, zoneId openapi_types.UUID) error {
	var activation servers.ZoneActivation
	if err := ctx.Bind(&activation); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	zoneID, err := kernel.UUIDFromString(zoneId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid zone ID",
		})
	}

	cmd, err := commands.NewSetZoneActivationCommand(zoneID, activation.Active)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid activation data: " + err.Error(),
		})
	}

	if handleErr := s.setZoneActivationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Zone not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update zone activation",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCouriers handles GET /api/v1/couriers - retrieves the courier roster.
func (s *Server) GetCouriers(ctx echo.Context) error {
	query := queries.NewGetAllCouriersQuery()

	couriers, err := s.getAllCouriersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve couriers",
		})
	}

	response := make([]servers.Courier, len(couriers))
	for i, rosterEntry := range couriers {
		item := servers.Courier{
			Id:             rosterEntry.ID.Bytes(),
			Name:           rosterEntry.Name,
			CommissionKind: rosterEntry.CommissionKind,
			CommissionRate: rosterEntry.CommissionRate,
			Location:       toGeoPointResponse(rosterEntry.Location),
		}
		if rosterEntry.Phone != "" {
			phone := rosterEntry.Phone
			item.Phone = &phone
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers - registers a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var newCourier servers.NewCourier
	if err := ctx.Bind(&newCourier); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	commission, err := courier.NewCommissionConfig(
		toCommissionKind(newCourier.CommissionKind), newCourier.CommissionRate)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid commission config: " + err.Error(),
		})
	}

	phone := ""
	if newCourier.Phone != nil {
		phone = *newCourier.Phone
	}

	cmd, err := commands.NewCreateCourierCommand(kernel.NewUUID(), newCourier.Name, phone, commission)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier data: " + err.Error(),
		})
	}

	if handleErr := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Failed to create courier",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateCourierLocation handles PUT /api/v1/couriers/{courierId}/location - records a GPS ping.
func (s *Server) UpdateCourierLocation(ctx echo.Context, courierId openapi_types.UUID) error {
	var ping servers.GeoPoint
	if err := ctx.Bind(&ping); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	courierID, err := kernel.UUIDFromString(courierId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier ID",
		})
	}

	location, err := kernel.NewGeoPoint(ping.Lat, ping.Lon)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid location: " + err.Error(),
		})
	}

	cmd, err := commands.NewUpdateCourierLocationCommand(courierID, location)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid location data: " + err.Error(),
		})
	}

	if handleErr := s.updateCourierLocationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Courier not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to update courier location",
		})
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCourierBalance handles GET /api/v1/couriers/{courierId}/balance - settlement balance.
func (s *Server) GetCourierBalance(ctx echo.Context, courierId openapi_types.UUID) error {
	courierID, err := kernel.UUIDFromString(courierId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier ID",
		})
	}

	query, err := queries.NewGetCourierBalanceQuery(courierID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier ID: " + err.Error(),
		})
	}

	balance, err := s.getCourierBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Courier not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve courier balance",
		})
	}

	return ctx.JSON(http.StatusOK, servers.Balance{
		CourierId: balance.CourierID.Bytes(),
		Earned:    balance.Earned,
		Paid:      balance.Paid,
		Due:       balance.Due,
	})
}

// GetCourierPayouts handles GET /api/v1/couriers/{courierId}/payouts - payout ledger.
func (s *Server) GetCourierPayouts(ctx echo.Context, courierId openapi_types.UUID) error {
	courierID, err := kernel.UUIDFromString(courierId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier ID",
		})
	}

	query, err := queries.NewGetCourierPayoutsQuery(courierID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier ID: " + err.Error(),
		})
	}

	payouts, err := s.getCourierPayoutsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve payouts",
		})
	}

	response := make([]servers.Payout, len(payouts))
	for i, entry := range payouts {
		item := servers.Payout{
			Id:         entry.ID.Bytes(),
			Amount:     entry.Amount,
			RecordedAt: entry.RecordedAt,
		}
		if entry.Notes != "" {
			notes := entry.Notes
			item.Notes = &notes
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// RecordPayout handles POST /api/v1/couriers/{courierId}/payouts - records a payout.
func (s *Server) RecordPayout(ctx echo.Context, courierId openapi_types.UUID) error {
	var newPayout servers.NewPayout
	if err := ctx.Bind(&newPayout); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	courierID, err := kernel.UUIDFromString(courierId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid courier ID",
		})
	}

	notes := ""
	if newPayout.Notes != nil {
		notes = *newPayout.Notes
	}

	cmd, err := commands.NewRecordPayoutCommand(kernel.NewUUID(), courierID, newPayout.Amount, notes)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid payout data: " + err.Error(),
		})
	}

	if handleErr := s.recordPayoutHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Courier not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to record payout",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.NewOrder
	if err := ctx.Bind(&newOrder); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	deliveryPoint, err := kernel.NewGeoPoint(newOrder.DeliveryPoint.Lat, newOrder.DeliveryPoint.Lon)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery point: " + err.Error(),
		})
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), newOrder.CustomerName, deliveryPoint, newOrder.Total)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order data: " + err.Error(),
		})
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Failed to create order",
		})
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetActiveOrders handles GET /api/v1/orders/active - orders pending delivery.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	query := queries.NewGetUncompletedOrdersQuery()

	orders, err := s.getUncompletedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.Order, len(orders))
	for i, pending := range orders {
		response[i] = servers.Order{
			Id:           pending.ID.Bytes(),
			CustomerName: pending.CustomerName,
			DeliveryPoint: servers.GeoPoint{
				Lat: pending.DeliveryPoint.Latitude(),
				Lon: pending.DeliveryPoint.Longitude(),
			},
			Status: pending.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel - cancels an order.
func (s *Server) CancelOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewCancelOrderCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderTransitionError(ctx, handleErr, "Failed to cancel order")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteDelivery handles POST /api/v1/orders/{orderId}/complete - marks an order
// delivered and freezes the driver commission.
func (s *Server) CompleteDelivery(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	cmd, err := commands.NewCompleteDeliveryCommand(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	if handleErr := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.orderTransitionError(ctx, handleErr, "Failed to complete delivery")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrderInvoice handles GET /api/v1/orders/{orderId}/invoice - renders the invoice PDF.
func (s *Server) GetOrderInvoice(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	query, err := queries.NewGetOrderInvoiceQuery(orderID)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order ID: " + err.Error(),
		})
	}

	invoice, err := s.getOrderInvoiceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, servers.Error{
				Code:    http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve invoice",
		})
	}

	document, err := s.invoiceRenderer.Render(invoice)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to render invoice",
		})
	}

	return ctx.Blob(http.StatusOK, "application/pdf", document)
}

// orderTransitionError maps order lifecycle failures to HTTP responses.
// Invalid transitions and repeated commission settlement are conflicts.
func (s *Server) orderTransitionError(ctx echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, order.ErrCommissionAlreadySettled), errors.Is(err, errs.ErrValueIsInvalid):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: fallback,
		})
	}
}

func toGeoPointResponse(point *kernel.GeoPoint) *servers.GeoPoint {
	if point == nil {
		return nil
	}
	return &servers.GeoPoint{
		Lat: point.Latitude(),
		Lon: point.Longitude(),
	}
}

func toZoneCandidateResponse(candidate queries.ZoneCandidateResponse) servers.ZoneCandidate {
	return servers.ZoneCandidate{
		Id:             candidate.ID.Bytes(),
		Name:           candidate.Name,
		DistanceKm:     candidate.DistanceKm,
		DeliveryCharge: candidate.DeliveryCharge,
		WithinRadius:   candidate.WithinRadius,
	}
}

func toCommissionKind(kind servers.NewCourierCommissionKind) courier.CommissionKind {
	switch kind {
	case servers.Fixed:
		return courier.CommissionFixed
	case servers.Percent:
		return courier.CommissionPercent
	default:
		return courier.CommissionUnknown
	}
}
