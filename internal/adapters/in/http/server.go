package http

import (
	"errors"
	"net/http"

	"carrybee/internal/core/application/auth"
	"carrybee/internal/core/application/usecases/commands"
	"carrybee/internal/core/application/usecases/queries"
	"carrybee/internal/core/domain/model/account"
	"carrybee/internal/core/domain/model/cart"
	"carrybee/internal/core/domain/model/kernel"
	"carrybee/internal/core/domain/model/order"
	"carrybee/internal/core/domain/services"
	"carrybee/internal/generated/servers"
	"carrybee/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler          commands.CheckoutCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler

	// Query handlers
	getCheckoutQuoteHandler  queries.GetCheckoutQuoteQueryHandler
	getOrdersHandler         queries.GetOrdersQueryHandler
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler

	gate        auth.Gate
	linkBuilder services.PaymentLinkBuilder
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	getCheckoutQuoteHandler queries.GetCheckoutQuoteQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	gate auth.Gate,
	linkBuilder services.PaymentLinkBuilder,
) *Server {
	return &Server{
		checkoutHandler:          checkoutHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		getCheckoutQuoteHandler:  getCheckoutQuoteHandler,
		getOrdersHandler:         getOrdersHandler,
		getCustomerOrdersHandler: getCustomerOrdersHandler,
		gate:                     gate,
		linkBuilder:              linkBuilder,
	}
}

// QuoteCheckout handles POST /api/v1/checkout/quote - previews delivery fees for a cart.
func (s *Server) QuoteCheckout(ctx echo.Context) error {
	var request servers.QuoteRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	quoteLines, err := toQuoteLines(request.Lines)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cart data: " + err.Error(),
		})
	}

	deliveryPoint, err := toGeoPoint(request.DeliveryPoint)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery point: " + err.Error(),
		})
	}

	query, err := queries.NewGetCheckoutQuoteQuery(quoteLines, deliveryPoint)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid quote request: " + err.Error(),
		})
	}

	quote, err := s.getCheckoutQuoteHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to quote the cart",
		})
	}

	merchants := make([]servers.MerchantQuote, len(quote.Merchants))
	for i, merchantQuote := range quote.Merchants {
		merchants[i] = servers.MerchantQuote{
			MerchantId:       merchantQuote.MerchantID.Bytes(),
			MerchantName:     merchantQuote.MerchantName,
			SubtotalMinor:    merchantQuote.Subtotal.MinorUnits(),
			DeliveryFeeMinor: merchantQuote.DeliveryFee.MinorUnits(),
			FeeEstimated:     merchantQuote.FeeEstimated,
			TotalMinor:       merchantQuote.Total.MinorUnits(),
		}
	}

	return ctx.JSON(http.StatusOK, servers.QuoteResponse{
		Merchants:       merchants,
		GrandTotalMinor: quote.GrandTotal.MinorUnits(),
		PaymentLink:     quote.PaymentLink,
	})
}

// Checkout handles POST /api/v1/checkout - turns the cart into one order per merchant.
func (s *Server) Checkout(ctx echo.Context, params servers.CheckoutParams) error {
	var request servers.CheckoutRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	customerID, err := kernel.UUIDFromBytes(params.XUserId[:])
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid caller identity",
		})
	}

	cartLines, err := toCartLines(request.Lines)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cart data: " + err.Error(),
		})
	}

	deliveryPoint, err := toGeoPoint(request.DeliveryPoint)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid delivery point: " + err.Error(),
		})
	}

	cmd, err := commands.NewCheckoutCommand(customerID, cartLines, deliveryPoint, request.Address, request.Phone)
	if err != nil {
		if errors.Is(err, commands.ErrUnauthenticated) {
			return ctx.JSON(http.StatusUnauthorized, servers.Error{
				Code:    http.StatusUnauthorized,
				Message: "Customer is not authenticated",
			})
		}
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid checkout data: " + err.Error(),
		})
	}

	result, handleErr := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	response := s.toCheckoutResponse(ctx, result)

	if handleErr != nil {
		// Not a single merchant group could be persisted. The per-merchant
		// failures still go out so the client can show what went wrong.
		return ctx.JSON(http.StatusBadGateway, response)
	}

	return ctx.JSON(http.StatusCreated, response)
}

// GetOrders handles GET /api/v1/orders - retrieves orders for the admin dashboard.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	callerID, err := kernel.UUIDFromBytes(params.XUserId[:])
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid caller identity",
		})
	}

	if gateErr := s.gate.RequireAdmin(ctx.Request().Context(), callerID); gateErr != nil {
		return s.gateError(ctx, gateErr)
	}

	query := queries.NewGetOrdersQuery()
	if params.Status != nil {
		status, statusErr := order.StatusFromString(string(*params.Status))
		if statusErr != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid status filter: " + statusErr.Error(),
			})
		}

		query, err = queries.NewGetOrdersByStatusQuery(status)
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid status filter: " + err.Error(),
			})
		}
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.Order, len(orders))
	for i, row := range orders {
		response[i] = servers.Order{
			Id:               row.ID.Bytes(),
			MerchantId:       row.MerchantID.Bytes(),
			MerchantName:     row.MerchantName,
			CustomerId:       row.CustomerID.Bytes(),
			Address:          row.Address,
			Phone:            row.Phone,
			Status:           servers.OrderStatus(row.Status),
			SubtotalMinor:    row.Subtotal.MinorUnits(),
			DeliveryFeeMinor: row.DeliveryFee.MinorUnits(),
			TotalMinor:       row.Total.MinorUnits(),
			CreatedAt:        row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetMyOrders handles GET /api/v1/orders/my - retrieves the caller's order history.
func (s *Server) GetMyOrders(ctx echo.Context, params servers.GetMyOrdersParams) error {
	customerID, err := kernel.UUIDFromBytes(params.XUserId[:])
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid caller identity",
		})
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID)
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: "Customer is not authenticated",
		})
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve orders",
		})
	}

	response := make([]servers.OrderWithLines, len(orders))
	for i, row := range orders {
		lines := make([]servers.OrderLine, len(row.Lines))
		for j, line := range row.Lines {
			lines[j] = servers.OrderLine{
				ProductId:      line.ProductID.Bytes(),
				ProductName:    line.ProductName,
				Quantity:       line.Quantity,
				UnitPriceMinor: line.UnitPrice.MinorUnits(),
			}
		}

		response[i] = servers.OrderWithLines{
			Id:               row.ID.Bytes(),
			MerchantId:       row.MerchantID.Bytes(),
			MerchantName:     row.MerchantName,
			Status:           servers.OrderStatus(row.Status),
			SubtotalMinor:    row.Subtotal.MinorUnits(),
			DeliveryFeeMinor: row.DeliveryFee.MinorUnits(),
			TotalMinor:       row.Total.MinorUnits(),
			CreatedAt:        row.CreatedAt,
			Lines:            lines,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/{orderId}/status - transitions an order.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderId openapi_types.UUID, params servers.UpdateOrderStatusParams) error {
	var request servers.UpdateOrderStatusRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	actorID, err := kernel.UUIDFromBytes(params.XUserId[:])
	if err != nil {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: "Invalid caller identity",
		})
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid order identifier",
		})
	}

	target, err := order.StatusFromString(string(request.Status))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid target status: " + err.Error(),
		})
	}

	resolution, err := s.gate.ResolveRole(ctx.Request().Context(), actorID)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to resolve caller role",
		})
	}
	if resolution == auth.ResolutionUnresolved {
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: "Caller identity is not resolved",
		})
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target, actorID, resolution.Role())
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status change: " + err.Error(),
		})
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return s.transitionError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// gateError maps admin gate failures onto HTTP statuses. An unresolved
// identity is 401, a resolved non-admin is 403.
func (s *Server) gateError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, account.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: "Caller is not an admin",
		})
	case errors.Is(err, auth.ErrIdentityUnresolved):
		return ctx.JSON(http.StatusUnauthorized, servers.Error{
			Code:    http.StatusUnauthorized,
			Message: "Caller identity is not resolved",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to resolve caller role",
		})
	}
}

func (s *Server) transitionError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, account.ErrForbidden):
		return ctx.JSON(http.StatusForbidden, servers.Error{
			Code:    http.StatusForbidden,
			Message: "Caller may not perform this transition",
		})
	case errors.Is(err, order.ErrIllegalTransition):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: "Transition is not legal from the order's current status",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to change order status",
		})
	}
}

func (s *Server) toCheckoutResponse(ctx echo.Context, result commands.CheckoutResult) servers.CheckoutResponse {
	created := make([]servers.CreatedOrder, len(result.CreatedOrders))
	for i, createdOrder := range result.CreatedOrders {
		created[i] = servers.CreatedOrder{
			OrderId:          createdOrder.OrderID.Bytes(),
			MerchantId:       createdOrder.MerchantID.Bytes(),
			MerchantName:     createdOrder.MerchantName,
			SubtotalMinor:    createdOrder.Subtotal.MinorUnits(),
			DeliveryFeeMinor: createdOrder.DeliveryFee.MinorUnits(),
			FeeEstimated:     createdOrder.FeeEstimated,
			TotalMinor:       createdOrder.Total.MinorUnits(),
		}
	}

	failed := make([]servers.FailedMerchant, len(result.FailedMerchants))
	for i, failedMerchant := range result.FailedMerchants {
		reason := "persistence failed"
		if failedMerchant.Reason != nil {
			reason = failedMerchant.Reason.Error()
		}

		failed[i] = servers.FailedMerchant{
			MerchantId:   failedMerchant.MerchantID.Bytes(),
			MerchantName: failedMerchant.MerchantName,
			Reason:       reason,
		}
	}

	// A broken payment link must not fail an already committed checkout,
	// but it is an operator problem worth surfacing.
	paymentLink := ""
	if len(result.CreatedOrders) > 0 {
		link, err := s.linkBuilder.Link(result.GrandTotal())
		if err != nil {
			ctx.Logger().Errorf("Could not build payment link for grand total %d: %v",
				result.GrandTotal().MinorUnits(), err)
		} else {
			paymentLink = link
		}
	}

	return servers.CheckoutResponse{
		CreatedOrders:   created,
		FailedMerchants: failed,
		GrandTotalMinor: result.GrandTotal().MinorUnits(),
		PaymentLink:     paymentLink,
	}
}

func toGeoPoint(point *servers.GeoPoint) (*kernel.GeoPoint, error) {
	if point == nil {
		return nil, nil
	}

	geoPoint, err := kernel.NewGeoPoint(point.Latitude, point.Longitude)
	if err != nil {
		return nil, err
	}
	return &geoPoint, nil
}

func toCartLines(lines []servers.CartLine) ([]cart.Line, error) {
	cartLines := make([]cart.Line, 0, len(lines))
	for _, line := range lines {
		productID, err := kernel.UUIDFromBytes(line.ProductId[:])
		if err != nil {
			return nil, err
		}
		merchantID, err := kernel.UUIDFromBytes(line.MerchantId[:])
		if err != nil {
			return nil, err
		}
		unitPrice, err := kernel.NewMoney(line.UnitPriceMinor)
		if err != nil {
			return nil, err
		}

		imageRef := ""
		if line.ImageRef != nil {
			imageRef = *line.ImageRef
		}

		cartLine, err := cart.NewLine(productID, merchantID, line.MerchantName, line.ProductName, unitPrice, line.Quantity, imageRef)
		if err != nil {
			return nil, err
		}
		cartLines = append(cartLines, cartLine)
	}

	return cartLines, nil
}

func toQuoteLines(lines []servers.CartLine) ([]queries.QuoteLine, error) {
	quoteLines := make([]queries.QuoteLine, 0, len(lines))
	for _, line := range lines {
		merchantID, err := kernel.UUIDFromBytes(line.MerchantId[:])
		if err != nil {
			return nil, err
		}
		unitPrice, err := kernel.NewMoney(line.UnitPriceMinor)
		if err != nil {
			return nil, err
		}

		quoteLines = append(quoteLines, queries.QuoteLine{
			MerchantID:   merchantID,
			MerchantName: line.MerchantName,
			UnitPrice:    unitPrice,
			Quantity:     line.Quantity,
		})
	}

	return quoteLines, nil
}
