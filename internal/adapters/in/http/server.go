// Package http exposes the order facade over a JSON API. The facade returns
// plain domain errors; this package is the only place where they are mapped
// to HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"kebabhouse/internal/core/application/facade"
	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/menu"
	"kebabhouse/internal/core/domain/model/order"
	"kebabhouse/internal/pkg/errs"
)

// HeaderAuthToken carries the session token on every authenticated request.
const HeaderAuthToken = "X-Auth-Token"

// Server handles the HTTP surface of the point of sale.
type Server struct {
	orders *facade.OrderFacade
}

// NewServer creates an HTTP server over the given facade.
func NewServer(orders *facade.OrderFacade) *Server {
	return &Server{orders: orders}
}

// RegisterRoutes mounts the API on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.POST("/login", s.Login)
	v1.POST("/logout", s.Logout)
	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders/history", s.GetOrderHistory)
	v1.GET("/orders", s.GetOrdersByStatus)
	v1.POST("/orders/:id/advance", s.AdvanceOrder)
}

// Error is the JSON error body returned on every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LoginRequest carries the tax code identifying the user.
type LoginRequest struct {
	TaxID string `json:"taxId"`
}

// LoginResponse returns the session token for subsequent requests.
type LoginResponse struct {
	Token string `json:"token"`
}

// NewOrder is the request body for placing an order.
type NewOrder struct {
	DishID string   `json:"dishId"`
	AddOns []string `json:"addOns"`
}

// AdvanceOrderRequest names the status the order should move to.
type AdvanceOrderRequest struct {
	Status string `json:"status"`
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Login handles POST /api/v1/login - exchanges a tax code for a session
// token. Logging in twice returns the same token.
func (s *Server) Login(ctx echo.Context) error {
	var req LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if req.TaxID == "" {
		return badRequest(ctx, "taxId is required")
	}

	token, err := s.orders.Login(ctx.Request().Context(), req.TaxID)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Token: token})
}

// Logout handles POST /api/v1/logout - drops the session behind the token.
// Unknown tokens are a no-op, so logout is idempotent.
func (s *Server) Logout(ctx echo.Context) error {
	s.orders.Logout(token(ctx))
	return ctx.NoContent(http.StatusNoContent)
}

// CreateOrder handles POST /api/v1/orders - places an order for the
// customer behind the token.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req NewOrder
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if req.DishID == "" {
		return badRequest(ctx, "dishId is required")
	}

	created, err := s.orders.CreateOrder(ctx.Request().Context(), token(ctx), req.DishID, req.AddOns)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, created)
}

// GetOrderHistory handles GET /api/v1/orders/history - the full order
// history of the customer behind the token, oldest first.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	history, err := s.orders.ListOrderHistory(ctx.Request().Context(), token(ctx))
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, history)
}

// GetOrdersByStatus handles GET /api/v1/orders?status= - the staff worklist
// for one lifecycle stage, oldest first.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	statusName := ctx.QueryParam("status")
	if statusName == "" {
		return badRequest(ctx, "status query parameter is required")
	}

	worklist, err := s.orders.ListOrdersByStatus(ctx.Request().Context(), token(ctx), statusName)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, worklist)
}

// AdvanceOrder handles POST /api/v1/orders/:id/advance - moves the order to
// the named status on behalf of the role behind the token.
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	var req AdvanceOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if req.Status == "" {
		return badRequest(ctx, "status is required")
	}

	updated, err := s.orders.AdvanceOrder(
		ctx.Request().Context(), token(ctx), ctx.Param("id"), req.Status)
	if err != nil {
		return fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, updated)
}

func token(ctx echo.Context) string {
	return ctx.Request().Header.Get(HeaderAuthToken)
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// fail maps a domain error to its HTTP status. Everything not recognized is
// an internal error; persistence failures in particular never leak details.
func fail(ctx echo.Context, err error) error {
	code := statusForError(err)

	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "Internal server error"
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func statusForError(err error) int {
	switch {
	case errors.Is(err, facade.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, account.ErrMissingAuthorization):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, menu.ErrUnknownAddOn),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
