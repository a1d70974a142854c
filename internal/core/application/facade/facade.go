// Package facade exposes the point-of-sale operations as one boundary the
// front ends talk to. Callers identify themselves with a session token; the
// facade resolves the token to a user, the user to a role, and dispatches to
// the command and query handlers. Domain errors pass through unchanged so
// every front end surfaces the same failures.
package facade

import (
	"context"
	"errors"

	"kebabhouse/internal/core/application/roles"
	"kebabhouse/internal/core/application/session"
	"kebabhouse/internal/core/application/usecases/commands"
	"kebabhouse/internal/core/application/usecases/queries"
	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/domain/model/menu"
	"kebabhouse/internal/core/domain/model/order"
	"kebabhouse/internal/core/ports"
	"kebabhouse/internal/pkg/errs"
)

// ErrNotAuthenticated is returned when a token does not resolve to a live
// session.
var ErrNotAuthenticated = errors.New("token does not belong to a live session")

// OrderFacade is the application boundary for one front end.
type OrderFacade struct {
	sessions *session.Registry
	roles    *roles.Provider
	users    ports.UserRepository

	createOrder    commands.CreateOrderCommandHandler
	advanceOrder   commands.AdvanceOrderCommandHandler
	orderHistory   queries.GetOrderHistoryQueryHandler
	ordersByStatus queries.GetOrdersByStatusQueryHandler
}

// NewOrderFacade wires the facade over the session registry, the role
// provider, the user repository and the order handlers.
func NewOrderFacade(
	sessions *session.Registry,
	roleProvider *roles.Provider,
	users ports.UserRepository,
	uowFactory commands.OrderUoWFactory,
	orders ports.OrderRepository,
) *OrderFacade {
	return &OrderFacade{
		sessions: sessions,
		roles:    roleProvider,
		users:    users,

		createOrder:    commands.NewCreateOrderCommandHandler(uowFactory),
		advanceOrder:   commands.NewAdvanceOrderCommandHandler(uowFactory),
		orderHistory:   queries.NewGetOrderHistoryQueryHandler(orders),
		ordersByStatus: queries.NewGetOrdersByStatusQueryHandler(orders),
	}
}

// Login resolves the tax code to a registered user and returns the session
// token, creating a session on first use. Logging in twice returns the same
// token.
func (f *OrderFacade) Login(ctx context.Context, taxID string) (string, error) {
	user, err := f.users.GetByTaxID(ctx, taxID)
	if err != nil {
		return "", err
	}
	return f.sessions.ResolveOrCreateToken(user)
}

// Logout drops the session behind the token. Unknown tokens are a no-op.
func (f *OrderFacade) Logout(token string) {
	if user, ok := f.sessions.UserForToken(token); ok {
		f.sessions.Logout(user)
	}
}

// CreateOrder places an order for the customer behind the token. The dish
// and add-on identifiers are resolved against the closed menu catalog; an
// unknown add-on rejects the whole order.
func (f *OrderFacade) CreateOrder(
	ctx context.Context, token string, dishID string, addOnIDs []string,
) (OrderBean, error) {
	role, err := f.authenticate(ctx, token)
	if err != nil {
		return OrderBean{}, err
	}

	customer, err := role.AsCustomer()
	if err != nil {
		return OrderBean{}, err
	}

	addOns := make([]menu.AddOnKind, len(addOnIDs))
	for i, id := range addOnIDs {
		addOns[i] = menu.AddOnKind(id)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), customer.User().ID(), menu.DishID(dishID), addOns)
	if err != nil {
		return OrderBean{}, err
	}

	created, err := f.createOrder.Handle(ctx, cmd)
	if err != nil {
		return OrderBean{}, err
	}
	return beanFromOrder(created), nil
}

// ListOrderHistory returns every order the customer behind the token has
// placed, oldest first, terminal orders included.
func (f *OrderFacade) ListOrderHistory(ctx context.Context, token string) ([]OrderBean, error) {
	role, err := f.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	customer, err := role.AsCustomer()
	if err != nil {
		return nil, err
	}

	query, err := queries.NewGetOrderHistoryQuery(customer.User().ID())
	if err != nil {
		return nil, err
	}

	responses, err := f.orderHistory.Handle(ctx, query)
	if err != nil {
		return nil, err
	}
	return beansFromResponses(responses), nil
}

// ListOrdersByStatus returns the worklist for one lifecycle stage, oldest
// first. Staff only: vendors and administrators.
func (f *OrderFacade) ListOrdersByStatus(
	ctx context.Context, token string, statusName string,
) ([]OrderBean, error) {
	role, err := f.authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if !role.IsVendor() && !role.IsAdministrator() {
		return nil, account.NewMissingAuthorizationError("list orders by status")
	}

	status, err := order.ParseStatus(statusName)
	if err != nil {
		return nil, err
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return nil, err
	}

	responses, err := f.ordersByStatus.Handle(ctx, query)
	if err != nil {
		return nil, err
	}
	return beansFromResponses(responses), nil
}

// AdvanceOrder moves an order to the named status on behalf of the role
// behind the token. The lifecycle decides whether the edge exists and
// whether the role may drive it.
func (f *OrderFacade) AdvanceOrder(
	ctx context.Context, token string, orderID string, statusName string,
) (OrderBean, error) {
	role, err := f.authenticate(ctx, token)
	if err != nil {
		return OrderBean{}, err
	}

	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return OrderBean{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
	}

	target, err := order.ParseStatus(statusName)
	if err != nil {
		return OrderBean{}, err
	}

	cmd, err := commands.NewAdvanceOrderCommand(id, target, role)
	if err != nil {
		return OrderBean{}, err
	}

	updated, err := f.advanceOrder.Handle(ctx, cmd)
	if err != nil {
		return OrderBean{}, err
	}
	return beanFromOrder(updated), nil
}

// authenticate resolves the token to a session user and the user to its
// concrete role.
func (f *OrderFacade) authenticate(ctx context.Context, token string) (account.Role, error) {
	user, ok := f.sessions.UserForToken(token)
	if !ok {
		return account.Role{}, ErrNotAuthenticated
	}
	return f.roles.Resolve(ctx, user)
}
