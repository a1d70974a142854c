package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"kebabhouse/internal/core/application/usecases/queries"
	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/domain/model/menu"
	"kebabhouse/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}

func (m *MockOrderRepository) Update(_ context.Context, _ *order.Order) error {
	return errors.New("not implemented in mock")
}

func (m *MockOrderRepository) Get(_ context.Context, _ kernel.UUID) (*order.Order, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockOrderRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func composeItem(t *testing.T, dishID menu.DishID, addOns ...menu.AddOnKind) menu.FoodItem {
	t.Helper()
	dish, err := menu.BaseDishByID(dishID)
	require.NoError(t, err)
	item, err := menu.Compose(dish, addOns...)
	require.NoError(t, err)
	return item
}

func TestGetOrderHistoryQueryHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	first, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		[]menu.FoodItem{composeItem(t, menu.DishPaninoDonerKebab, menu.AddOnCipolla, menu.AddOnPatatine)},
		order.Delivered)
	require.NoError(t, err)
	second, err := order.RestoreOrder(
		kernel.NewUUID(), customerID, time.Date(2026, 3, 2, 19, 30, 0, 0, time.UTC),
		[]menu.FoodItem{composeItem(t, menu.DishPiadinaKebab)},
		order.Cancelled)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	repo.On("GetByCustomer", ctx, customerID).Return([]*order.Order{first, second}, nil).Once()

	query, err := queries.NewGetOrderHistoryQuery(customerID)
	require.NoError(t, err)

	h := queries.NewGetOrderHistoryQueryHandler(repo)
	responses, err := h.Handle(ctx, query)
	require.NoError(t, err)
	require.Len(t, responses, 2)

	assert.Equal(t, first.ID(), responses[0].ID)
	assert.Equal(t, order.Delivered, responses[0].Status)
	assert.True(t, responses[0].Total.IsEqual(kernel.MustMoneyFromString("8.00")))
	assert.Equal(t, 9, responses[0].PrepMinutes)
	require.Len(t, responses[0].Items, 1)
	assert.Equal(t, "Panino Doner Kebab + Cipolla + Patatine", responses[0].Items[0].Description)

	assert.Equal(t, second.ID(), responses[1].ID)
	assert.Equal(t, order.Cancelled, responses[1].Status)
	assert.True(t, responses[1].Total.IsEqual(kernel.MustMoneyFromString("5.00")))
	repo.AssertExpectations(t)
}

func TestGetOrderHistoryQueryHandler_Handle_EmptyHistory(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	repo := new(MockOrderRepository)
	repo.On("GetByCustomer", ctx, customerID).Return([]*order.Order{}, nil).Once()

	query, err := queries.NewGetOrderHistoryQuery(customerID)
	require.NoError(t, err)

	h := queries.NewGetOrderHistoryQueryHandler(repo)
	responses, err := h.Handle(ctx, query)
	require.NoError(t, err)
	assert.Empty(t, responses)
	repo.AssertExpectations(t)
}

func TestGetOrderHistoryQueryHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	repo := new(MockOrderRepository)
	h := queries.NewGetOrderHistoryQueryHandler(repo)
	_, err := h.Handle(ctx, queries.GetOrderHistoryQuery{})
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderHistoryQueryIsNotConstructed)
	repo.AssertNotCalled(t, "GetByCustomer")
}

func TestGetOrderHistoryQueryHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	customerID := kernel.NewUUID()

	repo := new(MockOrderRepository)
	repo.On("GetByCustomer", ctx, customerID).Return(nil, errors.New("read error")).Once()

	query, err := queries.NewGetOrderHistoryQuery(customerID)
	require.NoError(t, err)

	h := queries.NewGetOrderHistoryQueryHandler(repo)
	_, err = h.Handle(ctx, query)
	require.Error(t, err)
	repo.AssertExpectations(t)
}

func TestNewGetOrderHistoryQuery_InvalidCustomerID(t *testing.T) {
	_, err := queries.NewGetOrderHistoryQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
