package commands_test

import (
	"testing"

	"kebabhouse/internal/core/application/usecases/commands"
	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/domain/model/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	customerID := kernel.NewUUID()
	addOns := []menu.AddOnKind{menu.AddOnCipolla, menu.AddOnSalsaYogurt}

	cmd, err := commands.NewCreateOrderCommand(orderID, customerID, menu.DishPaninoDonerKebab, addOns)
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, customerID, cmd.CustomerID())
	assert.Equal(t, menu.DishPaninoDonerKebab, cmd.DishID())
	assert.Equal(t, addOns, cmd.AddOns())
}

func TestNewCreateOrderCommand_NoAddOns(t *testing.T) {
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), menu.DishPiadinaKebab, nil)
	require.NoError(t, err)
	assert.Empty(t, cmd.AddOns())
}

func TestNewCreateOrderCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewCreateOrderCommand(invalidID, kernel.NewUUID(), menu.DishPiattoKebab, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_InvalidCustomerID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.UUID{}, menu.DishPiattoKebab, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateOrderCommand_EmptyDishID(t *testing.T) {
	_, err := commands.NewCreateOrderCommand(kernel.NewUUID(), kernel.NewUUID(), "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrDishIDIsRequired)
}

func TestCreateOrderCommand_AddOnsReturnsCopy(t *testing.T) {
	addOns := []menu.AddOnKind{menu.AddOnCipolla}
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), menu.DishPaninoDonerKebab, addOns)
	require.NoError(t, err)

	got := cmd.AddOns()
	got[0] = "ananas"
	assert.Equal(t, []menu.AddOnKind{menu.AddOnCipolla}, cmd.AddOns())
}
