package memstore

import (
	"context"
	"time"

	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/domain/model/menu"
	"kebabhouse/internal/core/domain/model/order"
)

// SeedDemo fills the store with the demo accounts and a couple of orders so
// the in-memory backend is usable straight after start. Tax codes below are
// the ones printed in the startup banner.
func SeedDemo(store *Store) error {
	ctx := context.Background()

	customer, err := account.NewUser(kernel.NewUUID(),
		"Mario", "Rossi", "RSSMRA80A01H501U", "mario.rossi@example.com")
	if err != nil {
		return err
	}
	vendor, err := account.NewStaffUser(kernel.NewUUID(),
		"Luca", "Verdi", "VRDLCU82C15H501Q", "luca.verdi@example.com", "V0007")
	if err != nil {
		return err
	}
	admin, err := account.NewStaffUser(kernel.NewUUID(),
		"Anna", "Bianchi", "BNCNNA85B41H501Z", "anna.bianchi@example.com", "A0042")
	if err != nil {
		return err
	}

	users := NewUserRepository(store)
	for _, user := range []account.User{customer, vendor, admin} {
		if err := users.Add(ctx, user); err != nil {
			return err
		}
	}

	customerRole, err := account.NewCustomerRole(customer)
	if err != nil {
		return err
	}
	vendorRole, err := account.NewVendorRole(vendor)
	if err != nil {
		return err
	}
	adminRole, err := account.NewAdministratorRole(admin)
	if err != nil {
		return err
	}

	roles := NewRoleRepository(store)
	for _, role := range []account.Role{customerRole, vendorRole, adminRole} {
		if err := roles.Add(ctx, role); err != nil {
			return err
		}
	}

	return seedOrders(ctx, store, customer.ID())
}

func seedOrders(ctx context.Context, store *Store, customerID kernel.UUID) error {
	panino, err := demoItem(menu.DishPaninoDonerKebab, menu.AddOnCipolla, menu.AddOnPatatine)
	if err != nil {
		return err
	}
	piatto, err := demoItem(menu.DishPiattoKebab, menu.AddOnVerdureGrigliate)
	if err != nil {
		return err
	}

	now := time.Now().UTC()

	pending, err := order.NewOrder(kernel.NewUUID(), customerID,
		now.Add(-5*time.Minute), []menu.FoodItem{panino})
	if err != nil {
		return err
	}

	delivered, err := order.RestoreOrder(kernel.NewUUID(), customerID,
		now.Add(-2*time.Hour), []menu.FoodItem{piatto}, order.Delivered)
	if err != nil {
		return err
	}

	if err := store.Add(ctx, delivered); err != nil {
		return err
	}
	return store.Add(ctx, pending)
}

func demoItem(dishID menu.DishID, addOns ...menu.AddOnKind) (menu.FoodItem, error) {
	dish, err := menu.BaseDishByID(dishID)
	if err != nil {
		return menu.FoodItem{}, err
	}
	return menu.Compose(dish, addOns...)
}
