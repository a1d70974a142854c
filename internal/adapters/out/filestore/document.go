// Package filestore persists the point-of-sale state as a single JSON
// document on disk. The whole document is loaded at start, mutated in memory
// under a mutex and written back atomically via a temp file and rename, so a
// crash mid-write never leaves a torn document behind.
package filestore

import (
	"time"

	"kebabhouse/internal/core/domain/model/account"
	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/domain/model/menu"
	"kebabhouse/internal/core/domain/model/order"
)

// document is the on-disk shape: one JSON object holding every store.
type document struct {
	Orders map[string]orderDoc `json:"orders"`
	Users  map[string]userDoc  `json:"users"`
	Roles  map[string]roleDoc  `json:"roles"`
}

func newDocument() document {
	return document{
		Orders: make(map[string]orderDoc),
		Users:  make(map[string]userDoc),
		Roles:  make(map[string]roleDoc),
	}
}

// clone deep-copies the document so a transaction snapshot is isolated from
// later mutations.
func (d document) clone() document {
	copied := document{
		Orders: make(map[string]orderDoc, len(d.Orders)),
		Users:  make(map[string]userDoc, len(d.Users)),
		Roles:  make(map[string]roleDoc, len(d.Roles)),
	}
	for id, o := range d.Orders {
		items := make([]itemDoc, len(o.Items))
		copy(items, o.Items)
		o.Items = items
		copied.Orders[id] = o
	}
	for id, u := range d.Users {
		copied.Users[id] = u
	}
	for id, r := range d.Roles {
		copied.Roles[id] = r
	}
	return copied
}

type orderDoc struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customerId"`
	CreatedAt  time.Time `json:"createdAt"`
	Status     string    `json:"status"`
	Items      []itemDoc `json:"items"`
}

// itemDoc mirrors the relational item column: the base dish travels with its
// priced values so daily specials restore at the price they were sold at,
// add-ons are stored by kind and priced from the catalog.
type itemDoc struct {
	DishID      string   `json:"dishId,omitempty"`
	DishName    string   `json:"dishName,omitempty"`
	DishCost    string   `json:"dishCost,omitempty"`
	DishMinutes int      `json:"dishMinutes,omitempty"`
	AddOns      []string `json:"addOns,omitempty"`
}

type userDoc struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	TaxID     string `json:"taxId"`
	Email     string `json:"email"`
	Matricola string `json:"matricola,omitempty"`
}

type roleDoc struct {
	UserID string `json:"userId"`
	Kind   int    `json:"kind"`
}

func orderToDoc(aggregate *order.Order) orderDoc {
	items := make([]itemDoc, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemToDoc(item))
	}

	return orderDoc{
		ID:         aggregate.ID().String(),
		CustomerID: aggregate.CustomerID().String(),
		CreatedAt:  aggregate.CreatedAt(),
		Status:     aggregate.Status().String(),
		Items:      items,
	}
}

func itemToDoc(item menu.FoodItem) itemDoc {
	addOns := make([]string, 0, len(item.AddOns()))
	for _, addOn := range item.AddOns() {
		addOns = append(addOns, string(addOn.Kind()))
	}

	base := item.Base()
	return itemDoc{
		DishID:      string(base.ID()),
		DishName:    base.Name(),
		DishCost:    base.Cost().String(),
		DishMinutes: base.DurationMinutes(),
		AddOns:      addOns,
	}
}

// orderFromDoc rebuilds the aggregate through RestoreOrder, which revalidates
// the items and recomputes the total.
func orderFromDoc(doc orderDoc) (*order.Order, error) {
	id, err := kernel.UUIDFromString(doc.ID)
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromString(doc.CustomerID)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(doc.Status)
	if err != nil {
		return nil, err
	}

	items := make([]menu.FoodItem, 0, len(doc.Items))
	for _, item := range doc.Items {
		restored, itemErr := itemFromDoc(item)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, restored)
	}

	return order.RestoreOrder(id, customerID, doc.CreatedAt, items, status)
}

func itemFromDoc(doc itemDoc) (menu.FoodItem, error) {
	kinds := make([]menu.AddOnKind, 0, len(doc.AddOns))
	for _, kind := range doc.AddOns {
		kinds = append(kinds, menu.AddOnKind(kind))
	}

	if doc.DishName == "" && len(kinds) == 1 {
		return menu.StandaloneAddOn(kinds[0])
	}

	cost, err := kernel.MoneyFromString(doc.DishCost)
	if err != nil {
		return menu.FoodItem{}, err
	}

	base, err := menu.NewBaseDish(menu.DishID(doc.DishID), doc.DishName, cost, doc.DishMinutes)
	if err != nil {
		return menu.FoodItem{}, err
	}

	return menu.Compose(base, kinds...)
}

func userToDoc(user account.User) userDoc {
	return userDoc{
		ID:        user.ID().String(),
		Name:      user.Name(),
		Surname:   user.Surname(),
		TaxID:     user.TaxID(),
		Email:     user.Email(),
		Matricola: user.Matricola(),
	}
}

func userFromDoc(doc userDoc) (account.User, error) {
	id, err := kernel.UUIDFromString(doc.ID)
	if err != nil {
		return account.User{}, err
	}

	if doc.Matricola != "" {
		return account.NewStaffUser(id, doc.Name, doc.Surname, doc.TaxID, doc.Email, doc.Matricola)
	}
	return account.NewUser(id, doc.Name, doc.Surname, doc.TaxID, doc.Email)
}

func roleToDoc(role account.Role) roleDoc {
	return roleDoc{
		UserID: role.User().ID().String(),
		Kind:   int(role.Kind()),
	}
}

func roleFromDoc(doc roleDoc, user account.User) (account.Role, error) {
	return account.RestoreRole(account.RoleKind(doc.Kind), user)
}
