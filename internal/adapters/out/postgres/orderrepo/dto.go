// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"kebabhouse/internal/core/domain/model/kernel"
	"kebabhouse/internal/core/domain/model/menu"
	"kebabhouse/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items are serialized as a JSON column; the total is not stored because the
// aggregate recomputes it from the items on restore.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt  time.Time `gorm:"index"`
	Status     int       `gorm:"index"`
	Items      []ItemDTO `gorm:"serializer:json;type:jsonb"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO is one composed food item inside the order's JSON item column.
// The base dish is stored with its priced values so daily specials restore
// with the price they were sold at; add-ons are stored by kind and priced
// from the catalog.
type ItemDTO struct {
	DishID      string   `json:"dishId,omitempty"`
	DishName    string   `json:"dishName,omitempty"`
	DishCost    string   `json:"dishCost,omitempty"`
	DishMinutes int      `json:"dishMinutes,omitempty"`
	AddOns      []string `json:"addOns,omitempty"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := make([]ItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemFromDomain(item))
	}

	return OrderDTO{
		ID:         aggregate.ID().Bytes(),
		CustomerID: aggregate.CustomerID().Bytes(),
		CreatedAt:  aggregate.CreatedAt(),
		Status:     int(aggregate.Status()),
		Items:      items,
	}
}

func itemFromDomain(item menu.FoodItem) ItemDTO {
	addOns := make([]string, 0, len(item.AddOns()))
	for _, addOn := range item.AddOns() {
		addOns = append(addOns, string(addOn.Kind()))
	}

	base := item.Base()
	return ItemDTO{
		DishID:      string(base.ID()),
		DishName:    base.Name(),
		DishCost:    base.Cost().String(),
		DishMinutes: base.DurationMinutes(),
		AddOns:      addOns,
	}
}

// toDomain converts a database DTO to an order aggregate using RestoreOrder,
// which revalidates the items and recomputes the total.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]menu.FoodItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, dto.CreatedAt, items, order.Status(dto.Status))
}

func itemToDomain(dto ItemDTO) (menu.FoodItem, error) {
	kinds := make([]menu.AddOnKind, 0, len(dto.AddOns))
	for _, kind := range dto.AddOns {
		kinds = append(kinds, menu.AddOnKind(kind))
	}

	if dto.DishName == "" && len(kinds) == 1 {
		return menu.StandaloneAddOn(kinds[0])
	}

	cost, err := kernel.MoneyFromString(dto.DishCost)
	if err != nil {
		return menu.FoodItem{}, err
	}

	base, err := menu.NewBaseDish(menu.DishID(dto.DishID), dto.DishName, cost, dto.DishMinutes)
	if err != nil {
		return menu.FoodItem{}, err
	}

	return menu.Compose(base, kinds...)
}
