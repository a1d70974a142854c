package facade

import (
	"time"

	"kebabhouse/internal/core/application/usecases/queries"
	"kebabhouse/internal/core/domain/model/order"
)

// OrderBean is the flat, front-end-neutral view of an order. Money values
// are fixed to two decimals; statuses use their canonical names.
type OrderBean struct {
	ID          string     `json:"id"`
	CustomerID  string     `json:"customerId"`
	Status      string     `json:"status"`
	Total       string     `json:"total"`
	Items       []ItemBean `json:"items"`
	CreatedAt   time.Time  `json:"createdAt"`
	PrepMinutes int        `json:"prepMinutes"`
}

// ItemBean is one composed food item inside an OrderBean.
type ItemBean struct {
	Description     string `json:"description"`
	Cost            string `json:"cost"`
	DurationMinutes int    `json:"durationMinutes"`
}

func beanFromOrder(o *order.Order) OrderBean {
	items := make([]ItemBean, 0, len(o.Items()))
	prepMinutes := 0
	for _, item := range o.Items() {
		items = append(items, ItemBean{
			Description:     item.Description(),
			Cost:            item.Cost().String(),
			DurationMinutes: item.DurationMinutes(),
		})
		prepMinutes += item.DurationMinutes()
	}

	return OrderBean{
		ID:          o.ID().String(),
		CustomerID:  o.CustomerID().String(),
		Status:      o.Status().String(),
		Total:       o.Total().String(),
		Items:       items,
		CreatedAt:   o.CreatedAt(),
		PrepMinutes: prepMinutes,
	}
}

func beansFromResponses(responses []queries.OrderQueryResponse) []OrderBean {
	beans := make([]OrderBean, 0, len(responses))
	for _, r := range responses {
		items := make([]ItemBean, 0, len(r.Items))
		for _, item := range r.Items {
			items = append(items, ItemBean{
				Description:     item.Description,
				Cost:            item.Cost.String(),
				DurationMinutes: item.DurationMinutes,
			})
		}
		beans = append(beans, OrderBean{
			ID:          r.ID.String(),
			CustomerID:  r.CustomerID.String(),
			Status:      r.Status.String(),
			Total:       r.Total.String(),
			Items:       items,
			CreatedAt:   r.CreatedAt,
			PrepMinutes: r.PrepMinutes,
		})
	}
	return beans
}
