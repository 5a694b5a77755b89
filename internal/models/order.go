package models

import (
	"time"
)

type Order struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	OrderTime  time.Time `json:"order_time" gorm:"not null"`
	OrderType  string    `json:"order_type" gorm:"not null"` // dine-in, takeout, delivery
	TableID    *uint     `json:"table_id"`                   // set only for dine-in
	EmployeeID uint      `json:"employee_id" gorm:"not null"`
	Status     string    `json:"status" gorm:"default:'new'"` // new, preparing, served, paid, cancelled
	Subtotal   float64   `json:"subtotal" gorm:"type:decimal(10,2);default:0.00"`
	Tax        float64   `json:"tax" gorm:"type:decimal(10,2);default:0.00"`
	Total      float64   `json:"total" gorm:"type:decimal(10,2);default:0.00"`

	OrderItems []OrderItem `json:"order_items,omitempty" gorm:"foreignKey:OrderID"`
}

type OrderItem struct {
	ID                  uint   `json:"id" gorm:"primaryKey"`
	OrderID             uint   `json:"order_id" gorm:"not null"`
	MenuItemID          uint   `json:"menu_item_id" gorm:"not null"`
	Quantity            int    `json:"quantity" gorm:"default:1"`
	SpecialInstructions string `json:"special_instructions" gorm:"type:text"`
	// Price is snapshotted from the menu at order time and grows with each
	// applied customization; later menu price changes never touch it.
	Price float64 `json:"price" gorm:"type:decimal(10,2);not null"`

	Customizations []OrderItemCustomization `json:"customizations,omitempty" gorm:"foreignKey:OrderItemID"`
}

// OrderItemCustomization is one application of a menu customization to an
// order item. Applying the same customization twice creates two rows and
// charges twice.
type OrderItemCustomization struct {
	ID              uint `json:"id" gorm:"primaryKey"`
	OrderItemID     uint `json:"order_item_id" gorm:"not null"`
	CustomizationID uint `json:"customization_id" gorm:"not null"`
}

type OrderType string

const (
	OrderDineIn   OrderType = "dine-in"
	OrderTakeout  OrderType = "takeout"
	OrderDelivery OrderType = "delivery"
)

func ValidOrderType(t string) bool {
	switch OrderType(t) {
	case OrderDineIn, OrderTakeout, OrderDelivery:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderNew       OrderStatus = "new"
	OrderPreparing OrderStatus = "preparing"
	OrderServed    OrderStatus = "served"
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

// orderTransitions lists the legal status edges. paid and cancelled are
// terminal; cancellation is reachable from every non-terminal state.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderNew:       {OrderPreparing, OrderCancelled},
	OrderPreparing: {OrderServed, OrderCancelled},
	OrderServed:    {OrderPaid, OrderCancelled},
	OrderPaid:      {},
	OrderCancelled: {},
}

// CanTransitionTo reports whether an order may move from s to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func ValidOrderStatus(s string) bool {
	_, ok := orderTransitions[OrderStatus(s)]
	return ok
}
