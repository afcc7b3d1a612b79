package models

import "time"

// OrderStatus is the lifecycle state of an order. Orders are never hard
// deleted; cancellation is a status transition.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s OrderStatus) bool {
	return s == OrderPending || s == OrderCompleted || s == OrderCancelled
}

// Terminal reports whether no further transitions are permitted.
func (s OrderStatus) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

// CanTransition reports whether a client-side transition from -> to is
// allowed: pending may move to completed or cancelled, terminal states
// stay put. Admin updates bypass this guard on purpose.
func CanTransition(from, to OrderStatus) bool {
	if !ValidOrderStatus(to) {
		return false
	}
	return from == OrderPending && to != OrderPending
}

// OrderVariant is the size chosen for an order line, when the cake has
// size variants.
type OrderVariant struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

// OrderItem represents a single item within an order. Cart lines share
// this shape.
type OrderItem struct {
	CakeID   string        `json:"cake_id"`
	Name     string        `json:"name"`
	Image    string        `json:"image"`
	Price    float64       `json:"price"` // unit price at the time of order
	Quantity int           `json:"quantity"`
	Variant  *OrderVariant `json:"variant,omitempty"`
}

// Order represents a customer order. User name/phone/address are a
// denormalized snapshot taken at order time.
type Order struct {
	ID          string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID      string      `json:"user_id" gorm:"index;type:varchar(36)"`
	UserName    string      `json:"user_name"`
	UserPhone   string      `json:"user_phone"`
	UserAddress string      `json:"user_address"`
	Items       []OrderItem `json:"items" gorm:"serializer:json"`
	TotalPrice  float64     `json:"total_price"`
	Status      OrderStatus `json:"status"`
	CreatedAt   time.Time   `json:"created_at"`
}

// Editable reports whether user-facing contact edits and self-service
// cancellation are still permitted.
func (o *Order) Editable() bool {
	return o.Status == OrderPending
}
