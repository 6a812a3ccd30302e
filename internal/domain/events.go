package domain

import "time"

// Routing keys on the orders topic exchange.
const (
	EventOrderCreated  = "order.created"
	EventStatusChanged = "order.status_changed"
)

// OrderEvent is published after the owning transaction commits, so consumers
// never see an order the database does not have.
type OrderEvent struct {
	Event       string      `json:"event"`
	OrderID     int64       `json:"order_id"`
	Status      OrderStatus `json:"status"`
	TotalAmount int64       `json:"total_amount,omitempty"`
	EmployeeID  *int64      `json:"employee_id,omitempty"`
	OccurredAt  time.Time   `json:"occurred_at"`
}
