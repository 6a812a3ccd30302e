package domain

import "time"

type CartItem struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

type CustomerInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

type CheckoutRequest struct {
	Customer CustomerInfo `json:"customer"`
	Items    []CartItem   `json:"items"`
	// "cash" creates a pending order immediately; "card" creates a payment
	// intent and defers the order to the webhook.
	PaymentMethod string `json:"payment_method"`
}

type CheckoutResponse struct {
	OrderID     int64  `json:"order_id,omitempty"`
	IntentID    string `json:"intent_id,omitempty"`
	TotalAmount int64  `json:"total_amount"`
}

// WebhookEvent is the payment gateway's notification payload. The raw body is
// HMAC-signed; Type distinguishes succeeded from failed/expired intents.
type WebhookEvent struct {
	Type     string            `json:"type"`
	IntentID string            `json:"intent_id"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

type OrderLineView struct {
	ItemID    int64  `json:"item_id"`
	ItemName  string `json:"item_name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
}

type OrderView struct {
	OrderID       int64           `json:"order_id"`
	CustomerName  string          `json:"customer_name,omitempty"`
	EmployeeID    *int64          `json:"employee_id,omitempty"`
	Status        OrderStatus     `json:"status"`
	PaymentStatus PaymentStatus   `json:"payment_status"`
	TotalAmount   int64           `json:"total_amount"`
	Lines         []OrderLineView `json:"items"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type MenuItemView struct {
	ID        int64  `json:"item_id"`
	Name      string `json:"name"`
	UnitPrice int64  `json:"unit_price"`
	Available bool   `json:"available"`
}
