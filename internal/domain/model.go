package domain

import "time"

type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusInProgress OrderStatus = "in_progress"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

// MenuItem prices are minor currency units (cents). The price here is only
// authoritative at the moment an order line is created.
type MenuItem struct {
	ID        int64
	Name      string
	UnitPrice int64
	Available bool
}

type Customer struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string // empty for guest customers created during checkout
	CreatedAt    time.Time
}

type Employee struct {
	ID           int64
	Name         string
	Username     string
	Email        string
	Phone        string
	Role         Role
	PasswordHash string
	HiredAt      time.Time
}

// Order is immutable after creation except for status, employee assignment
// and updated_at.
type Order struct {
	ID            int64
	CustomerID    *int64 // nil for walk-in orders
	EmployeeID    *int64 // set when an employee takes the order
	Status        OrderStatus
	PaymentStatus PaymentStatus
	IntentID      *string // payment intent that produced this order, card path only
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// OrderLine carries a frozen copy of the menu item's price at order-creation
// time. Later catalog changes never touch it.
type OrderLine struct {
	OrderID   int64
	ItemID    int64
	ItemName  string
	Quantity  int
	UnitPrice int64
}

// Total is the sum of quantity times the frozen unit price over all lines.
func Total(lines []OrderLine) int64 {
	var total int64
	for _, l := range lines {
		total += int64(l.Quantity) * l.UnitPrice
	}
	return total
}

// CheckoutIntent is the priced cart snapshot recorded when a card checkout
// creates a payment intent. The order row itself is only written once the
// gateway confirms payment.
type CheckoutIntent struct {
	IntentID   string
	CustomerID int64
	Lines      []OrderLine
	Status     string // created | abandoned | consumed
	CreatedAt  time.Time
}

// Identity is what an opaque session token resolves to.
type Identity struct {
	ID   int64
	Role Role
}

type Session struct {
	Token     string
	Identity  Identity
	ExpiresAt time.Time
}
