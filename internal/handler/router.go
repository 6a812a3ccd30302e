package handler

import (
	"net/http"

	"dinehub/internal/domain"
)

func Router(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Public surface.
	mux.HandleFunc("GET /api/menu", h.PublicMenu)
	mux.HandleFunc("POST /api/checkout", h.Checkout)
	mux.HandleFunc("POST /api/register", h.RegisterCustomer)
	mux.HandleFunc("POST /api/login", h.LoginCustomer)
	mux.HandleFunc("POST /api/logout", h.Logout)
	mux.HandleFunc("GET /api/orders/customer", h.ListCustomerOrders)
	mux.HandleFunc("GET /qr", h.CustomerQR)

	// Payment gateway callback, authenticated by signature rather than session.
	mux.HandleFunc("POST /webhook/payment", h.PaymentWebhook)

	// Fulfillment surface for staff.
	staff := []domain.Role{domain.RoleEmployee, domain.RoleAdmin}
	mux.HandleFunc("POST /employee/login", h.LoginEmployee)
	mux.HandleFunc("POST /employee/logout", h.Logout)
	mux.HandleFunc("GET /api/orders", h.requireRole(h.ListActiveOrders, staff...))
	mux.HandleFunc("GET /api/orders/{order_id}", h.requireRole(h.GetOrder, staff...))
	mux.HandleFunc("POST /api/orders/walkin", h.requireRole(h.CheckoutWalkIn, staff...))
	mux.HandleFunc("PATCH /api/orders/{order_id}/take", h.requireRole(h.TakeOrder, staff...))
	mux.HandleFunc("PATCH /api/orders/{order_id}/complete", h.requireRole(h.CompleteOrder, staff...))
	mux.HandleFunc("PATCH /api/orders/{order_id}/cancel", h.requireRole(h.CancelOrder, staff...))

	// Admin-only management.
	mux.HandleFunc("GET /employee/menu", h.requireRole(h.AdminMenu, domain.RoleAdmin))
	mux.HandleFunc("POST /employee/menu", h.requireRole(h.AddMenuItem, domain.RoleAdmin))
	mux.HandleFunc("PUT /employee/menu/{item_id}", h.requireRole(h.SetMenuAvailability, domain.RoleAdmin))
	mux.HandleFunc("DELETE /employee/menu/{item_id}", h.requireRole(h.DeleteMenuItem, domain.RoleAdmin))
	mux.HandleFunc("POST /employee/register", h.requireRole(h.RegisterEmployee, domain.RoleAdmin))
	mux.HandleFunc("GET /employee/list", h.requireRole(h.ListEmployees, domain.RoleAdmin))
	mux.HandleFunc("DELETE /employee/{employee_id}", h.requireRole(h.DeleteEmployee, domain.RoleAdmin))

	return mux
}
