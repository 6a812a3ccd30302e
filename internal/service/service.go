package service

import (
	"dinehub/internal/gateway"
	"dinehub/internal/repository"
)

type Service struct {
	Catalog     *CatalogService
	Checkout    *CheckoutService
	Payments    *PaymentService
	Status      *StatusService
	Fulfillment *FulfillmentService
	Auth        *AuthService
	Staff       *StaffService
}

func New(repo *repository.Repository, gw gateway.PaymentGateway, events EventPublisher, webhookSecret string) *Service {
	return &Service{
		Catalog:     NewCatalogService(repo.Menu),
		Checkout:    NewCheckoutService(repo.Menu, repo.Customers, repo.Orders, repo.Intents, gw, events),
		Payments:    NewPaymentService(repo.Intents, repo.Orders, events, webhookSecret),
		Status:      NewStatusService(repo.Orders, events),
		Fulfillment: NewFulfillmentService(repo.Orders),
		Auth:        NewAuthService(repo.Customers, repo.Employees, repo.Sessions),
		Staff:       NewStaffService(repo.Employees),
	}
}
