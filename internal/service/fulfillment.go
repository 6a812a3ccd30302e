package service

import (
	"context"
	"strings"

	"dinehub/internal/domain"
	"dinehub/internal/repository"
)

// FulfillmentService serves the read views for employee dashboards and
// customer history. Pure queries, latest committed state, no cache.
type FulfillmentService struct {
	orders repository.OrderRepositoryInterface
}

func NewFulfillmentService(orders repository.OrderRepositoryInterface) *FulfillmentService {
	return &FulfillmentService{orders: orders}
}

func (s *FulfillmentService) ActiveOrders(ctx context.Context) ([]domain.OrderView, error) {
	return s.orders.ListActive(ctx)
}

func (s *FulfillmentService) Order(ctx context.Context, orderID int64) (domain.OrderView, error) {
	view, ok, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return domain.OrderView{}, err
	}
	if !ok {
		return domain.OrderView{}, domain.ErrNotFound
	}
	return view, nil
}

func (s *FulfillmentService) CustomerOrders(ctx context.Context, email string) ([]domain.OrderView, error) {
	if strings.TrimSpace(email) == "" {
		return nil, domain.Validationf("email is required")
	}
	return s.orders.ListByCustomerEmail(ctx, email)
}
