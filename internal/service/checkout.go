package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"dinehub/internal/domain"
	"dinehub/internal/gateway"
	"dinehub/internal/repository"
)

const (
	PaymentMethodCash = "cash"
	PaymentMethodCard = "card"
)

// CheckoutService turns a validated cart into either a pending cash order or
// a payment intent. Card orders are only written once the gateway confirms
// payment, so an abandoned checkout never leaves a phantom order behind.
type CheckoutService struct {
	menu      repository.MenuRepositoryInterface
	customers repository.CustomerRepositoryInterface
	orders    repository.OrderRepositoryInterface
	intents   repository.IntentRepositoryInterface
	gw        gateway.PaymentGateway
	events    EventPublisher
}

func NewCheckoutService(
	menu repository.MenuRepositoryInterface,
	customers repository.CustomerRepositoryInterface,
	orders repository.OrderRepositoryInterface,
	intents repository.IntentRepositoryInterface,
	gw gateway.PaymentGateway,
	events EventPublisher,
) *CheckoutService {
	return &CheckoutService{menu: menu, customers: customers, orders: orders, intents: intents, gw: gw, events: events}
}

func (s *CheckoutService) Checkout(ctx context.Context, req domain.CheckoutRequest) (domain.CheckoutResponse, error) {
	if strings.TrimSpace(req.Customer.Email) == "" {
		return domain.CheckoutResponse{}, domain.Validationf("customer email is required")
	}
	method := req.PaymentMethod
	if method == "" {
		method = PaymentMethodCash
	}
	if method != PaymentMethodCash && method != PaymentMethodCard {
		return domain.CheckoutResponse{}, domain.Validationf("unknown payment method %q", method)
	}

	lines, err := s.priceCart(ctx, req.Items)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}
	total := domain.Total(lines)

	customerID, err := s.customers.ResolveOrCreate(ctx, req.Customer)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}

	if method == PaymentMethodCard {
		metadata := map[string]string{"customer_id": strconv.FormatInt(customerID, 10)}
		intentID, err := s.gw.CreateIntent(ctx, lines, req.Customer.Email, metadata)
		if err != nil {
			return domain.CheckoutResponse{}, fmt.Errorf("payment intent: %w", err)
		}
		intent := domain.CheckoutIntent{IntentID: intentID, CustomerID: customerID, Lines: lines}
		if err := s.intents.Save(ctx, intent); err != nil {
			return domain.CheckoutResponse{}, err
		}
		return domain.CheckoutResponse{IntentID: intentID, TotalAmount: total}, nil
	}

	orderID, err := s.orders.CreateOrderTx(ctx, &customerID, domain.PaymentUnpaid, lines)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}
	_ = s.events.Publish(ctx, domain.OrderEvent{
		Event: domain.EventOrderCreated, OrderID: orderID, Status: domain.StatusPending, TotalAmount: total,
	})
	return domain.CheckoutResponse{OrderID: orderID, TotalAmount: total}, nil
}

// CheckoutWalkIn creates a cash order with no customer record, for orders an
// employee keys in at the counter.
func (s *CheckoutService) CheckoutWalkIn(ctx context.Context, items []domain.CartItem) (domain.CheckoutResponse, error) {
	lines, err := s.priceCart(ctx, items)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}
	total := domain.Total(lines)

	orderID, err := s.orders.CreateOrderTx(ctx, nil, domain.PaymentUnpaid, lines)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}
	_ = s.events.Publish(ctx, domain.OrderEvent{
		Event: domain.EventOrderCreated, OrderID: orderID, Status: domain.StatusPending, TotalAmount: total,
	})
	return domain.CheckoutResponse{OrderID: orderID, TotalAmount: total}, nil
}

// priceCart validates the cart and snapshots current prices into order lines.
// Nothing is written here; any invalid item aborts the whole checkout.
func (s *CheckoutService) priceCart(ctx context.Context, items []domain.CartItem) ([]domain.OrderLine, error) {
	if len(items) == 0 {
		return nil, domain.Validationf("cart is empty")
	}

	// Duplicate item ids merge into a single line with summed quantity.
	quantities := make(map[int64]int, len(items))
	order := make([]int64, 0, len(items))
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, domain.Validationf("invalid quantity %d for item %d", it.Quantity, it.ItemID)
		}
		if _, seen := quantities[it.ItemID]; !seen {
			order = append(order, it.ItemID)
		}
		quantities[it.ItemID] += it.Quantity
	}

	found, err := s.menu.LookupItems(ctx, order)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.MenuItem, len(found))
	for _, m := range found {
		byID[m.ID] = m
	}

	lines := make([]domain.OrderLine, 0, len(order))
	for _, id := range order {
		m, ok := byID[id]
		if !ok {
			return nil, domain.Validationf("item %d does not exist", id)
		}
		if !m.Available {
			return nil, domain.Validationf("item %d (%s) is not available", id, m.Name)
		}
		lines = append(lines, domain.OrderLine{
			ItemID:    m.ID,
			ItemName:  m.Name,
			Quantity:  quantities[id],
			UnitPrice: m.UnitPrice,
		})
	}
	return lines, nil
}
