package service

import (
	"context"
	"encoding/json"

	"dinehub/internal/domain"
	"dinehub/internal/gateway"
	"dinehub/internal/repository"
)

// Gateway event types we react to. Anything else is acknowledged and ignored.
const (
	eventPaymentSucceeded = "payment.succeeded"
	eventPaymentFailed    = "payment.failed"
	eventPaymentExpired   = "payment.expired"
)

// PaymentService reconciles asynchronous gateway notifications into orders.
// The gateway may deliver the same notification more than once; the unique
// intent_id constraint on orders makes replays return the original order.
type PaymentService struct {
	intents repository.IntentRepositoryInterface
	orders  repository.OrderRepositoryInterface
	events  EventPublisher
	secret  []byte
}

func NewPaymentService(
	intents repository.IntentRepositoryInterface,
	orders repository.OrderRepositoryInterface,
	events EventPublisher,
	secret string,
) *PaymentService {
	return &PaymentService{intents: intents, orders: orders, events: events, secret: []byte(secret)}
}

// HandleWebhook verifies and applies one gateway notification. The returned
// order id is zero for events that do not produce an order. Errors other than
// validation and signature failures mean the caller must NOT acknowledge the
// delivery, so the gateway retries.
func (s *PaymentService) HandleWebhook(ctx context.Context, body []byte, signature string) (int64, error) {
	if err := gateway.VerifySignature(s.secret, body, signature); err != nil {
		return 0, err
	}

	var ev domain.WebhookEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return 0, domain.Validationf("malformed webhook payload")
	}
	if ev.IntentID == "" {
		return 0, domain.Validationf("webhook payload missing intent_id")
	}

	switch ev.Type {
	case eventPaymentSucceeded:
		return s.applySucceeded(ctx, ev)
	case eventPaymentFailed, eventPaymentExpired:
		return 0, s.intents.MarkAbandoned(ctx, ev.IntentID)
	default:
		return 0, nil
	}
}

func (s *PaymentService) applySucceeded(ctx context.Context, ev domain.WebhookEvent) (int64, error) {
	intent, ok, err := s.intents.Get(ctx, ev.IntentID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, domain.Validationf("unknown payment intent %s", ev.IntentID)
	}

	orderID, created, err := s.orders.CreatePaidOrderTx(ctx, intent)
	if err != nil {
		return 0, err
	}
	if created {
		_ = s.events.Publish(ctx, domain.OrderEvent{
			Event:       domain.EventOrderCreated,
			OrderID:     orderID,
			Status:      domain.StatusPending,
			TotalAmount: domain.Total(intent.Lines),
		})
	}
	return orderID, nil
}
