package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"dinehub/internal/connections/rabbitmq"
	"dinehub/internal/domain"
	"dinehub/internal/logger"
)

// EventPublisher announces committed order changes. Publishing happens after
// the database transaction, so a lost event never implies a lost order.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.OrderEvent) error
}

type RabbitPublisher struct {
	client *rabbitmq.Client
	lg     *logger.Logger
}

func NewRabbitPublisher(client *rabbitmq.Client, lg *logger.Logger) *RabbitPublisher {
	return &RabbitPublisher{client: client, lg: lg}
}

func (p *RabbitPublisher) Publish(ctx context.Context, event domain.OrderEvent) error {
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal order event: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := p.client.Publish(ctx, event.Event, body); err != nil {
		p.lg.Error("event_publish_failed", err, map[string]any{"event": event.Event, "order_id": event.OrderID})
		return err
	}
	return nil
}

// NopPublisher is used in tests and when the broker is disabled.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, domain.OrderEvent) error { return nil }
