package notifier

import (
	"context"
	"encoding/json"

	"dinehub/internal/connections/rabbitmq"
	"dinehub/internal/domain"
	"dinehub/internal/logger"
)

// Run consumes order events and logs them for the kitchen display. Messages
// that fail to decode go back to the broker unacked exactly once.
func Run(ctx context.Context, client *rabbitmq.Client) error {
	lg := logger.New("notifier")

	if err := client.DeclareTopology(); err != nil {
		return err
	}
	deliveries, err := client.Consume("notifications.q", "notifier", 10)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case d, open := <-deliveries:
			if !open {
				return nil
			}
			var ev domain.OrderEvent
			if err := json.Unmarshal(d.Body, &ev); err != nil {
				lg.Error("event_decode_failed", err, map[string]any{"routing_key": d.RoutingKey})
				_ = d.Nack(false, !d.Redelivered)
				continue
			}
			lg.Info("order_event", map[string]any{
				"event":    ev.Event,
				"order_id": ev.OrderID,
				"status":   ev.Status,
				"total":    ev.TotalAmount,
			})
			_ = d.Ack(false)
		}
	}
}
