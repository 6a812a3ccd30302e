package service

import (
	"context"

	"dinehub/internal/domain"
	"dinehub/internal/repository"
)

// StatusService advances orders through the forward-only lifecycle. Every
// transition is a single conditional update on (id, expected status), so two
// employees racing for the same order resolve to exactly one winner.
type StatusService struct {
	orders repository.OrderRepositoryInterface
	events EventPublisher
}

func NewStatusService(orders repository.OrderRepositoryInterface, events EventPublisher) *StatusService {
	return &StatusService{orders: orders, events: events}
}

// Take claims a pending order for an employee.
func (s *StatusService) Take(ctx context.Context, orderID, employeeID int64) error {
	return s.transition(ctx, orderID, domain.StatusPending, domain.StatusInProgress, &employeeID)
}

// Complete finishes an order the kitchen is working on.
func (s *StatusService) Complete(ctx context.Context, orderID int64) error {
	return s.transition(ctx, orderID, domain.StatusInProgress, domain.StatusCompleted, nil)
}

// Cancel voids a pending cash order. Card orders only ever exist paid, so
// this is the one path into the cancelled state.
func (s *StatusService) Cancel(ctx context.Context, orderID int64) error {
	return s.transition(ctx, orderID, domain.StatusPending, domain.StatusCancelled, nil)
}

func (s *StatusService) transition(ctx context.Context, orderID int64, from, to domain.OrderStatus, employeeID *int64) error {
	if !domain.CanTransition(from, to) {
		return domain.Conflictf("order status cannot move from %s to %s", from, to)
	}
	ok, err := s.orders.TransitionStatus(ctx, orderID, from, to, employeeID)
	if err != nil {
		return err
	}
	if !ok {
		// Zero rows: either the order does not exist or it is in another
		// state. Both are conflicts to the caller, with different messages.
		current, found, err := s.orders.GetStatus(ctx, orderID)
		if err != nil {
			return err
		}
		if !found {
			return domain.Conflictf("order %d not found", orderID)
		}
		return domain.Conflictf("order %d is %s, expected %s", orderID, current, from)
	}

	_ = s.events.Publish(ctx, domain.OrderEvent{
		Event:      domain.EventStatusChanged,
		OrderID:    orderID,
		Status:     to,
		EmployeeID: employeeID,
	})
	return nil
}
