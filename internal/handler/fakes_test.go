package handler

import (
	"context"
	"errors"
	"sync"

	"dinehub/internal/domain"
	"dinehub/internal/logger"
	"dinehub/internal/repository"
	"dinehub/internal/service"
)

var errStorage = errors.New("storage down")

type fakeOrders struct {
	mu       sync.Mutex
	nextID   int64
	status   map[int64]domain.OrderStatus
	byIntent map[string]int64
	failTx   error
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{status: map[int64]domain.OrderStatus{}, byIntent: map[string]int64{}}
}

func (f *fakeOrders) add(s domain.OrderStatus) int64 {
	f.nextID++
	f.status[f.nextID] = s
	return f.nextID
}

func (f *fakeOrders) CreateOrderTx(_ context.Context, _ *int64, _ domain.PaymentStatus, _ []domain.OrderLine) (int64, error) {
	if f.failTx != nil {
		return 0, f.failTx
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.status[f.nextID] = domain.StatusPending
	return f.nextID, nil
}

func (f *fakeOrders) CreatePaidOrderTx(_ context.Context, intent domain.CheckoutIntent) (int64, bool, error) {
	if f.failTx != nil {
		return 0, false, f.failTx
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if id, ok := f.byIntent[intent.IntentID]; ok {
		return id, false, nil
	}
	f.nextID++
	f.status[f.nextID] = domain.StatusPending
	f.byIntent[intent.IntentID] = f.nextID
	return f.nextID, true, nil
}

func (f *fakeOrders) TransitionStatus(_ context.Context, id int64, from, to domain.OrderStatus, _ *int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status[id] != from {
		return false, nil
	}
	f.status[id] = to
	return true, nil
}

func (f *fakeOrders) GetStatus(_ context.Context, id int64) (domain.OrderStatus, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.status[id]
	return s, ok, nil
}

func (f *fakeOrders) ListActive(context.Context) ([]domain.OrderView, error) {
	var out []domain.OrderView
	for id, s := range f.status {
		if s == domain.StatusPending || s == domain.StatusInProgress {
			out = append(out, domain.OrderView{OrderID: id, Status: s})
		}
	}
	return out, nil
}

func (f *fakeOrders) GetByID(_ context.Context, id int64) (domain.OrderView, bool, error) {
	s, ok := f.status[id]
	if !ok {
		return domain.OrderView{}, false, nil
	}
	return domain.OrderView{OrderID: id, Status: s}, true, nil
}

func (f *fakeOrders) ListByCustomerEmail(context.Context, string) ([]domain.OrderView, error) {
	return nil, nil
}

type fakeIntents struct {
	saved map[string]domain.CheckoutIntent
}

func (f *fakeIntents) Save(_ context.Context, intent domain.CheckoutIntent) error {
	f.saved[intent.IntentID] = intent
	return nil
}

func (f *fakeIntents) Get(_ context.Context, id string) (domain.CheckoutIntent, bool, error) {
	intent, ok := f.saved[id]
	return intent, ok, nil
}

func (f *fakeIntents) MarkAbandoned(context.Context, string) error { return nil }

type fakeSessions struct {
	byToken map[string]domain.Identity
}

func (f *fakeSessions) Create(_ context.Context, s domain.Session) error {
	f.byToken[s.Token] = s.Identity
	return nil
}

func (f *fakeSessions) Resolve(_ context.Context, token string) (domain.Identity, bool, error) {
	id, ok := f.byToken[token]
	return id, ok, nil
}

func (f *fakeSessions) Delete(_ context.Context, token string) error {
	delete(f.byToken, token)
	return nil
}

// newTestHandler wires a handler over fakes. Only the repositories a test
// exercises need to be real fakes; the rest stay nil.
func newTestHandler(orders *fakeOrders, intents *fakeIntents, sessions *fakeSessions, secret string) *Handler {
	repo := &repository.Repository{Orders: orders}
	if intents != nil {
		repo.Intents = intents
	}
	if sessions != nil {
		repo.Sessions = sessions
	}
	svc := service.New(repo, nil, service.NopPublisher{}, secret)
	return New(svc, logger.New("test"), "http://localhost/menu")
}
