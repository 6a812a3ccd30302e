package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"dinehub/internal/domain"
)

type fakeMenu struct {
	items map[int64]domain.MenuItem
}

func (f *fakeMenu) LookupItems(_ context.Context, ids []int64) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, id := range ids {
		if it, ok := f.items[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeMenu) ListAll(context.Context) ([]domain.MenuItem, error) {
	var out []domain.MenuItem
	for _, it := range f.items {
		out = append(out, it)
	}
	return out, nil
}

func (f *fakeMenu) ListAvailable(ctx context.Context) ([]domain.MenuItem, error) {
	all, _ := f.ListAll(ctx)
	var out []domain.MenuItem
	for _, it := range all {
		if it.Available {
			out = append(out, it)
		}
	}
	return out, nil
}

func (f *fakeMenu) Create(_ context.Context, item domain.MenuItem) (int64, error) {
	id := int64(len(f.items) + 1)
	item.ID = id
	f.items[id] = item
	return id, nil
}

func (f *fakeMenu) SetAvailability(_ context.Context, id int64, available bool) (bool, error) {
	it, ok := f.items[id]
	if !ok {
		return false, nil
	}
	it.Available = available
	f.items[id] = it
	return true, nil
}

func (f *fakeMenu) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

type fakeCustomers struct {
	nextID  int64
	byEmail map[string]int64
}

func (f *fakeCustomers) GetByEmail(_ context.Context, email string) (domain.Customer, bool, error) {
	id, ok := f.byEmail[email]
	if !ok {
		return domain.Customer{}, false, nil
	}
	return domain.Customer{ID: id, Email: email}, true, nil
}

func (f *fakeCustomers) ResolveOrCreate(_ context.Context, info domain.CustomerInfo) (int64, error) {
	if id, ok := f.byEmail[info.Email]; ok {
		return id, nil
	}
	f.nextID++
	if f.byEmail == nil {
		f.byEmail = map[string]int64{}
	}
	f.byEmail[info.Email] = f.nextID
	return f.nextID, nil
}

func (f *fakeCustomers) Register(_ context.Context, c domain.Customer) (int64, error) {
	if _, ok := f.byEmail[c.Email]; ok {
		return 0, domain.Conflictf("email %s is already registered", c.Email)
	}
	f.nextID++
	if f.byEmail == nil {
		f.byEmail = map[string]int64{}
	}
	f.byEmail[c.Email] = f.nextID
	return f.nextID, nil
}

type storedOrder struct {
	customerID *int64
	employeeID *int64
	status     domain.OrderStatus
	lines      []domain.OrderLine
	intentID   string
}

type fakeOrders struct {
	mu       sync.Mutex
	nextID   int64
	orders   map[int64]*storedOrder
	byIntent map[string]int64
	failTx   error // when set, every write fails with this
}

func newFakeOrders() *fakeOrders {
	return &fakeOrders{orders: map[int64]*storedOrder{}, byIntent: map[string]int64{}}
}

func (f *fakeOrders) add(status domain.OrderStatus) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.orders[f.nextID] = &storedOrder{status: status}
	return f.nextID
}

func (f *fakeOrders) CreateOrderTx(_ context.Context, customerID *int64, _ domain.PaymentStatus, lines []domain.OrderLine) (int64, error) {
	if f.failTx != nil {
		return 0, f.failTx
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.orders[f.nextID] = &storedOrder{customerID: customerID, status: domain.StatusPending, lines: lines}
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
	cid := intent.CustomerID
	f.orders[f.nextID] = &storedOrder{customerID: &cid, status: domain.StatusPending, lines: intent.Lines, intentID: intent.IntentID}
	f.byIntent[intent.IntentID] = f.nextID
	return f.nextID, true, nil
}

func (f *fakeOrders) TransitionStatus(_ context.Context, id int64, from, to domain.OrderStatus, employeeID *int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok || o.status != from {
		return false, nil
	}
	o.status = to
	if employeeID != nil {
		o.employeeID = employeeID
	}
	return true, nil
}

func (f *fakeOrders) GetStatus(_ context.Context, id int64) (domain.OrderStatus, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return "", false, nil
	}
	return o.status, true, nil
}

func (f *fakeOrders) ListActive(context.Context) ([]domain.OrderView, error) {
	return nil, nil
}

func (f *fakeOrders) GetByID(_ context.Context, id int64) (domain.OrderView, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o, ok := f.orders[id]
	if !ok {
		return domain.OrderView{}, false, nil
	}
	v := domain.OrderView{OrderID: id, Status: o.status, TotalAmount: domain.Total(o.lines)}
	for _, l := range o.lines {
		v.Lines = append(v.Lines, domain.OrderLineView{ItemID: l.ItemID, ItemName: l.ItemName, Quantity: l.Quantity, UnitPrice: l.UnitPrice})
	}
	return v, true, nil
}

func (f *fakeOrders) ListByCustomerEmail(context.Context, string) ([]domain.OrderView, error) {
	return nil, nil
}

type fakeIntents struct {
	saved     map[string]domain.CheckoutIntent
	abandoned []string
}

func newFakeIntents() *fakeIntents {
	return &fakeIntents{saved: map[string]domain.CheckoutIntent{}}
}

func (f *fakeIntents) Save(_ context.Context, intent domain.CheckoutIntent) error {
	intent.Status = "created"
	intent.CreatedAt = time.Now()
	f.saved[intent.IntentID] = intent
	return nil
}

func (f *fakeIntents) Get(_ context.Context, intentID string) (domain.CheckoutIntent, bool, error) {
	intent, ok := f.saved[intentID]
	return intent, ok, nil
}

func (f *fakeIntents) MarkAbandoned(_ context.Context, intentID string) error {
	f.abandoned = append(f.abandoned, intentID)
	return nil
}

type fakeGateway struct {
	intentID string
	err      error
	lastMeta map[string]string
}

func (f *fakeGateway) CreateIntent(_ context.Context, _ []domain.OrderLine, _ string, metadata map[string]string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.lastMeta = metadata
	return f.intentID, nil
}

var errStorage = errors.New("storage down")
