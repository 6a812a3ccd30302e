package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dinehub/internal/domain"
)

func staffFixture(orders *fakeOrders) (*Handler, *http.Cookie) {
	sessions := &fakeSessions{byToken: map[string]domain.Identity{
		"tok-emp": {ID: 3, Role: domain.RoleEmployee},
	}}
	h := newTestHandler(orders, nil, sessions, testSecret)
	return h, &http.Cookie{Name: sessionCookie, Value: "tok-emp"}
}

func patchOrder(t *testing.T, h *Handler, cookie *http.Cookie, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPatch, path, nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	Router(h).ServeHTTP(rec, req)
	return rec
}

func TestTakeOrder_Success(t *testing.T) {
	orders := newFakeOrders()
	id := orders.add(domain.StatusPending)
	h, cookie := staffFixture(orders)

	rec := patchOrder(t, h, cookie, "/api/orders/1/take")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
	}
	if s := orders.status[id]; s != domain.StatusInProgress {
		t.Fatalf("order status = %s, want in_progress", s)
	}
}

func TestTakeOrder_CompletedAnswers409(t *testing.T) {
	orders := newFakeOrders()
	id := orders.add(domain.StatusCompleted)
	h, cookie := staffFixture(orders)

	rec := patchOrder(t, h, cookie, "/api/orders/1/take")
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if s := orders.status[id]; s != domain.StatusCompleted {
		t.Fatalf("order status changed to %s", s)
	}
}

func TestTakeOrder_MissingAnswers409(t *testing.T) {
	h, cookie := staffFixture(newFakeOrders())

	rec := patchOrder(t, h, cookie, "/api/orders/42/take")
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestTakeOrder_NoSessionAnswers401(t *testing.T) {
	orders := newFakeOrders()
	orders.add(domain.StatusPending)
	h, _ := staffFixture(orders)

	rec := patchOrder(t, h, nil, "/api/orders/1/take")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestCompleteOrder_PendingAnswers409(t *testing.T) {
	orders := newFakeOrders()
	orders.add(domain.StatusPending)
	h, cookie := staffFixture(orders)

	rec := patchOrder(t, h, cookie, "/api/orders/1/complete")
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestCompleteOrder_InProgress(t *testing.T) {
	orders := newFakeOrders()
	id := orders.add(domain.StatusInProgress)
	h, cookie := staffFixture(orders)

	rec := patchOrder(t, h, cookie, "/api/orders/1/complete")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body)
	}
	if s := orders.status[id]; s != domain.StatusCompleted {
		t.Fatalf("order status = %s, want completed", s)
	}
}

func TestGetOrder_NotFoundAnswers404(t *testing.T) {
	h, cookie := staffFixture(newFakeOrders())

	req := httptest.NewRequest(http.MethodGet, "/api/orders/9", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	Router(h).ServeHTTP(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListCustomerOrders_MissingEmailAnswers400(t *testing.T) {
	h, _ := staffFixture(newFakeOrders())

	req := httptest.NewRequest(http.MethodGet, "/api/orders/customer", nil)
	rec := httptest.NewRecorder()
	Router(h).ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
