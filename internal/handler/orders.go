package handler

import (
	"net/http"
	"strconv"
)

func (h *Handler) ListActiveOrders(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.Fulfillment.ActiveOrders(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": views})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "order_id")
	if !ok {
		return
	}
	view, err := h.svc.Fulfillment.Order(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) ListCustomerOrders(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.Fulfillment.CustomerOrders(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": views})
}

func (h *Handler) TakeOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "order_id")
	if !ok {
		return
	}
	identity, _ := identityFrom(r)
	if err := h.svc.Status.Take(r.Context(), id, identity.ID); err != nil {
		h.writeError(w, err)
		return
	}
	h.lg.Info("order_taken", map[string]any{"order_id": id, "employee_id": identity.ID})
	writeJSON(w, http.StatusOK, map[string]any{"order_id": id, "employee_id": identity.ID})
}

func (h *Handler) CompleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "order_id")
	if !ok {
		return
	}
	if err := h.svc.Status.Complete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	h.lg.Info("order_completed", map[string]any{"order_id": id})
	writeJSON(w, http.StatusOK, map[string]any{"order_id": id})
}

func (h *Handler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "order_id")
	if !ok {
		return
	}
	if err := h.svc.Status.Cancel(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	h.lg.Info("order_cancelled", map[string]any{"order_id": id})
	writeJSON(w, http.StatusOK, map[string]any{"order_id": id})
}

func pathID(w http.ResponseWriter, r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(key), 10, 64)
	if err != nil || id <= 0 {
		writeProblem(w, http.StatusBadRequest, "bad_id", "invalid "+key)
		return 0, false
	}
	return id, true
}
