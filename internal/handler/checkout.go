package handler

import (
	"encoding/json"
	"net/http"

	"dinehub/internal/domain"
)

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	resp, err := h.svc.Checkout.Checkout(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.lg.Info("checkout_accepted", map[string]any{
		"order_id": resp.OrderID, "intent_id": resp.IntentID, "total": resp.TotalAmount,
	})
	writeJSON(w, http.StatusOK, resp)
}

type walkInRequest struct {
	Items []domain.CartItem `json:"items"`
}

func (h *Handler) CheckoutWalkIn(w http.ResponseWriter, r *http.Request) {
	var req walkInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	resp, err := h.svc.Checkout.CheckoutWalkIn(r.Context(), req.Items)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
