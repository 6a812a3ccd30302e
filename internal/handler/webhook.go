package handler

import (
	"io"
	"net/http"

	"dinehub/internal/gateway"
)

// PaymentWebhook receives gateway notifications. A 2xx acknowledges the
// delivery, including idempotent replays; internal failures answer 5xx so the
// gateway keeps retrying.
func (h *Handler) PaymentWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_body", "could not read body")
		return
	}
	signature := r.Header.Get(gateway.SignatureHeader)

	orderID, err := h.svc.Payments.HandleWebhook(r.Context(), body, signature)
	if err != nil {
		h.writeError(w, err)
		return
	}
	resp := map[string]any{"received": true}
	if orderID != 0 {
		resp["order_id"] = orderID
	}
	writeJSON(w, http.StatusOK, resp)
}
