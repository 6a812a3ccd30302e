package handler

import (
	"encoding/json"
	"net/http"

	"dinehub/internal/domain"
	"dinehub/internal/service"
)

func menuViews(items []domain.MenuItem) []domain.MenuItemView {
	out := make([]domain.MenuItemView, 0, len(items))
	for _, it := range items {
		out = append(out, domain.MenuItemView{ID: it.ID, Name: it.Name, UnitPrice: it.UnitPrice, Available: it.Available})
	}
	return out
}

// PublicMenu lists only available items, for the customer-facing cart.
func (h *Handler) PublicMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Catalog.PublicMenu(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": menuViews(items)})
}

func (h *Handler) AdminMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Catalog.FullMenu(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": menuViews(items)})
}

func (h *Handler) AddMenuItem(w http.ResponseWriter, r *http.Request) {
	var req service.AddMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	id, err := h.svc.Catalog.AddItem(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item_id": id})
}

type availabilityRequest struct {
	Available bool `json:"available"`
}

func (h *Handler) SetMenuAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "item_id")
	if !ok {
		return
	}
	var req availabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	if err := h.svc.Catalog.SetAvailability(r.Context(), id, req.Available); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item_id": id, "available": req.Available})
}

func (h *Handler) DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "item_id")
	if !ok {
		return
	}
	if err := h.svc.Catalog.DeleteItem(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"item_id": id})
}
