package handler

import (
	"encoding/json"
	"net/http"

	"dinehub/internal/domain"
	"dinehub/internal/service"
)

func (h *Handler) RegisterEmployee(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	id, err := h.svc.Staff.Register(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"employee_id": id})
}

type employeeView struct {
	ID       int64       `json:"employee_id"`
	Name     string      `json:"name"`
	Username string      `json:"username"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone,omitempty"`
	Role     domain.Role `json:"role"`
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.svc.Staff.List(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	views := make([]employeeView, 0, len(employees))
	for _, e := range employees {
		views = append(views, employeeView{ID: e.ID, Name: e.Name, Username: e.Username, Email: e.Email, Phone: e.Phone, Role: e.Role})
	}
	writeJSON(w, http.StatusOK, map[string]any{"employees": views})
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "employee_id")
	if !ok {
		return
	}
	identity, _ := identityFrom(r)
	if err := h.svc.Staff.Delete(r.Context(), identity.ID, id); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"employee_id": id})
}
