package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"dinehub/internal/domain"
	"dinehub/internal/service"
)

func setSessionCookie(w http.ResponseWriter, s domain.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    s.Token,
		Path:     "/",
		Expires:  s.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})
}

func (h *Handler) RegisterCustomer(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	id, err := h.svc.Auth.RegisterCustomer(r.Context(), req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"customer_id": id})
}

type loginRequest struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password"`
}

func (h *Handler) LoginCustomer(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	session, err := h.svc.Auth.LoginCustomer(r.Context(), req.Email, req.Password)
	if err != nil {
		if domain.IsValidation(err) {
			// Wrong credentials answer 401, not 400.
			writeProblem(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
			return
		}
		h.writeError(w, err)
		return
	}
	setSessionCookie(w, session)
	writeJSON(w, http.StatusOK, map[string]any{"customer_id": session.Identity.ID})
}

func (h *Handler) LoginEmployee(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "bad_json", "invalid JSON body")
		return
	}
	session, err := h.svc.Auth.LoginEmployee(r.Context(), req.Username, req.Password)
	if err != nil {
		if domain.IsValidation(err) {
			writeProblem(w, http.StatusUnauthorized, "unauthorized", "invalid credentials")
			return
		}
		h.writeError(w, err)
		return
	}
	setSessionCookie(w, session)
	writeJSON(w, http.StatusOK, map[string]any{"employee_id": session.Identity.ID, "role": session.Identity.Role})
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(sessionCookie); err == nil {
		if err := h.svc.Auth.Logout(r.Context(), cookie.Value); err != nil {
			h.writeError(w, err)
			return
		}
	}
	clearSessionCookie(w)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
