package handler

import (
	"context"
	"net/http"

	"dinehub/internal/domain"
)

type ctxKey int

const identityKey ctxKey = 0

const sessionCookie = "session"

func identityFrom(r *http.Request) (domain.Identity, bool) {
	id, ok := r.Context().Value(identityKey).(domain.Identity)
	return id, ok
}

// requireRole resolves the session cookie and rejects callers whose role is
// not in the allow list. The resolved identity rides the request context.
func (h *Handler) requireRole(next http.HandlerFunc, roles ...domain.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil {
			writeProblem(w, http.StatusUnauthorized, "unauthorized", "missing session")
			return
		}
		id, ok, err := h.svc.Auth.Resolve(r.Context(), cookie.Value)
		if err != nil {
			h.writeError(w, err)
			return
		}
		if !ok {
			writeProblem(w, http.StatusUnauthorized, "unauthorized", "invalid or expired session")
			return
		}
		allowed := false
		for _, role := range roles {
			if id.Role == role {
				allowed = true
				break
			}
		}
		if !allowed {
			writeProblem(w, http.StatusForbidden, "forbidden", "insufficient role")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), identityKey, id)))
	}
}
