package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"dinehub/internal/domain"
)

// SessionRepositoryInterface is the session-store abstraction: an opaque
// token maps to a caller identity and role, nothing more.
type SessionRepositoryInterface interface {
	Create(ctx context.Context, s domain.Session) error
	Resolve(ctx context.Context, token string) (domain.Identity, bool, error)
	Delete(ctx context.Context, token string) error
}

type SessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) SessionRepositoryInterface {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(ctx context.Context, s domain.Session) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sessions (token, principal_id, role, expires_at)
		VALUES ($1, $2, $3, $4)
	`, s.Token, s.Identity.ID, s.Identity.Role, s.ExpiresAt)
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) Resolve(ctx context.Context, token string) (domain.Identity, bool, error) {
	var id domain.Identity
	var expires time.Time
	err := r.db.QueryRowContext(ctx, `
		SELECT principal_id, role, expires_at FROM sessions WHERE token=$1
	`, token).Scan(&id.ID, &id.Role, &expires)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Identity{}, false, nil
	}
	if err != nil {
		return domain.Identity{}, false, fmt.Errorf("failed to resolve session: %w", err)
	}
	if time.Now().After(expires) {
		_ = r.Delete(ctx, token)
		return domain.Identity{}, false, nil
	}
	return id, true, nil
}

func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token=$1`, token)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
