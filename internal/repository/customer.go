package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dinehub/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type CustomerRepositoryInterface interface {
	GetByEmail(ctx context.Context, email string) (domain.Customer, bool, error)
	ResolveOrCreate(ctx context.Context, info domain.CustomerInfo) (int64, error)
	Register(ctx context.Context, c domain.Customer) (int64, error)
}

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) CustomerRepositoryInterface {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (domain.Customer, bool, error) {
	var c domain.Customer
	err := r.db.QueryRowContext(ctx, `
		SELECT customer_id, name, email, COALESCE(phone,''), COALESCE(password_hash,''), created_at
		FROM customers WHERE email=$1
	`, email).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.PasswordHash, &c.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Customer{}, false, nil
	}
	if err != nil {
		return domain.Customer{}, false, fmt.Errorf("failed to get customer: %w", err)
	}
	return c, true, nil
}

// ResolveOrCreate returns the customer id for an email, creating a guest row
// when none exists. The upsert keeps two concurrent checkouts for a new
// customer from racing each other.
func (r *CustomerRepository) ResolveOrCreate(ctx context.Context, info domain.CustomerInfo) (int64, error) {
	name := info.Name
	if name == "" {
		name = "Guest"
	}
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO customers (name, email, phone)
		VALUES ($1, $2, NULLIF($3, ''))
		ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		RETURNING customer_id
	`, name, info.Email, info.Phone).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve customer: %w", err)
	}
	return id, nil
}

func (r *CustomerRepository) Register(ctx context.Context, c domain.Customer) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO customers (name, email, phone, password_hash)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING customer_id
	`, c.Name, c.Email, c.Phone, c.PasswordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, domain.Conflictf("email %s is already registered", c.Email)
		}
		return 0, fmt.Errorf("failed to register customer: %w", err)
	}
	return id, nil
}
