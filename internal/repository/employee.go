package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dinehub/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type EmployeeRepositoryInterface interface {
	GetByUsername(ctx context.Context, username string) (domain.Employee, bool, error)
	Create(ctx context.Context, e domain.Employee) (int64, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) EmployeeRepositoryInterface {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetByUsername(ctx context.Context, username string) (domain.Employee, bool, error) {
	var e domain.Employee
	err := r.db.QueryRowContext(ctx, `
		SELECT employee_id, name, username, email, COALESCE(phone,''), role, password_hash, hired_at
		FROM employees WHERE username=$1
	`, username).Scan(&e.ID, &e.Name, &e.Username, &e.Email, &e.Phone, &e.Role, &e.PasswordHash, &e.HiredAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Employee{}, false, nil
	}
	if err != nil {
		return domain.Employee{}, false, fmt.Errorf("failed to get employee: %w", err)
	}
	return e, true, nil
}

func (r *EmployeeRepository) Create(ctx context.Context, e domain.Employee) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO employees (name, username, email, phone, role, password_hash, hired_at)
		VALUES ($1, $2, $3, NULLIF($4,''), $5, $6, NOW())
		RETURNING employee_id
	`, e.Name, e.Username, e.Email, e.Phone, e.Role, e.PasswordHash).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, domain.Conflictf("username or email already taken")
		}
		return 0, fmt.Errorf("failed to insert employee: %w", err)
	}
	return id, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT employee_id, name, username, email, COALESCE(phone,''), role, hired_at
		FROM employees ORDER BY employee_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var out []domain.Employee
	for rows.Next() {
		var e domain.Employee
		if err := rows.Scan(&e.ID, &e.Name, &e.Username, &e.Email, &e.Phone, &e.Role, &e.HiredAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE employee_id=$1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete employee: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
