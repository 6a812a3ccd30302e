package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"dinehub/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
)

type MenuRepositoryInterface interface {
	LookupItems(ctx context.Context, ids []int64) ([]domain.MenuItem, error)
	ListAll(ctx context.Context) ([]domain.MenuItem, error)
	ListAvailable(ctx context.Context) ([]domain.MenuItem, error)
	Create(ctx context.Context, item domain.MenuItem) (int64, error)
	SetAvailability(ctx context.Context, id int64, available bool) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type MenuRepository struct {
	db *sql.DB
}

func NewMenuRepository(db *sql.DB) MenuRepositoryInterface {
	return &MenuRepository{db: db}
}

// LookupItems fetches all referenced items in one query. Ids that do not
// exist are simply absent from the result; the caller decides what that means.
func (r *MenuRepository) LookupItems(ctx context.Context, ids []int64) ([]domain.MenuItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	query := fmt.Sprintf(`
		SELECT item_id, item_name, unit_price, available
		FROM menu_items WHERE item_id IN (%s)
	`, strings.Join(placeholders, ","))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to look up menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var it domain.MenuItem
		if err := rows.Scan(&it.ID, &it.Name, &it.UnitPrice, &it.Available); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *MenuRepository) ListAll(ctx context.Context) ([]domain.MenuItem, error) {
	return r.list(ctx, `SELECT item_id, item_name, unit_price, available FROM menu_items ORDER BY item_id`)
}

func (r *MenuRepository) ListAvailable(ctx context.Context) ([]domain.MenuItem, error) {
	return r.list(ctx, `SELECT item_id, item_name, unit_price, available FROM menu_items WHERE available ORDER BY item_id`)
}

func (r *MenuRepository) list(ctx context.Context, query string) ([]domain.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var it domain.MenuItem
		if err := rows.Scan(&it.ID, &it.Name, &it.UnitPrice, &it.Available); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *MenuRepository) Create(ctx context.Context, item domain.MenuItem) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO menu_items (item_name, unit_price, available)
		VALUES ($1, $2, $3)
		RETURNING item_id
	`, item.Name, item.UnitPrice, item.Available).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert menu item: %w", err)
	}
	return id, nil
}

func (r *MenuRepository) SetAvailability(ctx context.Context, id int64, available bool) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE menu_items SET available=$2 WHERE item_id=$1`, id, available)
	if err != nil {
		return false, fmt.Errorf("failed to update menu item: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *MenuRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE item_id=$1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			// Referenced by order lines. Hide it instead of breaking history.
			return false, domain.Conflictf("item %d is part of existing orders, mark it unavailable instead", id)
		}
		return false, fmt.Errorf("failed to delete menu item: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}
