package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"dinehub/internal/domain"
)

type OrderRepositoryInterface interface {
	// CreateOrderTx inserts one pending order and all its lines in a single
	// transaction. Used for the cash path.
	CreateOrderTx(ctx context.Context, customerID *int64, payment domain.PaymentStatus, lines []domain.OrderLine) (int64, error)

	// CreatePaidOrderTx turns a confirmed checkout intent into a paid order.
	// Returns created=false when the intent was already consumed, in which
	// case the existing order id is returned.
	CreatePaidOrderTx(ctx context.Context, intent domain.CheckoutIntent) (orderID int64, created bool, err error)

	// TransitionStatus is the atomic check-and-set behind take/complete/cancel.
	// Reports whether exactly this transition happened.
	TransitionStatus(ctx context.Context, id int64, from, to domain.OrderStatus, employeeID *int64) (bool, error)

	GetStatus(ctx context.Context, id int64) (domain.OrderStatus, bool, error)

	ListActive(ctx context.Context) ([]domain.OrderView, error)
	GetByID(ctx context.Context, id int64) (domain.OrderView, bool, error)
	ListByCustomerEmail(ctx context.Context, email string) ([]domain.OrderView, error)
}

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) OrderRepositoryInterface {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) CreateOrderTx(ctx context.Context, customerID *int64, payment domain.PaymentStatus, lines []domain.OrderLine) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var orderID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, status, payment_status, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING order_id
	`, customerID, domain.StatusPending, payment).Scan(&orderID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert order: %w", err)
	}

	if err := insertLines(ctx, tx, orderID, lines); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return orderID, nil
}

func (r *OrderRepository) CreatePaidOrderTx(ctx context.Context, intent domain.CheckoutIntent) (int64, bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// The unique constraint on intent_id makes redelivery a no-op.
	var orderID int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO orders (customer_id, status, payment_status, intent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (intent_id) DO NOTHING
		RETURNING order_id
	`, intent.CustomerID, domain.StatusPending, domain.PaymentPaid, intent.IntentID).Scan(&orderID)
	if errors.Is(err, sql.ErrNoRows) {
		var existing int64
		if err := tx.QueryRowContext(ctx,
			`SELECT order_id FROM orders WHERE intent_id=$1`, intent.IntentID).Scan(&existing); err != nil {
			return 0, false, fmt.Errorf("failed to load existing order for intent: %w", err)
		}
		return existing, false, tx.Commit()
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to insert paid order: %w", err)
	}

	if err := insertLines(ctx, tx, orderID, intent.Lines); err != nil {
		return 0, false, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE checkout_intents SET status='consumed' WHERE intent_id=$1`, intent.IntentID); err != nil {
		return 0, false, fmt.Errorf("failed to consume intent: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return orderID, true, nil
}

func insertLines(ctx context.Context, tx *sql.Tx, orderID int64, lines []domain.OrderLine) error {
	for _, l := range lines {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO order_lines (order_id, item_id, quantity, unit_price)
			VALUES ($1, $2, $3, $4)
		`, orderID, l.ItemID, l.Quantity, l.UnitPrice)
		if err != nil {
			return fmt.Errorf("failed to insert order line for item %d: %w", l.ItemID, err)
		}
	}
	return nil
}

func (r *OrderRepository) TransitionStatus(ctx context.Context, id int64, from, to domain.OrderStatus, employeeID *int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE orders
		SET status=$3, employee_id=COALESCE($4, employee_id), updated_at=NOW()
		WHERE order_id=$1 AND status=$2
	`, id, from, to, employeeID)
	if err != nil {
		return false, fmt.Errorf("failed to update order status: %w", err)
	}
	n, _ := res.RowsAffected()
	return n > 0, nil
}

func (r *OrderRepository) GetStatus(ctx context.Context, id int64) (domain.OrderStatus, bool, error) {
	var status domain.OrderStatus
	err := r.db.QueryRowContext(ctx, `SELECT status FROM orders WHERE order_id=$1`, id).Scan(&status)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get order status: %w", err)
	}
	return status, true, nil
}

const orderViewSelect = `
	SELECT o.order_id, COALESCE(c.name,''), o.employee_id, o.status, o.payment_status,
	       o.created_at, o.updated_at
	FROM orders o
	LEFT JOIN customers c ON o.customer_id = c.customer_id
`

func (r *OrderRepository) ListActive(ctx context.Context) ([]domain.OrderView, error) {
	return r.queryViews(ctx, orderViewSelect+`
		WHERE o.status IN ($1, $2)
		ORDER BY o.created_at DESC
	`, domain.StatusPending, domain.StatusInProgress)
}

func (r *OrderRepository) GetByID(ctx context.Context, id int64) (domain.OrderView, bool, error) {
	views, err := r.queryViews(ctx, orderViewSelect+`WHERE o.order_id=$1`, id)
	if err != nil {
		return domain.OrderView{}, false, err
	}
	if len(views) == 0 {
		return domain.OrderView{}, false, nil
	}
	return views[0], true, nil
}

func (r *OrderRepository) ListByCustomerEmail(ctx context.Context, email string) ([]domain.OrderView, error) {
	return r.queryViews(ctx, `
		SELECT o.order_id, c.name, o.employee_id, o.status, o.payment_status,
		       o.created_at, o.updated_at
		FROM orders o
		JOIN customers c ON o.customer_id = c.customer_id
		WHERE c.email=$1
		ORDER BY o.created_at DESC
	`, email)
}

func (r *OrderRepository) queryViews(ctx context.Context, query string, args ...any) ([]domain.OrderView, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var views []domain.OrderView
	for rows.Next() {
		var v domain.OrderView
		if err := rows.Scan(&v.OrderID, &v.CustomerName, &v.EmployeeID, &v.Status,
			&v.PaymentStatus, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range views {
		lines, err := r.linesFor(ctx, views[i].OrderID)
		if err != nil {
			return nil, err
		}
		views[i].Lines = lines
		for _, l := range lines {
			views[i].TotalAmount += int64(l.Quantity) * l.UnitPrice
		}
	}
	return views, nil
}

func (r *OrderRepository) linesFor(ctx context.Context, orderID int64) ([]domain.OrderLineView, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT ol.item_id, m.item_name, ol.quantity, ol.unit_price
		FROM order_lines ol
		JOIN menu_items m ON ol.item_id = m.item_id
		WHERE ol.order_id=$1
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query order lines: %w", err)
	}
	defer rows.Close()

	var lines []domain.OrderLineView
	for rows.Next() {
		var l domain.OrderLineView
		if err := rows.Scan(&l.ItemID, &l.ItemName, &l.Quantity, &l.UnitPrice); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
