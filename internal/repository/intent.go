package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"dinehub/internal/domain"
)

type IntentRepositoryInterface interface {
	Save(ctx context.Context, intent domain.CheckoutIntent) error
	Get(ctx context.Context, intentID string) (domain.CheckoutIntent, bool, error)
	MarkAbandoned(ctx context.Context, intentID string) error
}

type IntentRepository struct {
	db *sql.DB
}

func NewIntentRepository(db *sql.DB) IntentRepositoryInterface {
	return &IntentRepository{db: db}
}

// Save records the priced cart snapshot for a card checkout. The lines are
// stored as JSONB because they are only ever read back whole, by intent id.
func (r *IntentRepository) Save(ctx context.Context, intent domain.CheckoutIntent) error {
	lines, err := json.Marshal(intent.Lines)
	if err != nil {
		return fmt.Errorf("failed to marshal intent lines: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO checkout_intents (intent_id, customer_id, lines, status, created_at)
		VALUES ($1, $2, $3, 'created', NOW())
	`, intent.IntentID, intent.CustomerID, lines)
	if err != nil {
		return fmt.Errorf("failed to save checkout intent: %w", err)
	}
	return nil
}

func (r *IntentRepository) Get(ctx context.Context, intentID string) (domain.CheckoutIntent, bool, error) {
	var intent domain.CheckoutIntent
	var lines []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT intent_id, customer_id, lines, status, created_at
		FROM checkout_intents WHERE intent_id=$1
	`, intentID).Scan(&intent.IntentID, &intent.CustomerID, &lines, &intent.Status, &intent.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CheckoutIntent{}, false, nil
	}
	if err != nil {
		return domain.CheckoutIntent{}, false, fmt.Errorf("failed to get checkout intent: %w", err)
	}
	if err := json.Unmarshal(lines, &intent.Lines); err != nil {
		return domain.CheckoutIntent{}, false, fmt.Errorf("failed to unmarshal intent lines: %w", err)
	}
	return intent, true, nil
}

func (r *IntentRepository) MarkAbandoned(ctx context.Context, intentID string) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE checkout_intents SET status='abandoned' WHERE intent_id=$1 AND status='created'
	`, intentID)
	if err != nil {
		return fmt.Errorf("failed to mark intent abandoned: %w", err)
	}
	return nil
}
