package repository

import (
	"context"

	"groupcart/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SettlementRepository struct{}

func NewSettlementRepository() *SettlementRepository {
	return &SettlementRepository{}
}

// TryInsert claims the settlement marker for an intent reference. The unique
// constraint on payment_intent_ref makes this the single idempotency gate:
// a second delivery of the same event inserts nothing and returns false.
func (r *SettlementRepository) TryInsert(ctx context.Context, tx pgx.Tx, intentRef string, orderID uuid.UUID) (bool, error) {
	tag, err := tx.Exec(ctx, `
		INSERT INTO settlements (payment_intent_ref, order_id)
		VALUES ($1, $2)
		ON CONFLICT (payment_intent_ref) DO NOTHING`,
		intentRef, orderID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to insert settlement marker", err)
	}
	return tag.RowsAffected() == 1, nil
}
