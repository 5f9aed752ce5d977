package repository

import (
	"context"

	"groupcart/internal/domain/payment"
	"groupcart/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GroupPaymentRepository struct {
	db *pgxpool.Pool
}

func NewGroupPaymentRepository(db *pgxpool.Pool) *GroupPaymentRepository {
	return &GroupPaymentRepository{db: db}
}

func (r *GroupPaymentRepository) HasSucceeded(ctx context.Context, collectionID, beneficiaryID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM group_payments
			WHERE collection_id = $1 AND beneficiary_id = $2 AND status = 'succeeded'
		)`, collectionID, beneficiaryID).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check succeeded payments", err)
	}
	return exists, nil
}

func (r *GroupPaymentRepository) CreatePending(ctx context.Context, tx pgx.Tx, payments []*payment.GroupPayment) error {
	for _, p := range payments {
		_, err := tx.Exec(ctx, `
			INSERT INTO group_payments
				(id, collection_id, product_id, payer_id, beneficiary_id,
				 amount_cents, quantity, unit_price_cents, payment_intent_ref, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			p.ID(), p.CollectionID(), p.ProductID(), p.PayerID(), p.BeneficiaryID(),
			p.AmountCents(), p.Quantity(), p.UnitPriceCents(), p.IntentRef(), p.Status().String())
		if err != nil {
			return infra.WrapRepoErr("failed to create pending payment", err)
		}
	}
	return nil
}

// SettleByIntentRef upserts on (product, intent ref) so settlement works
// whether or not the pending rows from intent creation are still present.
func (r *GroupPaymentRepository) SettleByIntentRef(ctx context.Context, tx pgx.Tx, intentRef string, payments []*payment.GroupPayment) error {
	for _, p := range payments {
		_, err := tx.Exec(ctx, `
			INSERT INTO group_payments
				(id, collection_id, product_id, payer_id, beneficiary_id,
				 amount_cents, quantity, unit_price_cents, payment_intent_ref, status)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (product_id, payment_intent_ref) DO UPDATE
			SET status = EXCLUDED.status,
			    amount_cents = EXCLUDED.amount_cents,
			    unit_price_cents = EXCLUDED.unit_price_cents,
			    updated_at = now()`,
			p.ID(), p.CollectionID(), p.ProductID(), p.PayerID(), p.BeneficiaryID(),
			p.AmountCents(), p.Quantity(), p.UnitPriceCents(), intentRef, p.Status().String())
		if err != nil {
			return infra.WrapRepoErr("failed to settle payment", err)
		}
	}
	return nil
}
