package repository

import (
	"context"

	"groupcart/internal/domain/order"
	"groupcart/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) Create(ctx context.Context, tx pgx.Tx, o *order.Order) (uuid.UUID, error) {
	_, err := tx.Exec(ctx, `
		INSERT INTO orders (id, user_id, payer_id, collection_id, address_id, total_cents, payment_intent_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		o.ID(), o.UserID(), o.PayerID(), o.CollectionID(), o.AddressID(), o.TotalCents(), o.IntentRef())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create order", err)
	}

	for _, it := range o.Items() {
		_, err := tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price_cents)
			VALUES ($1, $2, $3, $4, $5)`,
			o.ID(), it.ProductID, it.ProductName, it.Quantity, it.UnitPriceCents)
		if err != nil {
			return uuid.Nil, infra.WrapRepoErr("failed to create order item", err)
		}
	}
	return o.ID(), nil
}
