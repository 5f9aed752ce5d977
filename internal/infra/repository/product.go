package repository

import (
	"context"

	"groupcart/internal/domain/pricing"
	"groupcart/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	db *pgxpool.Pool
}

func NewProductRepository(db *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindByIDs loads the products and their tier tables in two queries. Absent
// IDs are simply missing from the map; the caller decides whether that is
// an error.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]pricing.Product, error) {
	products := make(map[uuid.UUID]pricing.Product, len(ids))
	if len(ids) == 0 {
		return products, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, seller_id, name, price_cents
		FROM products WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load products", err)
	}
	defer rows.Close()

	for rows.Next() {
		var p pricing.Product
		if err := rows.Scan(&p.ID, &p.SellerID, &p.Name, &p.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan product", err)
		}
		products[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate products", err)
	}

	tierRows, err := r.db.Query(ctx, `
		SELECT product_id, member_threshold, price_cents
		FROM discount_tiers WHERE product_id = ANY($1)
		ORDER BY product_id, member_threshold`, ids)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load discount tiers", err)
	}
	defer tierRows.Close()

	for tierRows.Next() {
		var t pricing.Tier
		if err := tierRows.Scan(&t.ProductID, &t.MemberThreshold, &t.PriceCents); err != nil {
			return nil, infra.WrapRepoErr("failed to scan discount tier", err)
		}
		p, ok := products[t.ProductID]
		if !ok {
			continue
		}
		p.Tiers = append(p.Tiers, t)
		products[t.ProductID] = p
	}
	if err := tierRows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate discount tiers", err)
	}
	return products, nil
}
