//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Catalog fixtures shared by all e2e tests. SeedReferenceData inserts them
// with fixed IDs so tests can reference products without extra lookups.
var (
	CatalogSellerID = uuid.MustParse("a0000000-0000-0000-0000-000000000001")

	// 10000 cents, tiered to 8000 at 5 members and 6500 at 10.
	ProductCoffeeID = uuid.MustParse("b0000000-0000-0000-0000-000000000001")

	// 2000 cents, no tiers.
	ProductMugID = uuid.MustParse("b0000000-0000-0000-0000-000000000002")
)

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	name := strings.SplitN(email, "@", 2)[0]
	tag, err := db.Exec(ctx,
		"INSERT INTO users (id, email, name, role) VALUES ($1, $2, $3, $4) ON CONFLICT (email) DO NOTHING",
		userID, email, name, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestAddress(t *testing.T, db DBLike, userID uuid.UUID) uuid.UUID {
	t.Helper()

	addressID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO addresses (id, user_id, recipient, line1, city, state, postal_code, country)
		VALUES ($1, $2, 'Test Recipient', '1 Test St', 'Testville', 'TS', '00000', 'US')`,
		addressID, userID)
	require.NoError(t, err)

	return addressID
}

func CreateTestProduct(t *testing.T, db DBLike, sellerID uuid.UUID, name string, priceCents int64, tiers map[int]int64) uuid.UUID {
	t.Helper()

	productID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO products (id, seller_id, name, price_cents) VALUES ($1, $2, $3, $4)",
		productID, sellerID, name, priceCents)
	require.NoError(t, err)

	for threshold, tierPrice := range tiers {
		_, err := db.Exec(ctx,
			"INSERT INTO discount_tiers (product_id, member_threshold, price_cents) VALUES ($1, $2, $3)",
			productID, threshold, tierPrice)
		require.NoError(t, err)
	}

	return productID
}

// inserts the fixed product catalog needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (id, email, name, role) VALUES
		    ($1, 'catalog-seller@example.com', 'catalog-seller', 'seller')
		ON CONFLICT (id) DO NOTHING;
	`, CatalogSellerID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO products (id, seller_id, name, price_cents) VALUES
		    ($1, $3, 'Single Origin Coffee', 10000),
		    ($2, $3, 'Ceramic Mug', 2000)
		ON CONFLICT (id) DO NOTHING;
	`, ProductCoffeeID, ProductMugID, CatalogSellerID)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO discount_tiers (product_id, member_threshold, price_cents) VALUES
		    ($1, 5, 8000),
		    ($1, 10, 6500)
		ON CONFLICT (product_id, member_threshold) DO NOTHING;
	`, ProductCoffeeID)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
