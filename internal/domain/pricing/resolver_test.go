//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"groupcart/internal/domain/collection"
	"groupcart/internal/domain/pricing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tieredProduct(priceCents int64, tiers ...pricing.Tier) pricing.Product {
	id := uuid.New()
	for i := range tiers {
		tiers[i].ProductID = id
	}
	return pricing.Product{
		ID:         id,
		SellerID:   uuid.New(),
		Name:       "Test Product",
		PriceCents: priceCents,
		Tiers:      tiers,
	}
}

func TestEffectiveMemberCount(t *testing.T) {
	tests := []struct {
		name     string
		approved int
		want     int
	}{
		{"single member is floored", 1, 5},
		{"below floor is floored", 4, 5},
		{"at floor stays", 5, 5},
		{"above floor stays", 8, 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.EffectiveMemberCount(tt.approved))
		})
	}
}

func TestResolveUnitPrice(t *testing.T) {
	product := tieredProduct(10000,
		pricing.Tier{MemberThreshold: 5, PriceCents: 8000},
		pricing.Tier{MemberThreshold: 10, PriceCents: 6500},
	)

	t.Run("no qualifying tier keeps the original price", func(t *testing.T) {
		bare := tieredProduct(10000, pricing.Tier{MemberThreshold: 10, PriceCents: 6500})
		assert.Equal(t, int64(10000), pricing.ResolveUnitPrice(bare, 5))
	})

	t.Run("largest qualifying threshold wins", func(t *testing.T) {
		assert.Equal(t, int64(8000), pricing.ResolveUnitPrice(product, 5))
		assert.Equal(t, int64(8000), pricing.ResolveUnitPrice(product, 9))
		assert.Equal(t, int64(6500), pricing.ResolveUnitPrice(product, 10))
		assert.Equal(t, int64(6500), pricing.ResolveUnitPrice(product, 50))
	})

	t.Run("duplicate thresholds break toward the lowest price", func(t *testing.T) {
		dup := tieredProduct(10000,
			pricing.Tier{MemberThreshold: 5, PriceCents: 8200},
			pricing.Tier{MemberThreshold: 5, PriceCents: 8000},
		)
		assert.Equal(t, int64(8000), pricing.ResolveUnitPrice(dup, 5))

		reversed := tieredProduct(10000,
			pricing.Tier{MemberThreshold: 5, PriceCents: 8000},
			pricing.Tier{MemberThreshold: 5, PriceCents: 8200},
		)
		assert.Equal(t, int64(8000), pricing.ResolveUnitPrice(reversed, 5))
	})

	t.Run("tier order does not matter", func(t *testing.T) {
		shuffled := tieredProduct(10000,
			pricing.Tier{MemberThreshold: 10, PriceCents: 6500},
			pricing.Tier{MemberThreshold: 5, PriceCents: 8000},
		)
		assert.Equal(t, int64(8000), pricing.ResolveUnitPrice(shuffled, 7))
	})
}

func TestBuildQuote(t *testing.T) {
	now := time.Now()

	t.Run("five approved members hit the first tier", func(t *testing.T) {
		product := tieredProduct(10000,
			pricing.Tier{MemberThreshold: 5, PriceCents: 8000},
			pricing.Tier{MemberThreshold: 10, PriceCents: 6500},
		)
		collectionID := uuid.New()
		items := []collection.Item{{ProductID: product.ID, Quantity: 1}}
		products := map[uuid.UUID]pricing.Product{product.ID: product}

		quote, err := pricing.BuildQuote(collectionID, items, products, 5, now)
		require.NoError(t, err)

		assert.Equal(t, 5, quote.EffectiveMembers)
		require.Len(t, quote.Lines, 1)
		assert.Equal(t, int64(10000), quote.Lines[0].OriginalCents)
		assert.Equal(t, int64(8000), quote.Lines[0].UnitPriceCents)
		assert.Equal(t, int64(10000), quote.OriginalCents)
		assert.Equal(t, int64(8000), quote.DiscountedCents)
		assert.Equal(t, int64(2000), quote.SavingsCents)
	})

	t.Run("solo owner is priced with the promotional floor", func(t *testing.T) {
		product := tieredProduct(10000, pricing.Tier{MemberThreshold: 5, PriceCents: 8000})
		items := []collection.Item{{ProductID: product.ID, Quantity: 2}}
		products := map[uuid.UUID]pricing.Product{product.ID: product}

		quote, err := pricing.BuildQuote(uuid.New(), items, products, 1, now)
		require.NoError(t, err)

		assert.Equal(t, 5, quote.EffectiveMembers)
		assert.Equal(t, int64(16000), quote.DiscountedCents)
		assert.Equal(t, int64(4000), quote.SavingsCents)
	})

	t.Run("quantities multiply into subtotals", func(t *testing.T) {
		a := tieredProduct(500, pricing.Tier{MemberThreshold: 5, PriceCents: 400})
		b := tieredProduct(2000)
		items := []collection.Item{
			{ProductID: a.ID, Quantity: 3},
			{ProductID: b.ID, Quantity: 2},
		}
		products := map[uuid.UUID]pricing.Product{a.ID: a, b.ID: b}

		quote, err := pricing.BuildQuote(uuid.New(), items, products, 5, now)
		require.NoError(t, err)

		assert.Equal(t, int64(3*500+2*2000), quote.OriginalCents)
		assert.Equal(t, int64(3*400+2*2000), quote.DiscountedCents)
		assert.Equal(t, int64(300), quote.SavingsCents)
	})

	t.Run("identical inputs yield identical quotes", func(t *testing.T) {
		product := tieredProduct(10000,
			pricing.Tier{MemberThreshold: 5, PriceCents: 8000},
			pricing.Tier{MemberThreshold: 10, PriceCents: 6500},
		)
		collectionID := uuid.New()
		items := []collection.Item{{ProductID: product.ID, Quantity: 4}}
		products := map[uuid.UUID]pricing.Product{product.ID: product}

		first, err := pricing.BuildQuote(collectionID, items, products, 6, now)
		require.NoError(t, err)
		second, err := pricing.BuildQuote(collectionID, items, products, 6, now)
		require.NoError(t, err)

		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("quotes differ (-first +second):\n%s", diff)
		}
	})

	t.Run("empty collection quotes to zero", func(t *testing.T) {
		quote, err := pricing.BuildQuote(uuid.New(), nil, nil, 1, now)
		require.NoError(t, err)

		assert.Empty(t, quote.Lines)
		assert.Zero(t, quote.OriginalCents)
		assert.Zero(t, quote.DiscountedCents)
		assert.Zero(t, quote.SavingsCents)
	})

	t.Run("missing product data fails the quote", func(t *testing.T) {
		items := []collection.Item{{ProductID: uuid.New(), Quantity: 1}}

		_, err := pricing.BuildQuote(uuid.New(), items, map[uuid.UUID]pricing.Product{}, 5, now)
		assert.ErrorIs(t, err, pricing.ErrUnknownProduct)
	})
}
