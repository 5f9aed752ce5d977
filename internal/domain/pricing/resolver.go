package pricing

import (
	"errors"
	"time"

	"groupcart/internal/domain/collection"

	"github.com/google/uuid"
)

var ErrUnknownProduct = errors.New("no tier data for product")

// MinPricingMembers is the promotional floor: tier lookup always uses at
// least this many members, even while the collection is transiently below it.
const MinPricingMembers = collection.MaxMembers

// Tier is one row of a product's tiered price table: at or above
// MemberThreshold participants, the unit price drops to PriceCents.
type Tier struct {
	ProductID       uuid.UUID
	MemberThreshold int
	PriceCents      int64
}

// Product carries the original unit price and the tier table used by the
// resolver. Tiers may be in any order.
type Product struct {
	ID         uuid.UUID
	SellerID   uuid.UUID
	Name       string
	PriceCents int64
	Tiers      []Tier
}

// EffectiveMemberCount applies the promotional floor to a raw approved count.
func EffectiveMemberCount(approved int) int {
	if approved < MinPricingMembers {
		return MinPricingMembers
	}
	return approved
}

// ResolveUnitPrice returns the discounted unit price for a product at the
// given effective member count. Among qualifying tiers (threshold <= count)
// the one with the largest threshold wins; ties break toward the lowest
// price. With no qualifying tier the original price stands.
func ResolveUnitPrice(p Product, effectiveMembers int) int64 {
	price := p.PriceCents
	bestThreshold := -1
	for _, t := range p.Tiers {
		if t.MemberThreshold > effectiveMembers {
			continue
		}
		if t.MemberThreshold > bestThreshold ||
			(t.MemberThreshold == bestThreshold && t.PriceCents < price) {
			bestThreshold = t.MemberThreshold
			price = t.PriceCents
		}
	}
	return price
}

// Line is one priced item of a quote.
type Line struct {
	ProductID      uuid.UUID
	SellerID       uuid.UUID
	ProductName    string
	Quantity       int32
	OriginalCents  int64
	UnitPriceCents int64
}

func (l Line) SubtotalCents() int64 {
	return l.UnitPriceCents * int64(l.Quantity)
}

// Quote is the priced view of a whole collection. Each member owes the full
// discounted bundle price; amounts are never pro-rated.
type Quote struct {
	CollectionID     uuid.UUID
	Lines            []Line
	OriginalCents    int64
	DiscountedCents  int64
	SavingsCents     int64
	EffectiveMembers int
	ComputedAt       time.Time
}

// BuildQuote resolves every item of a collection against its product's tier
// table. Pure: identical inputs always yield an identical quote (ComputedAt
// aside, which the caller supplies).
func BuildQuote(
	collectionID uuid.UUID,
	items []collection.Item,
	products map[uuid.UUID]Product,
	approvedMembers int,
	now time.Time,
) (*Quote, error) {
	effective := EffectiveMemberCount(approvedMembers)
	q := &Quote{
		CollectionID:     collectionID,
		EffectiveMembers: effective,
		ComputedAt:       now,
	}
	for _, it := range items {
		p, ok := products[it.ProductID]
		if !ok {
			return nil, ErrUnknownProduct
		}
		unit := ResolveUnitPrice(p, effective)
		line := Line{
			ProductID:      p.ID,
			SellerID:       p.SellerID,
			ProductName:    p.Name,
			Quantity:       it.Quantity,
			OriginalCents:  p.PriceCents,
			UnitPriceCents: unit,
		}
		q.Lines = append(q.Lines, line)
		q.OriginalCents += p.PriceCents * int64(it.Quantity)
		q.DiscountedCents += line.SubtotalCents()
	}
	q.SavingsCents = q.OriginalCents - q.DiscountedCents
	return q, nil
}
