package order

import (
	"errors"
	"time"

	"groupcart/internal/domain/pricing"

	"github.com/google/uuid"
)

var ErrNoLines = errors.New("order must have at least one line item")

// Item is one order line, carrying the discounted unit price in effect at
// settlement time.
type Item struct {
	ProductID      uuid.UUID
	ProductName    string
	Quantity       int32
	UnitPriceCents int64
}

func (i Item) SubtotalCents() int64 {
	return i.UnitPriceCents * int64(i.Quantity)
}

// Order is created only on settlement. The user is the beneficiary; the
// payer may be a different member paying on their behalf.
type Order struct {
	id           uuid.UUID
	userID       uuid.UUID
	payerID      uuid.UUID
	collectionID uuid.UUID
	addressID    uuid.UUID
	items        []Item
	totalCents   int64
	intentRef    string
	createdAt    time.Time
}

// NewOrder mirrors the collection's priced lines into order items.
func NewOrder(
	beneficiaryID, payerID, collectionID, addressID uuid.UUID,
	lines []pricing.Line,
	intentRef string,
) (*Order, error) {
	if len(lines) == 0 {
		return nil, ErrNoLines
	}
	o := &Order{
		id:           uuid.New(),
		userID:       beneficiaryID,
		payerID:      payerID,
		collectionID: collectionID,
		addressID:    addressID,
		intentRef:    intentRef,
	}
	for _, l := range lines {
		item := Item{
			ProductID:      l.ProductID,
			ProductName:    l.ProductName,
			Quantity:       l.Quantity,
			UnitPriceCents: l.UnitPriceCents,
		}
		o.items = append(o.items, item)
		o.totalCents += item.SubtotalCents()
	}
	return o, nil
}

func ReconstructOrder(
	id, userID, payerID, collectionID, addressID uuid.UUID,
	items []Item,
	totalCents int64,
	intentRef string,
	createdAt time.Time,
) *Order {
	return &Order{
		id:           id,
		userID:       userID,
		payerID:      payerID,
		collectionID: collectionID,
		addressID:    addressID,
		items:        items,
		totalCents:   totalCents,
		intentRef:    intentRef,
		createdAt:    createdAt,
	}
}

func (o *Order) ID() uuid.UUID           { return o.id }
func (o *Order) UserID() uuid.UUID       { return o.userID }
func (o *Order) PayerID() uuid.UUID      { return o.payerID }
func (o *Order) CollectionID() uuid.UUID { return o.collectionID }
func (o *Order) AddressID() uuid.UUID    { return o.addressID }
func (o *Order) Items() []Item           { return o.items }
func (o *Order) TotalCents() int64       { return o.totalCents }
func (o *Order) IntentRef() string       { return o.intentRef }
func (o *Order) CreatedAt() time.Time    { return o.createdAt }
