package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidAmount   = errors.New("payment amount cannot be negative")
	ErrInvalidQuantity = errors.New("payment quantity must be at least 1")
	ErrNotPending      = errors.New("payment is not pending")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
)

func (s Status) String() string { return string(s) }

// GroupPayment records one beneficiary's payment for one product of a
// collection. At most one succeeded row may exist per
// (collection, product, beneficiary); the storage layer enforces this with
// a partial unique index.
type GroupPayment struct {
	id             uuid.UUID
	collectionID   uuid.UUID
	productID      uuid.UUID
	payerID        uuid.UUID
	beneficiaryID  uuid.UUID
	amountCents    int64
	quantity       int32
	unitPriceCents int64
	intentRef      string
	status         Status
	createdAt      time.Time
	updatedAt      time.Time
}

func NewPendingPayment(
	collectionID, productID, payerID, beneficiaryID uuid.UUID,
	quantity int32,
	unitPriceCents int64,
	intentRef string,
) (*GroupPayment, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}
	if unitPriceCents < 0 {
		return nil, ErrInvalidAmount
	}
	return &GroupPayment{
		id:             uuid.New(),
		collectionID:   collectionID,
		productID:      productID,
		payerID:        payerID,
		beneficiaryID:  beneficiaryID,
		amountCents:    unitPriceCents * int64(quantity),
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
		intentRef:      intentRef,
		status:         StatusPending,
	}, nil
}

func ReconstructGroupPayment(
	id, collectionID, productID, payerID, beneficiaryID uuid.UUID,
	amountCents int64,
	quantity int32,
	unitPriceCents int64,
	intentRef string,
	status Status,
	createdAt, updatedAt time.Time,
) *GroupPayment {
	return &GroupPayment{
		id:             id,
		collectionID:   collectionID,
		productID:      productID,
		payerID:        payerID,
		beneficiaryID:  beneficiaryID,
		amountCents:    amountCents,
		quantity:       quantity,
		unitPriceCents: unitPriceCents,
		intentRef:      intentRef,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (p *GroupPayment) MarkSucceeded() error {
	if p.status != StatusPending {
		return ErrNotPending
	}
	p.status = StatusSucceeded
	return nil
}

func (p *GroupPayment) MarkFailed() error {
	if p.status != StatusPending {
		return ErrNotPending
	}
	p.status = StatusFailed
	return nil
}

func (p *GroupPayment) ID() uuid.UUID            { return p.id }
func (p *GroupPayment) CollectionID() uuid.UUID  { return p.collectionID }
func (p *GroupPayment) ProductID() uuid.UUID     { return p.productID }
func (p *GroupPayment) PayerID() uuid.UUID       { return p.payerID }
func (p *GroupPayment) BeneficiaryID() uuid.UUID { return p.beneficiaryID }
func (p *GroupPayment) AmountCents() int64       { return p.amountCents }
func (p *GroupPayment) Quantity() int32          { return p.quantity }
func (p *GroupPayment) UnitPriceCents() int64    { return p.unitPriceCents }
func (p *GroupPayment) IntentRef() string        { return p.intentRef }
func (p *GroupPayment) Status() Status           { return p.status }
func (p *GroupPayment) CreatedAt() time.Time     { return p.createdAt }
func (p *GroupPayment) UpdatedAt() time.Time     { return p.updatedAt }
