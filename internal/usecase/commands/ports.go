package commands

import (
	"context"
	"time"

	"groupcart/internal/domain/collection"
	"groupcart/internal/domain/order"
	"groupcart/internal/domain/payment"
	"groupcart/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)

type AddressSnapshot struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	Recipient  string
	Line1      string
	Line2      *string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      *string
}

type UserSnapshot struct {
	ID    uuid.UUID
	Email string
	Name  string
}

// PaymentIntent is the gateway's handle for an opened intent.
type PaymentIntent struct {
	ID           string
	ClientSecret string
}

// Shipping carries the gateway's shipping fields resolved from an address.
type Shipping struct {
	Name       string  `json:"name"`
	Line1      string  `json:"line1"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postal_code"`
	Country    string  `json:"country"`
	Phone      *string `json:"phone,omitempty"`
}

type CollectionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*collection.Collection, error)
	FindByShareToken(ctx context.Context, token string) (*collection.Collection, error)
	// FindByIDForUpdate locks the collection row so participant transitions
	// are serialized per collection for the duration of the transaction.
	FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*collection.Collection, error)
	Create(ctx context.Context, tx pgx.Tx, col *collection.Collection) error
	Update(ctx context.Context, tx pgx.Tx, col *collection.Collection) error
	Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
	AddItem(ctx context.Context, tx pgx.Tx, collectionID uuid.UUID, item collection.Item) error
	RemoveItem(ctx context.Context, tx pgx.Tx, collectionID, productID uuid.UUID) error
}

type ParticipantRepository interface {
	Insert(ctx context.Context, tx pgx.Tx, p *collection.Participant) error
	// UpdateStatus transitions only out of pending; returns KindConflict when
	// the row was already terminal.
	UpdateStatus(ctx context.Context, tx pgx.Tx, collectionID, userID uuid.UUID, status collection.ParticipantStatus) error
	Delete(ctx context.Context, tx pgx.Tx, collectionID, userID uuid.UUID) error
}

type ProductRepository interface {
	// FindByIDs returns products with their discount tier tables.
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]pricing.Product, error)
}

type GroupPaymentRepository interface {
	// HasSucceeded reports whether any succeeded payment exists for the
	// beneficiary in the collection. Payment is all-or-nothing per
	// beneficiary, so one succeeded row blocks a new intent.
	HasSucceeded(ctx context.Context, collectionID, beneficiaryID uuid.UUID) (bool, error)
	CreatePending(ctx context.Context, tx pgx.Tx, payments []*payment.GroupPayment) error
	// SettleByIntentRef flips the intent's pending rows to succeeded,
	// inserting rows that are missing. All items settle in one call.
	SettleByIntentRef(ctx context.Context, tx pgx.Tx, intentRef string, payments []*payment.GroupPayment) error
}

type OrderRepository interface {
	Create(ctx context.Context, tx pgx.Tx, o *order.Order) (uuid.UUID, error)
}

type SettlementRepository interface {
	// TryInsert records the settlement marker for an intent reference.
	// Returns false without error when the marker already exists, which is
	// the idempotency signal for duplicate webhook delivery.
	TryInsert(ctx context.Context, tx pgx.Tx, intentRef string, orderID uuid.UUID) (bool, error)
}

type AddressRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AddressSnapshot, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx pgx.Tx, kind, topic string, payload []byte, runAt time.Time) error
}

// SnapshotCache is the advisory pricing memo. Get returns (nil, nil) on a
// miss; Set overwrites unconditionally.
type SnapshotCache interface {
	Get(ctx context.Context, collectionID uuid.UUID) (*pricing.Quote, error)
	Set(ctx context.Context, quote *pricing.Quote) error
}

// PaymentGateway is the external payment collaborator.
type PaymentGateway interface {
	CreateCustomer(ctx context.Context, email, name string) (string, error)
	CreatePaymentIntent(ctx context.Context, amountCents int64, metadata map[string]string, shipping *Shipping) (*PaymentIntent, error)
}
