package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"time"

	"groupcart/internal/domain/collection"
	"groupcart/internal/domain/order"
	"groupcart/internal/domain/payment"
	"groupcart/internal/domain/pricing"
	"groupcart/internal/infra"
	"groupcart/internal/pkg/clock"
	"groupcart/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	topicOrderCreated    = "order.created"
	topicPaymentMade     = "payment.made"
	topicPaymentReceived = "payment.received"
)

// storage retries on the webhook path before falling back to log-and-ack
const settleMaxAttempts = 3

// GatewayEvent is the decoded webhook payload handed to settlement. The
// handler layer has already rejected envelopes that don't match a known
// variant.
type GatewayEvent struct {
	Type        string
	IntentRef   string
	AmountCents int64
	Metadata    map[string]string
}

type intentMetadata struct {
	PayerID           uuid.UUID
	BeneficiaryID     uuid.UUID
	CollectionID      uuid.UUID
	AddressID         uuid.UUID
	QuotedAmountCents int64
}

type SettleResult struct {
	OrderID   uuid.UUID
	Duplicate bool
}

type SettlementCommands interface {
	// HandlePaymentSucceeded settles a confirmed payment exactly once.
	// Unrecoverable events (missing metadata, unknown collection) return a
	// sentinel error; the caller acknowledges them regardless so the
	// gateway never retries a logically handled event.
	HandlePaymentSucceeded(ctx context.Context, event GatewayEvent) (*SettleResult, error)
}

type settlementCommandsImpl struct {
	collectionRepo   CollectionRepository
	paymentRepo      GroupPaymentRepository
	orderRepo        OrderRepository
	settlementRepo   SettlementRepository
	notificationRepo NotificationRepository
	quotes           QuoteService
	db               *pgxpool.Pool
	clock            clock.Clock
}

func NewSettlementCommands(
	collectionRepo CollectionRepository,
	paymentRepo GroupPaymentRepository,
	orderRepo OrderRepository,
	settlementRepo SettlementRepository,
	notificationRepo NotificationRepository,
	quotes QuoteService,
	db *pgxpool.Pool,
	clock clock.Clock,
) SettlementCommands {
	return &settlementCommandsImpl{
		collectionRepo:   collectionRepo,
		paymentRepo:      paymentRepo,
		orderRepo:        orderRepo,
		settlementRepo:   settlementRepo,
		notificationRepo: notificationRepo,
		quotes:           quotes,
		db:               db,
		clock:            clock,
	}
}

func (u *settlementCommandsImpl) HandlePaymentSucceeded(
	ctx context.Context,
	event GatewayEvent,
) (*SettleResult, error) {
	meta, err := parseIntentMetadata(event.Metadata)
	if err != nil {
		return nil, err
	}

	col, err := u.collectionRepo.FindByID(ctx, meta.CollectionID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCollectionNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Order lines mirror the current item list at the discounted prices in
	// effect now; the charged amount stays whatever the intent quoted.
	quote, err := u.quotes.Compute(ctx, col)
	if err != nil {
		return nil, err
	}
	if quote.DiscountedCents != meta.QuotedAmountCents {
		slog.Warn("settlement amount drifted from the quoted intent amount",
			"intent_ref", event.IntentRef,
			"quoted_cents", meta.QuotedAmountCents,
			"resolved_cents", quote.DiscountedCents)
	}

	var result *SettleResult
	for attempt := 1; ; attempt++ {
		result, err = u.settleOnce(ctx, col, quote, meta, event.IntentRef)
		if err == nil {
			return result, nil
		}
		if !retryableSettleErr(err) || attempt >= settleMaxAttempts {
			return nil, err
		}
		slog.Warn("settlement attempt failed, retrying",
			"intent_ref", event.IntentRef, "attempt", attempt, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt) * 100 * time.Millisecond):
		}
	}
}

// Validation failures fail the same way every attempt; only storage errors
// get another try.
func retryableSettleErr(err error) bool {
	return errors.Is(err, errs.ErrDatabaseOperationFailed)
}

func (u *settlementCommandsImpl) settleOnce(
	ctx context.Context,
	col *collection.Collection,
	quote *pricing.Quote,
	meta *intentMetadata,
	intentRef string,
) (*SettleResult, error) {
	ord, err := order.NewOrder(meta.BeneficiaryID, meta.PayerID, meta.CollectionID, meta.AddressID, quote.Lines, intentRef)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	// The unique settlement marker is the idempotency guard for
	// at-least-once webhook delivery, including concurrent duplicates.
	inserted, err := u.settlementRepo.TryInsert(ctx, tx, intentRef, ord.ID())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if !inserted {
		return &SettleResult{Duplicate: true}, nil
	}

	if _, err := u.orderRepo.Create(ctx, tx, ord); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	payments := make([]*payment.GroupPayment, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		p, err := payment.NewPendingPayment(
			meta.CollectionID,
			line.ProductID,
			meta.PayerID,
			meta.BeneficiaryID,
			line.Quantity,
			line.UnitPriceCents,
			intentRef,
		)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := p.MarkSucceeded(); err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		payments = append(payments, p)
	}
	if err := u.paymentRepo.SettleByIntentRef(ctx, tx, intentRef, payments); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	u.queueSettlementNotifications(ctx, tx, col, quote, meta, ord)

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &SettleResult{OrderID: ord.ID()}, nil
}

// queueSettlementNotifications fans out: one consolidated payment-received
// job per seller, an order-created job for the beneficiary, and a
// payment-made job for the payer. Notification failures never block
// settlement.
func (u *settlementCommandsImpl) queueSettlementNotifications(
	ctx context.Context,
	tx pgx.Tx,
	col *collection.Collection,
	quote *pricing.Quote,
	meta *intentMetadata,
	ord *order.Order,
) {
	now := u.clock.Now()

	// One job per seller with that seller's lines consolidated.
	sellerTotals := make(map[uuid.UUID]int64)
	for _, line := range quote.Lines {
		sellerTotals[line.SellerID] += line.SubtotalCents()
	}
	for sellerID, totalCents := range sellerTotals {
		u.createJob(ctx, tx, topicPaymentReceived, marshalNotification(map[string]any{
			"recipient_id":  sellerID,
			"collection_id": col.ID(),
			"order_id":      ord.ID(),
			"amount_cents":  totalCents,
		}), now)
	}

	u.createJob(ctx, tx, topicOrderCreated, marshalNotification(map[string]any{
		"recipient_id":  meta.BeneficiaryID,
		"collection_id": col.ID(),
		"order_id":      ord.ID(),
		"amount_cents":  ord.TotalCents(),
	}), now)

	// Skip the duplicate when the payer is paying for themself.
	if meta.PayerID != meta.BeneficiaryID {
		u.createJob(ctx, tx, topicPaymentMade, marshalNotification(map[string]any{
			"recipient_id":   meta.PayerID,
			"beneficiary_id": meta.BeneficiaryID,
			"collection_id":  col.ID(),
			"order_id":       ord.ID(),
			"amount_cents":   ord.TotalCents(),
		}), now)
	}
}

func (u *settlementCommandsImpl) createJob(ctx context.Context, tx pgx.Tx, topic string, payload []byte, runAt time.Time) {
	if err := u.notificationRepo.CreateJob(ctx, tx, "push", topic, payload, runAt); err != nil {
		slog.Warn("failed to queue settlement notification", "topic", topic, "error", err)
	}
}

func parseIntentMetadata(metadata map[string]string) (*intentMetadata, error) {
	if metadata == nil {
		return nil, errs.ErrMissingMetadata
	}

	payerID, err1 := uuid.Parse(metadata[metaPayerID])
	beneficiaryID, err2 := uuid.Parse(metadata[metaBeneficiaryID])
	collectionID, err3 := uuid.Parse(metadata[metaCollectionID])
	addressID, err4 := uuid.Parse(metadata[metaAddressID])
	quoted, err5 := strconv.ParseInt(metadata[metaQuotedAmount], 10, 64)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
		return nil, errs.ErrMissingMetadata
	}

	return &intentMetadata{
		PayerID:           payerID,
		BeneficiaryID:     beneficiaryID,
		CollectionID:      collectionID,
		AddressID:         addressID,
		QuotedAmountCents: quoted,
	}, nil
}

func marshalNotification(payload map[string]any) []byte {
	data, _ := json.Marshal(payload)
	return data
}
