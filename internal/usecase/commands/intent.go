package commands

import (
	"context"
	"strconv"

	"groupcart/internal/domain/payment"
	"groupcart/internal/infra"
	"groupcart/internal/pkg/clock"
	"groupcart/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Metadata keys embedded in the gateway intent. The settlement handler reads
// the same keys back out of the webhook event.
const (
	metaPayerID       = "payer_id"
	metaBeneficiaryID = "beneficiary_id"
	metaCollectionID  = "collection_id"
	metaAddressID     = "address_id"
	metaQuotedAmount  = "quoted_amount_cents"
)

type CreateIntentParams struct {
	CollectionID  uuid.UUID
	PayerID       uuid.UUID
	BeneficiaryID uuid.UUID // equals PayerID unless paying on a member's behalf
	AddressID     uuid.UUID
}

type CreateIntentResult struct {
	ClientSecret string
	AmountCents  int64
	PaymentIDs   []uuid.UUID
}

type IntentCommands interface {
	CreateGroupIntent(ctx context.Context, params CreateIntentParams) (*CreateIntentResult, error)
}

type intentCommandsImpl struct {
	collectionRepo CollectionRepository
	paymentRepo    GroupPaymentRepository
	addressRepo    AddressRepository
	userRepo       UserRepository
	quotes         QuoteService
	gateway        PaymentGateway
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewIntentCommands(
	collectionRepo CollectionRepository,
	paymentRepo GroupPaymentRepository,
	addressRepo AddressRepository,
	userRepo UserRepository,
	quotes QuoteService,
	gateway PaymentGateway,
	db *pgxpool.Pool,
	clock clock.Clock,
) IntentCommands {
	return &intentCommandsImpl{
		collectionRepo: collectionRepo,
		paymentRepo:    paymentRepo,
		addressRepo:    addressRepo,
		userRepo:       userRepo,
		quotes:         quotes,
		gateway:        gateway,
		db:             db,
		clock:          clock,
	}
}

// CreateGroupIntent quotes the payer's due amount, opens a gateway intent
// carrying the quote in its metadata, and persists one pending GroupPayment
// per item. No order exists until the gateway confirms.
func (u *intentCommandsImpl) CreateGroupIntent(
	ctx context.Context,
	params CreateIntentParams,
) (*CreateIntentResult, error) {
	col, err := u.collectionRepo.FindByID(ctx, params.CollectionID)
	if err != nil {
		return nil, mapCollectionLookupErr(err)
	}

	if !col.IsMember(params.PayerID) {
		return nil, errs.ErrNotAMember
	}
	if params.BeneficiaryID != params.PayerID && !col.IsMember(params.BeneficiaryID) {
		return nil, errs.ErrNotAMember
	}
	if !col.IsLocked() {
		return nil, errs.ErrCollectionNotLocked
	}
	if len(col.Items()) == 0 {
		return nil, errs.ErrNoItems
	}

	alreadyPaid, err := u.paymentRepo.HasSucceeded(ctx, params.CollectionID, params.BeneficiaryID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if alreadyPaid {
		return nil, errs.ErrAlreadyPaid
	}

	address, err := u.addressRepo.FindByID(ctx, params.AddressID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrAddressNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	quote, err := u.quotes.GetOrCompute(ctx, col)
	if err != nil {
		return nil, err
	}

	payer, err := u.userRepo.FindByID(ctx, params.PayerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	customerID, err := u.gateway.CreateCustomer(ctx, payer.Email, payer.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrGatewayUnavailable)
	}

	metadata := map[string]string{
		"customer_id":     customerID,
		metaPayerID:       params.PayerID.String(),
		metaBeneficiaryID: params.BeneficiaryID.String(),
		metaCollectionID:  params.CollectionID.String(),
		metaAddressID:     params.AddressID.String(),
		metaQuotedAmount:  strconv.FormatInt(quote.DiscountedCents, 10),
	}

	intent, err := u.gateway.CreatePaymentIntent(ctx, quote.DiscountedCents, metadata, shippingFromAddress(address))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrGatewayUnavailable)
	}

	payments := make([]*payment.GroupPayment, 0, len(quote.Lines))
	paymentIDs := make([]uuid.UUID, 0, len(quote.Lines))
	for _, line := range quote.Lines {
		p, err := payment.NewPendingPayment(
			params.CollectionID,
			line.ProductID,
			params.PayerID,
			params.BeneficiaryID,
			line.Quantity,
			line.UnitPriceCents,
			intent.ID,
		)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		payments = append(payments, p)
		paymentIDs = append(paymentIDs, p.ID())
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	if err := u.paymentRepo.CreatePending(ctx, tx, payments); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CreateIntentResult{
		ClientSecret: intent.ClientSecret,
		AmountCents:  quote.DiscountedCents,
		PaymentIDs:   paymentIDs,
	}, nil
}

func shippingFromAddress(a *AddressSnapshot) *Shipping {
	return &Shipping{
		Name:       a.Recipient,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}
