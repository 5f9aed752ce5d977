package queries

import (
	"context"

	"groupcart/internal/domain/collection"
	"groupcart/internal/domain/pricing"
	"groupcart/internal/infra"
	"groupcart/internal/pkg/errs"

	"github.com/google/uuid"
)

type CollectionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CollectionView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*CollectionListItem, error)
	FindByShareToken(ctx context.Context, token string) (*SharedCollectionView, error)
}

// CollectionLoader loads the write-side aggregate; the pricing query needs
// live items and participants, not the flattened view.
type CollectionLoader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*collection.Collection, error)
}

// QuoteReader is the cache-backed quote computation shared with the
// command side.
type QuoteReader interface {
	GetOrCompute(ctx context.Context, col *collection.Collection) (*pricing.Quote, error)
}

type CollectionQueries interface {
	GetByID(ctx context.Context, id, callerID uuid.UUID) (*CollectionView, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]*CollectionListItem, error)
	GetShared(ctx context.Context, token string) (*SharedCollectionView, error)
	IsLocked(ctx context.Context, id uuid.UUID) (bool, error)
	GetPricing(ctx context.Context, id, callerID uuid.UUID) (*PricingView, error)
}

type collectionQueriesImpl struct {
	readStore CollectionReadStore
	loader    CollectionLoader
	quotes    QuoteReader
}

func NewCollectionQueries(
	readStore CollectionReadStore,
	loader CollectionLoader,
	quotes QuoteReader,
) CollectionQueries {
	return &collectionQueriesImpl{
		readStore: readStore,
		loader:    loader,
		quotes:    quotes,
	}
}

// GetByID hides private collections from non-participants. Pending
// requesters may see the collection they asked to join.
func (q *collectionQueriesImpl) GetByID(ctx context.Context, id, callerID uuid.UUID) (*CollectionView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCollectionNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !view.IsPublic && !isParticipant(view, callerID) {
		return nil, errs.ErrCollectionNotFound
	}
	return view, nil
}

func (q *collectionQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*CollectionListItem, error) {
	items, err := q.readStore.FindByUserID(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (q *collectionQueriesImpl) GetShared(ctx context.Context, token string) (*SharedCollectionView, error) {
	view, err := q.readStore.FindByShareToken(ctx, token)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCollectionNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (q *collectionQueriesImpl) IsLocked(ctx context.Context, id uuid.UUID) (bool, error) {
	col, err := q.loader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return false, errs.ErrCollectionNotFound
		}
		return false, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return col.IsLocked(), nil
}

// GetPricing serves the quote view through the snapshot cache, so repeated
// reads within the TTL window see one stable amount.
func (q *collectionQueriesImpl) GetPricing(ctx context.Context, id, callerID uuid.UUID) (*PricingView, error) {
	col, err := q.loader.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrCollectionNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if !col.IsMember(callerID) {
		return nil, errs.ErrNotAMember
	}

	quote, err := q.quotes.GetOrCompute(ctx, col)
	if err != nil {
		return nil, err
	}
	return pricingViewFromQuote(quote), nil
}

func isParticipant(view *CollectionView, callerID uuid.UUID) bool {
	if view.OwnerID == callerID {
		return true
	}
	for _, p := range view.Participants {
		if p.UserID == callerID {
			return true
		}
	}
	return false
}

func pricingViewFromQuote(quote *pricing.Quote) *PricingView {
	view := &PricingView{
		CollectionID:     quote.CollectionID,
		OriginalCents:    quote.OriginalCents,
		DiscountedCents:  quote.DiscountedCents,
		SavingsCents:     quote.SavingsCents,
		EffectiveMembers: quote.EffectiveMembers,
		ComputedAt:       quote.ComputedAt,
	}
	for _, line := range quote.Lines {
		view.Lines = append(view.Lines, PricingLineView{
			ProductID:      line.ProductID,
			ProductName:    line.ProductName,
			Quantity:       line.Quantity,
			OriginalCents:  line.OriginalCents,
			UnitPriceCents: line.UnitPriceCents,
			SubtotalCents:  line.SubtotalCents(),
		})
	}
	return view
}
