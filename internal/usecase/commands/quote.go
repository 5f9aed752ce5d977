package commands

import (
	"context"
	"log/slog"

	"groupcart/internal/domain/collection"
	"groupcart/internal/domain/pricing"
	"groupcart/internal/pkg/clock"
	"groupcart/internal/pkg/errs"

	"github.com/google/uuid"
)

// QuoteService computes a collection's priced quote with read-through
// memoization. The cache is advisory: failures degrade to a recompute and
// are only logged.
type QuoteService interface {
	GetOrCompute(ctx context.Context, col *collection.Collection) (*pricing.Quote, error)
	// Compute bypasses the cache; settlement uses it to rebuild order lines
	// from live data while the charged amount stays the intent's own.
	Compute(ctx context.Context, col *collection.Collection) (*pricing.Quote, error)
}

type quoteServiceImpl struct {
	productRepo ProductRepository
	cache       SnapshotCache
	clock       clock.Clock
}

func NewQuoteService(
	productRepo ProductRepository,
	cache SnapshotCache,
	clock clock.Clock,
) QuoteService {
	return &quoteServiceImpl{
		productRepo: productRepo,
		cache:       cache,
		clock:       clock,
	}
}

func (s *quoteServiceImpl) GetOrCompute(ctx context.Context, col *collection.Collection) (*pricing.Quote, error) {
	if cached, err := s.cache.Get(ctx, col.ID()); err != nil {
		slog.Warn("pricing snapshot read failed", "collection_id", col.ID(), "error", err)
	} else if cached != nil {
		return cached, nil
	}

	quote, err := s.Compute(ctx, col)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, quote); err != nil {
		slog.Warn("pricing snapshot write failed", "collection_id", col.ID(), "error", err)
	}
	return quote, nil
}

// Compute resolves the quote from live items and participants, bypassing
// the cache. Settlement uses this to rebuild order lines.
func (s *quoteServiceImpl) Compute(ctx context.Context, col *collection.Collection) (*pricing.Quote, error) {
	items := col.Items()
	if len(items) == 0 {
		return nil, errs.ErrNoItems
	}

	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.ProductID
	}

	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	quote, err := pricing.BuildQuote(col.ID(), items, products, col.ApprovedCount(), s.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrProductNotFound)
	}
	return quote, nil
}
