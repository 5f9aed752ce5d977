package commands

import (
	"context"
	"errors"
	"log/slog"

	"groupcart/internal/domain/collection"
	"groupcart/internal/infra"
	"groupcart/internal/pkg/clock"
	"groupcart/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CreateCollectionResult struct {
	CollectionID uuid.UUID
	ShareToken   string
}

type UpdateCollectionParams struct {
	Name     *string
	IsPublic *bool
}

type CollectionCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, name string, isPublic bool) (*CreateCollectionResult, error)
	Update(ctx context.Context, collectionID, ownerID uuid.UUID, params UpdateCollectionParams) error
	Delete(ctx context.Context, collectionID, ownerID uuid.UUID) error
	AddItem(ctx context.Context, collectionID, ownerID, productID uuid.UUID, quantity int32) error
	RemoveItem(ctx context.Context, collectionID, ownerID, productID uuid.UUID) error
}

type collectionCommandsImpl struct {
	collectionRepo CollectionRepository
	productRepo    ProductRepository
	db             *pgxpool.Pool
	clock          clock.Clock
}

func NewCollectionCommands(
	collectionRepo CollectionRepository,
	productRepo ProductRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) CollectionCommands {
	return &collectionCommandsImpl{
		collectionRepo: collectionRepo,
		productRepo:    productRepo,
		db:             db,
		clock:          clock,
	}
}

// Create persists the collection together with the owner's approved
// participant row in one transaction, so the owner-as-first-member invariant
// can never be observed half-applied.
func (c *collectionCommandsImpl) Create(
	ctx context.Context,
	ownerID uuid.UUID,
	name string,
	isPublic bool,
) (*CreateCollectionResult, error) {
	col, err := collection.NewCollection(ownerID, name, isPublic)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	if err := c.collectionRepo.Create(ctx, tx, col); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &CreateCollectionResult{
		CollectionID: col.ID(),
		ShareToken:   col.ShareToken(),
	}, nil
}

func (c *collectionCommandsImpl) Update(
	ctx context.Context,
	collectionID, ownerID uuid.UUID,
	params UpdateCollectionParams,
) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	col, err := c.collectionRepo.FindByIDForUpdate(ctx, tx, collectionID)
	if err != nil {
		return mapCollectionLookupErr(err)
	}

	if params.Name != nil {
		if err := col.Rename(ownerID, *params.Name); err != nil {
			return mapCollectionDomainErr(err)
		}
	}
	if params.IsPublic != nil {
		if err := col.SetVisibility(ownerID, *params.IsPublic); err != nil {
			return mapCollectionDomainErr(err)
		}
	}

	if err := c.collectionRepo.Update(ctx, tx, col); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *collectionCommandsImpl) Delete(ctx context.Context, collectionID, ownerID uuid.UUID) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	col, err := c.collectionRepo.FindByIDForUpdate(ctx, tx, collectionID)
	if err != nil {
		return mapCollectionLookupErr(err)
	}
	if err := col.CanEdit(ownerID); err != nil {
		return mapCollectionDomainErr(err)
	}

	if err := c.collectionRepo.Delete(ctx, tx, collectionID); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *collectionCommandsImpl) AddItem(
	ctx context.Context,
	collectionID, ownerID, productID uuid.UUID,
	quantity int32,
) error {
	products, err := c.productRepo.FindByIDs(ctx, []uuid.UUID{productID})
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if _, ok := products[productID]; !ok {
		return errs.ErrProductNotFound
	}

	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	col, err := c.collectionRepo.FindByIDForUpdate(ctx, tx, collectionID)
	if err != nil {
		return mapCollectionLookupErr(err)
	}

	item, err := col.AddItem(ownerID, productID, quantity)
	if err != nil {
		return mapCollectionDomainErr(err)
	}

	if err := c.collectionRepo.AddItem(ctx, tx, collectionID, item); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return errs.ErrDuplicateItem
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *collectionCommandsImpl) RemoveItem(ctx context.Context, collectionID, ownerID, productID uuid.UUID) error {
	tx, err := c.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	col, err := c.collectionRepo.FindByIDForUpdate(ctx, tx, collectionID)
	if err != nil {
		return mapCollectionLookupErr(err)
	}

	if err := col.RemoveItem(ownerID, productID); err != nil {
		return mapCollectionDomainErr(err)
	}

	if err := c.collectionRepo.RemoveItem(ctx, tx, collectionID, productID); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func rollback(ctx context.Context, tx interface {
	Rollback(ctx context.Context) error
}) {
	if err := tx.Rollback(ctx); err != nil {
		slog.Debug("transaction rollback", "error", err)
	}
}

func mapCollectionLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.ErrCollectionNotFound
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}

// mapCollectionDomainErr translates aggregate errors into usecase sentinels.
func mapCollectionDomainErr(err error) error {
	switch {
	case errors.Is(err, collection.ErrNotOwner):
		return errs.ErrNotCollectionOwner
	case errors.Is(err, collection.ErrLocked):
		return errs.ErrCollectionLocked
	case errors.Is(err, collection.ErrNotPublic):
		return errs.ErrCollectionPrivate
	case errors.Is(err, collection.ErrFull):
		return errs.ErrCollectionFull
	case errors.Is(err, collection.ErrDuplicateRequest), errors.Is(err, collection.ErrTerminalStatus):
		return errs.ErrAlreadyRequested
	case errors.Is(err, collection.ErrOwnerRemoval):
		return errs.ErrCannotRemoveOwner
	case errors.Is(err, collection.ErrParticipantAbsent):
		return errs.ErrParticipantNotFound
	case errors.Is(err, collection.ErrDuplicateItem):
		return errs.ErrDuplicateItem
	case errors.Is(err, collection.ErrItemNotFound):
		return errs.ErrItemNotFound
	default:
		return errs.Mark(err, errs.ErrDomainValidation)
	}
}
