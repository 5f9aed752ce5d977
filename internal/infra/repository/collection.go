package repository

import (
	"context"
	"time"

	"groupcart/internal/domain/collection"
	"groupcart/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CollectionRepository struct {
	db *pgxpool.Pool
}

func NewCollectionRepository(db *pgxpool.Pool) *CollectionRepository {
	return &CollectionRepository{db: db}
}

type collectionRow struct {
	id         uuid.UUID
	ownerID    uuid.UUID
	name       string
	isPublic   bool
	shareToken string
	createdAt  time.Time
	updatedAt  time.Time
}

func (r *CollectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.Collection, error) {
	return r.load(ctx, r.db, id, false)
}

func (r *CollectionRepository) FindByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*collection.Collection, error) {
	return r.load(ctx, tx, id, true)
}

func (r *CollectionRepository) FindByShareToken(ctx context.Context, token string) (*collection.Collection, error) {
	var row collectionRow
	err := r.db.QueryRow(ctx, `
		SELECT id, owner_id, name, is_public, share_token, created_at, updated_at
		FROM collections WHERE share_token = $1`, token).
		Scan(&row.id, &row.ownerID, &row.name, &row.isPublic, &row.shareToken, &row.createdAt, &row.updatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("collection not found by share token", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find collection by share token", err)
	}
	return r.assemble(ctx, r.db, row)
}

type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func (r *CollectionRepository) load(ctx context.Context, q querier, id uuid.UUID, forUpdate bool) (*collection.Collection, error) {
	query := `
		SELECT id, owner_id, name, is_public, share_token, created_at, updated_at
		FROM collections WHERE id = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var row collectionRow
	err := q.QueryRow(ctx, query, id).
		Scan(&row.id, &row.ownerID, &row.name, &row.isPublic, &row.shareToken, &row.createdAt, &row.updatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("collection not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find collection", err)
	}
	return r.assemble(ctx, q, row)
}

func (r *CollectionRepository) assemble(ctx context.Context, q querier, row collectionRow) (*collection.Collection, error) {
	items, err := r.loadItems(ctx, q, row.id)
	if err != nil {
		return nil, err
	}
	participants, err := r.loadParticipants(ctx, q, row.id)
	if err != nil {
		return nil, err
	}

	return collection.ReconstructCollection(
		row.id, row.ownerID, row.name, row.isPublic, row.shareToken,
		items, participants, row.createdAt, row.updatedAt,
	), nil
}

func (r *CollectionRepository) loadItems(ctx context.Context, q querier, collectionID uuid.UUID) ([]collection.Item, error) {
	rows, err := q.Query(ctx, `
		SELECT product_id, quantity
		FROM collection_items WHERE collection_id = $1
		ORDER BY created_at`, collectionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load collection items", err)
	}
	defer rows.Close()

	var items []collection.Item
	for rows.Next() {
		var it collection.Item
		if err := rows.Scan(&it.ProductID, &it.Quantity); err != nil {
			return nil, infra.WrapRepoErr("failed to scan collection item", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate collection items", err)
	}
	return items, nil
}

func (r *CollectionRepository) loadParticipants(ctx context.Context, q querier, collectionID uuid.UUID) ([]*collection.Participant, error) {
	rows, err := q.Query(ctx, `
		SELECT user_id, status, created_at, updated_at
		FROM participants WHERE collection_id = $1
		ORDER BY created_at`, collectionID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load participants", err)
	}
	defer rows.Close()

	var participants []*collection.Participant
	for rows.Next() {
		var (
			userID    uuid.UUID
			status    string
			createdAt time.Time
			updatedAt time.Time
		)
		if err := rows.Scan(&userID, &status, &createdAt, &updatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan participant", err)
		}
		participantStatus, err := collection.NewParticipantStatus(status)
		if err != nil {
			return nil, infra.WrapRepoErr("invalid participant status in storage", err)
		}
		participants = append(participants,
			collection.ReconstructParticipant(collectionID, userID, participantStatus, createdAt, updatedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate participants", err)
	}
	return participants, nil
}

// Create inserts the collection and its initial participant rows (the
// owner's approved row) in the caller's transaction.
func (r *CollectionRepository) Create(ctx context.Context, tx pgx.Tx, col *collection.Collection) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO collections (id, owner_id, name, is_public, share_token)
		VALUES ($1, $2, $3, $4, $5)`,
		col.ID(), col.OwnerID(), col.Name(), col.IsPublic(), col.ShareToken())
	if err != nil {
		return infra.WrapRepoErr("failed to create collection", err)
	}

	for _, p := range col.Participants() {
		_, err := tx.Exec(ctx, `
			INSERT INTO participants (collection_id, user_id, status)
			VALUES ($1, $2, $3)`,
			p.CollectionID(), p.UserID(), p.Status().String())
		if err != nil {
			return infra.WrapRepoErr("failed to create initial participant", err)
		}
	}
	return nil
}

func (r *CollectionRepository) Update(ctx context.Context, tx pgx.Tx, col *collection.Collection) error {
	tag, err := tx.Exec(ctx, `
		UPDATE collections SET name = $2, is_public = $3, updated_at = now()
		WHERE id = $1`,
		col.ID(), col.Name(), col.IsPublic())
	if err != nil {
		return infra.WrapRepoErr("failed to update collection", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("collection not found for update", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CollectionRepository) Delete(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM collections WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete collection", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("collection not found for delete", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CollectionRepository) AddItem(ctx context.Context, tx pgx.Tx, collectionID uuid.UUID, item collection.Item) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO collection_items (collection_id, product_id, quantity)
		VALUES ($1, $2, $3)`,
		collectionID, item.ProductID, item.Quantity)
	if err != nil {
		return infra.WrapRepoErr("failed to add collection item", err)
	}
	return nil
}

func (r *CollectionRepository) RemoveItem(ctx context.Context, tx pgx.Tx, collectionID, productID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		DELETE FROM collection_items WHERE collection_id = $1 AND product_id = $2`,
		collectionID, productID)
	if err != nil {
		return infra.WrapRepoErr("failed to remove collection item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("collection item not found", nil, infra.KindNotFound)
	}
	return nil
}
