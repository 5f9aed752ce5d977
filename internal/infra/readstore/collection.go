package readstore

import (
	"context"

	"groupcart/internal/domain/collection"
	"groupcart/internal/infra"
	"groupcart/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CollectionReadStore struct {
	db *pgxpool.Pool
}

func NewCollectionReadStore(db *pgxpool.Pool) *CollectionReadStore {
	return &CollectionReadStore{db: db}
}

func (s *CollectionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.CollectionView, error) {
	var (
		view          queries.CollectionView
		approvedCount int
	)
	err := s.db.QueryRow(ctx, `
		SELECT c.id, c.owner_id, c.name, c.is_public, c.share_token, c.created_at, c.updated_at,
		       (SELECT count(*) FROM participants p
		        WHERE p.collection_id = c.id AND p.status = 'approved')
		FROM collections c WHERE c.id = $1`, id).
		Scan(&view.ID, &view.OwnerID, &view.Name, &view.IsPublic, &view.ShareToken,
			&view.CreatedAt, &view.UpdatedAt, &approvedCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("collection not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find collection view", err)
	}
	view.ApprovedCount = approvedCount
	view.IsLocked = approvedCount >= collection.MaxMembers

	if err := s.loadItems(ctx, &view); err != nil {
		return nil, err
	}
	if err := s.loadParticipants(ctx, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *CollectionReadStore) loadItems(ctx context.Context, view *queries.CollectionView) error {
	rows, err := s.db.Query(ctx, `
		SELECT ci.product_id, pr.name, pr.price_cents, ci.quantity
		FROM collection_items ci
		JOIN products pr ON pr.id = ci.product_id
		WHERE ci.collection_id = $1
		ORDER BY ci.created_at`, view.ID)
	if err != nil {
		return infra.WrapRepoErr("failed to load item views", err)
	}
	defer rows.Close()

	for rows.Next() {
		var it queries.ItemView
		if err := rows.Scan(&it.ProductID, &it.ProductName, &it.PriceCents, &it.Quantity); err != nil {
			return infra.WrapRepoErr("failed to scan item view", err)
		}
		view.Items = append(view.Items, it)
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate item views", err)
	}
	return nil
}

func (s *CollectionReadStore) loadParticipants(ctx context.Context, view *queries.CollectionView) error {
	rows, err := s.db.Query(ctx, `
		SELECT p.user_id, u.name, p.status, p.created_at
		FROM participants p
		JOIN users u ON u.id = p.user_id
		WHERE p.collection_id = $1
		ORDER BY p.created_at`, view.ID)
	if err != nil {
		return infra.WrapRepoErr("failed to load participant views", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pv queries.ParticipantView
		if err := rows.Scan(&pv.UserID, &pv.UserName, &pv.Status, &pv.JoinedAt); err != nil {
			return infra.WrapRepoErr("failed to scan participant view", err)
		}
		view.Participants = append(view.Participants, pv)
	}
	if err := rows.Err(); err != nil {
		return infra.WrapRepoErr("failed to iterate participant views", err)
	}
	return nil
}

func (s *CollectionReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.CollectionListItem, error) {
	rows, err := s.db.Query(ctx, `
		SELECT c.id, c.name, c.created_at,
		       (SELECT count(*) FROM participants p
		        WHERE p.collection_id = c.id AND p.status = 'approved'),
		       (SELECT count(*) FROM collection_items ci WHERE ci.collection_id = c.id)
		FROM collections c
		JOIN participants me ON me.collection_id = c.id
		WHERE me.user_id = $1 AND me.status = 'approved'
		ORDER BY c.created_at DESC`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list collections", err)
	}
	defer rows.Close()

	var items []*queries.CollectionListItem
	for rows.Next() {
		var li queries.CollectionListItem
		if err := rows.Scan(&li.ID, &li.Name, &li.CreatedAt, &li.ApprovedCount, &li.ItemCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan collection list item", err)
		}
		li.IsLocked = li.ApprovedCount >= collection.MaxMembers
		items = append(items, &li)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate collection list", err)
	}
	return items, nil
}

func (s *CollectionReadStore) FindByShareToken(ctx context.Context, token string) (*queries.SharedCollectionView, error) {
	var view queries.SharedCollectionView
	err := s.db.QueryRow(ctx, `
		SELECT c.id, c.name,
		       (SELECT count(*) FROM participants p
		        WHERE p.collection_id = c.id AND p.status = 'approved'),
		       (SELECT count(*) FROM collection_items ci WHERE ci.collection_id = c.id)
		FROM collections c WHERE c.share_token = $1`, token).
		Scan(&view.ID, &view.Name, &view.ApprovedCount, &view.ItemCount)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("collection not found by share token", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find shared collection view", err)
	}
	view.IsLocked = view.ApprovedCount >= collection.MaxMembers
	return &view, nil
}
