package repository

import (
	"context"

	"groupcart/internal/domain/collection"
	"groupcart/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ParticipantRepository struct{}

func NewParticipantRepository() *ParticipantRepository {
	return &ParticipantRepository{}
}

func (r *ParticipantRepository) Insert(ctx context.Context, tx pgx.Tx, p *collection.Participant) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO participants (collection_id, user_id, status)
		VALUES ($1, $2, $3)`,
		p.CollectionID(), p.UserID(), p.Status().String())
	if err != nil {
		return infra.WrapRepoErr("failed to insert participant", err)
	}
	return nil
}

// UpdateStatus only transitions rows that are still pending. Zero rows
// affected means the row was already approved or rejected, which surfaces
// as a conflict to the caller.
func (r *ParticipantRepository) UpdateStatus(ctx context.Context, tx pgx.Tx, collectionID, userID uuid.UUID, status collection.ParticipantStatus) error {
	tag, err := tx.Exec(ctx, `
		UPDATE participants SET status = $3, updated_at = now()
		WHERE collection_id = $1 AND user_id = $2 AND status = 'pending'`,
		collectionID, userID, status.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update participant status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("participant is not pending", nil, infra.KindConflict)
	}
	return nil
}

func (r *ParticipantRepository) Delete(ctx context.Context, tx pgx.Tx, collectionID, userID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		DELETE FROM participants WHERE collection_id = $1 AND user_id = $2`,
		collectionID, userID)
	if err != nil {
		return infra.WrapRepoErr("failed to delete participant", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("participant not found", nil, infra.KindNotFound)
	}
	return nil
}
