package repository

import (
	"context"
	"time"

	"groupcart/internal/infra"

	"github.com/jackc/pgx/v5"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

// CreateJob enqueues a notification row in the caller's transaction so the
// job becomes visible only if the surrounding state change commits.
func (r *NotificationRepository) CreateJob(ctx context.Context, tx pgx.Tx, kind, topic string, payload []byte, runAt time.Time) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO notification_jobs (kind, topic, payload, run_at)
		VALUES ($1, $2, $3, $4)`,
		kind, topic, payload, runAt)
	if err != nil {
		return infra.WrapRepoErr("failed to enqueue notification job", err)
	}
	return nil
}
