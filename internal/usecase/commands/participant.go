package commands

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"groupcart/internal/domain/collection"
	"groupcart/internal/infra"
	"groupcart/internal/pkg/clock"
	"groupcart/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Notification topics emitted by participant transitions.
const (
	topicJoinRequested = "collection.join_requested"
	topicJoinApproved  = "collection.join_approved"
)

type ParticipantCommands interface {
	RequestJoin(ctx context.Context, collectionID, userID uuid.UUID) error
	Approve(ctx context.Context, collectionID, ownerID, userID uuid.UUID) error
	Reject(ctx context.Context, collectionID, ownerID, userID uuid.UUID) error
	AddDirectly(ctx context.Context, collectionID, ownerID, userID uuid.UUID) error
	Remove(ctx context.Context, collectionID, ownerID, userID uuid.UUID) error
	Leave(ctx context.Context, collectionID, userID uuid.UUID) error
}

type participantCommandsImpl struct {
	collectionRepo   CollectionRepository
	participantRepo  ParticipantRepository
	notificationRepo NotificationRepository
	db               *pgxpool.Pool
	clock            clock.Clock
}

func NewParticipantCommands(
	collectionRepo CollectionRepository,
	participantRepo ParticipantRepository,
	notificationRepo NotificationRepository,
	db *pgxpool.Pool,
	clock clock.Clock,
) ParticipantCommands {
	return &participantCommandsImpl{
		collectionRepo:   collectionRepo,
		participantRepo:  participantRepo,
		notificationRepo: notificationRepo,
		db:               db,
		clock:            clock,
	}
}

// RequestJoin inserts a pending row and queues a notification to the owner.
// The unique (collection, user) constraint backstops the duplicate check.
func (u *participantCommandsImpl) RequestJoin(ctx context.Context, collectionID, userID uuid.UUID) error {
	return u.inCollectionTx(ctx, collectionID, func(tx pgx.Tx, col *collection.Collection) error {
		p, err := col.RequestJoin(userID)
		if err != nil {
			return mapCollectionDomainErr(err)
		}

		if err := u.participantRepo.Insert(ctx, tx, p); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrAlreadyRequested
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		return u.queueNotification(ctx, tx, topicJoinRequested, map[string]any{
			"collection_id": collectionID,
			"requester_id":  userID,
			"recipient_id":  col.OwnerID(),
		})
	})
}

// Approve transitions pending -> approved. The collection row is held FOR
// UPDATE for the whole transaction, so the approved count read here cannot
// be overtaken by a concurrent approval; the second caller re-reads after
// the lock is released and fails the capacity check.
func (u *participantCommandsImpl) Approve(ctx context.Context, collectionID, ownerID, userID uuid.UUID) error {
	return u.inCollectionTx(ctx, collectionID, func(tx pgx.Tx, col *collection.Collection) error {
		if _, err := col.Approve(ownerID, userID); err != nil {
			if errors.Is(err, collection.ErrFull) {
				return errs.ErrCapacityExceeded
			}
			return mapCollectionDomainErr(err)
		}

		if err := u.participantRepo.UpdateStatus(ctx, tx, collectionID, userID, collection.StatusApproved); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrAlreadyRequested
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		return u.queueNotification(ctx, tx, topicJoinApproved, map[string]any{
			"collection_id": collectionID,
			"recipient_id":  userID,
		})
	})
}

func (u *participantCommandsImpl) Reject(ctx context.Context, collectionID, ownerID, userID uuid.UUID) error {
	return u.inCollectionTx(ctx, collectionID, func(tx pgx.Tx, col *collection.Collection) error {
		if _, err := col.Reject(ownerID, userID); err != nil {
			return mapCollectionDomainErr(err)
		}
		if err := u.participantRepo.UpdateStatus(ctx, tx, collectionID, userID, collection.StatusRejected); err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return errs.ErrAlreadyRequested
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// AddDirectly inserts an approved row without the pending stage, under the
// same capacity gate as Approve.
func (u *participantCommandsImpl) AddDirectly(ctx context.Context, collectionID, ownerID, userID uuid.UUID) error {
	return u.inCollectionTx(ctx, collectionID, func(tx pgx.Tx, col *collection.Collection) error {
		p, err := col.AddDirectly(ownerID, userID)
		if err != nil {
			if errors.Is(err, collection.ErrFull) {
				return errs.ErrCapacityExceeded
			}
			return mapCollectionDomainErr(err)
		}

		if err := u.participantRepo.Insert(ctx, tx, p); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrAlreadyRequested
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		return u.queueNotification(ctx, tx, topicJoinApproved, map[string]any{
			"collection_id": collectionID,
			"recipient_id":  userID,
		})
	})
}

func (u *participantCommandsImpl) Remove(ctx context.Context, collectionID, ownerID, userID uuid.UUID) error {
	return u.inCollectionTx(ctx, collectionID, func(tx pgx.Tx, col *collection.Collection) error {
		if err := col.Remove(ownerID, userID); err != nil {
			return mapCollectionDomainErr(err)
		}
		if err := u.participantRepo.Delete(ctx, tx, collectionID, userID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *participantCommandsImpl) Leave(ctx context.Context, collectionID, userID uuid.UUID) error {
	return u.inCollectionTx(ctx, collectionID, func(tx pgx.Tx, col *collection.Collection) error {
		if err := col.Leave(userID); err != nil {
			return mapCollectionDomainErr(err)
		}
		if err := u.participantRepo.Delete(ctx, tx, collectionID, userID); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

// inCollectionTx loads the collection under a row lock and runs fn inside
// the transaction.
func (u *participantCommandsImpl) inCollectionTx(
	ctx context.Context,
	collectionID uuid.UUID,
	fn func(tx pgx.Tx, col *collection.Collection) error,
) error {
	tx, err := u.db.Begin(ctx)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	defer rollback(ctx, tx)

	col, err := u.collectionRepo.FindByIDForUpdate(ctx, tx, collectionID)
	if err != nil {
		return mapCollectionLookupErr(err)
	}

	if err := fn(tx, col); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (u *participantCommandsImpl) queueNotification(
	ctx context.Context,
	tx pgx.Tx,
	topic string,
	payload map[string]any,
) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := u.notificationRepo.CreateJob(ctx, tx, "push", topic, data, u.clock.Now()); err != nil {
		slog.Warn("failed to queue notification job", "topic", topic, "error", err)
	}
	return nil
}
