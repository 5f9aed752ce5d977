package collection

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a membership row inside the Collection aggregate.
// Lifecycle: none -> pending -> {approved | rejected}. Both approved and
// rejected are terminal.
type Participant struct {
	collectionID uuid.UUID
	userID       uuid.UUID
	status       ParticipantStatus
	createdAt    time.Time
	updatedAt    time.Time
}

func NewPendingParticipant(collectionID, userID uuid.UUID) *Participant {
	return &Participant{
		collectionID: collectionID,
		userID:       userID,
		status:       StatusPending,
	}
}

// NewApprovedParticipant skips the pending state. Used for the owner's own
// row at collection creation and for direct-adds by the owner.
func NewApprovedParticipant(collectionID, userID uuid.UUID) *Participant {
	return &Participant{
		collectionID: collectionID,
		userID:       userID,
		status:       StatusApproved,
	}
}

func ReconstructParticipant(
	collectionID, userID uuid.UUID,
	status ParticipantStatus,
	createdAt, updatedAt time.Time,
) *Participant {
	return &Participant{
		collectionID: collectionID,
		userID:       userID,
		status:       status,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (p *Participant) Approve() error {
	if p.status != StatusPending {
		return ErrTerminalStatus
	}
	p.status = StatusApproved
	return nil
}

func (p *Participant) Reject() error {
	if p.status != StatusPending {
		return ErrTerminalStatus
	}
	p.status = StatusRejected
	return nil
}

func (p *Participant) IsApproved() bool { return p.status == StatusApproved }
func (p *Participant) IsPending() bool  { return p.status == StatusPending }
func (p *Participant) IsRejected() bool { return p.status == StatusRejected }

func (p *Participant) CollectionID() uuid.UUID   { return p.collectionID }
func (p *Participant) UserID() uuid.UUID         { return p.userID }
func (p *Participant) Status() ParticipantStatus { return p.status }
func (p *Participant) CreatedAt() time.Time      { return p.createdAt }
func (p *Participant) UpdatedAt() time.Time      { return p.updatedAt }
