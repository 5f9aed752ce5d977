package collection

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidName       = errors.New("collection name must not be empty")
	ErrInvalidQuantity   = errors.New("item quantity must be at least 1")
	ErrInvalidStatus     = errors.New("invalid participant status")
	ErrTerminalStatus    = errors.New("participant status is terminal")
	ErrLocked            = errors.New("collection is locked")
	ErrNotOwner          = errors.New("caller is not the collection owner")
	ErrNotPublic         = errors.New("collection is not public")
	ErrFull              = errors.New("collection already has the maximum number of approved members")
	ErrDuplicateRequest  = errors.New("a participant row already exists for this user")
	ErrOwnerRemoval      = errors.New("the owner cannot be removed from their own collection")
	ErrDuplicateItem     = errors.New("product already present in collection")
	ErrItemNotFound      = errors.New("product not present in collection")
	ErrParticipantAbsent = errors.New("no participant row for this user")
)

// Item is a (product, quantity) line inside a collection, unique per product.
type Item struct {
	ProductID uuid.UUID
	Quantity  int32
}

// Collection is the group-buy cart aggregate. It owns its items and its
// participant list; the capacity lock is derived state, never stored.
type Collection struct {
	id           uuid.UUID
	ownerID      uuid.UUID
	name         string
	isPublic     bool
	shareToken   string
	items        []Item
	participants []*Participant
	createdAt    time.Time
	updatedAt    time.Time
}

// NewCollection creates an unlocked collection with the owner registered as
// its first approved participant. The owner row and the collection itself
// must be persisted in one transaction.
func NewCollection(ownerID uuid.UUID, name string, isPublic bool) (*Collection, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	id := uuid.New()
	c := &Collection{
		id:         id,
		ownerID:    ownerID,
		name:       name,
		isPublic:   isPublic,
		shareToken: newShareToken(),
	}
	c.participants = []*Participant{NewApprovedParticipant(id, ownerID)}
	return c, nil
}

func ReconstructCollection(
	id, ownerID uuid.UUID,
	name string,
	isPublic bool,
	shareToken string,
	items []Item,
	participants []*Participant,
	createdAt, updatedAt time.Time,
) *Collection {
	return &Collection{
		id:           id,
		ownerID:      ownerID,
		name:         name,
		isPublic:     isPublic,
		shareToken:   shareToken,
		items:        items,
		participants: participants,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (c *Collection) ApprovedCount() int {
	n := 0
	for _, p := range c.participants {
		if p.IsApproved() {
			n++
		}
	}
	return n
}

// IsLocked reports whether the capacity lock is active. While locked, item
// edits, collection update/delete, leave and remove are all rejected.
func (c *Collection) IsLocked() bool {
	return c.ApprovedCount() >= MaxMembers
}

func (c *Collection) IsOwner(userID uuid.UUID) bool {
	return c.ownerID == userID
}

func (c *Collection) ParticipantOf(userID uuid.UUID) *Participant {
	for _, p := range c.participants {
		if p.UserID() == userID {
			return p
		}
	}
	return nil
}

// IsMember reports whether the user may act on the collection's behalf:
// the owner or any approved participant.
func (c *Collection) IsMember(userID uuid.UUID) bool {
	if c.ownerID == userID {
		return true
	}
	p := c.ParticipantOf(userID)
	return p != nil && p.IsApproved()
}

// RequestJoin validates a self-service join request and returns the pending
// row to persist. The capacity re-check still happens at write time.
func (c *Collection) RequestJoin(userID uuid.UUID) (*Participant, error) {
	if !c.isPublic {
		return nil, ErrNotPublic
	}
	if c.ParticipantOf(userID) != nil {
		return nil, ErrDuplicateRequest
	}
	if c.ApprovedCount() >= MaxMembers {
		return nil, ErrFull
	}
	return NewPendingParticipant(c.id, userID), nil
}

// Approve transitions a pending participant to approved. Capacity is checked
// here against the loaded aggregate and again by the conditional write, which
// is the authoritative gate under concurrent approvals.
func (c *Collection) Approve(ownerID, userID uuid.UUID) (*Participant, error) {
	if !c.IsOwner(ownerID) {
		return nil, ErrNotOwner
	}
	p := c.ParticipantOf(userID)
	if p == nil {
		return nil, ErrParticipantAbsent
	}
	if c.ApprovedCount() >= MaxMembers {
		return nil, ErrFull
	}
	if err := p.Approve(); err != nil {
		return nil, err
	}
	return p, nil
}

func (c *Collection) Reject(ownerID, userID uuid.UUID) (*Participant, error) {
	if !c.IsOwner(ownerID) {
		return nil, ErrNotOwner
	}
	p := c.ParticipantOf(userID)
	if p == nil {
		return nil, ErrParticipantAbsent
	}
	if err := p.Reject(); err != nil {
		return nil, err
	}
	return p, nil
}

// AddDirectly is the owner shortcut that skips pending, subject to the same
// capacity rules as Approve.
func (c *Collection) AddDirectly(ownerID, userID uuid.UUID) (*Participant, error) {
	if !c.IsOwner(ownerID) {
		return nil, ErrNotOwner
	}
	if c.ParticipantOf(userID) != nil {
		return nil, ErrDuplicateRequest
	}
	if c.ApprovedCount() >= MaxMembers {
		return nil, ErrFull
	}
	p := NewApprovedParticipant(c.id, userID)
	c.participants = append(c.participants, p)
	return p, nil
}

func (c *Collection) Remove(ownerID, userID uuid.UUID) error {
	if !c.IsOwner(ownerID) {
		return ErrNotOwner
	}
	if userID == c.ownerID {
		return ErrOwnerRemoval
	}
	if c.IsLocked() {
		return ErrLocked
	}
	if c.ParticipantOf(userID) == nil {
		return ErrParticipantAbsent
	}
	return nil
}

func (c *Collection) Leave(userID uuid.UUID) error {
	if userID == c.ownerID {
		return ErrOwnerRemoval
	}
	if c.IsLocked() {
		return ErrLocked
	}
	if c.ParticipantOf(userID) == nil {
		return ErrParticipantAbsent
	}
	return nil
}

// CanEdit reports whether the user may mutate items or collection fields.
func (c *Collection) CanEdit(userID uuid.UUID) error {
	if !c.IsOwner(userID) {
		return ErrNotOwner
	}
	if c.IsLocked() {
		return ErrLocked
	}
	return nil
}

func (c *Collection) AddItem(ownerID, productID uuid.UUID, quantity int32) (Item, error) {
	if err := c.CanEdit(ownerID); err != nil {
		return Item{}, err
	}
	if quantity < 1 {
		return Item{}, ErrInvalidQuantity
	}
	for _, it := range c.items {
		if it.ProductID == productID {
			return Item{}, ErrDuplicateItem
		}
	}
	item := Item{ProductID: productID, Quantity: quantity}
	c.items = append(c.items, item)
	return item, nil
}

func (c *Collection) RemoveItem(ownerID, productID uuid.UUID) error {
	if err := c.CanEdit(ownerID); err != nil {
		return err
	}
	for i, it := range c.items {
		if it.ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

func (c *Collection) Rename(ownerID uuid.UUID, name string) error {
	if err := c.CanEdit(ownerID); err != nil {
		return err
	}
	if name == "" {
		return ErrInvalidName
	}
	c.name = name
	return nil
}

func (c *Collection) SetVisibility(ownerID uuid.UUID, isPublic bool) error {
	if err := c.CanEdit(ownerID); err != nil {
		return err
	}
	c.isPublic = isPublic
	return nil
}

func (c *Collection) ID() uuid.UUID                { return c.id }
func (c *Collection) OwnerID() uuid.UUID           { return c.ownerID }
func (c *Collection) Name() string                 { return c.name }
func (c *Collection) IsPublic() bool               { return c.isPublic }
func (c *Collection) ShareToken() string           { return c.shareToken }
func (c *Collection) Items() []Item                { return c.items }
func (c *Collection) Participants() []*Participant { return c.participants }
func (c *Collection) CreatedAt() time.Time         { return c.createdAt }
func (c *Collection) UpdatedAt() time.Time         { return c.updatedAt }

func newShareToken() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(b)
}
