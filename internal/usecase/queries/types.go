package queries

import (
	"time"

	"github.com/google/uuid"
)

type ItemView struct {
	ProductID   uuid.UUID
	ProductName string
	PriceCents  int64
	Quantity    int32
}

type ParticipantView struct {
	UserID   uuid.UUID
	UserName string
	Status   string
	JoinedAt time.Time
}

type CollectionView struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	IsPublic      bool
	ShareToken    string
	IsLocked      bool
	ApprovedCount int
	Items         []ItemView
	Participants  []ParticipantView
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CollectionListItem struct {
	ID            uuid.UUID
	Name          string
	IsLocked      bool
	ApprovedCount int
	ItemCount     int
	CreatedAt     time.Time
}

// SharedCollectionView is the public metadata exposed through a share token.
type SharedCollectionView struct {
	ID            uuid.UUID
	Name          string
	IsLocked      bool
	ApprovedCount int
	ItemCount     int
}

type PricingLineView struct {
	ProductID      uuid.UUID
	ProductName    string
	Quantity       int32
	OriginalCents  int64
	UnitPriceCents int64
	SubtotalCents  int64
}

type PricingView struct {
	CollectionID     uuid.UUID
	Lines            []PricingLineView
	OriginalCents    int64
	DiscountedCents  int64
	SavingsCents     int64
	EffectiveMembers int
	ComputedAt       time.Time
}
