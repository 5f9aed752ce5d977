//go:build unit || e2e

package builder

import (
	"time"

	domcollection "groupcart/internal/domain/collection"
	reqdto "groupcart/internal/handler/dto/request"
	"groupcart/internal/usecase/queries"

	"github.com/google/uuid"
)

type CollectionBuilder struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	IsPublic      bool
	ShareToken    string
	Items         []domcollection.Item
	ApprovedCount int
	PendingCount  int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewCollectionBuilder() *CollectionBuilder {
	now := time.Now()
	return &CollectionBuilder{
		ID:            uuid.New(),
		OwnerID:       uuid.New(),
		Name:          "Weekend Grocery Run",
		IsPublic:      true,
		ShareToken:    "0123456789abcdef0123456789abcdef",
		ApprovedCount: 1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *CollectionBuilder) With(mutate func(*CollectionBuilder)) *CollectionBuilder {
	mutate(b)
	return b
}

// Build methods

// BuildDomain reconstructs the aggregate with the configured participant
// shape: the owner plus (ApprovedCount-1) approved members and PendingCount
// pending requesters, all with fresh user IDs.
func (b *CollectionBuilder) BuildDomain() *domcollection.Collection {
	participants := []*domcollection.Participant{
		domcollection.ReconstructParticipant(b.ID, b.OwnerID, domcollection.StatusApproved, b.CreatedAt, b.UpdatedAt),
	}
	for i := 1; i < b.ApprovedCount; i++ {
		participants = append(participants,
			domcollection.ReconstructParticipant(b.ID, uuid.New(), domcollection.StatusApproved, b.CreatedAt, b.UpdatedAt))
	}
	for i := 0; i < b.PendingCount; i++ {
		participants = append(participants,
			domcollection.ReconstructParticipant(b.ID, uuid.New(), domcollection.StatusPending, b.CreatedAt, b.UpdatedAt))
	}
	return domcollection.ReconstructCollection(
		b.ID, b.OwnerID, b.Name, b.IsPublic, b.ShareToken,
		b.Items, participants, b.CreatedAt, b.UpdatedAt,
	)
}

func (b *CollectionBuilder) BuildCreateRequestDTO() reqdto.CreateCollectionRequest {
	return reqdto.CreateCollectionRequest{
		Name:     b.Name,
		IsPublic: b.IsPublic,
	}
}

func (b *CollectionBuilder) BuildUpdateRequestDTO() reqdto.UpdateCollectionRequest {
	name := b.Name
	isPublic := b.IsPublic
	return reqdto.UpdateCollectionRequest{
		Name:     &name,
		IsPublic: &isPublic,
	}
}

func (b *CollectionBuilder) BuildView() *queries.CollectionView {
	items := make([]queries.ItemView, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, queries.ItemView{
			ProductID:   it.ProductID,
			ProductName: "Test Product",
			PriceCents:  10000,
			Quantity:    it.Quantity,
		})
	}
	participants := []queries.ParticipantView{
		{UserID: b.OwnerID, UserName: "owner", Status: domcollection.StatusApproved.String(), JoinedAt: b.CreatedAt},
	}
	return &queries.CollectionView{
		ID:            b.ID,
		OwnerID:       b.OwnerID,
		Name:          b.Name,
		IsPublic:      b.IsPublic,
		ShareToken:    b.ShareToken,
		IsLocked:      b.ApprovedCount >= domcollection.MaxMembers,
		ApprovedCount: b.ApprovedCount,
		Items:         items,
		Participants:  participants,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func (b *CollectionBuilder) BuildListItem() *queries.CollectionListItem {
	return &queries.CollectionListItem{
		ID:            b.ID,
		Name:          b.Name,
		IsLocked:      b.ApprovedCount >= domcollection.MaxMembers,
		ApprovedCount: b.ApprovedCount,
		ItemCount:     len(b.Items),
		CreatedAt:     b.CreatedAt,
	}
}

// BuildPricingView prices every item at 10000 cents with a 20% discount at
// the capacity threshold, mirroring the defaults of BuildView.
func (b *CollectionBuilder) BuildPricingView() *queries.PricingView {
	view := &queries.PricingView{
		CollectionID:     b.ID,
		Lines:            []queries.PricingLineView{},
		EffectiveMembers: domcollection.MaxMembers,
		ComputedAt:       b.CreatedAt,
	}
	for _, it := range b.Items {
		line := queries.PricingLineView{
			ProductID:      it.ProductID,
			ProductName:    "Test Product",
			Quantity:       it.Quantity,
			OriginalCents:  10000,
			UnitPriceCents: 8000,
			SubtotalCents:  8000 * int64(it.Quantity),
		}
		view.Lines = append(view.Lines, line)
		view.OriginalCents += 10000 * int64(it.Quantity)
		view.DiscountedCents += line.SubtotalCents
	}
	view.SavingsCents = view.OriginalCents - view.DiscountedCents
	return view
}

func (b *CollectionBuilder) BuildSharedView() *queries.SharedCollectionView {
	return &queries.SharedCollectionView{
		ID:            b.ID,
		Name:          b.Name,
		IsLocked:      b.ApprovedCount >= domcollection.MaxMembers,
		ApprovedCount: b.ApprovedCount,
		ItemCount:     len(b.Items),
	}
}

// Fluent builder methods
func (b *CollectionBuilder) WithID(id uuid.UUID) *CollectionBuilder {
	b.ID = id
	return b
}

func (b *CollectionBuilder) WithOwnerID(ownerID uuid.UUID) *CollectionBuilder {
	b.OwnerID = ownerID
	return b
}

func (b *CollectionBuilder) WithName(name string) *CollectionBuilder {
	b.Name = name
	return b
}

func (b *CollectionBuilder) WithIsPublic(isPublic bool) *CollectionBuilder {
	b.IsPublic = isPublic
	return b
}

func (b *CollectionBuilder) WithItem(productID uuid.UUID, quantity int32) *CollectionBuilder {
	b.Items = append(b.Items, domcollection.Item{ProductID: productID, Quantity: quantity})
	return b
}

func (b *CollectionBuilder) WithApprovedCount(n int) *CollectionBuilder {
	b.ApprovedCount = n
	return b
}

func (b *CollectionBuilder) WithPendingCount(n int) *CollectionBuilder {
	b.PendingCount = n
	return b
}

// AsLocked fills the collection to capacity so the capacity lock is active.
func (b *CollectionBuilder) AsLocked() *CollectionBuilder {
	b.ApprovedCount = domcollection.MaxMembers
	return b
}

func (b *CollectionBuilder) AsPrivate() *CollectionBuilder {
	b.IsPublic = false
	return b
}
