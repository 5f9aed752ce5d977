package response

import (
	"time"

	"groupcart/internal/usecase/commands"
	"groupcart/internal/usecase/queries"

	"github.com/google/uuid"
)

type CreateCollectionResponse struct {
	ID         uuid.UUID `json:"id"`
	ShareToken string    `json:"shareToken"`
}

func FromCreateResult(r *commands.CreateCollectionResult) *CreateCollectionResponse {
	return &CreateCollectionResponse{
		ID:         r.CollectionID,
		ShareToken: r.ShareToken,
	}
}

type ItemResponse struct {
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	PriceCents  int64     `json:"priceCents"`
	Quantity    int32     `json:"quantity"`
}

type ParticipantResponse struct {
	UserID   uuid.UUID `json:"userId"`
	UserName string    `json:"userName"`
	Status   string    `json:"status"`
	JoinedAt time.Time `json:"joinedAt"`
}

type CollectionResponse struct {
	ID            uuid.UUID             `json:"id"`
	OwnerID       uuid.UUID             `json:"ownerId"`
	Name          string                `json:"name"`
	IsPublic      bool                  `json:"isPublic"`
	ShareToken    string                `json:"shareToken"`
	IsLocked      bool                  `json:"isLocked"`
	ApprovedCount int                   `json:"approvedCount"`
	Items         []ItemResponse        `json:"items"`
	Participants  []ParticipantResponse `json:"participants"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

func FromCollectionView(view *queries.CollectionView) *CollectionResponse {
	resp := &CollectionResponse{
		ID:            view.ID,
		OwnerID:       view.OwnerID,
		Name:          view.Name,
		IsPublic:      view.IsPublic,
		ShareToken:    view.ShareToken,
		IsLocked:      view.IsLocked,
		ApprovedCount: view.ApprovedCount,
		Items:         []ItemResponse{},
		Participants:  []ParticipantResponse{},
		CreatedAt:     view.CreatedAt,
		UpdatedAt:     view.UpdatedAt,
	}
	for _, it := range view.Items {
		resp.Items = append(resp.Items, ItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			PriceCents:  it.PriceCents,
			Quantity:    it.Quantity,
		})
	}
	for _, p := range view.Participants {
		resp.Participants = append(resp.Participants, ParticipantResponse{
			UserID:   p.UserID,
			UserName: p.UserName,
			Status:   p.Status,
			JoinedAt: p.JoinedAt,
		})
	}
	return resp
}

type CollectionListResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	IsLocked      bool      `json:"isLocked"`
	ApprovedCount int       `json:"approvedCount"`
	ItemCount     int       `json:"itemCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

func FromCollectionListItem(item *queries.CollectionListItem) *CollectionListResponse {
	return &CollectionListResponse{
		ID:            item.ID,
		Name:          item.Name,
		IsLocked:      item.IsLocked,
		ApprovedCount: item.ApprovedCount,
		ItemCount:     item.ItemCount,
		CreatedAt:     item.CreatedAt,
	}
}

type SharedCollectionResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	IsLocked      bool      `json:"isLocked"`
	ApprovedCount int       `json:"approvedCount"`
	ItemCount     int       `json:"itemCount"`
}

func FromSharedView(view *queries.SharedCollectionView) *SharedCollectionResponse {
	return &SharedCollectionResponse{
		ID:            view.ID,
		Name:          view.Name,
		IsLocked:      view.IsLocked,
		ApprovedCount: view.ApprovedCount,
		ItemCount:     view.ItemCount,
	}
}

type LockStatusResponse struct {
	IsLocked bool `json:"isLocked"`
}

type PricingLineResponse struct {
	ProductID      uuid.UUID `json:"productId"`
	ProductName    string    `json:"productName"`
	Quantity       int32     `json:"quantity"`
	OriginalCents  int64     `json:"originalCents"`
	UnitPriceCents int64     `json:"unitPriceCents"`
	SubtotalCents  int64     `json:"subtotalCents"`
}

type PricingResponse struct {
	CollectionID     uuid.UUID             `json:"collectionId"`
	Lines            []PricingLineResponse `json:"lines"`
	OriginalCents    int64                 `json:"originalCents"`
	DiscountedCents  int64                 `json:"discountedCents"`
	SavingsCents     int64                 `json:"savingsCents"`
	EffectiveMembers int                   `json:"effectiveMembers"`
	ComputedAt       time.Time             `json:"computedAt"`
}

func FromPricingView(view *queries.PricingView) *PricingResponse {
	resp := &PricingResponse{
		CollectionID:     view.CollectionID,
		Lines:            []PricingLineResponse{},
		OriginalCents:    view.OriginalCents,
		DiscountedCents:  view.DiscountedCents,
		SavingsCents:     view.SavingsCents,
		EffectiveMembers: view.EffectiveMembers,
		ComputedAt:       view.ComputedAt,
	}
	for _, l := range view.Lines {
		resp.Lines = append(resp.Lines, PricingLineResponse{
			ProductID:      l.ProductID,
			ProductName:    l.ProductName,
			Quantity:       l.Quantity,
			OriginalCents:  l.OriginalCents,
			UnitPriceCents: l.UnitPriceCents,
			SubtotalCents:  l.SubtotalCents,
		})
	}
	return resp
}
