package request

import (
	"strings"

	"github.com/google/uuid"
)

type CreateCollectionRequest struct {
	Name     string `json:"name" binding:"required"`
	IsPublic bool   `json:"is_public"`
}

func (r CreateCollectionRequest) TrimmedName() string {
	return strings.TrimSpace(r.Name)
}

type UpdateCollectionRequest struct {
	Name     *string `json:"name,omitempty"`
	IsPublic *bool   `json:"is_public,omitempty"`
}

func (r UpdateCollectionRequest) TrimmedName() *string {
	if r.Name == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.Name)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int32     `json:"quantity" binding:"required,min=1"`
}
