package request

import (
	"github.com/google/uuid"
)

// CreateIntentRequest opens a group payment intent. MemberID names the
// beneficiary when the payer is paying on another member's behalf; absent,
// the payer pays for themselves.
type CreateIntentRequest struct {
	CollectionID uuid.UUID  `json:"collection_id" binding:"required"`
	AddressID    uuid.UUID  `json:"address_id" binding:"required"`
	MemberID     *uuid.UUID `json:"member_id,omitempty"`
}

func (r CreateIntentRequest) BeneficiaryID(payerID uuid.UUID) uuid.UUID {
	if r.MemberID != nil {
		return *r.MemberID
	}
	return payerID
}
