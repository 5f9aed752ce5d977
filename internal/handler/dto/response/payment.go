package response

import (
	"groupcart/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateIntentResponse struct {
	ClientSecret string      `json:"clientSecret"`
	AmountCents  int64       `json:"amount"`
	PaymentIDs   []uuid.UUID `json:"paymentIds"`
}

func FromIntentResult(r *commands.CreateIntentResult) *CreateIntentResponse {
	return &CreateIntentResponse{
		ClientSecret: r.ClientSecret,
		AmountCents:  r.AmountCents,
		PaymentIDs:   r.PaymentIDs,
	}
}

type WebhookAckResponse struct {
	Received bool `json:"received"`
}
