package request

import (
	"bytes"
	"encoding/json"
	"errors"
)

var (
	ErrMalformedEnvelope = errors.New("malformed webhook envelope")
	ErrUnknownEventType  = errors.New("unknown webhook event type")
)

const (
	EventPaymentSucceeded = "payment_succeeded"
	EventPaymentFailed    = "payment_failed"
)

// WebhookEnvelope is the gateway's event wrapper. The variant set is closed:
// anything but the known payment event types is rejected at decode time so a
// mistyped envelope never reaches settlement half-parsed.
type WebhookEnvelope struct {
	Type string        `json:"type"`
	Data WebhookObject `json:"data"`
}

type WebhookObject struct {
	Object PaymentEventObject `json:"object"`
}

// PaymentEventObject mirrors the intent fields the gateway echoes back,
// including the metadata embedded at intent creation.
type PaymentEventObject struct {
	ID          string            `json:"id"`
	AmountCents int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Metadata    map[string]string `json:"metadata"`
}

// DecodeWebhookEnvelope parses strictly: unknown top-level fields are
// tolerated (the gateway adds fields over time) but a missing type, a missing
// intent id on payment events, or a type outside the closed set all fail.
func DecodeWebhookEnvelope(body []byte) (*WebhookEnvelope, error) {
	dec := json.NewDecoder(bytes.NewReader(body))

	var env WebhookEnvelope
	if err := dec.Decode(&env); err != nil {
		return nil, ErrMalformedEnvelope
	}
	if env.Type == "" {
		return nil, ErrMalformedEnvelope
	}

	switch env.Type {
	case EventPaymentSucceeded, EventPaymentFailed:
		if env.Data.Object.ID == "" {
			return nil, ErrMalformedEnvelope
		}
		return &env, nil
	default:
		return nil, ErrUnknownEventType
	}
}
