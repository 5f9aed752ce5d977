package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"groupcart/internal/pkg/config"
	"groupcart/internal/pkg/errs"
	"groupcart/internal/usecase/commands"
)

// Client talks to the external payment provider's REST API. Only the two
// operations the engine needs are implemented; webhooks come back through
// the settlement handler.
type Client struct {
	baseURL    string
	apiKey     string
	currency   string
	httpClient *http.Client
}

func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		currency: cfg.Currency,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type createIntentRequest struct {
	AmountCents int64              `json:"amount"`
	Currency    string             `json:"currency"`
	Metadata    map[string]string  `json:"metadata"`
	Shipping    *commands.Shipping `json:"shipping,omitempty"`
}

type createIntentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

func (c *Client) CreatePaymentIntent(
	ctx context.Context,
	amountCents int64,
	metadata map[string]string,
	shipping *commands.Shipping,
) (*commands.PaymentIntent, error) {
	reqBody := createIntentRequest{
		AmountCents: amountCents,
		Currency:    c.currency,
		Metadata:    metadata,
		Shipping:    shipping,
	}

	var resp createIntentResponse
	if err := c.post(ctx, "/v1/payment_intents", reqBody, &resp); err != nil {
		return nil, err
	}
	if resp.ID == "" || resp.ClientSecret == "" {
		return nil, errs.New("gateway returned an incomplete payment intent")
	}

	return &commands.PaymentIntent{
		ID:           resp.ID,
		ClientSecret: resp.ClientSecret,
	}, nil
}

type createCustomerRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type createCustomerResponse struct {
	ID string `json:"id"`
}

func (c *Client) CreateCustomer(ctx context.Context, email, name string) (string, error) {
	var resp createCustomerResponse
	if err := c.post(ctx, "/v1/customers", createCustomerRequest{Email: email, Name: name}, &resp); err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", errs.New("gateway returned an empty customer id")
	}
	return resp.ID, nil
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "failed to encode gateway request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build gateway request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	res, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "gateway request failed")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return errs.New(fmt.Sprintf("gateway returned status %d: %s", res.StatusCode, string(msg)))
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode gateway response")
	}
	return nil
}
