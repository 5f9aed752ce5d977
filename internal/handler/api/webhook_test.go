//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"groupcart/internal/handler/api"
	resdto "groupcart/internal/handler/dto/response"
	"groupcart/internal/pkg/errs"
	"groupcart/internal/usecase/commands"
	"groupcart/tests/common/httptest"
	commandsmock "groupcart/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSettlementCommands
	handler      *api.WebhookHandler
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSettlementCommands(s.mockCtrl)
	s.handler = api.NewWebhookHandler(s.mockCommands)

	// The gateway authenticates out of band, so the route carries no auth.
	s.router.POST("/payment-webhook", s.handler.HandleEvent)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func succeededEnvelope(intentRef string) []byte {
	return []byte(`{
		"type": "payment_succeeded",
		"data": {
			"object": {
				"id": "` + intentRef + `",
				"amount": 16000,
				"currency": "usd",
				"metadata": {"collection_id": "` + uuid.New().String() + `"}
			}
		}
	}`)
}

func (s *WebhookHandlerTestSuite) TestHandleEvent() {
	url := "/payment-webhook"

	s.Run("success: settles a payment_succeeded event and acks", func() {
		s.mockCommands.EXPECT().
			HandlePaymentSucceeded(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event commands.GatewayEvent) (*commands.SettleResult, error) {
				s.Equal("pi_123", event.IntentRef)
				s.Equal(int64(16000), event.AmountCents)
				s.NotEmpty(event.Metadata["collection_id"])
				return &commands.SettleResult{OrderID: uuid.New()}, nil
			}).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, succeededEnvelope("pi_123"))

		var response resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Received)
	})

	s.Run("success: duplicate delivery is acked without error", func() {
		s.mockCommands.EXPECT().
			HandlePaymentSucceeded(gomock.Any(), gomock.Any()).
			Return(&commands.SettleResult{OrderID: uuid.New(), Duplicate: true}, nil).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, succeededEnvelope("pi_123"))

		var response resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Received)
	})

	s.Run("success: settlement failure is still acked with 200", func() {
		s.mockCommands.EXPECT().
			HandlePaymentSucceeded(gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrMissingMetadata).Times(1)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, succeededEnvelope("pi_123"))

		var response resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Received)
	})

	s.Run("success: payment_failed is logged and acked without settling", func() {
		body := []byte(`{"type": "payment_failed", "data": {"object": {"id": "pi_456"}}}`)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body)

		var response resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Received)
	})

	s.Run("success: unknown event type is acked so the gateway stops retrying", func() {
		body := []byte(`{"type": "customer_updated", "data": {"object": {"id": "cus_1"}}}`)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body)

		var response resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.Received)
	})

	s.Run("success: unknown top-level fields are tolerated", func() {
		body := []byte(`{"type": "payment_failed", "api_version": "2026-08-01", "livemode": false, "data": {"object": {"id": "pi_789"}}}`)

		rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, body)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on malformed envelopes", func() {
		testCases := []struct {
			name string
			body []byte
		}{
			{name: "invalid json", body: []byte(`{not json`)},
			{name: "missing type", body: []byte(`{"data": {"object": {"id": "pi_1"}}}`)},
			{name: "missing intent id", body: []byte(`{"type": "payment_succeeded", "data": {"object": {}}}`)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, url, tc.body)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Malformed event envelope")
			})
		}
	})
}
