package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	reqdto "groupcart/internal/handler/dto/request"
	resdto "groupcart/internal/handler/dto/response"
	"groupcart/internal/handler/httperr"
	"groupcart/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const maxWebhookBodyBytes = 1 << 20

// WebhookHandler consumes the payment gateway's event stream. Its contract
// with the gateway is asymmetric: once an event is durably handled (settled,
// recognized as a duplicate, or classified as unprocessable) the response is
// 200, because a 5xx would make the gateway redeliver an event we cannot do
// anything more with.
type WebhookHandler struct {
	settlementCommands commands.SettlementCommands
}

func NewWebhookHandler(settlementCommands commands.SettlementCommands) *WebhookHandler {
	return &WebhookHandler{
		settlementCommands: settlementCommands,
	}
}

// @Summary Payment webhook
// @Description Consume the gateway's payment event envelope
// @Tags payments
// @Accept json
// @Produce json
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} map[string]string
// @Router /payment-webhook [post]
func (h *WebhookHandler) HandleEvent(c *gin.Context) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable request body", nil)
		return
	}

	env, err := reqdto.DecodeWebhookEnvelope(body)
	if err != nil {
		if errors.Is(err, reqdto.ErrUnknownEventType) {
			// Unknown variants are acked so the gateway does not retry them.
			slog.Warn("ignoring unknown webhook event type")
			c.JSON(http.StatusOK, resdto.WebhookAckResponse{Received: true})
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed event envelope", nil)
		return
	}

	switch env.Type {
	case reqdto.EventPaymentSucceeded:
		h.handleSucceeded(c, env)
	case reqdto.EventPaymentFailed:
		slog.Info("payment failed event received",
			"intent_ref", env.Data.Object.ID)
		c.JSON(http.StatusOK, resdto.WebhookAckResponse{Received: true})
	}
}

func (h *WebhookHandler) handleSucceeded(c *gin.Context, env *reqdto.WebhookEnvelope) {
	event := commands.GatewayEvent{
		Type:        env.Type,
		IntentRef:   env.Data.Object.ID,
		AmountCents: env.Data.Object.AmountCents,
		Metadata:    env.Data.Object.Metadata,
	}

	result, err := h.settlementCommands.HandlePaymentSucceeded(c.Request.Context(), event)
	if err != nil {
		// Settlement already retried transient failures internally. Whatever
		// is left is logged and acked to avoid a poison-event loop.
		slog.Error("settlement failed, acknowledging event anyway",
			"intent_ref", event.IntentRef, "error", err.Error())
		c.JSON(http.StatusOK, resdto.WebhookAckResponse{Received: true})
		return
	}

	if result.Duplicate {
		slog.Info("duplicate settlement event acknowledged", "intent_ref", event.IntentRef)
	}
	c.JSON(http.StatusOK, resdto.WebhookAckResponse{Received: true})
}
