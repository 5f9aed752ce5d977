package api

import (
	"errors"
	"net/http"

	reqdto "groupcart/internal/handler/dto/request"
	resdto "groupcart/internal/handler/dto/response"
	"groupcart/internal/handler/httperr"
	"groupcart/internal/handler/middleware"
	"groupcart/internal/pkg/errs"
	"groupcart/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	intentCommands commands.IntentCommands
}

func NewPaymentHandler(intentCommands commands.IntentCommands) *PaymentHandler {
	return &PaymentHandler{
		intentCommands: intentCommands,
	}
}

// @Summary Create group payment intent
// @Description Quote the caller's due amount and open a payment intent with the gateway
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateIntentRequest true "Intent request"
// @Success 201 {object} resdto.CreateIntentResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /group-payment-intent [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	payerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateIntentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	params := commands.CreateIntentParams{
		CollectionID:  req.CollectionID,
		PayerID:       payerID,
		BeneficiaryID: req.BeneficiaryID(payerID),
		AddressID:     req.AddressID,
	}

	result, err := h.intentCommands.CreateGroupIntent(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCollectionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Collection not found", nil)
		case errors.Is(err, errs.ErrAddressNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Address not found", nil)
		case errors.Is(err, errs.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		case errors.Is(err, errs.ErrNotAMember):
			httperr.AbortWithCode(c, http.StatusBadRequest, err, "NotAMember", "Payer or beneficiary is not an approved member")
		case errors.Is(err, errs.ErrCollectionNotLocked):
			httperr.AbortWithCode(c, http.StatusBadRequest, err, "CollectionNotLocked", "Collection is not locked yet")
		case errors.Is(err, errs.ErrNoItems):
			httperr.AbortWithCode(c, http.StatusBadRequest, err, "NoItems", "Collection has no items")
		case errors.Is(err, errs.ErrAlreadyPaid):
			httperr.AbortWithCode(c, http.StatusBadRequest, err, "AlreadyPaid", "Beneficiary already paid for this collection")
		case errors.Is(err, errs.ErrGatewayUnavailable):
			httperr.AbortWithCode(c, http.StatusBadGateway, err, "UpstreamError", "Payment gateway unavailable")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromIntentResult(result))
}
