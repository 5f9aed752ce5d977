package api

import (
	"errors"
	"net/http"

	"groupcart/internal/handler/httperr"
	"groupcart/internal/handler/middleware"
	"groupcart/internal/pkg/errs"
	"groupcart/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ParticipantHandler struct {
	participantCommands commands.ParticipantCommands
}

func NewParticipantHandler(participantCommands commands.ParticipantCommands) *ParticipantHandler {
	return &ParticipantHandler{
		participantCommands: participantCommands,
	}
}

// @Summary Request to join
// @Description Create a pending join request on a public collection
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /collections/{id}/join [post]
func (h *ParticipantHandler) RequestJoin(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	if err := h.participantCommands.RequestJoin(c.Request.Context(), id, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Join request sent, waiting for the owner's approval"})
}

// @Summary Approve participant
// @Description Approve a pending join request; capacity is re-checked at approval time
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /collections/{id}/approve/{userId} [post]
func (h *ParticipantHandler) Approve(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return
	}

	if err := h.participantCommands.Approve(c.Request.Context(), id, ownerID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Participant approved"})
}

// @Summary Reject participant
// @Description Reject a pending join request
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /collections/{id}/reject/{userId} [post]
func (h *ParticipantHandler) Reject(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return
	}

	if err := h.participantCommands.Reject(c.Request.Context(), id, ownerID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Participant rejected"})
}

// @Summary Add member directly
// @Description Owner shortcut that adds a user as approved, skipping pending
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Param userId path string true "User ID"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /collections/{id}/members/{userId} [post]
func (h *ParticipantHandler) AddDirectly(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return
	}

	if err := h.participantCommands.AddDirectly(c.Request.Context(), id, ownerID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Member added"})
}

// @Summary Remove participant
// @Description Owner removes a participant; rejected while locked
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /collections/{id}/remove/{userId} [delete]
func (h *ParticipantHandler) Remove(c *gin.Context) {
	ownerID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return
	}

	if err := h.participantCommands.Remove(c.Request.Context(), id, ownerID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Participant removed"})
}

// @Summary Leave collection
// @Description Self-service leave; rejected while locked and for the owner
// @Tags participants
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /collections/{id}/leave [delete]
func (h *ParticipantHandler) Leave(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	if err := h.participantCommands.Leave(c.Request.Context(), id, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Left the collection"})
}

func (h *ParticipantHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCollectionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Collection not found", nil)
	case errors.Is(err, errs.ErrParticipantNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Participant not found", nil)
	case errors.Is(err, errs.ErrCollectionPrivate):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Collection is private", nil)
	case errors.Is(err, errs.ErrNotCollectionOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Only the owner may do this", nil)
	case errors.Is(err, errs.ErrAlreadyRequested):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "AlreadyRequested", "Join already requested")
	case errors.Is(err, errs.ErrCollectionFull):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "CollectionFull", "Collection is full")
	case errors.Is(err, errs.ErrCapacityExceeded):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "CapacityExceeded", "Approved member capacity exceeded")
	case errors.Is(err, errs.ErrCollectionLocked):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "CollectionLocked", "Collection is locked")
	case errors.Is(err, errs.ErrCannotRemoveOwner):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "CannotRemoveOwner", "Owner cannot be removed")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
