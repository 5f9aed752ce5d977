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
	"groupcart/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CollectionHandler struct {
	collectionCommands commands.CollectionCommands
	collectionQueries  queries.CollectionQueries
}

func NewCollectionHandler(
	collectionCommands commands.CollectionCommands,
	collectionQueries queries.CollectionQueries,
) *CollectionHandler {
	return &CollectionHandler{
		collectionCommands: collectionCommands,
		collectionQueries:  collectionQueries,
	}
}

// @Summary Create collection
// @Description Create a collection with the caller as owner and first approved member
// @Tags collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCollectionRequest true "Collection request"
// @Success 201 {object} resdto.CreateCollectionResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /collections [post]
func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateCollectionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	result, err := h.collectionCommands.Create(c.Request.Context(), userID, req.TrimmedName(), req.IsPublic)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCreateResult(result))
}

// @Summary List my collections
// @Description List collections the caller is an approved member of
// @Tags collections
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.CollectionListResponse
// @Failure 401 {object} map[string]string
// @Router /collections [get]
func (h *CollectionHandler) ListCollections(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	items, err := h.collectionQueries.ListMine(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	response := make([]*resdto.CollectionListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromCollectionListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Get collection
// @Description Get a collection by ID; private collections are visible to participants only
// @Tags collections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Success 200 {object} resdto.CollectionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /collections/{id} [get]
func (h *CollectionHandler) GetCollection(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	view, err := h.collectionQueries.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		if errors.Is(err, errs.ErrCollectionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Collection not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromCollectionView(view))
}

// @Summary Update collection
// @Description Rename a collection or change its visibility; rejected while locked
// @Tags collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Param request body reqdto.UpdateCollectionRequest true "Update request"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /collections/{id} [patch]
func (h *CollectionHandler) UpdateCollection(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	var req reqdto.UpdateCollectionRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	params := commands.UpdateCollectionParams{
		Name:     req.TrimmedName(),
		IsPublic: req.IsPublic,
	}
	if err := h.collectionCommands.Update(c.Request.Context(), id, userID, params); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Collection updated"})
}

// @Summary Delete collection
// @Description Delete a collection; rejected while locked
// @Tags collections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /collections/{id} [delete]
func (h *CollectionHandler) DeleteCollection(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	if err := h.collectionCommands.Delete(c.Request.Context(), id, userID); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Collection deleted"})
}

// @Summary Add item
// @Description Add a product to a collection; rejected while locked
// @Tags collections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Param request body reqdto.AddItemRequest true "Item request"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /collections/{id}/items [post]
func (h *CollectionHandler) AddItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	var req reqdto.AddItemRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	if err := h.collectionCommands.AddItem(c.Request.Context(), id, userID, req.ProductID, req.Quantity); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Item added"})
}

// @Summary Remove item
// @Description Remove a product from a collection; rejected while locked
// @Tags collections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Param productId path string true "Product ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /collections/{id}/items/{productId} [delete]
func (h *CollectionHandler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}
	productID, err := parseIDParam(c, "productId")
	if err != nil {
		return
	}

	if err := h.collectionCommands.RemoveItem(c.Request.Context(), id, userID, productID); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// @Summary Resolve shared collection
// @Description Resolve a share token to the collection's public metadata
// @Tags collections
// @Produce json
// @Param token path string true "Share token"
// @Success 200 {object} resdto.SharedCollectionResponse
// @Failure 404 {object} map[string]string
// @Router /collections/shared/{token} [get]
func (h *CollectionHandler) GetSharedCollection(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.ErrDomainValidation, "Share token required", nil)
		return
	}

	view, err := h.collectionQueries.GetShared(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, errs.ErrCollectionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Collection not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSharedView(view))
}

// @Summary Get lock status
// @Description Report whether the collection's capacity lock is active
// @Tags collections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Success 200 {object} resdto.LockStatusResponse
// @Failure 404 {object} map[string]string
// @Router /collections/{id}/locked [get]
func (h *CollectionHandler) GetLockStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	locked, err := h.collectionQueries.IsLocked(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrCollectionNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Collection not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.LockStatusResponse{IsLocked: locked})
}

// @Summary Get collection pricing
// @Description Get the tier-resolved quote for a collection, served through the snapshot cache
// @Tags collections
// @Produce json
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Success 200 {object} resdto.PricingResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /collections/{id}/pricing [get]
func (h *CollectionHandler) GetPricing(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthorized, "Unauthorized", nil)
		return
	}

	id, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	view, err := h.collectionQueries.GetPricing(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCollectionNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Collection not found", nil)
		case errors.Is(err, errs.ErrNotAMember):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not a member of this collection", nil)
		case errors.Is(err, errs.ErrProductNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPricingView(view))
}

func (h *CollectionHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrCollectionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Collection not found", nil)
	case errors.Is(err, errs.ErrProductNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Product not found", nil)
	case errors.Is(err, errs.ErrNotCollectionOwner):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Only the owner may do this", nil)
	case errors.Is(err, errs.ErrCollectionLocked):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "CollectionLocked", "Collection is locked")
	case errors.Is(err, errs.ErrDuplicateItem):
		httperr.AbortWithCode(c, http.StatusBadRequest, err, "DuplicateItem", "Product already in collection")
	case errors.Is(err, errs.ErrItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Item not found in collection", nil)
	case errors.Is(err, errs.ErrDomainValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid collection data", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func parseIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid "+name, nil)
		return uuid.Nil, err
	}
	return id, nil
}
