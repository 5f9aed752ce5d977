//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"groupcart/internal/domain/user"
	"groupcart/internal/handler/api"
	resdto "groupcart/internal/handler/dto/response"
	"groupcart/internal/pkg/errs"
	"groupcart/internal/usecase/commands"
	"groupcart/internal/usecase/queries"
	"groupcart/tests/common/builder"
	"groupcart/tests/common/httptest"
	"groupcart/tests/common/testutil"
	commandsmock "groupcart/tests/mock/commands"
	queriesmock "groupcart/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CollectionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCollectionCommands
	mockQueries  *queriesmock.MockCollectionQueries
	handler      *api.CollectionHandler
	authedUserID uuid.UUID
}

func (s *CollectionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCollectionCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCollectionQueries(s.mockCtrl)
	s.handler = api.NewCollectionHandler(s.mockCommands, s.mockQueries)
	s.authedUserID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.authedUserID)
		c.Set("user_role", user.RoleBuyer)
		c.Next()
	}

	// Setup routes
	s.router.POST("/collections", authMiddleware, s.handler.CreateCollection)
	s.router.GET("/collections", authMiddleware, s.handler.ListCollections)
	s.router.GET("/collections/shared/:token", s.handler.GetSharedCollection)
	s.router.GET("/collections/:id", authMiddleware, s.handler.GetCollection)
	s.router.PATCH("/collections/:id", authMiddleware, s.handler.UpdateCollection)
	s.router.DELETE("/collections/:id", authMiddleware, s.handler.DeleteCollection)
	s.router.POST("/collections/:id/items", authMiddleware, s.handler.AddItem)
	s.router.DELETE("/collections/:id/items/:productId", authMiddleware, s.handler.RemoveItem)
	s.router.GET("/collections/:id/locked", authMiddleware, s.handler.GetLockStatus)
	s.router.GET("/collections/:id/pricing", authMiddleware, s.handler.GetPricing)
}

func (s *CollectionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCollectionHandlerSuite(t *testing.T) {
	suite.Run(t, new(CollectionHandlerTestSuite))
}

// ================================================================================
// TestCreateCollection
// ================================================================================

func (s *CollectionHandlerTestSuite) TestCreateCollection() {
	url := "/collections"

	b := builder.NewCollectionBuilder()
	reqBody := b.BuildCreateRequestDTO()
	expectedResult := &commands.CreateCollectionResult{
		CollectionID: b.ID,
		ShareToken:   b.ShareToken,
	}

	s.Run("success: returns 201 Created with id and share token", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), s.authedUserID, reqBody.Name, reqBody.IsPublic).
			Return(expectedResult, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CreateCollectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(b.ID, response.ID)
		s.Equal(b.ShareToken, response.ShareToken)
	})

	s.Run("error: 400 Bad Request when name is missing", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 400 Bad Request when name is blank", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), s.authedUserID, "", true).
			Return(nil, errs.ErrDomainValidation).Times(1)

		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("name", "   "))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid collection data")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: 500 on unexpected command failure", func() {
		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}

// ================================================================================
// TestListCollections
// ================================================================================

func (s *CollectionHandlerTestSuite) TestListCollections() {
	url := "/collections"

	s.Run("success: returns 200 OK with the caller's collections", func() {
		item := builder.NewCollectionBuilder().WithApprovedCount(3).BuildListItem()
		s.mockQueries.EXPECT().
			ListMine(gomock.Any(), s.authedUserID).
			Return([]*queries.CollectionListItem{item}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.CollectionListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal(item.ID, response[0].ID)
		s.Equal(3, response[0].ApprovedCount)
		s.False(response[0].IsLocked)
	})

	s.Run("success: empty list for a user with no collections", func() {
		s.mockQueries.EXPECT().
			ListMine(gomock.Any(), s.authedUserID).
			Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response []resdto.CollectionListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})
}

// ================================================================================
// TestGetCollection
// ================================================================================

func (s *CollectionHandlerTestSuite) TestGetCollection() {
	collectionID := uuid.New()
	url := "/collections/" + collectionID.String()

	returnView := builder.NewCollectionBuilder().WithID(collectionID).BuildView()

	s.Run("success: returns 200 OK with CollectionResponse", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), collectionID, s.authedUserID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.CollectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(collectionID, response.ID)
		s.Equal(returnView.Name, response.Name)
		s.Equal(returnView.ApprovedCount, response.ApprovedCount)
		s.False(response.IsLocked)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/collections/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing or invisible collection", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), collectionID, s.authedUserID).
			Return(nil, errs.ErrCollectionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Collection not found")
	})
}

// ================================================================================
// TestUpdateCollection
// ================================================================================

func (s *CollectionHandlerTestSuite) TestUpdateCollection() {
	collectionID := uuid.New()
	url := "/collections/" + collectionID.String()

	reqBody := builder.NewCollectionBuilder().BuildUpdateRequestDTO()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().
			Update(gomock.Any(), collectionID, s.authedUserID, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: maps command errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "collection not found",
				commandsError:  errs.ErrCollectionNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Collection not found",
			},
			{
				name:           "not the owner",
				commandsError:  errs.ErrNotCollectionOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Only the owner may do this",
			},
			{
				name:           "collection locked",
				commandsError:  errs.ErrCollectionLocked,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Collection is locked",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Update(gomock.Any(), collectionID, s.authedUserID, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: locked rejection carries a stable code", func() {
		s.mockCommands.EXPECT().
			Update(gomock.Any(), collectionID, s.authedUserID, gomock.Any()).
			Return(errs.ErrCollectionLocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "CollectionLocked")
	})
}

// ================================================================================
// TestDeleteCollection
// ================================================================================

func (s *CollectionHandlerTestSuite) TestDeleteCollection() {
	collectionID := uuid.New()
	url := "/collections/" + collectionID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().
			Delete(gomock.Any(), collectionID, s.authedUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 with CollectionLocked code while locked", func() {
		s.mockCommands.EXPECT().
			Delete(gomock.Any(), collectionID, s.authedUserID).
			Return(errs.ErrCollectionLocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "CollectionLocked")
	})
}

// ================================================================================
// TestAddItem
// ================================================================================

func (s *CollectionHandlerTestSuite) TestAddItem() {
	collectionID := uuid.New()
	productID := uuid.New()
	url := "/collections/" + collectionID.String() + "/items"

	reqBody := map[string]any{"product_id": productID.String(), "quantity": 2}

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), collectionID, s.authedUserID, productID, int32(2)).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing product_id", mutate: testutil.Field("product_id", nil)},
			{name: "missing quantity", mutate: testutil.Field("quantity", nil)},
			{name: "zero quantity", mutate: testutil.Field("quantity", 0)},
			{name: "negative quantity", mutate: testutil.Field("quantity", -1)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: 400 with DuplicateItem code for duplicate product", func() {
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), collectionID, s.authedUserID, productID, int32(2)).
			Return(errs.ErrDuplicateItem).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "DuplicateItem")
	})

	s.Run("error: 404 Not Found for unknown product", func() {
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), collectionID, s.authedUserID, productID, int32(2)).
			Return(errs.ErrProductNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Product not found")
	})

	s.Run("error: 400 with CollectionLocked code while locked", func() {
		s.mockCommands.EXPECT().
			AddItem(gomock.Any(), collectionID, s.authedUserID, productID, int32(2)).
			Return(errs.ErrCollectionLocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "CollectionLocked")
	})
}

// ================================================================================
// TestRemoveItem
// ================================================================================

func (s *CollectionHandlerTestSuite) TestRemoveItem() {
	collectionID := uuid.New()
	productID := uuid.New()
	url := "/collections/" + collectionID.String() + "/items/" + productID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().
			RemoveItem(gomock.Any(), collectionID, s.authedUserID, productID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 404 Not Found for absent item", func() {
		s.mockCommands.EXPECT().
			RemoveItem(gomock.Any(), collectionID, s.authedUserID, productID).
			Return(errs.ErrItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})
}

// ================================================================================
// TestGetSharedCollection
// ================================================================================

func (s *CollectionHandlerTestSuite) TestGetSharedCollection() {
	token := "0123456789abcdef0123456789abcdef"
	url := "/collections/shared/" + token

	s.Run("success: resolves the token without authentication", func() {
		view := builder.NewCollectionBuilder().WithItem(uuid.New(), 1).BuildSharedView()
		s.mockQueries.EXPECT().
			GetShared(gomock.Any(), token).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.SharedCollectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(1, response.ItemCount)
	})

	s.Run("error: 404 Not Found for unknown token", func() {
		s.mockQueries.EXPECT().
			GetShared(gomock.Any(), token).
			Return(nil, errs.ErrCollectionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Collection not found")
	})
}

// ================================================================================
// TestGetLockStatus
// ================================================================================

func (s *CollectionHandlerTestSuite) TestGetLockStatus() {
	collectionID := uuid.New()
	url := "/collections/" + collectionID.String() + "/locked"

	s.Run("success: reports the lock flag", func() {
		s.mockQueries.EXPECT().
			IsLocked(gomock.Any(), collectionID).
			Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.LockStatusResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.True(response.IsLocked)
	})

	s.Run("error: 404 Not Found for unknown collection", func() {
		s.mockQueries.EXPECT().
			IsLocked(gomock.Any(), collectionID).
			Return(false, errs.ErrCollectionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Collection not found")
	})
}

// ================================================================================
// TestGetPricing
// ================================================================================

func (s *CollectionHandlerTestSuite) TestGetPricing() {
	collectionID := uuid.New()
	url := "/collections/" + collectionID.String() + "/pricing"

	s.Run("success: returns the resolved quote", func() {
		view := builder.NewCollectionBuilder().WithID(collectionID).WithItem(uuid.New(), 1).BuildPricingView()
		s.mockQueries.EXPECT().
			GetPricing(gomock.Any(), collectionID, s.authedUserID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.PricingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(collectionID, response.CollectionID)
		s.Equal(view.DiscountedCents, response.DiscountedCents)
		s.Equal(view.SavingsCents, response.SavingsCents)
		s.Equal(view.EffectiveMembers, response.EffectiveMembers)
	})

	s.Run("error: 403 Forbidden for non members", func() {
		s.mockQueries.EXPECT().
			GetPricing(gomock.Any(), collectionID, s.authedUserID).
			Return(nil, errs.ErrNotAMember).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not a member")
	})

	s.Run("error: 404 Not Found for unknown collection", func() {
		s.mockQueries.EXPECT().
			GetPricing(gomock.Any(), collectionID, s.authedUserID).
			Return(nil, errs.ErrCollectionNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Collection not found")
	})
}
