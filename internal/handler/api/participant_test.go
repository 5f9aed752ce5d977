//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"groupcart/internal/domain/user"
	"groupcart/internal/handler/api"
	"groupcart/internal/pkg/errs"
	"groupcart/tests/common/httptest"
	commandsmock "groupcart/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ParticipantHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockParticipantCommands
	handler      *api.ParticipantHandler
	authedUserID uuid.UUID
}

func (s *ParticipantHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockParticipantCommands(s.mockCtrl)
	s.handler = api.NewParticipantHandler(s.mockCommands)
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
	s.router.POST("/collections/:id/join", authMiddleware, s.handler.RequestJoin)
	s.router.POST("/collections/:id/approve/:userId", authMiddleware, s.handler.Approve)
	s.router.POST("/collections/:id/reject/:userId", authMiddleware, s.handler.Reject)
	s.router.POST("/collections/:id/members/:userId", authMiddleware, s.handler.AddDirectly)
	s.router.DELETE("/collections/:id/remove/:userId", authMiddleware, s.handler.Remove)
	s.router.DELETE("/collections/:id/leave", authMiddleware, s.handler.Leave)
}

func (s *ParticipantHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestParticipantHandlerSuite(t *testing.T) {
	suite.Run(t, new(ParticipantHandlerTestSuite))
}

// ================================================================================
// TestRequestJoin
// ================================================================================

func (s *ParticipantHandlerTestSuite) TestRequestJoin() {
	collectionID := uuid.New()
	url := "/collections/" + collectionID.String() + "/join"

	s.Run("success: returns 201 Created with pending hint", func() {
		s.mockCommands.EXPECT().
			RequestJoin(gomock.Any(), collectionID, s.authedUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Contains(body["message"], "waiting for the owner's approval")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
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
				name:           "private collection",
				commandsError:  errs.ErrCollectionPrivate,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Collection is private",
			},
			{
				name:           "already requested",
				commandsError:  errs.ErrAlreadyRequested,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Join already requested",
			},
			{
				name:           "collection full",
				commandsError:  errs.ErrCollectionFull,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Collection is full",
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
					RequestJoin(gomock.Any(), collectionID, s.authedUserID).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: full rejection carries the CollectionFull code", func() {
		s.mockCommands.EXPECT().
			RequestJoin(gomock.Any(), collectionID, s.authedUserID).
			Return(errs.ErrCollectionFull).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "CollectionFull")
	})
}

// ================================================================================
// TestApprove
// ================================================================================

func (s *ParticipantHandlerTestSuite) TestApprove() {
	collectionID := uuid.New()
	targetUserID := uuid.New()
	url := "/collections/" + collectionID.String() + "/approve/" + targetUserID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().
			Approve(gomock.Any(), collectionID, s.authedUserID, targetUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for invalid user id", func() {
		badURL := "/collections/" + collectionID.String() + "/approve/not-a-uuid"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, badURL, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid userId")
	})

	s.Run("error: 403 Forbidden for non owners", func() {
		s.mockCommands.EXPECT().
			Approve(gomock.Any(), collectionID, s.authedUserID, targetUserID).
			Return(errs.ErrNotCollectionOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Only the owner may do this")
	})

	s.Run("error: capacity race is reported with CapacityExceeded", func() {
		s.mockCommands.EXPECT().
			Approve(gomock.Any(), collectionID, s.authedUserID, targetUserID).
			Return(errs.ErrCapacityExceeded).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "CapacityExceeded")
	})

	s.Run("error: full collection is reported with CollectionFull", func() {
		s.mockCommands.EXPECT().
			Approve(gomock.Any(), collectionID, s.authedUserID, targetUserID).
			Return(errs.ErrCollectionFull).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "CollectionFull")
	})

	s.Run("error: 404 Not Found for unknown participant", func() {
		s.mockCommands.EXPECT().
			Approve(gomock.Any(), collectionID, s.authedUserID, targetUserID).
			Return(errs.ErrParticipantNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Participant not found")
	})
}

// ================================================================================
// TestReject
// ================================================================================

func (s *ParticipantHandlerTestSuite) TestReject() {
	collectionID := uuid.New()
	targetUserID := uuid.New()
	url := "/collections/" + collectionID.String() + "/reject/" + targetUserID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().
			Reject(gomock.Any(), collectionID, s.authedUserID, targetUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 403 Forbidden for non owners", func() {
		s.mockCommands.EXPECT().
			Reject(gomock.Any(), collectionID, s.authedUserID, targetUserID).
			Return(errs.ErrNotCollectionOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Only the owner may do this")
	})
}

// ================================================================================
// TestAddDirectly
// ================================================================================

func (s *ParticipantHandlerTestSuite) TestAddDirectly() {
	collectionID := uuid.New()
	targetUserID := uuid.New()
	url := "/collections/" + collectionID.String() + "/members/" + targetUserID.String()

	s.Run("success: returns 201 Created", func() {
		s.mockCommands.EXPECT().
			AddDirectly(gomock.Any(), collectionID, s.authedUserID, targetUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: full collection is reported with CollectionFull", func() {
		s.mockCommands.EXPECT().
			AddDirectly(gomock.Any(), collectionID, s.authedUserID, targetUserID).
			Return(errs.ErrCollectionFull).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "CollectionFull")
	})

	s.Run("error: duplicate participant is reported with AlreadyRequested", func() {
		s.mockCommands.EXPECT().
			AddDirectly(gomock.Any(), collectionID, s.authedUserID, targetUserID).
			Return(errs.ErrAlreadyRequested).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "AlreadyRequested")
	})
}

// ================================================================================
// TestRemove
// ================================================================================

func (s *ParticipantHandlerTestSuite) TestRemove() {
	collectionID := uuid.New()
	targetUserID := uuid.New()
	url := "/collections/" + collectionID.String() + "/remove/" + targetUserID.String()

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().
			Remove(gomock.Any(), collectionID, s.authedUserID, targetUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: owner removal is reported with CannotRemoveOwner", func() {
		s.mockCommands.EXPECT().
			Remove(gomock.Any(), collectionID, s.authedUserID, targetUserID).
			Return(errs.ErrCannotRemoveOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "CannotRemoveOwner")
	})

	s.Run("error: locked collection is reported with CollectionLocked", func() {
		s.mockCommands.EXPECT().
			Remove(gomock.Any(), collectionID, s.authedUserID, targetUserID).
			Return(errs.ErrCollectionLocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "CollectionLocked")
	})
}

// ================================================================================
// TestLeave
// ================================================================================

func (s *ParticipantHandlerTestSuite) TestLeave() {
	collectionID := uuid.New()
	url := "/collections/" + collectionID.String() + "/leave"

	s.Run("success: returns 200 OK", func() {
		s.mockCommands.EXPECT().
			Leave(gomock.Any(), collectionID, s.authedUserID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: owner leave is reported with CannotRemoveOwner", func() {
		s.mockCommands.EXPECT().
			Leave(gomock.Any(), collectionID, s.authedUserID).
			Return(errs.ErrCannotRemoveOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "CannotRemoveOwner")
	})

	s.Run("error: locked collection is reported with CollectionLocked", func() {
		s.mockCommands.EXPECT().
			Leave(gomock.Any(), collectionID, s.authedUserID).
			Return(errs.ErrCollectionLocked).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorCode(s.T(), rec, http.StatusBadRequest, "CollectionLocked")
	})
}
