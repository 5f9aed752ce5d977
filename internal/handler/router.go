package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"groupcart/internal/handler/api"
	"groupcart/internal/handler/middleware"
	"groupcart/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	collectionHandler *api.CollectionHandler,
	participantHandler *api.ParticipantHandler,
	paymentHandler *api.PaymentHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, collectionHandler, participantHandler, paymentHandler, webhookHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	collectionHandler *api.CollectionHandler,
	participantHandler *api.ParticipantHandler,
	paymentHandler *api.PaymentHandler,
	webhookHandler *api.WebhookHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		// The gateway authenticates itself out of band, not with user tokens.
		apiGroup.POST("/payment-webhook", webhookHandler.HandleEvent)

		collections := apiGroup.Group("/collections")
		{
			addRoutes(collections, []route{
				{Method: http.MethodGet, Path: "/shared/:token", Handler: collectionHandler.GetSharedCollection},
			})

			authed := collections.Group("")
			authed.Use(authMiddleware.RequireAuth())
			addRoutes(authed, []route{
				{Method: http.MethodPost, Path: "", Handler: collectionHandler.CreateCollection},
				{Method: http.MethodGet, Path: "", Handler: collectionHandler.ListCollections},
				{Method: http.MethodGet, Path: "/:id", Handler: collectionHandler.GetCollection},
				{Method: http.MethodPatch, Path: "/:id", Handler: collectionHandler.UpdateCollection},
				{Method: http.MethodDelete, Path: "/:id", Handler: collectionHandler.DeleteCollection},
				{Method: http.MethodPost, Path: "/:id/items", Handler: collectionHandler.AddItem},
				{Method: http.MethodDelete, Path: "/:id/items/:productId", Handler: collectionHandler.RemoveItem},
				{Method: http.MethodGet, Path: "/:id/locked", Handler: collectionHandler.GetLockStatus},
				{Method: http.MethodGet, Path: "/:id/pricing", Handler: collectionHandler.GetPricing},

				{Method: http.MethodPost, Path: "/:id/join", Handler: participantHandler.RequestJoin},
				{Method: http.MethodPost, Path: "/:id/approve/:userId", Handler: participantHandler.Approve},
				{Method: http.MethodPost, Path: "/:id/reject/:userId", Handler: participantHandler.Reject},
				{Method: http.MethodPost, Path: "/:id/members/:userId", Handler: participantHandler.AddDirectly},
				{Method: http.MethodDelete, Path: "/:id/remove/:userId", Handler: participantHandler.Remove},
				{Method: http.MethodDelete, Path: "/:id/leave", Handler: participantHandler.Leave},
			})
		}

		payments := apiGroup.Group("")
		payments.Use(authMiddleware.RequireAuth())
		addRoutes(payments, []route{
			{Method: http.MethodPost, Path: "/group-payment-intent", Handler: paymentHandler.CreateIntent},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
