package components

import (
	"groupcart/internal/handler"
	"groupcart/internal/handler/api"
	"groupcart/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewCollectionHandler,
		api.NewParticipantHandler,
		api.NewPaymentHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
