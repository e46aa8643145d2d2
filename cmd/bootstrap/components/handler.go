package components

import (
	"webhooknest/internal/handler"
	"webhooknest/internal/handler/api"
	"webhooknest/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewWebhookHandler,
		api.NewReceiveHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
