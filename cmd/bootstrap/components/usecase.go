package components

import (
	"webhooknest/internal/alert"
	"webhooknest/internal/usecase/commands"
	"webhooknest/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		fx.Annotate(
			alert.NewLogNotifier,
			fx.As(new(alert.Notifier)),
		),
		commands.NewAuthCommands,
		commands.NewWebhookCommands,
		commands.NewIngestCommands,
		queries.NewUserQueries,
		queries.NewWebhookQueries,
	),
)
