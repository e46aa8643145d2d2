package components

import (
	"webhooknest/internal/infra/repository"
	"webhooknest/internal/pkg/clock"
	"webhooknest/internal/usecase/commands"
	"webhooknest/internal/usecase/queries"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		clock.NewRealClock,
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(commands.UserRepository)),
			fx.As(new(queries.UserReadStore)),
		),
		fx.Annotate(
			repository.NewWebhookRepository,
			fx.As(new(commands.WebhookRepository)),
			fx.As(new(queries.WebhookReadStore)),
		),
		fx.Annotate(
			repository.NewDeliveryRepository,
			fx.As(new(commands.IngestRepository)),
			fx.As(new(queries.DeliveryReadStore)),
		),
	),
)
