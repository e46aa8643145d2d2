package commands

import (
	"context"

	"github.com/google/uuid"

	reqdto "webhooknest/internal/handler/dto/request"
	"webhooknest/internal/pkg/errs"
	"webhooknest/internal/pkg/token"
	"webhooknest/internal/usecase/queries"
)

// ReceivePathPrefix is the public ingestion route a created endpoint
// listens on.
const ReceivePathPrefix = "/api/receive/"

type CreateWebhookResult struct {
	Webhook    *queries.WebhookView
	WebhookURL string
}

type WebhookCommands interface {
	CreateEndpoint(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateWebhookRequest) (*CreateWebhookResult, error)
}

type webhookCommandsImpl struct {
	webhookRepo WebhookRepository
}

func NewWebhookCommands(webhookRepo WebhookRepository) WebhookCommands {
	return &webhookCommandsImpl{
		webhookRepo: webhookRepo,
	}
}

func (w *webhookCommandsImpl) CreateEndpoint(ctx context.Context, ownerID uuid.UUID, req reqdto.CreateWebhookRequest) (*CreateWebhookResult, error) {
	description, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrValidation)
	}

	slug, err := token.NewSlug()
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate slug")
	}

	var descPtr *string
	if !description.IsEmpty() {
		v := description.Value()
		descPtr = &v
	}

	view, err := w.webhookRepo.Create(ctx, ownerID, slug, descPtr)
	if err != nil {
		return nil, err
	}

	return &CreateWebhookResult{
		Webhook:    view,
		WebhookURL: ReceivePathPrefix + view.Slug,
	}, nil
}
