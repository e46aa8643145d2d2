package commands

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"webhooknest/internal/usecase/queries"
)

// Write-side repository ports. Implementations live in internal/infra.

type UserRepository interface {
	Create(ctx context.Context, email, name, passwordHash, apiKey string) (*queries.UserView, error)
}

type WebhookRepository interface {
	Create(ctx context.Context, ownerID uuid.UUID, slug string, description *string) (*queries.WebhookView, error)
}

// IngestRepository resolves a slug and appends the delivery record in a
// single transaction, so a record can never outlive its endpoint.
type IngestRepository interface {
	ReceiveBySlug(ctx context.Context, slug string, payload json.RawMessage, headers map[string]string, statusCode int32) (*queries.DeliveryView, error)
}
