package queries

import (
	"context"

	"github.com/google/uuid"

	"webhooknest/internal/infra"
	"webhooknest/internal/pkg/config"
	"webhooknest/internal/pkg/errs"
)

// ErrWebhookNotFound covers both "slug does not exist" and "slug belongs
// to another account"; callers must not be able to tell the two apart.
var ErrWebhookNotFound = errs.New("webhook not found")

type LogPage struct {
	Limit  int32
	Offset int32
}

type WebhookLogsResult struct {
	Webhook *WebhookView
	Logs    []DeliveryView
}

type WebhookQueries interface {
	ListEndpoints(ctx context.Context, ownerID uuid.UUID) ([]WebhookView, error)
	ListLogs(ctx context.Context, ownerID uuid.UUID, slug string, page LogPage) (*WebhookLogsResult, error)
}

type WebhookReadStore interface {
	FindBySlugAndOwner(ctx context.Context, slug string, ownerID uuid.UUID) (*WebhookView, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]WebhookView, error)
}

type DeliveryReadStore interface {
	ListByWebhook(ctx context.Context, webhookID uuid.UUID, limit, offset int32) ([]DeliveryView, error)
}

type webhookQueriesImpl struct {
	webhooks   WebhookReadStore
	deliveries DeliveryReadStore
	cfg        config.IngestConfig
}

func NewWebhookQueries(webhooks WebhookReadStore, deliveries DeliveryReadStore, cfg config.Config) WebhookQueries {
	return &webhookQueriesImpl{
		webhooks:   webhooks,
		deliveries: deliveries,
		cfg:        cfg.Ingest,
	}
}

func (q *webhookQueriesImpl) ListEndpoints(ctx context.Context, ownerID uuid.UUID) ([]WebhookView, error) {
	return q.webhooks.ListByOwner(ctx, ownerID)
}

func (q *webhookQueriesImpl) ListLogs(ctx context.Context, ownerID uuid.UUID, slug string, page LogPage) (*WebhookLogsResult, error) {
	webhook, err := q.webhooks.FindBySlugAndOwner(ctx, slug, ownerID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrWebhookNotFound
		}
		return nil, err
	}

	limit := page.Limit
	if limit <= 0 {
		limit = q.cfg.LogPageLimit
	}
	if limit > q.cfg.LogPageMax {
		limit = q.cfg.LogPageMax
	}
	offset := page.Offset
	if offset < 0 {
		offset = 0
	}

	logs, err := q.deliveries.ListByWebhook(ctx, webhook.ID, limit, offset)
	if err != nil {
		return nil, err
	}

	return &WebhookLogsResult{Webhook: webhook, Logs: logs}, nil
}
