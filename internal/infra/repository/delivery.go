package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"webhooknest/internal/infra"
	"webhooknest/internal/infra/cache"
	"webhooknest/internal/infra/db"
	"webhooknest/internal/pkg/clock"
	"webhooknest/internal/usecase/queries"
)

const receiveTxRetries = 3

type DeliveryRepository struct {
	pool  *pgxpool.Pool
	cache cache.EndpointCache
	clock clock.Clock
}

func NewDeliveryRepository(pool *pgxpool.Pool, endpointCache cache.EndpointCache, clk clock.Clock) *DeliveryRepository {
	return &DeliveryRepository{
		pool:  pool,
		cache: endpointCache,
		clock: clk,
	}
}

// ReceiveBySlug resolves the slug and appends the delivery record. On a
// cache miss both steps run in one transaction; on a cache hit the
// single FK-checked insert is atomic on its own, and a stale cached id
// surfaces as a FK violation which is reported as not-found.
func (r *DeliveryRepository) ReceiveBySlug(ctx context.Context, slug string, payload json.RawMessage, headers map[string]string, statusCode int32) (*queries.DeliveryView, error) {
	if webhookID, ok := r.cache.GetWebhookID(ctx, slug); ok {
		view, err := r.append(ctx, r.pool, webhookID, payload, headers, statusCode)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				r.cache.Invalidate(ctx, slug)
				return nil, infra.WrapRepoErr("webhook not found", err, infra.KindNotFound)
			}
			return nil, err
		}
		return view, nil
	}

	view, err := db.RunInTxWithRetry(ctx, r.pool, receiveTxRetries, func(tx db.DBTX) (*queries.DeliveryView, error) {
		webhookID, err := findWebhookIDBySlug(ctx, tx, slug)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, infra.WrapRepoErr("webhook not found", err, infra.KindNotFound)
			}
			return nil, infra.WrapRepoErr("failed to resolve webhook slug", err)
		}
		return r.append(ctx, tx, webhookID, payload, headers, statusCode)
	})
	if err != nil {
		return nil, err
	}

	r.cache.SetWebhookID(ctx, slug, view.WebhookID)
	return view, nil
}

func (r *DeliveryRepository) append(ctx context.Context, dbtx db.DBTX, webhookID uuid.UUID, payload json.RawMessage, headers map[string]string, statusCode int32) (*queries.DeliveryView, error) {
	id := uuid.New()
	receivedAt := r.clock.Now().UTC()

	const sql = `
		INSERT INTO webhook_logs (id, webhook_id, payload, headers, status_code, received_at, replayed)
		VALUES ($1, $2, $3, $4, $5, $6, false)`

	_, err := dbtx.Exec(ctx, sql, id, webhookID, []byte(payload), headers, statusCode, receivedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to append delivery record", err)
	}

	return &queries.DeliveryView{
		ID:         id,
		WebhookID:  webhookID,
		Payload:    payload,
		Headers:    headers,
		StatusCode: statusCode,
		ReceivedAt: receivedAt,
		Replayed:   false,
	}, nil
}

func (r *DeliveryRepository) ListByWebhook(ctx context.Context, webhookID uuid.UUID, limit, offset int32) ([]queries.DeliveryView, error) {
	const sql = `
		SELECT id, webhook_id, payload, headers, status_code, received_at, replayed
		FROM webhook_logs
		WHERE webhook_id = $1
		ORDER BY received_at DESC, id
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, sql, webhookID, limit, offset)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list delivery records", err)
	}
	defer rows.Close()

	views := make([]queries.DeliveryView, 0)
	for rows.Next() {
		var (
			view    queries.DeliveryView
			payload []byte
		)
		err := rows.Scan(&view.ID, &view.WebhookID, &payload, &view.Headers, &view.StatusCode, &view.ReceivedAt, &view.Replayed)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan delivery row", err)
		}
		view.Payload = json.RawMessage(payload)
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate delivery rows", err)
	}

	return views, nil
}
