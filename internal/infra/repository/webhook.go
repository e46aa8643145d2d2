package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"webhooknest/internal/infra"
	"webhooknest/internal/infra/db"
	"webhooknest/internal/usecase/queries"
)

type WebhookRepository struct {
	pool *pgxpool.Pool
}

func NewWebhookRepository(pool *pgxpool.Pool) *WebhookRepository {
	return &WebhookRepository{pool: pool}
}

func (r *WebhookRepository) Create(ctx context.Context, ownerID uuid.UUID, slug string, description *string) (*queries.WebhookView, error) {
	id := uuid.New()

	const sql = `
		INSERT INTO webhooks (id, user_id, slug, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, user_id, slug, description, created_at`

	view, err := scanWebhook(r.pool.QueryRow(ctx, sql, id, ownerID, slug, description))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to create webhook", err)
	}

	return view, nil
}

func (r *WebhookRepository) FindBySlugAndOwner(ctx context.Context, slug string, ownerID uuid.UUID) (*queries.WebhookView, error) {
	const sql = `
		SELECT id, user_id, slug, description, created_at
		FROM webhooks
		WHERE slug = $1 AND user_id = $2`

	view, err := scanWebhook(r.pool.QueryRow(ctx, sql, slug, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("webhook not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find webhook by slug and owner", err)
	}

	return view, nil
}

func (r *WebhookRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]queries.WebhookView, error) {
	const sql = `
		SELECT id, user_id, slug, description, created_at
		FROM webhooks
		WHERE user_id = $1
		ORDER BY created_at DESC, id`

	rows, err := r.pool.Query(ctx, sql, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list webhooks by owner", err)
	}
	defer rows.Close()

	views := make([]queries.WebhookView, 0)
	for rows.Next() {
		view, err := scanWebhook(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan webhook row", err)
		}
		views = append(views, *view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate webhook rows", err)
	}

	return views, nil
}

func scanWebhook(row pgx.Row) (*queries.WebhookView, error) {
	var view queries.WebhookView
	err := row.Scan(&view.ID, &view.UserID, &view.Slug, &view.Description, &view.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// findWebhookIDBySlug is the ingest-path lookup: no ownership filter,
// runs on whatever DBTX the caller is holding (usually a transaction).
func findWebhookIDBySlug(ctx context.Context, dbtx db.DBTX, slug string) (uuid.UUID, error) {
	const sql = `SELECT id FROM webhooks WHERE slug = $1`

	var id uuid.UUID
	if err := dbtx.QueryRow(ctx, sql, slug).Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
