//go:build unit || e2e

package builder

import (
	"encoding/json"
	"time"

	"webhooknest/internal/usecase/queries"

	"github.com/google/uuid"
)

type WebhookBuilder struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Slug        string
	Description *string
	CreatedAt   time.Time
}

func NewWebhookBuilder() *WebhookBuilder {
	return &WebhookBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		Slug:      "aB3xY9_k2Lm0",
		CreatedAt: time.Now().UTC(),
	}
}

func (w *WebhookBuilder) With(mutate func(*WebhookBuilder)) *WebhookBuilder {
	mutate(w)
	return w
}

func (w *WebhookBuilder) BuildReadModel() *queries.WebhookView {
	return &queries.WebhookView{
		ID:          w.ID,
		UserID:      w.UserID,
		Slug:        w.Slug,
		Description: w.Description,
		CreatedAt:   w.CreatedAt,
	}
}

type DeliveryBuilder struct {
	ID         uuid.UUID
	WebhookID  uuid.UUID
	Payload    json.RawMessage
	Headers    map[string]string
	StatusCode int32
	ReceivedAt time.Time
	Replayed   bool
}

func NewDeliveryBuilder() *DeliveryBuilder {
	return &DeliveryBuilder{
		ID:         uuid.New(),
		WebhookID:  uuid.New(),
		Payload:    json.RawMessage(`{"event":"build.finished","ok":true}`),
		Headers:    map[string]string{"content-type": "application/json"},
		StatusCode: 200,
		ReceivedAt: time.Now().UTC(),
	}
}

func (d *DeliveryBuilder) With(mutate func(*DeliveryBuilder)) *DeliveryBuilder {
	mutate(d)
	return d
}

func (d *DeliveryBuilder) BuildReadModel() queries.DeliveryView {
	return queries.DeliveryView{
		ID:         d.ID,
		WebhookID:  d.WebhookID,
		Payload:    d.Payload,
		Headers:    d.Headers,
		StatusCode: d.StatusCode,
		ReceivedAt: d.ReceivedAt,
		Replayed:   d.Replayed,
	}
}
