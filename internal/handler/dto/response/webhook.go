package response

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"webhooknest/internal/usecase/queries"
)

type CreateWebhookResponse struct {
	Message    string `json:"message"`
	WebhookURL string `json:"webhook_url"`
	Slug       string `json:"slug"`
}

type WebhookResponse struct {
	ID          uuid.UUID `json:"id"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type WebhookLogsResponse struct {
	Webhook string                 `json:"webhook"`
	Logs    []queries.DeliveryView `json:"logs"`
}

func FromWebhookViews(views []queries.WebhookView) []WebhookResponse {
	out := make([]WebhookResponse, 0, len(views))
	_ = copier.Copy(&out, &views)
	return out
}
