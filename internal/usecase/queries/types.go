package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type UserView struct {
	ID     uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	APIKey string    `json:"api_key"`
}

type WebhookView struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Slug        string    `json:"slug"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type DeliveryView struct {
	ID         uuid.UUID         `json:"id"`
	WebhookID  uuid.UUID         `json:"webhook_id"`
	Payload    json.RawMessage   `json:"payload"`
	Headers    map[string]string `json:"headers"`
	StatusCode int32             `json:"status_code"`
	ReceivedAt time.Time         `json:"received_at"`
	Replayed   bool              `json:"replayed"`
}
