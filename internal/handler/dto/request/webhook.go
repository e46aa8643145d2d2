package request

import (
	"webhooknest/internal/domain/webhook"
)

type CreateWebhookRequest struct {
	Description string `json:"description" binding:"omitempty,max=500"`
}

func (r *CreateWebhookRequest) ToDomain() (webhook.Description, error) {
	return webhook.NewDescription(r.Description)
}

type ListLogsQuery struct {
	Limit  int32 `form:"limit" binding:"omitempty,min=1,max=500"`
	Offset int32 `form:"offset" binding:"omitempty,min=0"`
}
