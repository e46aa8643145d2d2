// Package alert is the extension point for delivery-payload alerting.
// The default implementation only logs and counts; a real notification
// channel (mail, Slack, ...) plugs in by providing another Notifier.
package alert

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"webhooknest/internal/metrics"
)

type Notifier interface {
	OnSuspiciousPayload(ctx context.Context, webhookID uuid.UUID, payload json.RawMessage)
}

type LogNotifier struct {
	logger *slog.Logger
}

func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) OnSuspiciousPayload(ctx context.Context, webhookID uuid.UUID, payload json.RawMessage) {
	metrics.SuspiciousPayloads.Inc()
	n.logger.WarnContext(ctx, "suspicious payload detected in webhook delivery",
		"webhook_id", webhookID,
		"payload_size", len(payload))
}
