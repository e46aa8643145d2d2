package commands

import (
	"bytes"
	"context"
	"encoding/json"

	"webhooknest/internal/alert"
	"webhooknest/internal/domain/webhook"
	"webhooknest/internal/infra"
	"webhooknest/internal/pkg/errs"
	"webhooknest/internal/usecase/queries"
)

var ErrEndpointNotFound = errs.New("endpoint not found")

// ReceivedStatusCode is recorded on every delivery at receipt time.
const ReceivedStatusCode int32 = 200

var suspiciousMarker = []byte("error")

type IngestCommands interface {
	Receive(ctx context.Context, slug string, payload json.RawMessage, headers map[string]string) (*queries.DeliveryView, error)
}

type ingestCommandsImpl struct {
	ingestRepo IngestRepository
	notifier   alert.Notifier
}

func NewIngestCommands(ingestRepo IngestRepository, notifier alert.Notifier) IngestCommands {
	return &ingestCommandsImpl{
		ingestRepo: ingestRepo,
		notifier:   notifier,
	}
}

func (i *ingestCommandsImpl) Receive(ctx context.Context, slug string, payload json.RawMessage, headers map[string]string) (*queries.DeliveryView, error) {
	// Malformed slugs can never match a registered endpoint, so reject
	// them without touching the store.
	if _, err := webhook.NewSlug(slug); err != nil {
		return nil, ErrEndpointNotFound
	}

	view, err := i.ingestRepo.ReceiveBySlug(ctx, slug, payload, headers, ReceivedStatusCode)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEndpointNotFound
		}
		return nil, err
	}

	// Best-effort inspection after the record is durable; a notifier
	// failure must never fail the delivery.
	if bytes.Contains(bytes.ToLower(payload), suspiciousMarker) {
		i.notifier.OnSuspiciousPayload(ctx, view.WebhookID, payload)
	}

	return view, nil
}
