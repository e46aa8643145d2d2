package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"webhooknest/internal/handler/httperr"
	"webhooknest/internal/metrics"
	"webhooknest/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ReceiveHandler struct {
	cmds commands.IngestCommands
}

func NewReceiveHandler(cmds commands.IngestCommands) *ReceiveHandler {
	return &ReceiveHandler{cmds: cmds}
}

// @Summary Receive webhook delivery
// @Description Accept an inbound webhook POST and log it against the slug's endpoint
// @Tags receive
// @Accept json
// @Produce json
// @Param slug path string true "Webhook slug"
// @Success 200 {object} map[string]string
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /receive/{slug} [post]
func (h *ReceiveHandler) Receive(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		metrics.WebhookDeliveries.WithLabelValues("rejected").Inc()
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Failed to read request body", nil)
		return
	}

	// An empty body is a valid empty delivery.
	if len(body) == 0 {
		body = []byte("{}")
	}
	if !json.Valid(body) {
		metrics.WebhookDeliveries.WithLabelValues("rejected").Inc()
		httperr.AbortWithError(c, http.StatusBadRequest, errors.New("malformed JSON body"), "Invalid JSON payload", nil)
		return
	}

	_, err = h.cmds.Receive(c.Request.Context(), c.Param("slug"), body, flattenHeaders(c.Request.Header))
	if err != nil {
		if errors.Is(err, commands.ErrEndpointNotFound) {
			metrics.WebhookDeliveries.WithLabelValues("unknown_slug").Inc()
			httperr.AbortWithError(c, http.StatusNotFound, err, "Invalid Webhook URL", nil)
			return
		}
		metrics.WebhookDeliveries.WithLabelValues("store_error").Inc()
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	metrics.WebhookDeliveries.WithLabelValues("logged").Inc()
	c.JSON(http.StatusOK, gin.H{"message": "Webhook received and logged"})
}

func flattenHeaders(header http.Header) map[string]string {
	out := make(map[string]string, len(header))
	for k, v := range header {
		out[strings.ToLower(k)] = strings.Join(v, ", ")
	}
	return out
}
