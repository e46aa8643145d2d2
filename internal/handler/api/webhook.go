package api

import (
	"errors"
	"net/http"

	"webhooknest/internal/domain/webhook"
	reqdto "webhooknest/internal/handler/dto/request"
	resdto "webhooknest/internal/handler/dto/response"
	"webhooknest/internal/handler/httperr"
	"webhooknest/internal/handler/middleware"
	"webhooknest/internal/usecase/commands"
	"webhooknest/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	cmds commands.WebhookCommands
	q    queries.WebhookQueries
}

func NewWebhookHandler(cmds commands.WebhookCommands, q queries.WebhookQueries) *WebhookHandler {
	return &WebhookHandler{cmds: cmds, q: q}
}

// @Summary Create webhook endpoint
// @Description Create a webhook endpoint with a fresh random slug
// @Tags webhooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateWebhookRequest true "Create webhook request"
// @Success 201 {object} resdto.CreateWebhookResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /webhooks/create [post]
func (h *WebhookHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, queries.ErrUserNotFound, "Unauthorized", nil)
		return
	}

	var req reqdto.CreateWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.cmds.CreateEndpoint(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, webhook.ErrDescriptionTooLong) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Description must be 500 characters or less", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Error creating webhook", nil)
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateWebhookResponse{
		Message:    "Webhook created",
		WebhookURL: result.WebhookURL,
		Slug:       result.Webhook.Slug,
	})
}

// @Summary List webhook endpoints
// @Description List the caller's webhook endpoints, newest first
// @Tags webhooks
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.WebhookResponse
// @Failure 401 {object} httperr.Response
// @Router /webhooks [get]
func (h *WebhookHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, queries.ErrUserNotFound, "Unauthorized", nil)
		return
	}

	views, err := h.q.ListEndpoints(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWebhookViews(views))
}

// @Summary List delivery logs
// @Description List delivery logs for one of the caller's webhook endpoints
// @Tags webhooks
// @Produce json
// @Security BearerAuth
// @Param slug path string true "Webhook slug"
// @Param limit query int false "Page size (max 500)"
// @Param offset query int false "Page offset"
// @Success 200 {object} resdto.WebhookLogsResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /webhooks/{slug}/logs [get]
func (h *WebhookHandler) Logs(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, queries.ErrUserNotFound, "Unauthorized", nil)
		return
	}

	var page reqdto.ListLogsQuery
	if err := c.ShouldBindQuery(&page); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid pagination parameters", nil)
		return
	}

	result, err := h.q.ListLogs(c.Request.Context(), userID, c.Param("slug"), queries.LogPage{
		Limit:  page.Limit,
		Offset: page.Offset,
	})
	if err != nil {
		// Same response whether the slug never existed or belongs to
		// someone else.
		if errors.Is(err, queries.ErrWebhookNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Webhook not found or unauthorized", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.WebhookLogsResponse{
		Webhook: result.Webhook.Slug,
		Logs:    result.Logs,
	})
}
