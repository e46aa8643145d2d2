package api

import (
	"errors"
	"net/http"

	"webhooknest/internal/domain/user"
	reqdto "webhooknest/internal/handler/dto/request"
	resdto "webhooknest/internal/handler/dto/response"
	"webhooknest/internal/handler/httperr"
	"webhooknest/internal/handler/middleware"
	"webhooknest/internal/usecase/commands"
	"webhooknest/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds commands.AuthCommands
	q    queries.UserQueries
}

func NewAuthHandler(cmds commands.AuthCommands, q queries.UserQueries) *AuthHandler {
	return &AuthHandler{cmds: cmds, q: q}
}

// @Summary Register account
// @Description Register a new account with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Register request"
// @Success 201 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Email and password are required", nil)
		return
	}

	result, err := h.cmds.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrInvalidEmail):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email format", nil)
		case errors.Is(err, user.ErrPasswordTooWeak):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Password must be at least 6 characters long", nil)
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Email already exists", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Registration failed", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.AuthResponse{
		Message: "Registration successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// @Summary Login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.AuthResponse
// @Failure 400 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Email and password are required", nil)
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		// One generic message regardless of which check failed, so a
		// caller cannot probe which accounts exist.
		case errors.Is(err, commands.ErrInvalidCredentials), errors.Is(err, commands.ErrValidation):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid email or password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Login failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AuthResponse{
		Message: "Login successful",
		Token:   result.Token,
		User:    result.User,
	})
}

// @Summary Get current account
// @Description Get the authenticated account's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.UserView
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, queries.ErrUserNotFound, "Unauthorized", nil)
		return
	}

	view, err := h.q.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, queries.ErrUserNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, view)
}
