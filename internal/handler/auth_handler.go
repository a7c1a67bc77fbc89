package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hvhai/hotel-booking-speckit/internal/dto"
	"github.com/hvhai/hotel-booking-speckit/internal/middleware"
	"github.com/hvhai/hotel-booking-speckit/internal/service"
	"github.com/hvhai/hotel-booking-speckit/pkg/response"
	"github.com/hvhai/hotel-booking-speckit/pkg/telemetry"
)

// AuthHandler handles registration, login and current-user endpoints
type AuthHandler struct {
	userService service.UserService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService service.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.auth.register")
	defer span.End()

	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.userService.Register(ctx, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, user)
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.auth.login")
	defer span.End()

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	token, err := h.userService.Authenticate(ctx, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, token)
}

// Me handles GET /api/v1/users/me
func (h *AuthHandler) Me(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.auth.me")
	defer span.End()

	userID := c.GetString(middleware.ContextUserID)

	user, err := h.userService.GetUser(ctx, userID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, user)
}
