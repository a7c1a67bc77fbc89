package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
	"github.com/hvhai/hotel-booking-speckit/internal/dto"
	"github.com/hvhai/hotel-booking-speckit/internal/service"
	"github.com/hvhai/hotel-booking-speckit/pkg/response"
	"github.com/hvhai/hotel-booking-speckit/pkg/telemetry"
)

// AdminHandler handles admin-only endpoints
type AdminHandler struct {
	userService service.UserService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(userService service.UserService) *AdminHandler {
	return &AdminHandler{userService: userService}
}

// UpdateMembership handles PUT /api/v1/admin/users/:id/membership
func (h *AdminHandler) UpdateMembership(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.admin.update_membership")
	defer span.End()

	var req dto.UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	user, err := h.userService.UpdateMembershipLevel(ctx, c.Param("id"), domain.MembershipLevel(req.MembershipLevel))
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, user)
}
