package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
	"github.com/hvhai/hotel-booking-speckit/pkg/logger"
	"github.com/hvhai/hotel-booking-speckit/pkg/response"
)

// handleError maps domain errors to HTTP status codes
func handleError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFoundError(err):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case domain.IsValidationError(err):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, domain.ErrBookingOwnership):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
	case errors.Is(err, domain.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error())
	case domain.IsConflictError(err):
		response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
	default:
		logger.Get().Error("unhandled error", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
