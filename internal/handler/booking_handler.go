package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hvhai/hotel-booking-speckit/internal/dto"
	"github.com/hvhai/hotel-booking-speckit/internal/middleware"
	"github.com/hvhai/hotel-booking-speckit/internal/service"
	"github.com/hvhai/hotel-booking-speckit/pkg/response"
	"github.com/hvhai/hotel-booking-speckit/pkg/telemetry"
)

// BookingHandler handles booking HTTP endpoints
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// Create handles POST /api/v1/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.booking.create")
	defer span.End()

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	userID := c.GetString(middleware.ContextUserID)
	booking, err := h.bookingService.CreateBooking(ctx, userID, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, booking)
}

// Cancel handles POST /api/v1/bookings/:id/cancel. The cancellation instant
// is captured once here and threaded through the whole operation.
func (h *BookingHandler) Cancel(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.booking.cancel")
	defer span.End()

	now := time.Now().UTC()
	userID := c.GetString(middleware.ContextUserID)

	cancellation, err := h.bookingService.CancelBooking(ctx, c.Param("id"), userID, now)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, cancellation)
}

// RefundPreview handles GET /api/v1/bookings/:id/refund-preview
func (h *BookingHandler) RefundPreview(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.booking.refund_preview")
	defer span.End()

	now := time.Now().UTC()

	preview, err := h.bookingService.PreviewRefund(ctx, c.Param("id"), now)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, preview)
}

// MyBookings handles GET /api/v1/bookings/my
func (h *BookingHandler) MyBookings(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.booking.my")
	defer span.End()

	userID := c.GetString(middleware.ContextUserID)

	bookings, err := h.bookingService.GetBookingsForUser(ctx, userID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, bookings)
}
