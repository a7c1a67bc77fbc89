package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hvhai/hotel-booking-speckit/internal/service"
	"github.com/hvhai/hotel-booking-speckit/pkg/response"
	"github.com/hvhai/hotel-booking-speckit/pkg/telemetry"
)

const dateLayout = "2006-01-02"

// RoomHandler handles room HTTP endpoints
type RoomHandler struct {
	roomService service.RoomService
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(roomService service.RoomService) *RoomHandler {
	return &RoomHandler{roomService: roomService}
}

// List handles GET /api/v1/rooms. Without query parameters it lists every
// room; with from and to (YYYY-MM-DD) it lists rooms available over
// [from, to).
func (h *RoomHandler) List(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.room.list")
	defer span.End()

	fromStr := c.Query("from")
	toStr := c.Query("to")

	if fromStr == "" && toStr == "" {
		rooms, err := h.roomService.GetAllRooms(ctx)
		if err != nil {
			handleError(c, err)
			return
		}
		response.Success(c, rooms)
		return
	}

	if fromStr == "" || toStr == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "both from and to are required for availability")
		return
	}

	from, err := time.ParseInLocation(dateLayout, fromStr, time.UTC)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid from date, expected YYYY-MM-DD")
		return
	}
	to, err := time.ParseInLocation(dateLayout, toStr, time.UTC)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid to date, expected YYYY-MM-DD")
		return
	}

	rooms, err := h.roomService.GetAvailableRooms(ctx, from, to, time.Now().UTC())
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, rooms)
}
