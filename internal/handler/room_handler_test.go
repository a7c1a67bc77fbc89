package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hvhai/hotel-booking-speckit/internal/domain"
	"github.com/hvhai/hotel-booking-speckit/internal/dto"
)

type mockRoomService struct {
	GetAllRoomsFunc       func(ctx context.Context) ([]*dto.RoomResponse, error)
	GetAvailableRoomsFunc func(ctx context.Context, from, to, now time.Time) ([]*dto.RoomResponse, error)
}

func (m *mockRoomService) GetAllRooms(ctx context.Context) ([]*dto.RoomResponse, error) {
	return m.GetAllRoomsFunc(ctx)
}

func (m *mockRoomService) GetAvailableRooms(ctx context.Context, from, to, now time.Time) ([]*dto.RoomResponse, error) {
	return m.GetAvailableRoomsFunc(ctx, from, to, now)
}

func setupRoomRouter(svc *mockRoomService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/rooms", NewRoomHandler(svc).List)
	return router
}

func TestRoomHandler_ListAll(t *testing.T) {
	svc := &mockRoomService{
		GetAllRoomsFunc: func(context.Context) ([]*dto.RoomResponse, error) {
			return []*dto.RoomResponse{
				{ID: "r-1", RoomNumber: "101", Type: "Single", PricePerNight: decimal.RequireFromString("100.00")},
			}, nil
		},
	}
	router := setupRoomRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"room_number":"101"`)
}

func TestRoomHandler_Availability(t *testing.T) {
	svc := &mockRoomService{
		GetAvailableRoomsFunc: func(_ context.Context, from, to, _ time.Time) ([]*dto.RoomResponse, error) {
			assert.Equal(t, time.Date(2026, 10, 5, 0, 0, 0, 0, time.UTC), from)
			assert.Equal(t, time.Date(2026, 10, 7, 0, 0, 0, 0, time.UTC), to)
			return []*dto.RoomResponse{{ID: "r-2", RoomNumber: "102"}}, nil
		},
	}
	router := setupRoomRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/rooms?from=2026-10-05&to=2026-10-07", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"room_number":"102"`)
}

func TestRoomHandler_AvailabilityValidation(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"only from", "?from=2026-10-05"},
		{"only to", "?to=2026-10-07"},
		{"bad from format", "?from=05-10-2026&to=2026-10-07"},
		{"bad to format", "?from=2026-10-05&to=next-week"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRoomRouter(&mockRoomService{})

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/rooms"+tt.query, nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestRoomHandler_AvailabilityDomainErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid range", domain.ErrInvalidDateRange, http.StatusBadRequest},
		{"from in past", domain.ErrDateInPast, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockRoomService{
				GetAvailableRoomsFunc: func(context.Context, time.Time, time.Time, time.Time) ([]*dto.RoomResponse, error) {
					return nil, tt.err
				},
			}
			router := setupRoomRouter(svc)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/rooms?from=2026-10-05&to=2026-10-07", nil)
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
