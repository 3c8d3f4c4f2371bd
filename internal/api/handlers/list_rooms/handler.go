package list_rooms

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms"
)

const (
	msgInvalidParams = "некорректные параметры пагинации"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms
// Query params: limit, offset (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := handlers.ParsePagination(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /rooms - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms - Invalid pagination: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /rooms - Failed to list rooms: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms - Rooms retrieved successfully: count=%d", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, result)
}
