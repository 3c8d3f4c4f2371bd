package create_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateRoomRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /rooms - Failed to create room: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created successfully: room_id=%d", room.ID)
	handlers.RespondJSON(w, http.StatusCreated, room)
}
