package get_room

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/rooms"
)

const (
	msgInvalidRoomID = "некорректный ID номера"
	msgNotFound      = "номер не найден"
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

// Handle GET /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id} - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	room, err := h.service.GetByID(r.Context(), roomID)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /rooms/{id} - Failed to get room: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, room)
}
