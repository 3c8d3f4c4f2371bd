package get_room_availability

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
	msgInvalidDates  = "некорректные даты, ожидается checkIn и checkOut в формате YYYY-MM-DD"
	msgInvalidRange  = "дата выезда должна быть позже даты заезда"
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

// Handle GET /api/v1/rooms/{roomId}/availability?checkIn=YYYY-MM-DD&checkOut=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID, err := strconv.ParseInt(mux.Vars(r)["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	serviceReq, err := ToServiceRequest(roomID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid dates: room_id=%d, error=%v", roomID, err)
		handlers.RespondBadRequest(w, msgInvalidDates)
		return
	}

	result, err := h.service.Availability(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid range: room_id=%d", roomID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, rooms.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
