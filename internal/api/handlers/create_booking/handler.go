package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidStayDates   = "некорректные даты проживания"
	msgInvalidBooking     = "некорректные данные бронирования"
	msgRoomNotFound       = "номер не найден"
	msgCustomerNotFound   = "гость не найден"
	msgRoomUnavailable    = "номер занят на выбранные даты"
	msgConflict           = "конкурентное бронирование, повторите запрос"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidBooking)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid stay dates: room_id=%d, error=%v", req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidStayDates)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%d", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: customer_id=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, createBooking.ErrRoomUnavailable):
			h.logger.Warn("POST /bookings - Room unavailable: room_id=%d, %s..%s",
				req.RoomID, req.ScheduledCheckIn, req.ScheduledCheckOut)
			handlers.RespondConflict(w, msgRoomUnavailable)

		case errors.Is(err, createBooking.ErrConflict):
			h.logger.Warn("POST /bookings - Concurrent conflict: room_id=%d", req.RoomID)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: room_id=%d, customer_id=%d, error=%v",
				req.RoomID, req.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	username, _ := middleware.GetUsername(r.Context())
	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, room_id=%d, customer_id=%d, by user=%q",
		result.ID, result.RoomID, result.CustomerID, username)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
