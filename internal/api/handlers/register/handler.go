package register

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/users"
	"github.com/m04kA/SMC-HotelService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUserExists         = "имя пользователя уже занято"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, users.ErrUserExists):
			handlers.RespondConflict(w, msgUserExists)

		default:
			h.logger.Error("POST /auth/register - Failed to register: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: user_id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, user)
}
