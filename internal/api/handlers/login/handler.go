package login

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/users"
	"github.com/m04kA/SMC-HotelService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверное имя пользователя или пароль"
	msgInactiveUser       = "пользователь заблокирован"
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

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	token, err := h.service.Login(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidCredentials):
			w.Header().Set("WWW-Authenticate", "Bearer")
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		case errors.Is(err, users.ErrInactiveUser):
			handlers.RespondForbidden(w, msgInactiveUser)

		default:
			h.logger.Error("POST /auth/login - Failed to login: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, token)
}
