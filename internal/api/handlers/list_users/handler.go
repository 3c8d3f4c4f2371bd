package list_users

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/users"
)

const (
	msgInvalidParams = "некорректные параметры пагинации"
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

// Handle GET /api/v1/users
// Query params: limit, offset (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := handlers.ParsePagination(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /users - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("GET /users - Invalid pagination: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /users - Failed to list users: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users - Users retrieved successfully: count=%d", len(result.Users))
	handlers.RespondJSON(w, http.StatusOK, result)
}
