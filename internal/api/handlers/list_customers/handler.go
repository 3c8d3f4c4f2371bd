package list_customers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/customers"
)

const (
	msgInvalidParams = "некорректные параметры пагинации"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	limit, offset, err := handlers.ParsePagination(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /customers - Invalid pagination: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), limit, offset)
	if err != nil {
		if errors.Is(err, customers.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		h.logger.Error("GET /customers - Failed to list customers: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /customers - Customers retrieved successfully: count=%d", len(result.Customers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
