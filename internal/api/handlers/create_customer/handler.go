package create_customer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/customers"
	"github.com/m04kA/SMC-HotelService/internal/service/customers/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/customers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	customer, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("POST /customers - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /customers - Failed to create customer: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customers - Customer created successfully: customer_id=%d", customer.ID)
	handlers.RespondJSON(w, http.StatusCreated, customer)
}
