package attach_customer_proof

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/service/customers"
	"github.com/m04kA/SMC-HotelService/internal/service/customers/models"
)

const (
	msgInvalidCustomerID  = "некорректный ID гостя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "гость не найден"
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

// Handle PUT /api/v1/customers/{customerId}/proof
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, err := strconv.ParseInt(mux.Vars(r)["customerId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /customers/{id}/proof - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	var req models.AttachProofRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /customers/{id}/proof - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.CustomerID = customerID

	result, err := h.service.AttachProof(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrInvalidInput):
			h.logger.Warn("PUT /customers/{id}/proof - Validation failed: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("PUT /customers/{id}/proof - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /customers/{id}/proof - Failed: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /customers/{id}/proof - Proof attached: customer_id=%d, key=%s", customerID, result.Key)
	handlers.RespondJSON(w, http.StatusOK, result)
}
