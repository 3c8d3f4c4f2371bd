package attach_customer_proof

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/customers/models"
)

type CustomerService interface {
	AttachProof(ctx context.Context, req *models.AttachProofRequest) (*models.AttachProofResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
