package check_out

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/bookings/models"
)

type BookingService interface {
	CheckOut(ctx context.Context, id int64) (*models.CheckOutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
