package bookings

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// ChargePolicy расчёт дополнительных начислений при выезде (поздний выезд, мини-бар и т.п.)
// Результат прибавляется к additional_charges брони и не может быть отрицательным
type ChargePolicy func(booking *domain.Booking, actualCheckOut time.Time) decimal.Decimal

// DefaultChargePolicy политика по умолчанию: доначислений нет
func DefaultChargePolicy(_ *domain.Booking, _ time.Time) decimal.Decimal {
	return decimal.Zero
}
