package create_booking

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на создание бронирования
type Request struct {
	RoomID            int64           // ID номера
	CustomerID        int64           // ID гостя
	ScheduledCheckIn  time.Time       // Дата заезда
	ScheduledCheckOut time.Time       // Дата выезда (не входит в проживание)
	BookingStatus     string          // Начальный статус: prebooked (по умолчанию) или confirmed
	PaymentStatus     string          // Статус оплаты (если пусто, вычисляется по суммам)
	TotalAmount       decimal.Decimal // Полная стоимость
	AmountPaid        decimal.Decimal // Внесено
	Notes             *string         // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                int64
	RoomID            int64
	CustomerID        int64
	ScheduledCheckIn  time.Time
	ScheduledCheckOut time.Time
	BookingStatus     string
	PaymentStatus     string
	TotalAmount       decimal.Decimal
	AmountPaid        decimal.Decimal
	AdditionalCharges decimal.Decimal
	Notes             *string
	BookingDate       time.Time
	UpdatedAt         time.Time
}
