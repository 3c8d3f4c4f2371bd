package create_booking

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelService/internal/domain"
	createBooking "github.com/m04kA/SMC-HotelService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-HotelService/pkg/ptr"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RoomID            int64            `json:"roomId"`
	CustomerID        int64            `json:"customerId"`
	ScheduledCheckIn  string           `json:"scheduledCheckIn"`  // "2024-03-05"
	ScheduledCheckOut string           `json:"scheduledCheckOut"` // "2024-03-10"
	BookingStatus     string           `json:"bookingStatus,omitempty"`
	PaymentStatus     string           `json:"paymentStatus,omitempty"`
	TotalAmount       decimal.Decimal  `json:"totalAmount"`
	AmountPaid        *decimal.Decimal `json:"amountPaid,omitempty"`
	Notes             *string          `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                int64           `json:"id"`
	RoomID            int64           `json:"roomId"`
	CustomerID        int64           `json:"customerId"`
	ScheduledCheckIn  string          `json:"scheduledCheckIn"`
	ScheduledCheckOut string          `json:"scheduledCheckOut"`
	BookingStatus     string          `json:"bookingStatus"`
	PaymentStatus     string          `json:"paymentStatus"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	AmountPaid        decimal.Decimal `json:"amountPaid"`
	AdditionalCharges decimal.Decimal `json:"additionalCharges"`
	Notes             *string         `json:"notes,omitempty"`
	BookingDate       string          `json:"bookingDate"`
	UpdatedAt         string          `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	checkIn, err := handlers.ParseDate(r.ScheduledCheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := handlers.ParseDate(r.ScheduledCheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		RoomID:            r.RoomID,
		CustomerID:        r.CustomerID,
		ScheduledCheckIn:  checkIn,
		ScheduledCheckOut: checkOut,
		BookingStatus:     r.BookingStatus,
		PaymentStatus:     r.PaymentStatus,
		TotalAmount:       r.TotalAmount,
		AmountPaid:        ptr.Deref(r.AmountPaid),
		Notes:             r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                resp.ID,
		RoomID:            resp.RoomID,
		CustomerID:        resp.CustomerID,
		ScheduledCheckIn:  resp.ScheduledCheckIn.Format(domain.DateFormat),
		ScheduledCheckOut: resp.ScheduledCheckOut.Format(domain.DateFormat),
		BookingStatus:     resp.BookingStatus,
		PaymentStatus:     resp.PaymentStatus,
		TotalAmount:       resp.TotalAmount,
		AmountPaid:        resp.AmountPaid,
		AdditionalCharges: resp.AdditionalCharges,
		Notes:             resp.Notes,
		BookingDate:       resp.BookingDate.Format(time.RFC3339),
		UpdatedAt:         resp.UpdatedAt.Format(time.RFC3339),
	}
}
