package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	RoomID     *int64  `json:"roomId,omitempty"`
	CustomerID *int64  `json:"customerId,omitempty"`
	Status     *string `json:"status,omitempty"`
	Limit      uint64  `json:"limit,omitempty"`
	Offset     uint64  `json:"offset,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		RoomID:     r.RoomID,
		CustomerID: r.CustomerID,
		Limit:      r.Limit,
		Offset:     r.Offset,
	}

	if filter.Limit == 0 {
		filter.Limit = domain.DefaultListLimit
	}
	if filter.Limit > domain.MaxListLimit {
		return filter, fmt.Errorf("limit must be at most %d", domain.MaxListLimit)
	}

	if r.Status != nil {
		status, err := domain.ParseBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                int64           `json:"id"`
	RoomID            int64           `json:"roomId"`
	CustomerID        int64           `json:"customerId"`
	ScheduledCheckIn  string          `json:"scheduledCheckIn"`  // "2024-03-05"
	ScheduledCheckOut string          `json:"scheduledCheckOut"` // "2024-03-10"
	ActualCheckIn     *time.Time      `json:"actualCheckIn,omitempty"`
	ActualCheckOut    *time.Time      `json:"actualCheckOut,omitempty"`
	BookingStatus     string          `json:"bookingStatus"`
	PaymentStatus     string          `json:"paymentStatus"`
	TotalAmount       decimal.Decimal `json:"totalAmount"`
	AmountPaid        decimal.Decimal `json:"amountPaid"`
	AdditionalCharges decimal.Decimal `json:"additionalCharges"`
	Notes             *string         `json:"notes,omitempty"`
	BookingDate       time.Time       `json:"bookingDate"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// CheckOutResponse результат выселения
type CheckOutResponse struct {
	Booking           BookingResponse `json:"booking"`
	AdditionalCharges decimal.Decimal `json:"additionalCharges"` // начислено при этом выезде
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:                b.ID,
		RoomID:            b.RoomID,
		CustomerID:        b.CustomerID,
		ScheduledCheckIn:  b.ScheduledCheckIn.Format(domain.DateFormat),
		ScheduledCheckOut: b.ScheduledCheckOut.Format(domain.DateFormat),
		ActualCheckIn:     b.ActualCheckIn,
		ActualCheckOut:    b.ActualCheckOut,
		BookingStatus:     string(b.Status),
		PaymentStatus:     string(b.PaymentStatus),
		TotalAmount:       b.TotalAmount,
		AmountPaid:        b.AmountPaid,
		AdditionalCharges: b.AdditionalCharges,
		Notes:             b.Notes,
		BookingDate:       b.BookingDate,
		UpdatedAt:         b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}
