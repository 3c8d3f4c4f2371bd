package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// Request модели

// CreateRoomRequest запрос на создание номера
type CreateRoomRequest struct {
	Name          string          `json:"name"`
	RoomType      string          `json:"roomType"`
	Floor         int             `json:"floor"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Amenities     []string        `json:"amenities,omitempty"`
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateRoomRequest) ToDomain() *domain.Room {
	amenities := r.Amenities
	if amenities == nil {
		amenities = []string{}
	}
	return &domain.Room{
		Name:          r.Name,
		RoomType:      r.RoomType,
		Floor:         r.Floor,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
		Amenities:     amenities,
	}
}

// AvailabilityRequest запрос проверки доступности номера
type AvailabilityRequest struct {
	RoomID   int64
	CheckIn  time.Time
	CheckOut time.Time
}

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	RoomType      string          `json:"roomType"`
	Floor         int             `json:"floor"`
	Capacity      int             `json:"capacity"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Amenities     []string        `json:"amenities"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// AvailabilityResponse ответ о доступности номера
type AvailabilityResponse struct {
	RoomID    int64  `json:"roomId"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	Nights    int    `json:"nights"`
	Available bool   `json:"available"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}
	return &RoomResponse{
		ID:            r.ID,
		Name:          r.Name,
		RoomType:      r.RoomType,
		Floor:         r.Floor,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
		Amenities:     r.Amenities,
		CreatedAt:     r.CreatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{Rooms: make([]RoomResponse, 0, len(rooms))}
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, *FromDomainRoom(room))
	}
	return resp
}
