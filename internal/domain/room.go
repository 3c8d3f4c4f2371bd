package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Room номер отеля
type Room struct {
	ID            int64
	Name          string
	RoomType      string
	Floor         int
	Capacity      int
	PricePerNight decimal.Decimal
	Amenities     []string
	CreatedAt     time.Time
}
