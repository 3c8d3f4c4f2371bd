package list_rooms

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/rooms/models"
)

type RoomService interface {
	List(ctx context.Context, limit, offset uint64) (*models.RoomListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
