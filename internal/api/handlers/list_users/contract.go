package list_users

import (
	"context"

	"github.com/m04kA/SMC-HotelService/internal/service/users/models"
)

type UserService interface {
	List(ctx context.Context, limit, offset uint64) (*models.UserListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
