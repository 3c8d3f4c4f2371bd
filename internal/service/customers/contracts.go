package customers

import (
	"context"
	"time"

	"github.com/m04kA/SMC-HotelService/internal/domain"
)

// CustomerRepository интерфейс репозитория гостей
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, limit, offset uint64) ([]*domain.Customer, error)
	UpdateProof(ctx context.Context, id int64, url, filename string, uploadedAt time.Time) error
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
