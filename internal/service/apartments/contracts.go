package apartments

import (
	"context"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// ApartmentRepository интерфейс репозитория квартир
type ApartmentRepository interface {
	Create(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error)
	GetByID(ctx context.Context, id int64) (*domain.Apartment, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Apartment, error)
	Update(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
