package get_cleaning_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// ApartmentRepository интерфейс репозитория квартир
type ApartmentRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Apartment, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetViewsByOwnerInRange(ctx context.Context, ownerID int64, from, to time.Time) ([]*domain.BookingView, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
