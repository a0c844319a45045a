package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

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
