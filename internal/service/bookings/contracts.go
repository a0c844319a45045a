package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListByApartment(ctx context.Context, apartmentID int64) ([]*domain.Booking, error)
}

// ApartmentRepository интерфейс репозитория квартир
type ApartmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Apartment, error)
}

// CleaningRepository интерфейс репозитория графика уборок
type CleaningRepository interface {
	GetByBookingID(ctx context.Context, bookingID int64) (*domain.CleaningSchedule, error)
	GetCleaningDates(ctx context.Context, bookingIDs []int64) (map[int64]*time.Time, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
