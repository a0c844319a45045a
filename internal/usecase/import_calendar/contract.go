package import_calendar

import (
	"context"
	"io"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	"github.com/m04kA/SMC-CleaningScheduler/internal/infra/ical"
	"github.com/m04kA/SMC-CleaningScheduler/internal/usecase/update_cleaning_schedule"
)

// CalendarParser интерфейс разбора ICS файла
type CalendarParser interface {
	Parse(r io.Reader) (*ical.Calendar, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	HasOverlap(ctx context.Context, apartmentID int64, checkIn, checkOut time.Time) (bool, error)
}

// ApartmentRepository интерфейс репозитория квартир
type ApartmentRepository interface {
	GetByOwnerAndName(ctx context.Context, ownerID int64, name string) (*domain.Apartment, error)
}

// ScheduleUpdater пересчёт графика уборок (update_cleaning_schedule)
type ScheduleUpdater interface {
	Recalculate(ctx context.Context, input *update_cleaning_schedule.InputData) (*update_cleaning_schedule.Result, error)
	Publish(ctx context.Context, ownerID int64, changes []domain.AssignmentChange)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now()
}
