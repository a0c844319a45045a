package delete_apartment

import (
	"context"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	"github.com/m04kA/SMC-CleaningScheduler/internal/usecase/update_cleaning_schedule"
)

// ApartmentRepository интерфейс репозитория квартир
type ApartmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Apartment, error)
	Delete(ctx context.Context, id int64) error
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListByApartment(ctx context.Context, apartmentID int64) ([]*domain.Booking, error)
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

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
