package update_cleaning_schedule

import (
	"context"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByOwnerInRange(ctx context.Context, ownerID int64, from, to time.Time) ([]*domain.Booking, error)
	GetFirstAfter(ctx context.Context, ownerID int64, after time.Time) ([]*domain.Booking, error)
}

// CleaningRepository интерфейс репозитория графика уборок
type CleaningRepository interface {
	UpsertWindows(ctx context.Context, windows []domain.CleaningWindow) error
	GetCleaningDates(ctx context.Context, bookingIDs []int64) (map[int64]*time.Time, error)
	UpdateCleaningDates(ctx context.Context, changes []domain.AssignmentChange) error
}

// Notifier интерфейс публикации изменений графика
type Notifier interface {
	PublishChanges(ctx context.Context, ownerID int64, changes []domain.AssignmentChange) error
}

// Metrics интерфейс метрик пересчёта
type Metrics interface {
	ObserveSchedulingPass(duration time.Duration, windows, overlapGroups, changed int, err error)
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
