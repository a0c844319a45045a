package cleaning

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/psqlbuilder"
)

// upsertBatchSize ограничивает число строк в одном INSERT (лимит параметров PostgreSQL 65535)
const upsertBatchSize = 1000

// Repository репозиторий графика уборок
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория графика уборок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// UpsertWindows сохраняет окна уборки, перезаписывая окна прошлого расчёта
// Дата уборки не трогается: её пишет UpdateCleaningDates только для изменившихся бронирований
func (r *Repository) UpsertWindows(ctx context.Context, windows []domain.CleaningWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for start := 0; start < len(windows); start += upsertBatchSize {
		end := start + upsertBatchSize
		if end > len(windows) {
			end = len(windows)
		}

		insert := psqlbuilder.Insert("cleaning_schedules").
			Columns("booking_id", "window_start", "window_end", "updated_at")
		for _, w := range windows[start:end] {
			insert = insert.Values(w.BookingID, w.Start, nullTime(w.End), squirrel.Expr("NOW()"))
		}

		query, args, err := insert.
			Suffix("ON CONFLICT (booking_id) DO UPDATE SET " +
				"window_start = EXCLUDED.window_start, " +
				"window_end = EXCLUDED.window_end, " +
				"updated_at = EXCLUDED.updated_at").
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: UpsertWindows - build insert query: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: UpsertWindows - execute insert: %v", ErrExecQuery, err)
		}
	}

	return nil
}

// GetCleaningDates возвращает сохранённые даты уборки бронирований
// Бронирования без записи в графике в результат не попадают
func (r *Repository) GetCleaningDates(ctx context.Context, bookingIDs []int64) (map[int64]*time.Time, error) {
	dates := make(map[int64]*time.Time, len(bookingIDs))
	if len(bookingIDs) == 0 {
		return dates, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("booking_id", "cleaning_date").
		From("cleaning_schedules").
		Where("booking_id = ANY(?)", pq.Array(bookingIDs)).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetCleaningDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetCleaningDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var bookingID int64
		var cleaningDate sql.NullTime
		if err := rows.Scan(&bookingID, &cleaningDate); err != nil {
			return nil, fmt.Errorf("%w: GetCleaningDates - scan row: %v", ErrScanRow, err)
		}
		dates[bookingID] = timePtr(cleaningDate)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetCleaningDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// GetByBookingID получает запись графика уборки бронирования
func (r *Repository) GetByBookingID(ctx context.Context, bookingID int64) (*domain.CleaningSchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"booking_id",
		"window_start",
		"window_end",
		"cleaning_date",
		"updated_at",
	).
		From("cleaning_schedules").
		Where(squirrel.Eq{"booking_id": bookingID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - build select query: %v", ErrBuildQuery, err)
	}

	var schedule domain.CleaningSchedule
	var windowEnd, cleaningDate sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&schedule.BookingID,
		&schedule.WindowStart,
		&windowEnd,
		&cleaningDate,
		&schedule.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByBookingID - scan schedule: %v", ErrScanRow, err)
	}

	schedule.WindowEnd = timePtr(windowEnd)
	schedule.CleaningDate = timePtr(cleaningDate)

	return &schedule, nil
}

// UpdateCleaningDates записывает изменившиеся даты уборки
// Записи графика должны уже существовать (UpsertWindows в той же транзакции)
func (r *Repository) UpdateCleaningDates(ctx context.Context, changes []domain.AssignmentChange) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for _, change := range changes {
		query, args, err := psqlbuilder.Update("cleaning_schedules").
			Set("cleaning_date", nullTime(change.CleaningDate)).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"booking_id": change.BookingID}).
			ToSql()

		if err != nil {
			return fmt.Errorf("%w: UpdateCleaningDates - build update query: %v", ErrBuildQuery, err)
		}

		result, err := executor.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("%w: UpdateCleaningDates - execute update: %v", ErrExecQuery, err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: UpdateCleaningDates - get rows affected: %v", ErrExecQuery, err)
		}

		if rowsAffected == 0 {
			return fmt.Errorf("%w: booking_id=%d", ErrScheduleNotFound, change.BookingID)
		}
	}

	return nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
