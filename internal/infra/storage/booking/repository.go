package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/dbmetrics"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/psqlbuilder"
)

var bookingColumns = []string{
	"b.id",
	"b.apartment_id",
	"b.guest_name",
	"b.check_in",
	"b.check_out",
	"b.created_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Проверка пересечений с другими бронированиями квартиры выполняется в той же транзакции через HasOverlap
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns("apartment_id", "guest_name", "check_in", "check_out").
		Values(booking.ApartmentID, booking.GuestName, booking.CheckIn, booking.CheckOut).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListByApartment получает бронирования квартиры в порядке заезда
func (r *Repository) ListByApartment(ctx context.Context, apartmentID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(squirrel.Eq{"b.apartment_id": apartmentID}).
		OrderBy("b.check_in ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByApartment - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByApartment - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetByOwnerInRange получает все бронирования владельца, пересекающие [from, to]
// Порядок: по квартире, затем по выезду
func (r *Repository) GetByOwnerInRange(ctx context.Context, ownerID int64, from, to time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("apartments a ON a.id = b.apartment_id").
		Where(squirrel.Eq{"a.owner_id": ownerID}).
		Where(squirrel.GtOrEq{"b.check_out": from}).
		Where(squirrel.LtOrEq{"b.check_in": to}).
		OrderBy("b.apartment_id ASC", "b.check_out ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByOwnerInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetFirstAfter получает для каждой квартиры владельца первое бронирование с заездом позже after
// Нужен, чтобы окно последнего бронирования в диапазоне закрывалось следующим заездом за его границей
func (r *Repository) GetFirstAfter(ctx context.Context, ownerID int64, after time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append([]string{"DISTINCT ON (b.apartment_id) b.id"}, bookingColumns[1:]...)
	query, args, err := psqlbuilder.Select(columns...).
		From("bookings b").
		Join("apartments a ON a.id = b.apartment_id").
		Where(squirrel.Eq{"a.owner_id": ownerID}).
		Where(squirrel.Gt{"b.check_in": after}).
		OrderBy("b.apartment_id ASC", "b.check_in ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetFirstAfter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetFirstAfter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// HasOverlap проверяет, пересекается ли [checkIn, checkOut) с бронированиями квартиры
// Выезд и заезд в один момент пересечением не считаются
func (r *Repository) HasOverlap(ctx context.Context, apartmentID int64, checkIn, checkOut time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"apartment_id": apartmentID}).
		Where(squirrel.Lt{"check_in": checkOut}).
		Where(squirrel.Gt{"check_out": checkIn}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: HasOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasOverlap - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// GetViewsByOwnerInRange получает бронирования владельца для календаря и графика уборок:
// с названием квартиры и сохранённой датой уборки.
// Попадают бронирования, пересекающие [from, to], и те, чья уборка приходится на этот период
func (r *Repository) GetViewsByOwnerInRange(ctx context.Context, ownerID int64, from, to time.Time) ([]*domain.BookingView, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	columns := append(append([]string{}, bookingColumns...), "a.name", "cs.cleaning_date")
	query, args, err := psqlbuilder.Select(columns...).
		From("bookings b").
		Join("apartments a ON a.id = b.apartment_id").
		LeftJoin("cleaning_schedules cs ON cs.booking_id = b.id").
		Where(squirrel.Eq{"a.owner_id": ownerID}).
		Where(squirrel.LtOrEq{"b.check_in": to}).
		Where(squirrel.Or{
			squirrel.GtOrEq{"b.check_out": from},
			squirrel.GtOrEq{"cs.cleaning_date": from},
		}).
		OrderBy("a.name ASC", "b.check_in ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetViewsByOwnerInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetViewsByOwnerInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	views := make([]*domain.BookingView, 0)
	for rows.Next() {
		var view domain.BookingView
		var createdAt, cleaningDate sql.NullTime

		err := rows.Scan(
			&view.ID,
			&view.ApartmentID,
			&view.GuestName,
			&view.CheckIn,
			&view.CheckOut,
			&createdAt,
			&view.ApartmentName,
			&cleaningDate,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: GetViewsByOwnerInRange - scan row: %v", ErrScanRow, err)
		}

		view.CreatedAt = createdAt.Time
		if cleaningDate.Valid {
			date := cleaningDate.Time
			view.CleaningDate = &date
		}

		views = append(views, &view)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetViewsByOwnerInRange - rows error: %v", ErrScanRow, err)
	}

	return views, nil
}

// Delete удаляет бронирование, запись графика уборки удаляется каскадно
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует строку в бронирование (колонки bookingColumns)
func scanBooking(row scanner) (*domain.Booking, error) {
	var booking domain.Booking
	var createdAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.ApartmentID,
		&booking.GuestName,
		&booking.CheckIn,
		&booking.CheckOut,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}
