package update_cleaning_schedule

import "errors"

var (
	// ErrInvalidInput возвращается, когда не передано ни одного бронирования
	ErrInvalidInput = errors.New("update_cleaning_schedule: invalid input data")

	// ErrInconsistentBookings возвращается, когда бронирования владельца противоречат друг другу
	// (пересекаются в одной квартире или выезд не позже заезда). Пересчёт отменяется
	ErrInconsistentBookings = errors.New("update_cleaning_schedule: inconsistent bookings")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_cleaning_schedule: internal error")
)
