package get_cleaning_schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном месяце или владельце
	ErrInvalidInput = errors.New("get_cleaning_schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_cleaning_schedule: internal error")
)
