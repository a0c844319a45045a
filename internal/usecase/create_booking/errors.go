package create_booking

import "errors"

var (
	// ErrApartmentNotFound возвращается, когда квартира не найдена или принадлежит другому владельцу
	ErrApartmentNotFound = errors.New("create_booking: apartment not found")

	// ErrInvalidDate возвращается, когда заезд в прошлом или выезд не позже заезда
	ErrInvalidDate = errors.New("create_booking: invalid booking dates")

	// ErrBookingOverlap возвращается, когда квартира уже забронирована на эти даты
	ErrBookingOverlap = errors.New("create_booking: apartment is already booked for these dates")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
