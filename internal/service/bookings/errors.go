package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено или принадлежит другому владельцу
	ErrBookingNotFound = errors.New("booking not found")

	// ErrApartmentNotFound возвращается, когда квартира не найдена или принадлежит другому владельцу
	ErrApartmentNotFound = errors.New("apartment not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
