package delete_apartment

import "errors"

var (
	// ErrApartmentNotFound возвращается, когда квартира не найдена или принадлежит другому владельцу
	ErrApartmentNotFound = errors.New("delete_apartment: apartment not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("delete_apartment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("delete_apartment: internal error")
)
