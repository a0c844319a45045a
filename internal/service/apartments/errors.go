package apartments

import "errors"

var (
	// ErrApartmentNotFound возвращается, когда квартира не найдена или принадлежит другому владельцу
	ErrApartmentNotFound = errors.New("apartment not found")

	// ErrApartmentAlreadyExists возвращается, когда у владельца уже есть квартира с таким названием
	ErrApartmentAlreadyExists = errors.New("apartment with this name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
