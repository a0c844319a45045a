package import_calendar

import "errors"

var (
	// ErrInvalidCalendar возвращается, когда файл не удалось разобрать
	ErrInvalidCalendar = errors.New("import_calendar: invalid calendar file")

	// ErrEmptyCalendar возвращается, когда в календаре нет ни одного события
	ErrEmptyCalendar = errors.New("import_calendar: calendar has no events")

	// ErrApartmentNotFound возвращается, когда у владельца нет квартиры с названием из PRODID
	ErrApartmentNotFound = errors.New("import_calendar: apartment not found")

	// ErrInvalidDate возвращается, когда заезд события в прошлом или выезд не позже заезда
	ErrInvalidDate = errors.New("import_calendar: invalid event dates")

	// ErrBookingOverlap возвращается, когда событие пересекается с бронированием квартиры
	// или с другим событием того же файла
	ErrBookingOverlap = errors.New("import_calendar: event overlaps an existing booking")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("import_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("import_calendar: internal error")
)
