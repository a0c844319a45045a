package ical

import "errors"

var (
	// ErrInvalidCalendar возвращается, когда файл не является календарём iCalendar
	ErrInvalidCalendar = errors.New("ical.parser: invalid calendar file")

	// ErrMissingProdID возвращается, когда в календаре нет PRODID (по нему ищется квартира)
	ErrMissingProdID = errors.New("ical.parser: calendar has no PRODID")

	// ErrMissingDates возвращается, когда у события нет DTSTART или DTEND
	ErrMissingDates = errors.New("ical.parser: event has no start or end date")

	// ErrInvalidDate возвращается, когда дату события не удалось разобрать
	ErrInvalidDate = errors.New("ical.parser: invalid event date")

	// ErrMissingSummary возвращается, когда у события нет SUMMARY (имя гостя)
	ErrMissingSummary = errors.New("ical.parser: event has no summary")
)
