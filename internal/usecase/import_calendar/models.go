package import_calendar

import (
	"io"
	"time"
)

// Request модель запроса на импорт календаря
type Request struct {
	OwnerID  int64     // ID владельца (X-User-ID)
	Calendar io.Reader // Содержимое ICS файла
}

// Response модель ответа с импортированными бронированиями
type Response struct {
	ApartmentID   int64
	ApartmentName string
	Bookings      []ImportedBooking
	Changed       int // Сколько дат уборки изменилось
}

// ImportedBooking созданное бронирование с назначенной датой уборки
type ImportedBooking struct {
	ID           int64
	GuestName    string
	CheckIn      time.Time
	CheckOut     time.Time
	CleaningDate *time.Time
}
