package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	OwnerID     int64     // ID владельца (X-User-ID)
	ApartmentID int64     // ID квартиры
	GuestName   string    // Имя гостя
	CheckIn     time.Time // День заезда: берутся год, месяц и число, время задают настройки заезда
	CheckOut    time.Time // День выезда
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID           int64      // ID созданного бронирования
	ApartmentID  int64      // ID квартиры
	GuestName    string     // Имя гостя
	CheckIn      time.Time  // Момент заезда
	CheckOut     time.Time  // Момент выезда
	CleaningDate *time.Time // Назначенная дата уборки
	CreatedAt    time.Time  // Время создания
}
