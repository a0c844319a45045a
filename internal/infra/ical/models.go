package ical

import "time"

// Calendar разобранный календарь бронирований одной квартиры
type Calendar struct {
	ProductID string // название квартиры
	Events    []Event
}

// Event бронирование из календаря
type Event struct {
	UID       string
	GuestName string
	CheckIn   time.Time
	CheckOut  time.Time
}
