package cleaningnotifier

import "time"

// EventTypeCleaningDateChanged тип события об изменении даты уборки
const EventTypeCleaningDateChanged = "cleaning.date_changed"

// CleaningDateChanged событие об изменении даты уборки бронирования
type CleaningDateChanged struct {
	EventID      string     `json:"event_id"`
	EventType    string     `json:"event_type"`
	OwnerID      int64      `json:"owner_id"`
	BookingID    int64      `json:"booking_id"`
	CleaningDate *time.Time `json:"cleaning_date"`
	OccurredAt   time.Time  `json:"occurred_at"`
}
