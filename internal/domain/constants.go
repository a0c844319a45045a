package domain

import "time"

// OpenEnded is the reserved end of an open-ended cleaning window: the maximum
// representable time.Time. Real booking data never produces it and it is never persisted
// (open-ended windows are stored with window_end = NULL)
var OpenEnded = time.Unix(1<<63-62135596801, 999999999).UTC()

// Default scheduling values
const (
	DefaultPaddingDays  = 30 // Окно пересчёта: [min(check_in) - 30d, max(check_out) + 30d]
	DefaultCheckInHour  = 15 // Заезд по умолчанию в 15:00
	DefaultCheckOutHour = 11 // Выезд по умолчанию в 11:00
)

// Business validation constants
const (
	MaxApartmentNameLength     = 255
	MaxApartmentLocationLength = 500
	MaxApartmentSizeLength     = 255
	MaxGuestNameLength         = 100
)

// Time format constants
const (
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	DateTimeFormat = time.RFC3339
)

// ScheduleStatus is the state of an apartment on a given day of the cleaning schedule
type ScheduleStatus string

const (
	ScheduleEmpty          ScheduleStatus = "Empty"
	ScheduleEnter          ScheduleStatus = "Enter"
	ScheduleOccupied       ScheduleStatus = "Occupied"
	ScheduleExit           ScheduleStatus = "Exit"
	ScheduleExitCleaning   ScheduleStatus = "Exit/Cleaning"
	ScheduleCleaningNeeded ScheduleStatus = "Cleaning Needed"
)

// CleaningNeededSuffix is appended to the apartment name on calendar days with a cleaning
const CleaningNeededSuffix = " *Cleaning Needed*"
