package get_cleaning_schedule

import (
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// Request модель запроса графика уборок за месяц
type Request struct {
	OwnerID int64
	Year    int
	Month   time.Month
}

// Response график уборок: строка на каждый день месяца, столбец на каждую квартиру
type Response struct {
	Year       int
	Month      time.Month
	Apartments []ApartmentColumn
	Days       []Day
}

// ApartmentColumn квартира графика, порядок совпадает с порядком статусов в Day
type ApartmentColumn struct {
	ID   int64
	Name string
}

// Day статусы квартир на один день
type Day struct {
	Date     string // YYYY-MM-DD
	Statuses []domain.ScheduleStatus
}
