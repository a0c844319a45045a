package get_calendar

import "time"

// Request модель запроса календаря за месяц
type Request struct {
	OwnerID int64
	Year    int
	Month   time.Month
}

// Response календарь месяца по неделям, неделя начинается с понедельника
type Response struct {
	Year  int
	Month time.Month
	Weeks [][]Day
}

// Day ячейка календаря. Day == 0 для дней соседних месяцев
type Day struct {
	Day        int
	Apartments []string // Занятые квартиры и отметки "<название> *Cleaning Needed*"
}
