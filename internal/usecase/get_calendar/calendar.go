package get_calendar

import (
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// monthWeeks раскладывает дни месяца по неделям с понедельника.
// Дни соседних месяцев заполняются нулями
func monthWeeks(year int, month time.Month) [][]int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	// time.Sunday == 0, понедельник должен стать первым столбцом
	offset := (int(first.Weekday()) + 6) % 7

	weeks := make([][]int, 0, 6)
	week := make([]int, 7)
	column := offset
	for day := 1; day <= daysInMonth; day++ {
		week[column] = day
		column++
		if column == 7 {
			weeks = append(weeks, week)
			week = make([]int, 7)
			column = 0
		}
	}
	if column > 0 {
		weeks = append(weeks, week)
	}

	return weeks
}

// reservedDays собирает по дням месяца занятые квартиры: от дня заезда до дня выезда включительно,
// а в день уборки добавляет отметку уборки
func reservedDays(views []*domain.BookingView, policy domain.StayPolicy, month domain.DateRange) map[string][]string {
	reserved := make(map[string][]string)

	for _, view := range views {
		checkOut := policy.Day(view.CheckOut)
		for day := policy.Day(view.CheckIn); !day.After(checkOut); day = day.AddDate(0, 0, 1) {
			if !month.Contains(day) {
				continue
			}
			key := policy.DateKey(day)
			reserved[key] = append(reserved[key], view.ApartmentName)
		}

		if view.CleaningDate != nil && month.Contains(*view.CleaningDate) {
			key := policy.DateKey(*view.CleaningDate)
			reserved[key] = append(reserved[key], view.ApartmentName+domain.CleaningNeededSuffix)
		}
	}

	return reserved
}
