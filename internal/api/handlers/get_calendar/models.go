package get_calendar

import (
	getCalendar "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Year  int     `json:"year"`
	Month int     `json:"month"`
	Weeks [][]Day `json:"weeks"`
}

// Day день календаря, day = 0 для дней соседних месяцев
type Day struct {
	Day        int      `json:"day"`
	Apartments []string `json:"apartments"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	out := &CalendarResponse{
		Year:  resp.Year,
		Month: int(resp.Month),
		Weeks: make([][]Day, 0, len(resp.Weeks)),
	}

	for _, week := range resp.Weeks {
		days := make([]Day, 0, len(week))
		for _, d := range week {
			apartments := d.Apartments
			if apartments == nil {
				apartments = []string{}
			}
			days = append(days, Day{Day: d.Day, Apartments: apartments})
		}
		out.Weeks = append(out.Weeks, days)
	}

	return out
}
