package get_cleaning_schedule

import (
	getCleaningSchedule "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/get_cleaning_schedule"
)

// ScheduleResponse HTTP response model
type ScheduleResponse struct {
	Year       int         `json:"year"`
	Month      int         `json:"month"`
	Apartments []Apartment `json:"apartments"`
	Days       []Day       `json:"days"`
}

// Apartment столбец графика
type Apartment struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Day строка графика, statuses в порядке apartments
type Day struct {
	Date     string   `json:"date"`
	Statuses []string `json:"statuses"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCleaningSchedule.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		Year:       resp.Year,
		Month:      int(resp.Month),
		Apartments: make([]Apartment, 0, len(resp.Apartments)),
		Days:       make([]Day, 0, len(resp.Days)),
	}

	for _, a := range resp.Apartments {
		out.Apartments = append(out.Apartments, Apartment{ID: a.ID, Name: a.Name})
	}

	for _, d := range resp.Days {
		statuses := make([]string, 0, len(d.Statuses))
		for _, s := range d.Statuses {
			statuses = append(statuses, string(s))
		}
		out.Days = append(out.Days, Day{Date: d.Date, Statuses: statuses})
	}

	return out
}
