package import_calendar

import (
	"time"

	importCalendar "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/import_calendar"
)

// ImportResponse HTTP response model
type ImportResponse struct {
	ApartmentID   int64             `json:"apartmentId"`
	ApartmentName string            `json:"apartmentName"`
	Imported      int               `json:"imported"`
	Changed       int               `json:"cleaningDatesChanged"`
	Bookings      []BookingResponse `json:"bookings"`
}

// BookingResponse импортированное бронирование
type BookingResponse struct {
	ID           int64   `json:"id"`
	GuestName    string  `json:"guestName"`
	CheckIn      string  `json:"checkIn"`
	CheckOut     string  `json:"checkOut"`
	CleaningDate *string `json:"cleaningDate"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *importCalendar.Response) *ImportResponse {
	out := &ImportResponse{
		ApartmentID:   resp.ApartmentID,
		ApartmentName: resp.ApartmentName,
		Imported:      len(resp.Bookings),
		Changed:       resp.Changed,
		Bookings:      make([]BookingResponse, 0, len(resp.Bookings)),
	}

	for _, b := range resp.Bookings {
		item := BookingResponse{
			ID:        b.ID,
			GuestName: b.GuestName,
			CheckIn:   b.CheckIn.Format(time.RFC3339),
			CheckOut:  b.CheckOut.Format(time.RFC3339),
		}
		if b.CleaningDate != nil {
			cleaning := b.CleaningDate.Format(time.RFC3339)
			item.CleaningDate = &cleaning
		}
		out.Bookings = append(out.Bookings, item)
	}

	return out
}
