package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// BuildWindows computes the cleaning window of every booking.
//
// Bookings are grouped by apartment and walked in check-out order. The window of a booking
// starts at its check-out and ends at the earliest check-in of the same apartment that is not
// before that check-out. A booking with no such successor gets an open-ended window.
func BuildWindows(bookings []domain.Booking) map[int64]domain.CleaningWindow {
	byApartment := make(map[int64][]domain.Booking)
	for _, b := range bookings {
		byApartment[b.ApartmentID] = append(byApartment[b.ApartmentID], b)
	}

	windows := make(map[int64]domain.CleaningWindow, len(bookings))
	for apartmentID, group := range byApartment {
		sort.Slice(group, func(i, j int) bool {
			if !group[i].CheckOut.Equal(group[j].CheckOut) {
				return group[i].CheckOut.Before(group[j].CheckOut)
			}
			if !group[i].CheckIn.Equal(group[j].CheckIn) {
				return group[i].CheckIn.Before(group[j].CheckIn)
			}
			return group[i].ID < group[j].ID
		})

		checkIns := make([]time.Time, len(group))
		for i, b := range group {
			checkIns[i] = b.CheckIn
		}
		sort.Slice(checkIns, func(i, j int) bool { return checkIns[i].Before(checkIns[j]) })

		// Выезды идут по возрастанию, поэтому указатель на заезды только двигается вперёд
		next := 0
		for _, b := range group {
			for next < len(checkIns) && checkIns[next].Before(b.CheckOut) {
				next++
			}

			window := domain.CleaningWindow{
				BookingID:   b.ID,
				ApartmentID: apartmentID,
				Start:       b.CheckOut,
			}
			if next < len(checkIns) {
				end := checkIns[next]
				window.End = &end
			}
			windows[b.ID] = window
		}
	}

	return windows
}
