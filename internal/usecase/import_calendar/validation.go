package import_calendar

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	"github.com/m04kA/SMC-CleaningScheduler/internal/infra/ical"
)

// validateEvents проверяет события календаря: имя гостя, даты и пересечения внутри файла.
// Возвращает события, отсортированные по заезду
func validateEvents(events []ical.Event, now time.Time, policy domain.StayPolicy) ([]ical.Event, error) {
	sorted := make([]ical.Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CheckIn.Before(sorted[j].CheckIn) })

	for i := range sorted {
		event := &sorted[i]
		event.GuestName = strings.TrimSpace(event.GuestName)

		if len(event.GuestName) > domain.MaxGuestNameLength {
			return nil, fmt.Errorf("%w: guest name %q is longer than %d characters",
				ErrInvalidInput, event.GuestName, domain.MaxGuestNameLength)
		}

		if !event.CheckIn.Before(event.CheckOut) {
			return nil, fmt.Errorf("%w: event %q: check-out %s must be after check-in %s",
				ErrInvalidDate, event.GuestName, policy.DateKey(event.CheckOut), policy.DateKey(event.CheckIn))
		}

		if policy.Day(event.CheckIn).Before(policy.Day(now)) {
			return nil, fmt.Errorf("%w: event %q: check-in %s is in the past",
				ErrInvalidDate, event.GuestName, policy.DateKey(event.CheckIn))
		}

		if i > 0 && event.CheckIn.Before(sorted[i-1].CheckOut) {
			return nil, fmt.Errorf("%w: events %q and %q overlap",
				ErrBookingOverlap, sorted[i-1].GuestName, event.GuestName)
		}
	}

	return sorted, nil
}
