package scheduling

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// PassResult is the outcome of one scheduling pass
type PassResult struct {
	Range       domain.DateRange
	Windows     map[int64]domain.CleaningWindow
	Overlaps    []domain.OverlapGroup
	Assignments map[int64]domain.CleaningAssignment
	Changes     []domain.AssignmentChange
}

// PassRange returns [min(check-in) - padding, max(check-out) + padding] over the new bookings
func PassRange(newBookings []domain.Booking, paddingDays int) (domain.DateRange, error) {
	if len(newBookings) == 0 {
		return domain.DateRange{}, ErrNoBookings
	}

	from, to := newBookings[0].CheckIn, newBookings[0].CheckOut
	for _, b := range newBookings[1:] {
		if b.CheckIn.Before(from) {
			from = b.CheckIn
		}
		if b.CheckOut.After(to) {
			to = b.CheckOut
		}
	}

	return domain.DateRange{
		From: from.AddDate(0, 0, -paddingDays),
		To:   to.AddDate(0, 0, paddingDays),
	}, nil
}

// ValidateBookings checks that every booking has check-in before check-out and that
// bookings of one apartment do not overlap
func ValidateBookings(bookings []domain.Booking) error {
	byApartment := make(map[int64][]domain.Booking)
	for _, b := range bookings {
		if !b.HasValidRange() {
			return fmt.Errorf("%w: booking id=%d", ErrInvalidBookingRange, b.ID)
		}
		byApartment[b.ApartmentID] = append(byApartment[b.ApartmentID], b)
	}

	for apartmentID, group := range byApartment {
		sort.Slice(group, func(i, j int) bool { return group[i].CheckIn.Before(group[j].CheckIn) })

		last := group[0]
		for _, b := range group[1:] {
			if b.CheckIn.Before(last.CheckOut) {
				return fmt.Errorf("%w: apartment id=%d, bookings %d and %d",
					ErrOverlappingBookings, apartmentID, last.ID, b.ID)
			}
			if b.CheckOut.After(last.CheckOut) {
				last = b
			}
		}
	}

	return nil
}

// RunPass recomputes windows, overlaps and cleaning dates for the bookings and
// diffs the dates against the stored ones
func RunPass(bookings []domain.Booking, dateRange domain.DateRange, current map[int64]*time.Time) (*PassResult, error) {
	if err := ValidateBookings(bookings); err != nil {
		return nil, err
	}

	windows := BuildWindows(bookings)
	overlaps := DetectOverlaps(windows, dateRange.From, dateRange.To)
	assignments := AssignDates(windows, overlaps)
	changes := Reconcile(current, assignments)

	return &PassResult{
		Range:       dateRange,
		Windows:     windows,
		Overlaps:    overlaps,
		Assignments: assignments,
		Changes:     changes,
	}, nil
}

// CurrentDates converts assignments into the stored-date form accepted by Reconcile
func CurrentDates(assignments map[int64]domain.CleaningAssignment) map[int64]*time.Time {
	current := make(map[int64]*time.Time, len(assignments))
	for id, a := range assignments {
		current[id] = a.CleaningDate
	}
	return current
}
