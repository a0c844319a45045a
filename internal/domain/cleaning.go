package domain

import "time"

// CleaningWindow is the span between a booking's check-out and the next check-in
// of the same apartment. End == nil means the window is open-ended
type CleaningWindow struct {
	BookingID   int64
	ApartmentID int64
	Start       time.Time
	End         *time.Time
}

// IsOpenEnded returns true if no later booking bounds the window
func (w CleaningWindow) IsOpenEnded() bool {
	return w.End == nil
}

// EffectiveEnd returns the window end, or the OpenEnded sentinel for open-ended windows
func (w CleaningWindow) EffectiveEnd() time.Time {
	if w.End == nil {
		return OpenEnded
	}
	return *w.End
}

// OverlapGroup is a set of at least two cleaning windows that share the sub-interval [Start, End)
// Groups are value data: two groups with equal (BookingIDs, Start, End) are the same group
type OverlapGroup struct {
	BookingIDs []int64 // sorted ascending
	Start      time.Time
	End        time.Time
}

// Contains returns true if the booking participates in the group
func (g OverlapGroup) Contains(bookingID int64) bool {
	for _, id := range g.BookingIDs {
		if id == bookingID {
			return true
		}
	}
	return false
}

// CleaningAssignment is the resolved cleaning date of a booking
type CleaningAssignment struct {
	BookingID    int64
	CleaningDate *time.Time
}

// AssignmentChange is a cleaning date that differs from the stored one and must be written
type AssignmentChange struct {
	BookingID    int64
	CleaningDate *time.Time
}

// CleaningSchedule is the stored cleaning record of a booking
type CleaningSchedule struct {
	BookingID    int64
	WindowStart  time.Time
	WindowEnd    *time.Time
	CleaningDate *time.Time
	UpdatedAt    time.Time
}
