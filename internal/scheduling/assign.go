package scheduling

import (
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/ptr"
)

// AssignDates resolves one cleaning date per window.
//
// A booking outside every overlap group is cleaned at its window end, or at its window start
// when the window is open-ended. A booking inside one or more groups is cleaned at the earliest
// group start. A group span lies inside every member window, so that start never passes the
// member's own window end.
func AssignDates(windows map[int64]domain.CleaningWindow, overlaps []domain.OverlapGroup) map[int64]domain.CleaningAssignment {
	earliest := make(map[int64]time.Time)
	for _, group := range overlaps {
		for _, id := range group.BookingIDs {
			if current, ok := earliest[id]; !ok || group.Start.Before(current) {
				earliest[id] = group.Start
			}
		}
	}

	assignments := make(map[int64]domain.CleaningAssignment, len(windows))
	for id, w := range windows {
		var date time.Time
		switch start, ok := earliest[id]; {
		case ok:
			date = start
		case w.End != nil:
			date = *w.End
		default:
			date = w.Start
		}

		assignments[id] = domain.CleaningAssignment{
			BookingID:    id,
			CleaningDate: ptr.Ptr(date),
		}
	}

	return assignments
}
