package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// Reconcile returns the assignments whose date differs from the stored one.
// A missing stored date equals a nil proposed date. Changes are ordered by booking id
func Reconcile(current map[int64]*time.Time, proposed map[int64]domain.CleaningAssignment) []domain.AssignmentChange {
	changes := make([]domain.AssignmentChange, 0)
	for id, assignment := range proposed {
		if sameDate(current[id], assignment.CleaningDate) {
			continue
		}
		changes = append(changes, domain.AssignmentChange{
			BookingID:    id,
			CleaningDate: assignment.CleaningDate,
		})
	}

	sort.Slice(changes, func(i, j int) bool { return changes[i].BookingID < changes[j].BookingID })
	return changes
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}
