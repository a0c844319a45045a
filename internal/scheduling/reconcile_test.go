package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/ptr"
)

func TestReconcile(t *testing.T) {
	proposed := map[int64]domain.CleaningAssignment{
		1: {BookingID: 1, CleaningDate: ptr.Ptr(at(1, 11))},
		2: {BookingID: 2, CleaningDate: ptr.Ptr(at(2, 11))},
		3: {BookingID: 3, CleaningDate: ptr.Ptr(at(3, 11))},
		4: {BookingID: 4, CleaningDate: nil},
		5: {BookingID: 5, CleaningDate: nil},
	}

	tests := []struct {
		name     string
		current  map[int64]*time.Time
		expected []int64
	}{
		{
			name: "nothing changed",
			current: map[int64]*time.Time{
				1: ptr.Ptr(at(1, 11)),
				2: ptr.Ptr(at(2, 11)),
				3: ptr.Ptr(at(3, 11)),
				4: nil,
			},
			expected: []int64{},
		},
		{
			name: "same instant in another location",
			current: map[int64]*time.Time{
				1: ptr.Ptr(at(1, 11).In(time.FixedZone("MSK", 3*60*60))),
				2: ptr.Ptr(at(2, 11)),
				3: ptr.Ptr(at(3, 11)),
			},
			expected: []int64{},
		},
		{
			name: "changed and missing",
			current: map[int64]*time.Time{
				1: ptr.Ptr(at(1, 12)),
				3: ptr.Ptr(at(3, 11)),
				4: ptr.Ptr(at(4, 11)),
			},
			expected: []int64{1, 2, 4},
		},
		{
			name:     "no stored dates",
			current:  nil,
			expected: []int64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			changes := Reconcile(tt.current, proposed)

			got := make([]int64, 0, len(changes))
			for _, c := range changes {
				got = append(got, c.BookingID)
				assert.Equal(t, proposed[c.BookingID].CleaningDate, c.CleaningDate)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}
