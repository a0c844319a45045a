package scheduling

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/ptr"
)

func window(id int64, start time.Time, end *time.Time) domain.CleaningWindow {
	return domain.CleaningWindow{BookingID: id, ApartmentID: id, Start: start, End: end}
}

var everything = domain.DateRange{From: at(-1000, 0), To: at(1000, 0)}

func TestDetectOverlaps_NoWindows(t *testing.T) {
	assert.Empty(t, DetectOverlaps(nil, everything.From, everything.To))
}

func TestDetectOverlaps_DisjointWindows(t *testing.T) {
	windows := map[int64]domain.CleaningWindow{
		1: window(1, at(1, 0), ptr.Ptr(at(2, 0))),
		2: window(2, at(2, 0), ptr.Ptr(at(3, 0))),
	}

	assert.Empty(t, DetectOverlaps(windows, everything.From, everything.To))
}

func TestDetectOverlaps_CommonSpan(t *testing.T) {
	windows := map[int64]domain.CleaningWindow{
		1: window(1, at(1, 0), ptr.Ptr(at(5, 0))),
		2: window(2, at(2, 0), ptr.Ptr(at(6, 0))),
		3: window(3, at(3, 0), nil),
	}

	groups := DetectOverlaps(windows, everything.From, everything.To)

	require.Len(t, groups, 1)
	assert.Equal(t, []int64{1, 2, 3}, groups[0].BookingIDs)
	assert.Equal(t, at(3, 0), groups[0].Start)
	assert.Equal(t, at(5, 0), groups[0].End)
}

func TestDetectOverlaps_OpenEndedPair(t *testing.T) {
	windows := map[int64]domain.CleaningWindow{
		1: window(1, at(1, 0), nil),
		2: window(2, at(4, 0), nil),
	}

	groups := DetectOverlaps(windows, everything.From, everything.To)

	require.Len(t, groups, 1)
	assert.Equal(t, []int64{1, 2}, groups[0].BookingIDs)
	assert.Equal(t, at(4, 0), groups[0].Start)
	assert.Equal(t, domain.OpenEnded, groups[0].End)
}

func TestDetectOverlaps_ChainWithoutCommonSpan(t *testing.T) {
	// 2 перекрывает 1 и 3, но у всех троих общего отрезка нет
	windows := map[int64]domain.CleaningWindow{
		1: window(1, at(1, 0), ptr.Ptr(at(3, 0))),
		2: window(2, at(2, 0), ptr.Ptr(at(6, 0))),
		3: window(3, at(5, 0), ptr.Ptr(at(8, 0))),
	}

	groups := DetectOverlaps(windows, everything.From, everything.To)

	require.Len(t, groups, 2)
	assert.Equal(t, domain.OverlapGroup{BookingIDs: []int64{1, 2}, Start: at(2, 0), End: at(3, 0)}, groups[0])
	assert.Equal(t, domain.OverlapGroup{BookingIDs: []int64{2, 3}, Start: at(5, 0), End: at(6, 0)}, groups[1])
}

func TestDetectOverlaps_ZeroLengthWindowIgnored(t *testing.T) {
	windows := map[int64]domain.CleaningWindow{
		1: window(1, at(2, 0), ptr.Ptr(at(2, 0))),
		2: window(2, at(1, 0), ptr.Ptr(at(3, 0))),
	}

	assert.Empty(t, DetectOverlaps(windows, everything.From, everything.To))
}

func TestDetectOverlaps_RangeFilter(t *testing.T) {
	windows := map[int64]domain.CleaningWindow{
		1: window(1, at(1, 0), ptr.Ptr(at(5, 0))),
		2: window(2, at(2, 0), ptr.Ptr(at(6, 0))),
		3: window(3, at(50, 0), nil),
		4: window(4, at(51, 0), nil),
	}

	groups := DetectOverlaps(windows, at(0, 0), at(10, 0))

	require.Len(t, groups, 1)
	assert.Equal(t, []int64{1, 2}, groups[0].BookingIDs)
}

func TestDetectOverlaps_RangeBoundsInclusive(t *testing.T) {
	windows := map[int64]domain.CleaningWindow{
		1: window(1, at(10, 0), nil),
		2: window(2, at(10, 0), nil),
	}

	groups := DetectOverlaps(windows, at(0, 0), at(10, 0))
	assert.Len(t, groups, 1)

	// Окно [1, 5) с границей диапазона в 5 не пересекается
	windows = map[int64]domain.CleaningWindow{
		1: window(1, at(1, 0), ptr.Ptr(at(5, 0))),
		2: window(2, at(1, 0), ptr.Ptr(at(5, 0))),
	}
	assert.Empty(t, DetectOverlaps(windows, at(5, 0), at(9, 0)))
}

func TestDetectOverlaps_Properties(t *testing.T) {
	rnd := rand.New(rand.NewSource(2025))

	for round := 0; round < 40; round++ {
		bookings := randomBookings(rnd, 2+rnd.Intn(6), 1+rnd.Intn(12))
		windows := BuildWindows(bookings)

		groups := DetectOverlaps(windows, everything.From, everything.To)

		seen := make(map[string]bool)
		for _, g := range groups {
			require.GreaterOrEqual(t, len(g.BookingIDs), 2)
			assert.True(t, g.Start.Before(g.End), "group %v has empty span", g.BookingIDs)

			// Отрезок группы совпадает с пересечением окон участников
			var members []interval
			for _, id := range g.BookingIDs {
				w := windows[id]
				members = append(members, interval{bookingID: id, start: w.Start, end: w.EffectiveEnd()})
			}
			start, end := intersection(members)
			assert.True(t, start.Equal(g.Start))
			assert.True(t, end.Equal(g.End))

			key := groupKey(g.BookingIDs, g.Start, g.End)
			assert.False(t, seen[key], "duplicate group %v", g.BookingIDs)
			seen[key] = true
		}

		// Любая пара пересекающихся непустых окон попадает хотя бы в одну группу
		for id1, w1 := range windows {
			for id2, w2 := range windows {
				if id1 >= id2 {
					continue
				}
				if !w1.Start.Before(w1.EffectiveEnd()) || !w2.Start.Before(w2.EffectiveEnd()) {
					continue
				}
				if !w1.Start.Before(w2.EffectiveEnd()) || !w2.Start.Before(w1.EffectiveEnd()) {
					continue
				}

				found := false
				for _, g := range groups {
					if g.Contains(id1) && g.Contains(id2) {
						found = true
						break
					}
				}
				assert.True(t, found, "windows %d and %d overlap but share no group", id1, id2)
			}
		}
	}
}

func TestDetectOverlaps_Deterministic(t *testing.T) {
	rnd := rand.New(rand.NewSource(11))
	windows := BuildWindows(randomBookings(rnd, 6, 10))

	first := DetectOverlaps(windows, everything.From, everything.To)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, DetectOverlaps(windows, everything.From, everything.To))
	}
}
