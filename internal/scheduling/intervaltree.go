package scheduling

import (
	"sort"
	"time"
)

// interval is a half-open [start, end) span owned by a booking
type interval struct {
	bookingID int64
	start     time.Time
	end       time.Time
}

func (i interval) overlaps(start, end time.Time) bool {
	return i.start.Before(end) && start.Before(i.end)
}

// intervalTree is a static augmented interval tree.
//
// Intervals are kept sorted by start in a slice that is read as an implicit balanced BST:
// the root of [lo, hi) is (lo+hi)/2. maxEnd[m] holds the largest end in the subtree rooted at m,
// which lets a query skip subtrees that finish before the probe begins.
type intervalTree struct {
	items  []interval
	maxEnd []time.Time
}

func newIntervalTree(items []interval) *intervalTree {
	sorted := make([]interval, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].start.Equal(sorted[j].start) {
			return sorted[i].start.Before(sorted[j].start)
		}
		if !sorted[i].end.Equal(sorted[j].end) {
			return sorted[i].end.Before(sorted[j].end)
		}
		return sorted[i].bookingID < sorted[j].bookingID
	})

	t := &intervalTree{
		items:  sorted,
		maxEnd: make([]time.Time, len(sorted)),
	}
	t.build(0, len(sorted))
	return t
}

func (t *intervalTree) build(lo, hi int) time.Time {
	if lo >= hi {
		return time.Time{}
	}
	mid := (lo + hi) / 2
	maxEnd := t.items[mid].end
	if lo < mid {
		if left := t.build(lo, mid); left.After(maxEnd) {
			maxEnd = left
		}
	}
	if mid+1 < hi {
		if right := t.build(mid+1, hi); right.After(maxEnd) {
			maxEnd = right
		}
	}
	t.maxEnd[mid] = maxEnd
	return maxEnd
}

// Len returns the number of stored intervals
func (t *intervalTree) Len() int {
	return len(t.items)
}

// Overlapping returns every stored interval intersecting [start, end), ordered by start
func (t *intervalTree) Overlapping(start, end time.Time) []interval {
	var result []interval
	t.query(0, len(t.items), start, end, &result)
	return result
}

func (t *intervalTree) query(lo, hi int, start, end time.Time, result *[]interval) {
	if lo >= hi {
		return
	}
	mid := (lo + hi) / 2
	// Всё поддерево заканчивается до начала запроса
	if !t.maxEnd[mid].After(start) {
		return
	}

	t.query(lo, mid, start, end, result)

	item := t.items[mid]
	// Правее только интервалы, начинающиеся не раньше item.start
	if !item.start.Before(end) {
		return
	}
	if item.overlaps(start, end) {
		*result = append(*result, item)
	}

	t.query(mid+1, hi, start, end, result)
}
