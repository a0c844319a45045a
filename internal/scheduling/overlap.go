package scheduling

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// DetectOverlaps finds groups of cleaning windows that share a common span.
//
// Only non-empty windows whose [Start, EffectiveEnd) intersects [rangeStart, rangeEnd] take part.
// For every window the set of windows overlapping it is collected from an interval tree; when the
// set shares a common sub-interval it becomes one group. When the set has no common sub-interval
// (a long window overlapping two disjoint ones), each overlapping pair is emitted instead, so every
// pairwise overlap is still reported with a non-empty shared span.
// The result holds no duplicates and is ordered by Start, then by booking ids.
func DetectOverlaps(windows map[int64]domain.CleaningWindow, rangeStart, rangeEnd time.Time) []domain.OverlapGroup {
	items := make([]interval, 0, len(windows))
	for id, w := range windows {
		end := w.EffectiveEnd()
		// Нулевое окно (заезд в момент выезда) времени на уборку не даёт
		if !w.Start.Before(end) {
			continue
		}
		if w.Start.After(rangeEnd) || !rangeStart.Before(end) {
			continue
		}
		items = append(items, interval{bookingID: id, start: w.Start, end: end})
	}

	tree := newIntervalTree(items)
	set := newGroupSet()

	for _, item := range tree.items {
		members := tree.Overlapping(item.start, item.end)
		if len(members) < 2 {
			continue
		}

		start, end := intersection(members)
		if start.Before(end) {
			set.add(members, start, end)
			continue
		}

		for _, other := range members {
			if other.bookingID == item.bookingID {
				continue
			}
			pair := []interval{item, other}
			pairStart, pairEnd := intersection(pair)
			set.add(pair, pairStart, pairEnd)
		}
	}

	return set.sorted()
}

// intersection returns max(start) and min(end) of the intervals
func intersection(members []interval) (time.Time, time.Time) {
	start, end := members[0].start, members[0].end
	for _, m := range members[1:] {
		if m.start.After(start) {
			start = m.start
		}
		if m.end.Before(end) {
			end = m.end
		}
	}
	return start, end
}

// groupSet de-duplicates overlap groups by content
type groupSet struct {
	seen   map[string]struct{}
	groups []domain.OverlapGroup
}

func newGroupSet() *groupSet {
	return &groupSet{seen: make(map[string]struct{})}
}

func (s *groupSet) add(members []interval, start, end time.Time) {
	ids := make([]int64, len(members))
	for i, m := range members {
		ids[i] = m.bookingID
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	key := groupKey(ids, start, end)
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.groups = append(s.groups, domain.OverlapGroup{
		BookingIDs: ids,
		Start:      start,
		End:        end,
	})
}

func (s *groupSet) sorted() []domain.OverlapGroup {
	sort.Slice(s.groups, func(i, j int) bool {
		a, b := s.groups[i], s.groups[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start)
		}
		if !a.End.Equal(b.End) {
			return a.End.Before(b.End)
		}
		return lessIDs(a.BookingIDs, b.BookingIDs)
	})
	return s.groups
}

// groupKey encodes the group identity. Seconds and nanoseconds are used separately
// because the OpenEnded sentinel does not fit into UnixNano
func groupKey(ids []int64, start, end time.Time) string {
	var b strings.Builder
	for _, id := range ids {
		b.WriteString(strconv.FormatInt(id, 10))
		b.WriteByte(',')
	}
	for _, t := range []time.Time{start, end} {
		b.WriteByte('|')
		b.WriteString(strconv.FormatInt(t.Unix(), 10))
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(t.Nanosecond()))
	}
	return b.String()
}

func lessIDs(a, b []int64) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
