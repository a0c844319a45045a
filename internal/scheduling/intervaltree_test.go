package scheduling

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

func ids(items []interval) []int64 {
	result := make([]int64, len(items))
	for i, it := range items {
		result[i] = it.bookingID
	}
	return result
}

func TestIntervalTree_Empty(t *testing.T) {
	tree := newIntervalTree(nil)

	assert.Equal(t, 0, tree.Len())
	assert.Empty(t, tree.Overlapping(at(0, 0), at(10, 0)))
}

func TestIntervalTree_HalfOpenBounds(t *testing.T) {
	tree := newIntervalTree([]interval{
		{bookingID: 1, start: at(1, 0), end: at(3, 0)},
		{bookingID: 2, start: at(3, 0), end: at(5, 0)},
		{bookingID: 3, start: at(2, 0), end: domain.OpenEnded},
	})

	assert.ElementsMatch(t, []int64{1, 3}, ids(tree.Overlapping(at(1, 0), at(3, 0))))
	assert.ElementsMatch(t, []int64{2, 3}, ids(tree.Overlapping(at(3, 0), at(4, 0))))
	assert.ElementsMatch(t, []int64{1}, ids(tree.Overlapping(at(0, 0), at(2, 0))))
	assert.Empty(t, tree.Overlapping(at(0, 0), at(1, 0)))
}

func TestIntervalTree_MatchesBruteForce(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		n := 1 + rnd.Intn(60)
		items := make([]interval, n)
		for i := range items {
			start := at(rnd.Intn(60), rnd.Intn(24))
			end := start.Add(time.Duration(1+rnd.Intn(240)) * time.Hour)
			if rnd.Intn(10) == 0 {
				end = domain.OpenEnded
			}
			items[i] = interval{bookingID: int64(i + 1), start: start, end: end}
		}
		tree := newIntervalTree(items)

		for q := 0; q < 30; q++ {
			qs := at(rnd.Intn(70), rnd.Intn(24))
			qe := qs.Add(time.Duration(1+rnd.Intn(200)) * time.Hour)

			var expected []int64
			for _, it := range items {
				if it.overlaps(qs, qe) {
					expected = append(expected, it.bookingID)
				}
			}

			got := tree.Overlapping(qs, qe)
			if len(expected) == 0 {
				assert.Empty(t, got)
				continue
			}
			assert.ElementsMatch(t, expected, ids(got))
		}
	}
}

func TestIntervalTree_ResultOrderedByStart(t *testing.T) {
	tree := newIntervalTree([]interval{
		{bookingID: 1, start: at(5, 0), end: at(9, 0)},
		{bookingID: 2, start: at(1, 0), end: at(9, 0)},
		{bookingID: 3, start: at(3, 0), end: at(9, 0)},
	})

	assert.Equal(t, []int64{2, 3, 1}, ids(tree.Overlapping(at(6, 0), at(7, 0))))
}
