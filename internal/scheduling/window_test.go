package scheduling

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

func TestBuildWindows_SingleBookingIsOpenEnded(t *testing.T) {
	b := booking(1, 10, at(0, 15), at(4, 11))

	windows := BuildWindows([]domain.Booking{b})

	require.Len(t, windows, 1)
	w := windows[1]
	assert.Equal(t, b.CheckOut, w.Start)
	assert.Nil(t, w.End)
	assert.Equal(t, int64(10), w.ApartmentID)
}

func TestBuildWindows_NextBookingBoundsWindow(t *testing.T) {
	bookings := []domain.Booking{
		booking(3, 1, at(20, 15), at(25, 11)),
		booking(1, 1, at(0, 15), at(4, 11)),
		booking(2, 1, at(9, 15), at(12, 11)),
	}

	windows := BuildWindows(bookings)

	require.Len(t, windows, 3)
	require.NotNil(t, windows[1].End)
	assert.Equal(t, at(4, 11), windows[1].Start)
	assert.Equal(t, at(9, 15), *windows[1].End)
	require.NotNil(t, windows[2].End)
	assert.Equal(t, at(20, 15), *windows[2].End)
	assert.Nil(t, windows[3].End)
}

func TestBuildWindows_SameTimeTurnover(t *testing.T) {
	bookings := []domain.Booking{
		booking(1, 1, at(0, 15), at(4, 11)),
		booking(2, 1, at(4, 11), at(8, 11)),
	}

	windows := BuildWindows(bookings)

	require.NotNil(t, windows[1].End)
	assert.Equal(t, at(4, 11), *windows[1].End)
	assert.Equal(t, windows[1].Start, *windows[1].End)
}

func TestBuildWindows_ApartmentsAreIndependent(t *testing.T) {
	bookings := []domain.Booking{
		booking(1, 1, at(0, 15), at(4, 11)),
		booking(2, 2, at(5, 15), at(6, 11)),
	}

	windows := BuildWindows(bookings)

	assert.Nil(t, windows[1].End)
	assert.Nil(t, windows[2].End)
}

func TestBuildWindows_MatchesAdjacentPairs(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	bookings := randomBookings(rnd, 5, 20)

	windows := BuildWindows(bookings)
	require.Len(t, windows, len(bookings))

	for _, a := range bookings {
		w := windows[a.ID]
		assert.Equal(t, a.CheckOut, w.Start)

		// Ближайший заезд той же квартиры не раньше выезда a
		var next *domain.Booking
		for i := range bookings {
			b := bookings[i]
			if b.ApartmentID != a.ApartmentID || b.CheckIn.Before(a.CheckOut) {
				continue
			}
			if next == nil || b.CheckIn.Before(next.CheckIn) {
				next = &bookings[i]
			}
		}

		if next == nil {
			assert.Nil(t, w.End, "booking %d", a.ID)
			continue
		}
		require.NotNil(t, w.End, "booking %d", a.ID)
		assert.True(t, next.CheckIn.Equal(*w.End), "booking %d", a.ID)
	}
}
