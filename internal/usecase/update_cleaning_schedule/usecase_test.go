package update_cleaning_schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	"github.com/m04kA/SMC-CleaningScheduler/internal/testutil/memstore"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/logger"
)

const ownerID = int64(42)

type passRecorder struct {
	calls   int
	changed int
	lastErr error
}

func (r *passRecorder) ObserveSchedulingPass(_ time.Duration, _, _, changed int, err error) {
	r.calls++
	r.changed += changed
	r.lastErr = err
}

type fixture struct {
	store    *memstore.Store
	cleaning *memstore.Cleaning
	notifier *memstore.Notifier
	metrics  *passRecorder
	uc       *UseCase
}

func newFixture() *fixture {
	store := memstore.New()
	f := &fixture{
		store:    store,
		cleaning: store.Cleaning(),
		notifier: memstore.NewNotifier(),
		metrics:  &passRecorder{},
	}
	f.uc = NewUseCase(store.Bookings(), f.cleaning, store.TxManager(), f.notifier, f.metrics, logger.NewNop(), 30)
	return f
}

func (f *fixture) apartment(t *testing.T, name string) int64 {
	a, err := f.store.Apartments().Create(context.Background(), &domain.Apartment{OwnerID: ownerID, Name: name})
	require.NoError(t, err)
	return a.ID
}

func (f *fixture) booking(t *testing.T, apartmentID int64, checkIn, checkOut time.Time) domain.Booking {
	b, err := f.store.Bookings().Create(context.Background(), &domain.Booking{
		ApartmentID: apartmentID,
		GuestName:   "guest",
		CheckIn:     checkIn,
		CheckOut:    checkOut,
	})
	require.NoError(t, err)
	return *b
}

func at(month time.Month, day, hour int) time.Time {
	return time.Date(2025, month, day, hour, 0, 0, 0, time.UTC)
}

func cleaningDate(t *testing.T, store *memstore.Store, bookingID int64) *time.Time {
	cs, ok := store.Schedule(bookingID)
	require.True(t, ok, "schedule of booking %d must exist", bookingID)
	return cs.CleaningDate
}

func TestExecute_ResolvesOverlapsAcrossApartments(t *testing.T) {
	f := newFixture()
	sea := f.apartment(t, "Sea")
	park := f.apartment(t, "Park")

	b1 := f.booking(t, sea, at(time.January, 1, 15), at(time.January, 5, 11))
	b2 := f.booking(t, sea, at(time.January, 10, 15), at(time.January, 12, 11))
	b3 := f.booking(t, park, at(time.January, 2, 15), at(time.January, 6, 11))

	result, err := f.uc.Execute(context.Background(), &InputData{OwnerID: ownerID, Bookings: []domain.Booking{b1, b2, b3}})
	require.NoError(t, err)

	require.Len(t, result.Windows, 3)
	assert.Equal(t, b1.ID, result.Windows[0].BookingID)
	assert.Len(t, result.Overlaps, 2)
	assert.Len(t, result.Changes, 3)

	assert.Equal(t, at(time.January, 6, 11), *cleaningDate(t, f.store, b1.ID))
	assert.Equal(t, at(time.January, 6, 11), *cleaningDate(t, f.store, b3.ID))
	assert.Equal(t, at(time.January, 12, 11), *cleaningDate(t, f.store, b2.ID))

	cs, _ := f.store.Schedule(b1.ID)
	assert.Equal(t, at(time.January, 5, 11), cs.WindowStart)
	require.NotNil(t, cs.WindowEnd)
	assert.Equal(t, at(time.January, 10, 15), *cs.WindowEnd)

	cs, _ = f.store.Schedule(b2.ID)
	assert.Nil(t, cs.WindowEnd, "last booking has an open-ended window")

	assert.Equal(t, 3, f.notifier.Count(ownerID))
	assert.Equal(t, 1, f.metrics.calls)
	assert.Equal(t, 3, f.metrics.changed)
}

func TestExecute_SecondPassChangesNothing(t *testing.T) {
	f := newFixture()
	sea := f.apartment(t, "Sea")
	b1 := f.booking(t, sea, at(time.March, 1, 15), at(time.March, 4, 11))
	b2 := f.booking(t, sea, at(time.March, 6, 15), at(time.March, 8, 11))

	input := &InputData{OwnerID: ownerID, Bookings: []domain.Booking{b1, b2}}
	_, err := f.uc.Execute(context.Background(), input)
	require.NoError(t, err)

	result, err := f.uc.Execute(context.Background(), input)
	require.NoError(t, err)
	assert.Empty(t, result.Changes)
	assert.Equal(t, 2, f.notifier.Count(ownerID))
}

func TestExecute_SuccessorOutsideRangeClosesWindow(t *testing.T) {
	f := newFixture()
	sea := f.apartment(t, "Sea")
	b1 := f.booking(t, sea, at(time.January, 1, 15), at(time.January, 5, 11))
	later := f.booking(t, sea, at(time.April, 1, 15), at(time.April, 3, 11))

	result, err := f.uc.Execute(context.Background(), &InputData{OwnerID: ownerID, Bookings: []domain.Booking{b1}})
	require.NoError(t, err)

	require.Len(t, result.Windows, 1)
	require.NotNil(t, result.Windows[0].End)
	assert.Equal(t, at(time.April, 1, 15), *result.Windows[0].End)
	assert.Equal(t, at(time.April, 1, 15), *cleaningDate(t, f.store, b1.ID))

	_, ok := f.store.Schedule(later.ID)
	assert.False(t, ok, "bookings outside the range are not written")
}

func TestExecute_OtherOwnersAreIgnored(t *testing.T) {
	f := newFixture()
	sea := f.apartment(t, "Sea")
	foreign, err := f.store.Apartments().Create(context.Background(), &domain.Apartment{OwnerID: 7, Name: "Foreign"})
	require.NoError(t, err)

	b1 := f.booking(t, sea, at(time.January, 1, 15), at(time.January, 5, 11))
	other := f.booking(t, foreign.ID, at(time.January, 2, 15), at(time.January, 6, 11))

	result, err := f.uc.Execute(context.Background(), &InputData{OwnerID: ownerID, Bookings: []domain.Booking{b1}})
	require.NoError(t, err)
	assert.Empty(t, result.Overlaps)

	_, ok := f.store.Schedule(other.ID)
	assert.False(t, ok)
}

func TestExecute_InconsistentBookingsRollBack(t *testing.T) {
	f := newFixture()
	sea := f.apartment(t, "Sea")
	b1 := f.booking(t, sea, at(time.January, 1, 15), at(time.January, 5, 11))
	b2 := f.booking(t, sea, at(time.January, 4, 15), at(time.January, 8, 11))

	_, err := f.uc.Execute(context.Background(), &InputData{OwnerID: ownerID, Bookings: []domain.Booking{b1, b2}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInconsistentBookings))

	_, ok := f.store.Schedule(b1.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, f.notifier.Count(ownerID))
	assert.Error(t, f.metrics.lastErr)
}

func TestExecute_WriteFailureRollsBackWindows(t *testing.T) {
	f := newFixture()
	sea := f.apartment(t, "Sea")
	b1 := f.booking(t, sea, at(time.January, 1, 15), at(time.January, 5, 11))
	f.cleaning.UpdateErr = errors.New("connection reset")

	_, err := f.uc.Execute(context.Background(), &InputData{OwnerID: ownerID, Bookings: []domain.Booking{b1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInternal))

	_, ok := f.store.Schedule(b1.ID)
	assert.False(t, ok)
}

func TestExecute_PublishFailureDoesNotFail(t *testing.T) {
	f := newFixture()
	sea := f.apartment(t, "Sea")
	b1 := f.booking(t, sea, at(time.January, 1, 15), at(time.January, 5, 11))
	f.notifier.Err = errors.New("broker unavailable")

	result, err := f.uc.Execute(context.Background(), &InputData{OwnerID: ownerID, Bookings: []domain.Booking{b1}})
	require.NoError(t, err)
	assert.Len(t, result.Changes, 1)
	assert.NotNil(t, cleaningDate(t, f.store, b1.ID))
}

func TestRecalculate_InvalidInput(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Recalculate(context.Background(), &InputData{OwnerID: ownerID})
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = f.uc.Recalculate(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestRecalculate_DeletedBookingReopensWindow(t *testing.T) {
	f := newFixture()
	sea := f.apartment(t, "Sea")
	b1 := f.booking(t, sea, at(time.January, 1, 15), at(time.January, 5, 11))
	b2 := f.booking(t, sea, at(time.January, 10, 15), at(time.January, 12, 11))

	_, err := f.uc.Execute(context.Background(), &InputData{OwnerID: ownerID, Bookings: []domain.Booking{b1, b2}})
	require.NoError(t, err)
	assert.Equal(t, at(time.January, 10, 15), *cleaningDate(t, f.store, b1.ID))

	require.NoError(t, f.store.Bookings().Delete(context.Background(), b2.ID))

	result, err := f.uc.Recalculate(context.Background(), &InputData{OwnerID: ownerID, Bookings: []domain.Booking{b2}})
	require.NoError(t, err)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, at(time.January, 5, 11), *result.Changes[0].CleaningDate)

	cs, _ := f.store.Schedule(b1.ID)
	assert.Nil(t, cs.WindowEnd)
}
