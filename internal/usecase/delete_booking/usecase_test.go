package delete_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	"github.com/m04kA/SMC-CleaningScheduler/internal/testutil/memstore"
	"github.com/m04kA/SMC-CleaningScheduler/internal/usecase/update_cleaning_schedule"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/logger"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/metrics"
)

const ownerID = int64(42)

func at(day, hour int) time.Time {
	return time.Date(2025, 1, day, hour, 0, 0, 0, time.UTC)
}

func setup(t *testing.T) (*memstore.Store, *memstore.Notifier, *update_cleaning_schedule.UseCase, *UseCase, []domain.Booking) {
	store := memstore.New()
	notifier := memstore.NewNotifier()
	log := logger.NewNop()
	tx := store.TxManager()

	scheduler := update_cleaning_schedule.NewUseCase(
		store.Bookings(), store.Cleaning(), tx, notifier, (*metrics.Metrics)(nil), log, domain.DefaultPaddingDays,
	)
	uc := NewUseCase(store.Bookings(), store.Apartments(), scheduler, tx, log)

	sea, err := store.Apartments().Create(context.Background(), &domain.Apartment{OwnerID: ownerID, Name: "Sea"})
	require.NoError(t, err)

	var bookings []domain.Booking
	for _, stay := range [][2]time.Time{{at(1, 15), at(5, 11)}, {at(8, 15), at(10, 11)}} {
		b, err := store.Bookings().Create(context.Background(), &domain.Booking{
			ApartmentID: sea.ID, GuestName: "guest", CheckIn: stay[0], CheckOut: stay[1],
		})
		require.NoError(t, err)
		bookings = append(bookings, *b)
	}

	_, err = scheduler.Execute(context.Background(), &update_cleaning_schedule.InputData{OwnerID: ownerID, Bookings: bookings})
	require.NoError(t, err)

	return store, notifier, scheduler, uc, bookings
}

func TestExecute_RecomputesPreviousWindow(t *testing.T) {
	store, notifier, _, uc, bookings := setup(t)

	cs, _ := store.Schedule(bookings[0].ID)
	require.NotNil(t, cs.CleaningDate)
	assert.Equal(t, at(8, 15), *cs.CleaningDate)

	require.NoError(t, uc.Execute(context.Background(), bookings[1].ID, ownerID))

	_, ok := store.Schedule(bookings[1].ID)
	assert.False(t, ok, "schedule row goes with the booking")

	cs, _ = store.Schedule(bookings[0].ID)
	assert.Nil(t, cs.WindowEnd)
	assert.Equal(t, at(5, 11), *cs.CleaningDate)
	assert.Equal(t, 3, notifier.Count(ownerID))
}

func TestExecute_LastBooking(t *testing.T) {
	store, _, _, uc, bookings := setup(t)

	require.NoError(t, uc.Execute(context.Background(), bookings[1].ID, ownerID))
	var err error
	require.NotPanics(t, func() {
		err = uc.Execute(context.Background(), bookings[0].ID, ownerID)
	})
	require.NoError(t, err)

	assert.Equal(t, 0, store.BookingCount())
	_, ok := store.Schedule(bookings[0].ID)
	assert.False(t, ok)
}

func TestExecute_Errors(t *testing.T) {
	store, _, _, uc, bookings := setup(t)

	err := uc.Execute(context.Background(), 999, ownerID)
	assert.True(t, errors.Is(err, ErrBookingNotFound))

	err = uc.Execute(context.Background(), bookings[0].ID, 7)
	assert.True(t, errors.Is(err, ErrBookingNotFound))

	err = uc.Execute(context.Background(), 0, ownerID)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	assert.Equal(t, 2, store.BookingCount())
}
