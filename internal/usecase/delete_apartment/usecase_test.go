package delete_apartment

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

func TestExecute_ReleasesOverlappingCleaning(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	notifier := memstore.NewNotifier()
	log := logger.NewNop()
	tx := store.TxManager()

	scheduler := update_cleaning_schedule.NewUseCase(
		store.Bookings(), store.Cleaning(), tx, notifier, (*metrics.Metrics)(nil), log, domain.DefaultPaddingDays,
	)
	uc := NewUseCase(store.Apartments(), store.Bookings(), scheduler, tx, log)

	sea, err := store.Apartments().Create(ctx, &domain.Apartment{OwnerID: ownerID, Name: "Sea"})
	require.NoError(t, err)
	park, err := store.Apartments().Create(ctx, &domain.Apartment{OwnerID: ownerID, Name: "Park"})
	require.NoError(t, err)

	// Park: окно p1 [6 янв 11:00, 20 янв 15:00), Sea: открытое окно с 8 янв 11:00
	p1, err := store.Bookings().Create(ctx, &domain.Booking{ApartmentID: park.ID, CheckIn: at(2, 15), CheckOut: at(6, 11)})
	require.NoError(t, err)
	p2, err := store.Bookings().Create(ctx, &domain.Booking{ApartmentID: park.ID, CheckIn: at(20, 15), CheckOut: at(22, 11)})
	require.NoError(t, err)
	s1, err := store.Bookings().Create(ctx, &domain.Booking{ApartmentID: sea.ID, CheckIn: at(3, 15), CheckOut: at(8, 11)})
	require.NoError(t, err)

	_, err = scheduler.Execute(ctx, &update_cleaning_schedule.InputData{
		OwnerID:  ownerID,
		Bookings: []domain.Booking{*p1, *p2, *s1},
	})
	require.NoError(t, err)

	cs, _ := store.Schedule(p1.ID)
	require.NotNil(t, cs.CleaningDate)
	assert.Equal(t, at(8, 11), *cs.CleaningDate, "shared slot with Sea")
	assert.Equal(t, 3, notifier.Count(ownerID))

	require.NoError(t, uc.Execute(ctx, sea.ID, ownerID))

	assert.Equal(t, 2, store.BookingCount())
	cs, _ = store.Schedule(p1.ID)
	assert.Equal(t, at(20, 15), *cs.CleaningDate, "cleaning moves back to the next check-in")
	cs, _ = store.Schedule(p2.ID)
	assert.Equal(t, at(22, 11), *cs.CleaningDate)
	assert.Equal(t, 4, notifier.Count(ownerID))

	_, err = store.Apartments().GetByID(ctx, sea.ID)
	assert.Error(t, err)
}

func TestExecute_Errors(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	log := logger.NewNop()
	tx := store.TxManager()
	scheduler := update_cleaning_schedule.NewUseCase(
		store.Bookings(), store.Cleaning(), tx, memstore.NewNotifier(), (*metrics.Metrics)(nil), log, domain.DefaultPaddingDays,
	)
	uc := NewUseCase(store.Apartments(), store.Bookings(), scheduler, tx, log)

	sea, err := store.Apartments().Create(ctx, &domain.Apartment{OwnerID: ownerID, Name: "Sea"})
	require.NoError(t, err)

	assert.True(t, errors.Is(uc.Execute(ctx, sea.ID, 7), ErrApartmentNotFound))
	assert.True(t, errors.Is(uc.Execute(ctx, 999, ownerID), ErrApartmentNotFound))
	assert.True(t, errors.Is(uc.Execute(ctx, 0, ownerID), ErrInvalidInput))

	require.NoError(t, uc.Execute(ctx, sea.ID, ownerID), "apartment without bookings")
}

func TestExecute_OnlyApartmentWithBookings(t *testing.T) {
	ctx := context.Background()
	store := memstore.New()
	notifier := memstore.NewNotifier()
	log := logger.NewNop()
	tx := store.TxManager()
	scheduler := update_cleaning_schedule.NewUseCase(
		store.Bookings(), store.Cleaning(), tx, notifier, (*metrics.Metrics)(nil), log, domain.DefaultPaddingDays,
	)
	uc := NewUseCase(store.Apartments(), store.Bookings(), scheduler, tx, log)

	sea, err := store.Apartments().Create(ctx, &domain.Apartment{OwnerID: ownerID, Name: "Sea"})
	require.NoError(t, err)
	b, err := store.Bookings().Create(ctx, &domain.Booking{ApartmentID: sea.ID, CheckIn: at(3, 15), CheckOut: at(8, 11)})
	require.NoError(t, err)
	_, err = scheduler.Execute(ctx, &update_cleaning_schedule.InputData{OwnerID: ownerID, Bookings: []domain.Booking{*b}})
	require.NoError(t, err)

	require.NotPanics(t, func() {
		err = uc.Execute(ctx, sea.ID, ownerID)
	})
	require.NoError(t, err)

	assert.Equal(t, 0, store.BookingCount())
	assert.Equal(t, 1, notifier.Count(ownerID), "nothing left to notify about")
}
