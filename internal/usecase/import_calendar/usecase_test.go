package import_calendar

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	"github.com/m04kA/SMC-CleaningScheduler/internal/infra/ical"
	"github.com/m04kA/SMC-CleaningScheduler/internal/testutil/memstore"
	"github.com/m04kA/SMC-CleaningScheduler/internal/usecase/update_cleaning_schedule"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/logger"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/metrics"
)

const ownerID = int64(42)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type emptyParser struct{}

func (emptyParser) Parse(io.Reader) (*ical.Calendar, error) {
	return &ical.Calendar{ProductID: "Sea"}, nil
}

type fixture struct {
	store    *memstore.Store
	notifier *memstore.Notifier
	uc       *UseCase
	sea      int64
}

func newFixture(t *testing.T) *fixture {
	store := memstore.New()
	notifier := memstore.NewNotifier()
	log := logger.NewNop()
	tx := store.TxManager()
	policy := domain.DefaultStayPolicy()

	scheduler := update_cleaning_schedule.NewUseCase(
		store.Bookings(), store.Cleaning(), tx, notifier, (*metrics.Metrics)(nil), log, domain.DefaultPaddingDays,
	)

	uc := NewUseCase(ical.NewParser(policy), store.Bookings(), store.Apartments(), scheduler, tx, policy, log)
	uc.timeProvider = fixedTime{now: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)}

	sea, err := store.Apartments().Create(context.Background(), &domain.Apartment{OwnerID: ownerID, Name: "Sea"})
	require.NoError(t, err)

	return &fixture{store: store, notifier: notifier, uc: uc, sea: sea.ID}
}

func calendar(prodID string, events ...[3]string) io.Reader {
	lines := []string{"BEGIN:VCALENDAR", "VERSION:2.0", "PRODID:" + prodID}
	for i, e := range events {
		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:event-"+string(rune('a'+i)),
			"DTSTART;VALUE=DATE:"+e[0],
			"DTEND;VALUE=DATE:"+e[1],
			"SUMMARY:"+e[2],
			"END:VEVENT",
		)
	}
	lines = append(lines, "END:VCALENDAR")
	return strings.NewReader(strings.Join(lines, "\r\n") + "\r\n")
}

func TestExecute_ImportsAllEvents(t *testing.T) {
	f := newFixture(t)

	resp, err := f.uc.Execute(context.Background(), &Request{
		OwnerID: ownerID,
		Calendar: calendar("Sea",
			[3]string{"20250110", "20250112", "Bob"},
			[3]string{"20250101", "20250105", "Alice"},
		),
	})
	require.NoError(t, err)

	assert.Equal(t, f.sea, resp.ApartmentID)
	assert.Equal(t, "Sea", resp.ApartmentName)
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "Alice", resp.Bookings[0].GuestName, "bookings are created in check-in order")
	assert.Equal(t, 2, resp.Changed)

	// Окно Alice закрывается заездом Bob
	require.NotNil(t, resp.Bookings[0].CleaningDate)
	assert.Equal(t, time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC), *resp.Bookings[0].CleaningDate)
	require.NotNil(t, resp.Bookings[1].CleaningDate)
	assert.Equal(t, time.Date(2025, 1, 12, 11, 0, 0, 0, time.UTC), *resp.Bookings[1].CleaningDate)

	assert.Equal(t, 2, f.notifier.Count(ownerID))
}

func TestExecute_RejectsWholeFile(t *testing.T) {
	tests := []struct {
		name     string
		calendar io.Reader
		wantErr  error
	}{
		{
			name:     "not a calendar",
			calendar: strings.NewReader("hello"),
			wantErr:  ErrInvalidCalendar,
		},
		{
			name:     "unknown apartment",
			calendar: calendar("Mountain", [3]string{"20250101", "20250105", "Alice"}),
			wantErr:  ErrApartmentNotFound,
		},
		{
			name: "events overlap each other",
			calendar: calendar("Sea",
				[3]string{"20250201", "20250205", "Alice"},
				[3]string{"20250204", "20250206", "Bob"},
			),
			wantErr: ErrBookingOverlap,
		},
		{
			name: "event overlaps a stored booking",
			calendar: calendar("Sea",
				[3]string{"20250301", "20250303", "Alice"},
				[3]string{"20250102", "20250104", "Bob"},
			),
			wantErr: ErrBookingOverlap,
		},
		{
			name: "event in the past",
			calendar: calendar("Sea",
				[3]string{"20250301", "20250303", "Alice"},
				[3]string{"20241201", "20241203", "Bob"},
			),
			wantErr: ErrInvalidDate,
		},
		{
			name:     "check-out on check-in day",
			calendar: calendar("Sea", [3]string{"20250301", "20250301", "Alice"}),
			wantErr:  ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.store.Bookings().Create(context.Background(), &domain.Booking{
				ApartmentID: f.sea,
				GuestName:   "Stored",
				CheckIn:     time.Date(2025, 1, 1, 15, 0, 0, 0, time.UTC),
				CheckOut:    time.Date(2025, 1, 5, 11, 0, 0, 0, time.UTC),
			})
			require.NoError(t, err)

			_, err = f.uc.Execute(context.Background(), &Request{OwnerID: ownerID, Calendar: tt.calendar})
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Equal(t, 1, f.store.BookingCount(), "nothing is imported")
			assert.Equal(t, 0, f.notifier.Count(ownerID))
		})
	}
}

func TestExecute_EmptyCalendar(t *testing.T) {
	f := newFixture(t)
	f.uc.parser = emptyParser{}

	_, err := f.uc.Execute(context.Background(), &Request{OwnerID: ownerID, Calendar: strings.NewReader("")})
	assert.True(t, errors.Is(err, ErrEmptyCalendar))
}

func TestExecute_InvalidInput(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Execute(context.Background(), &Request{OwnerID: ownerID})
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestValidateEvents_SortsByCheckIn(t *testing.T) {
	policy := domain.DefaultStayPolicy()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	events := []ical.Event{
		{GuestName: " Bob ", CheckIn: policy.CheckInAt(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)), CheckOut: policy.CheckOutAt(time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC))},
		{GuestName: "Alice", CheckIn: policy.CheckInAt(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)), CheckOut: policy.CheckOutAt(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))},
	}

	sorted, err := validateEvents(events, now, policy)
	require.NoError(t, err)
	assert.Equal(t, "Alice", sorted[0].GuestName)
	assert.Equal(t, "Bob", sorted[1].GuestName)
	assert.Equal(t, " Bob ", events[0].GuestName, "input is not modified")
}
