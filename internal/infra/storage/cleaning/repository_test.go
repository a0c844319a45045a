package cleaning

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/ptr"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

var (
	windowStart = time.Date(2025, 1, 5, 11, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2025, 1, 5, 15, 0, 0, 0, time.UTC)
)

func TestRepository_UpsertWindows(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(
		"INSERT INTO cleaning_schedules (booking_id,window_start,window_end,updated_at) " +
			"VALUES ($1,$2,$3,NOW()),($4,$5,$6,NOW()) ON CONFLICT (booking_id) DO UPDATE SET")).
		WithArgs(int64(1), windowStart, windowEnd, int64(2), windowStart, nil).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.UpsertWindows(context.Background(), []domain.CleaningWindow{
		{BookingID: 1, Start: windowStart, End: ptr.Ptr(windowEnd)},
		{BookingID: 2, Start: windowStart},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpsertWindows_Batches(t *testing.T) {
	repo, mock := newMock(t)

	windows := make([]domain.CleaningWindow, upsertBatchSize+1)
	for i := range windows {
		windows[i] = domain.CleaningWindow{BookingID: int64(i + 1), Start: windowStart}
	}

	mock.ExpectExec("INSERT INTO cleaning_schedules").WillReturnResult(sqlmock.NewResult(0, upsertBatchSize))
	mock.ExpectExec("INSERT INTO cleaning_schedules").WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpsertWindows(context.Background(), windows))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpsertWindows_Empty(t *testing.T) {
	repo, mock := newMock(t)

	require.NoError(t, repo.UpsertWindows(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetCleaningDates(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT booking_id, cleaning_date FROM cleaning_schedules WHERE booking_id = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"booking_id", "cleaning_date"}).
			AddRow(int64(1), windowStart).
			AddRow(int64(2), nil))

	dates, err := repo.GetCleaningDates(context.Background(), []int64{1, 2, 3})

	require.NoError(t, err)
	require.Len(t, dates, 2)
	require.NotNil(t, dates[1])
	assert.Equal(t, windowStart, *dates[1])
	assert.Nil(t, dates[2])
	_, ok := dates[3]
	assert.False(t, ok)
}

func TestRepository_GetCleaningDates_NoIDs(t *testing.T) {
	repo, mock := newMock(t)

	dates, err := repo.GetCleaningDates(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, dates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByBookingID(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM cleaning_schedules WHERE booking_id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"booking_id", "window_start", "window_end", "cleaning_date", "updated_at"}).
			AddRow(int64(1), windowStart, nil, windowStart, now))

	schedule, err := repo.GetByBookingID(context.Background(), 1)

	require.NoError(t, err)
	assert.Nil(t, schedule.WindowEnd)
	require.NotNil(t, schedule.CleaningDate)
	assert.Equal(t, windowStart, *schedule.CleaningDate)
}

func TestRepository_GetByBookingID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("FROM cleaning_schedules").
		WillReturnRows(sqlmock.NewRows([]string{"booking_id", "window_start", "window_end", "cleaning_date", "updated_at"}))

	_, err := repo.GetByBookingID(context.Background(), 1)

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}

func TestRepository_UpdateCleaningDates(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE cleaning_schedules SET cleaning_date = $1, updated_at = NOW() WHERE booking_id = $2")).
		WithArgs(windowStart, int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE cleaning_schedules").
		WithArgs(nil, int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateCleaningDates(context.Background(), []domain.AssignmentChange{
		{BookingID: 1, CleaningDate: ptr.Ptr(windowStart)},
		{BookingID: 2},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateCleaningDates_MissingRow(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE cleaning_schedules").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateCleaningDates(context.Background(), []domain.AssignmentChange{
		{BookingID: 5, CleaningDate: ptr.Ptr(windowStart)},
	})

	assert.ErrorIs(t, err, ErrScheduleNotFound)
}
