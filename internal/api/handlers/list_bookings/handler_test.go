package list_bookings

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CleaningScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-CleaningScheduler/internal/service/bookings"
	"github.com/m04kA/SMC-CleaningScheduler/internal/service/bookings/models"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/logger"
)

type stubService struct{ err error }

func (s stubService) ListByApartment(_ context.Context, apartmentID, _ int64) (*models.BookingListResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.BookingListResponse{
		Bookings: []models.BookingResponse{{ID: 1, ApartmentID: apartmentID}, {ID: 2, ApartmentID: apartmentID}},
		Total:    2,
	}, nil
}

func serve(svc stubService) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/apartments/5/bookings", nil)
	r = mux.SetURLVars(r, map[string]string{"apartmentId": "5"})
	r = r.WithContext(middleware.WithUserID(r.Context(), 42))
	w := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(w, r)
	return w
}

func TestHandle(t *testing.T) {
	w := serve(stubService{})
	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BookingListResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, int64(5), resp.Bookings[0].ApartmentID)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, serve(stubService{err: bookings.ErrApartmentNotFound}).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(stubService{err: errors.New("db down")}).Code)
}
