package get_apartment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CleaningScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-CleaningScheduler/internal/service/apartments"
	"github.com/m04kA/SMC-CleaningScheduler/internal/service/apartments/models"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/logger"
)

type stubService struct{ err error }

func (s stubService) Get(_ context.Context, apartmentID, _ int64) (*models.ApartmentResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.ApartmentResponse{ID: apartmentID, Name: "Sea"}, nil
}

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		err    error
		status int
	}{
		{"found", "5", nil, http.StatusOK},
		{"bad id", "abc", nil, http.StatusBadRequest},
		{"zero id", "0", nil, http.StatusBadRequest},
		{"not found", "5", apartments.ErrApartmentNotFound, http.StatusNotFound},
		{"internal", "5", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/v1/apartments/"+tt.id, nil)
			r = mux.SetURLVars(r, map[string]string{"apartmentId": tt.id})
			r = r.WithContext(middleware.WithUserID(r.Context(), 42))
			w := httptest.NewRecorder()

			NewHandler(stubService{err: tt.err}, logger.NewNop()).Handle(w, r)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
