package delete_apartment

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-CleaningScheduler/internal/api/middleware"
	deleteApartment "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/delete_apartment"
	"github.com/m04kA/SMC-CleaningScheduler/pkg/logger"
)

type stubUseCase struct{ err error }

func (s stubUseCase) Execute(context.Context, int64, int64) error { return s.err }

func TestHandle(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"deleted", nil, http.StatusNoContent},
		{"not found", deleteApartment.ErrApartmentNotFound, http.StatusNotFound},
		{"internal", errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodDelete, "/api/v1/apartments/5", nil)
			r = mux.SetURLVars(r, map[string]string{"apartmentId": "5"})
			r = r.WithContext(middleware.WithUserID(r.Context(), 42))
			w := httptest.NewRecorder()

			NewHandler(stubUseCase{err: tt.err}, logger.NewNop()).Handle(w, r)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusNoContent {
				assert.Zero(t, w.Body.Len())
			}
		})
	}
}
