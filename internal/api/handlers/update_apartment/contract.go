package update_apartment

import (
	"context"

	"github.com/m04kA/SMC-CleaningScheduler/internal/service/apartments/models"
)

type ApartmentService interface {
	Update(ctx context.Context, req *models.UpdateApartmentRequest) (*models.ApartmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
