package get_apartment

import (
	"context"

	"github.com/m04kA/SMC-CleaningScheduler/internal/service/apartments/models"
)

type ApartmentService interface {
	Get(ctx context.Context, apartmentID, ownerID int64) (*models.ApartmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
