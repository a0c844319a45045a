package list_apartments

import (
	"context"

	"github.com/m04kA/SMC-CleaningScheduler/internal/service/apartments/models"
)

type ApartmentService interface {
	List(ctx context.Context, ownerID int64) (*models.ApartmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
