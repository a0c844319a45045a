package delete_apartment

import "context"

type DeleteApartmentUseCase interface {
	Execute(ctx context.Context, apartmentID, ownerID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
