package get_cleaning_schedule

import (
	"context"

	getCleaningSchedule "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/get_cleaning_schedule"
)

type UseCase interface {
	Execute(ctx context.Context, req *getCleaningSchedule.Request) (*getCleaningSchedule.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
