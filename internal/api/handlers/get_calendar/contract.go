package get_calendar

import (
	"context"

	getCalendar "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/get_calendar"
)

type UseCase interface {
	Execute(ctx context.Context, req *getCalendar.Request) (*getCalendar.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
