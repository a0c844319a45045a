package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// UseCase use case для получения календаря бронирований за месяц
type UseCase struct {
	bookingRepo BookingRepository
	policy      domain.StayPolicy
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, policy domain.StayPolicy, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		policy:      policy,
		logger:      logger,
	}
}

// Execute строит календарь владельца за месяц
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: owner=%d, month=%d-%02d", req.OwnerID, req.Year, req.Month)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	month := domain.MonthRange(req.Year, req.Month, uc.policy.Location)

	views, err := uc.bookingRepo.GetViewsByOwnerInRange(ctx, req.OwnerID, month.From, month.To)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	reserved := reservedDays(views, uc.policy, month)

	resp := &Response{Year: req.Year, Month: req.Month}
	for _, week := range monthWeeks(req.Year, req.Month) {
		days := make([]Day, 0, len(week))
		for _, day := range week {
			cell := Day{Day: day, Apartments: []string{}}
			if day != 0 {
				date := time.Date(req.Year, req.Month, day, 0, 0, 0, 0, time.UTC).Format(domain.DateFormat)
				if names, ok := reserved[date]; ok {
					cell.Apartments = names
				}
			}
			days = append(days, cell)
		}
		resp.Weeks = append(resp.Weeks, days)
	}

	return resp, nil
}
