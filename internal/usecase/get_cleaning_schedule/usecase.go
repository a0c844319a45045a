package get_cleaning_schedule

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// UseCase use case для получения графика уборок за месяц
type UseCase struct {
	apartmentRepo ApartmentRepository
	bookingRepo   BookingRepository
	policy        domain.StayPolicy
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apartmentRepo ApartmentRepository,
	bookingRepo BookingRepository,
	policy domain.StayPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		apartmentRepo: apartmentRepo,
		bookingRepo:   bookingRepo,
		policy:        policy,
		logger:        logger,
	}
}

// Execute строит график уборок владельца за месяц
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCleaningSchedule: owner=%d, month=%d-%02d", req.OwnerID, req.Year, req.Month)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCleaningSchedule: validation failed: %v", err)
		return nil, err
	}

	month := domain.MonthRange(req.Year, req.Month, uc.policy.Location)

	// 2. Квартиры владельца задают столбцы графика
	apartments, err := uc.apartmentRepo.ListByOwner(ctx, req.OwnerID)
	if err != nil {
		uc.logger.Error("GetCleaningSchedule: failed to list apartments: %v", err)
		return nil, fmt.Errorf("%w: failed to list apartments: %v", ErrInternal, err)
	}

	// 3. Бронирования месяца вместе с датами уборки
	views, err := uc.bookingRepo.GetViewsByOwnerInRange(ctx, req.OwnerID, month.From, month.To)
	if err != nil {
		uc.logger.Error("GetCleaningSchedule: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	g := newGrid(uc.policy, month, apartments)
	for _, view := range views {
		g.addBooking(view)
	}

	resp := &Response{
		Year:       req.Year,
		Month:      req.Month,
		Apartments: make([]ApartmentColumn, 0, len(apartments)),
		Days:       g.result(),
	}
	for _, a := range apartments {
		resp.Apartments = append(resp.Apartments, ApartmentColumn{ID: a.ID, Name: a.Name})
	}

	uc.logger.Info("GetCleaningSchedule: owner=%d, apartments=%d, bookings=%d", req.OwnerID, len(apartments), len(views))

	return resp, nil
}
