package import_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	apartmentRepo "github.com/m04kA/SMC-CleaningScheduler/internal/infra/storage/apartment"
	"github.com/m04kA/SMC-CleaningScheduler/internal/usecase/update_cleaning_schedule"
)

// UseCase use case для импорта бронирований из ICS календаря
type UseCase struct {
	parser        CalendarParser
	bookingRepo   BookingRepository
	apartmentRepo ApartmentRepository
	scheduler     ScheduleUpdater
	txManager     TransactionManager
	policy        domain.StayPolicy
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	parser CalendarParser,
	bookingRepo BookingRepository,
	apartmentRepo ApartmentRepository,
	scheduler ScheduleUpdater,
	txManager TransactionManager,
	policy domain.StayPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		parser:        parser,
		bookingRepo:   bookingRepo,
		apartmentRepo: apartmentRepo,
		scheduler:     scheduler,
		txManager:     txManager,
		policy:        policy,
		timeProvider:  realTimeProvider{},
		logger:        logger,
	}
}

// Execute импортирует календарь целиком: либо создаются все бронирования файла, либо ни одного.
// График уборок пересчитывается один раз для всех новых бронирований
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil || req.OwnerID <= 0 || req.Calendar == nil {
		return nil, fmt.Errorf("%w: owner and calendar are required", ErrInvalidInput)
	}

	// 1. Разбор файла
	calendar, err := uc.parser.Parse(req.Calendar)
	if err != nil {
		uc.logger.Warn("ImportCalendar: owner=%d, failed to parse calendar: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidCalendar, err)
	}

	uc.logger.Info("ImportCalendar: owner=%d, apartment=%q, events=%d", req.OwnerID, calendar.ProductID, len(calendar.Events))

	if len(calendar.Events) == 0 {
		return nil, ErrEmptyCalendar
	}

	// 2. Квартира ищется по PRODID среди квартир владельца
	apartment, err := uc.apartmentRepo.GetByOwnerAndName(ctx, req.OwnerID, calendar.ProductID)
	if err != nil {
		if errors.Is(err, apartmentRepo.ErrApartmentNotFound) {
			uc.logger.Warn("ImportCalendar: owner=%d has no apartment %q", req.OwnerID, calendar.ProductID)
			return nil, fmt.Errorf("%w: %q", ErrApartmentNotFound, calendar.ProductID)
		}
		uc.logger.Error("ImportCalendar: failed to get apartment %q: %v", calendar.ProductID, err)
		return nil, fmt.Errorf("%w: failed to get apartment: %v", ErrInternal, err)
	}

	// 3. Проверки событий, не требующие БД
	events, err := validateEvents(calendar.Events, uc.timeProvider.Now(), uc.policy)
	if err != nil {
		uc.logger.Warn("ImportCalendar: validation failed: %v", err)
		return nil, err
	}

	created := make([]domain.Booking, 0, len(events))
	var schedule *update_cleaning_schedule.Result

	// 4. Все бронирования и пересчёт в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		for _, event := range events {
			overlaps, err := uc.bookingRepo.HasOverlap(txCtx, apartment.ID, event.CheckIn, event.CheckOut)
			if err != nil {
				uc.logger.Error("ImportCalendar: failed to check overlap: %v", err)
				return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
			}

			if overlaps {
				uc.logger.Warn("ImportCalendar: event %q overlaps a booking of apartment id=%d", event.GuestName, apartment.ID)
				return fmt.Errorf("%w: event %q (%s - %s)", ErrBookingOverlap, event.GuestName,
					uc.policy.DateKey(event.CheckIn), uc.policy.DateKey(event.CheckOut))
			}

			booking, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
				ApartmentID: apartment.ID,
				GuestName:   event.GuestName,
				CheckIn:     event.CheckIn,
				CheckOut:    event.CheckOut,
			})
			if err != nil {
				uc.logger.Error("ImportCalendar: failed to create booking: %v", err)
				return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
			}

			created = append(created, *booking)
		}

		schedule, err = uc.scheduler.Recalculate(txCtx, &update_cleaning_schedule.InputData{
			OwnerID:  req.OwnerID,
			Bookings: created,
		})
		if err != nil {
			uc.logger.Error("ImportCalendar: failed to update cleaning schedule: %v", err)
			return fmt.Errorf("%w: failed to update cleaning schedule: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ImportCalendar: imported %d bookings into apartment id=%d", len(created), apartment.ID)

	uc.scheduler.Publish(ctx, req.OwnerID, schedule.Changes)

	resp := &Response{
		ApartmentID:   apartment.ID,
		ApartmentName: apartment.Name,
		Bookings:      make([]ImportedBooking, 0, len(created)),
		Changed:       len(schedule.Changes),
	}
	for _, b := range created {
		resp.Bookings = append(resp.Bookings, ImportedBooking{
			ID:           b.ID,
			GuestName:    b.GuestName,
			CheckIn:      b.CheckIn,
			CheckOut:     b.CheckOut,
			CleaningDate: schedule.Assignments[b.ID].CleaningDate,
		})
	}

	return resp, nil
}
