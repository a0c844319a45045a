package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	apartmentRepo "github.com/m04kA/SMC-CleaningScheduler/internal/infra/storage/apartment"
	"github.com/m04kA/SMC-CleaningScheduler/internal/usecase/update_cleaning_schedule"
)

// UseCase use case для создания бронирования
type UseCase struct {
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
	bookingRepo BookingRepository,
	apartmentRepo ApartmentRepository,
	scheduler ScheduleUpdater,
	txManager TransactionManager,
	policy domain.StayPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		apartmentRepo: apartmentRepo,
		scheduler:     scheduler,
		txManager:     txManager,
		policy:        policy,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Бронирование и пересчёт графика идут в одной сериализуемой транзакции:
// параллельный заезд в ту же квартиру не пройдёт проверку пересечений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: owner=%d, apartment=%d, check_in=%s, check_out=%s",
		req.OwnerID, req.ApartmentID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Дни превращаются в моменты заезда и выезда
	checkIn := uc.policy.CheckInAt(uc.policy.Date(req.CheckIn.Date()))
	checkOut := uc.policy.CheckOutAt(uc.policy.Date(req.CheckOut.Date()))

	if err := validateStay(checkIn, checkOut, uc.timeProvider.Now(), uc.policy); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Квартира должна принадлежать владельцу
	apartment, err := uc.apartmentRepo.GetByID(ctx, req.ApartmentID)
	if err != nil {
		if errors.Is(err, apartmentRepo.ErrApartmentNotFound) {
			uc.logger.Warn("CreateBooking: apartment id=%d not found", req.ApartmentID)
			return nil, ErrApartmentNotFound
		}
		uc.logger.Error("CreateBooking: failed to get apartment id=%d: %v", req.ApartmentID, err)
		return nil, fmt.Errorf("%w: failed to get apartment: %v", ErrInternal, err)
	}

	if !apartment.IsOwnedBy(req.OwnerID) {
		uc.logger.Warn("CreateBooking: apartment id=%d does not belong to owner=%d", req.ApartmentID, req.OwnerID)
		return nil, ErrApartmentNotFound
	}

	var created *domain.Booking
	var schedule *update_cleaning_schedule.Result

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Пересечение с бронированиями квартиры
		overlaps, err := uc.bookingRepo.HasOverlap(txCtx, apartment.ID, checkIn, checkOut)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to check overlap: %v", err)
			return fmt.Errorf("%w: failed to check overlap: %v", ErrInternal, err)
		}

		if overlaps {
			uc.logger.Warn("CreateBooking: apartment id=%d is already booked for %s - %s",
				apartment.ID, checkIn.Format(domain.DateTimeFormat), checkOut.Format(domain.DateTimeFormat))
			return ErrBookingOverlap
		}

		// 4.2. Сохраняем бронирование
		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			ApartmentID: apartment.ID,
			GuestName:   strings.TrimSpace(req.GuestName),
			CheckIn:     checkIn,
			CheckOut:    checkOut,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 4.3. Пересчитываем график уборок
		schedule, err = uc.scheduler.Recalculate(txCtx, &update_cleaning_schedule.InputData{
			OwnerID:  req.OwnerID,
			Bookings: []domain.Booking{*created},
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to update cleaning schedule: %v", err)
			return fmt.Errorf("%w: failed to update cleaning schedule: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", created.ID)

	// 5. Уведомления только после фиксации транзакции
	uc.scheduler.Publish(ctx, req.OwnerID, schedule.Changes)

	return &Response{
		ID:           created.ID,
		ApartmentID:  created.ApartmentID,
		GuestName:    created.GuestName,
		CheckIn:      created.CheckIn,
		CheckOut:     created.CheckOut,
		CleaningDate: schedule.Assignments[created.ID].CleaningDate,
		CreatedAt:    created.CreatedAt,
	}, nil
}
