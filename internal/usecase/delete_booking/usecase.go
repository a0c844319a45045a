package delete_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	apartmentRepo "github.com/m04kA/SMC-CleaningScheduler/internal/infra/storage/apartment"
	bookingRepo "github.com/m04kA/SMC-CleaningScheduler/internal/infra/storage/booking"
	"github.com/m04kA/SMC-CleaningScheduler/internal/usecase/update_cleaning_schedule"
)

// UseCase use case для удаления бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	apartmentRepo ApartmentRepository
	scheduler     ScheduleUpdater
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	apartmentRepo ApartmentRepository,
	scheduler ScheduleUpdater,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		apartmentRepo: apartmentRepo,
		scheduler:     scheduler,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute удаляет бронирование и пересчитывает график вокруг него:
// окно предыдущего бронирования квартиры теперь закрывается следующим заездом
func (uc *UseCase) Execute(ctx context.Context, bookingID, ownerID int64) error {
	uc.logger.Info("DeleteBooking: booking=%d, owner=%d", bookingID, ownerID)

	if bookingID <= 0 || ownerID <= 0 {
		return fmt.Errorf("%w: bookingID and ownerID must be positive", ErrInvalidInput)
	}

	var schedule *update_cleaning_schedule.Result

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("DeleteBooking: booking id=%d not found", bookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("DeleteBooking: failed to get booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		apartment, err := uc.apartmentRepo.GetByID(txCtx, booking.ApartmentID)
		if err != nil {
			if errors.Is(err, apartmentRepo.ErrApartmentNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("DeleteBooking: failed to get apartment id=%d: %v", booking.ApartmentID, err)
			return fmt.Errorf("%w: failed to get apartment: %v", ErrInternal, err)
		}

		if !apartment.IsOwnedBy(ownerID) {
			uc.logger.Warn("DeleteBooking: booking id=%d does not belong to owner=%d", bookingID, ownerID)
			return ErrBookingNotFound
		}

		if err := uc.bookingRepo.Delete(txCtx, bookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("DeleteBooking: failed to delete booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: failed to delete booking: %v", ErrInternal, err)
		}

		schedule, err = uc.scheduler.Recalculate(txCtx, &update_cleaning_schedule.InputData{
			OwnerID:  ownerID,
			Bookings: []domain.Booking{*booking},
		})
		if err != nil {
			uc.logger.Error("DeleteBooking: failed to update cleaning schedule: %v", err)
			return fmt.Errorf("%w: failed to update cleaning schedule: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("DeleteBooking: successfully deleted booking id=%d, %d cleaning dates changed", bookingID, len(schedule.Changes))

	uc.scheduler.Publish(ctx, ownerID, schedule.Changes)
	return nil
}
