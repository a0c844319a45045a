package delete_apartment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	apartmentRepo "github.com/m04kA/SMC-CleaningScheduler/internal/infra/storage/apartment"
	"github.com/m04kA/SMC-CleaningScheduler/internal/usecase/update_cleaning_schedule"
)

// UseCase use case для удаления квартиры
type UseCase struct {
	apartmentRepo ApartmentRepository
	bookingRepo   BookingRepository
	scheduler     ScheduleUpdater
	txManager     TransactionManager
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	apartmentRepo ApartmentRepository,
	bookingRepo BookingRepository,
	scheduler ScheduleUpdater,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		apartmentRepo: apartmentRepo,
		bookingRepo:   bookingRepo,
		scheduler:     scheduler,
		txManager:     txManager,
		logger:        logger,
	}
}

// Execute удаляет квартиру вместе с её бронированиями.
// Уборки других квартир, пересекавшиеся с удалёнными окнами, пересчитываются
func (uc *UseCase) Execute(ctx context.Context, apartmentID, ownerID int64) error {
	uc.logger.Info("DeleteApartment: apartment=%d, owner=%d", apartmentID, ownerID)

	if apartmentID <= 0 || ownerID <= 0 {
		return fmt.Errorf("%w: apartmentID and ownerID must be positive", ErrInvalidInput)
	}

	var changes []domain.AssignmentChange

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		apartment, err := uc.apartmentRepo.GetByID(txCtx, apartmentID)
		if err != nil {
			if errors.Is(err, apartmentRepo.ErrApartmentNotFound) {
				uc.logger.Warn("DeleteApartment: apartment id=%d not found", apartmentID)
				return ErrApartmentNotFound
			}
			uc.logger.Error("DeleteApartment: failed to get apartment id=%d: %v", apartmentID, err)
			return fmt.Errorf("%w: failed to get apartment: %v", ErrInternal, err)
		}

		if !apartment.IsOwnedBy(ownerID) {
			uc.logger.Warn("DeleteApartment: apartment id=%d does not belong to owner=%d", apartmentID, ownerID)
			return ErrApartmentNotFound
		}

		bookings, err := uc.bookingRepo.ListByApartment(txCtx, apartmentID)
		if err != nil {
			uc.logger.Error("DeleteApartment: failed to list bookings: %v", err)
			return fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
		}

		if err := uc.apartmentRepo.Delete(txCtx, apartmentID); err != nil {
			if errors.Is(err, apartmentRepo.ErrApartmentNotFound) {
				return ErrApartmentNotFound
			}
			uc.logger.Error("DeleteApartment: failed to delete apartment id=%d: %v", apartmentID, err)
			return fmt.Errorf("%w: failed to delete apartment: %v", ErrInternal, err)
		}

		if len(bookings) == 0 {
			return nil
		}

		removed := make([]domain.Booking, 0, len(bookings))
		for _, b := range bookings {
			removed = append(removed, *b)
		}

		schedule, err := uc.scheduler.Recalculate(txCtx, &update_cleaning_schedule.InputData{
			OwnerID:  ownerID,
			Bookings: removed,
		})
		if err != nil {
			uc.logger.Error("DeleteApartment: failed to update cleaning schedule: %v", err)
			return fmt.Errorf("%w: failed to update cleaning schedule: %v", ErrInternal, err)
		}

		changes = schedule.Changes
		return nil
	})

	if err != nil {
		return err
	}

	uc.logger.Info("DeleteApartment: successfully deleted apartment id=%d, %d cleaning dates changed", apartmentID, len(changes))

	uc.scheduler.Publish(ctx, ownerID, changes)
	return nil
}
