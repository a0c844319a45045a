package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	apartmentRepo "github.com/m04kA/SMC-CleaningScheduler/internal/infra/storage/apartment"
	bookingRepo "github.com/m04kA/SMC-CleaningScheduler/internal/infra/storage/booking"
	cleaningRepo "github.com/m04kA/SMC-CleaningScheduler/internal/infra/storage/cleaning"
	"github.com/m04kA/SMC-CleaningScheduler/internal/service/bookings/models"
)

// Service сервис для чтения бронирований
// Создание, импорт и удаление меняют график уборок и выполняются через use cases
type Service struct {
	bookingRepo   BookingRepository
	apartmentRepo ApartmentRepository
	cleaningRepo  CleaningRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	apartmentRepo ApartmentRepository,
	cleaningRepo CleaningRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		apartmentRepo: apartmentRepo,
		cleaningRepo:  cleaningRepo,
		logger:        logger,
	}
}

// GetByID получает бронирование с окном и датой уборки
// Владелец видит только бронирования своих квартир
func (s *Service) GetByID(ctx context.Context, id int64, ownerID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for owner=%d", id, ownerID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if _, err := s.getOwnedApartment(ctx, booking.ApartmentID, ownerID); err != nil {
		if errors.Is(err, ErrApartmentNotFound) {
			s.logger.Warn("GetByID: access denied for owner=%d to booking id=%d", ownerID, id)
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	resp := models.FromDomainBooking(booking)

	schedule, err := s.cleaningRepo.GetByBookingID(ctx, id)
	switch {
	case err == nil:
		resp.Cleaning = models.FromDomainCleaningSchedule(schedule)
	case errors.Is(err, cleaningRepo.ErrScheduleNotFound):
		// График ещё не рассчитан
	default:
		s.logger.Error("GetByID: failed to get cleaning schedule for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - cleaning repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return resp, nil
}

// ListByApartment получает бронирования квартиры владельца с датами уборки
func (s *Service) ListByApartment(ctx context.Context, apartmentID int64, ownerID int64) (*models.BookingListResponse, error) {
	s.logger.Info("ListByApartment: fetching bookings for apartment=%d, owner=%d", apartmentID, ownerID)

	if _, err := s.getOwnedApartment(ctx, apartmentID, ownerID); err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByApartment(ctx, apartmentID)
	if err != nil {
		s.logger.Error("ListByApartment: repository error for apartment=%d: %v", apartmentID, err)
		return nil, fmt.Errorf("%w: ListByApartment - repository error: %v", ErrInternal, err)
	}

	ids := make([]int64, len(bookings))
	for i, b := range bookings {
		ids[i] = b.ID
	}

	dates, err := s.cleaningRepo.GetCleaningDates(ctx, ids)
	if err != nil {
		s.logger.Error("ListByApartment: failed to get cleaning dates for apartment=%d: %v", apartmentID, err)
		return nil, fmt.Errorf("%w: ListByApartment - cleaning repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListByApartment: successfully fetched %d bookings for apartment=%d", len(bookings), apartmentID)
	return models.FromDomainBookingList(bookings, dates), nil
}

func (s *Service) getOwnedApartment(ctx context.Context, apartmentID, ownerID int64) (*domain.Apartment, error) {
	apartment, err := s.apartmentRepo.GetByID(ctx, apartmentID)
	if err != nil {
		if errors.Is(err, apartmentRepo.ErrApartmentNotFound) {
			s.logger.Warn("apartment id=%d not found", apartmentID)
			return nil, ErrApartmentNotFound
		}
		s.logger.Error("failed to get apartment id=%d: %v", apartmentID, err)
		return nil, fmt.Errorf("%w: failed to get apartment: %v", ErrInternal, err)
	}

	if !apartment.IsOwnedBy(ownerID) {
		s.logger.Warn("apartment id=%d does not belong to owner=%d", apartmentID, ownerID)
		return nil, ErrApartmentNotFound
	}

	return apartment, nil
}
