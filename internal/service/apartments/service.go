package apartments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	apartmentRepo "github.com/m04kA/SMC-CleaningScheduler/internal/infra/storage/apartment"
	"github.com/m04kA/SMC-CleaningScheduler/internal/service/apartments/models"
)

// Service сервис для работы с квартирами владельца
type Service struct {
	apartmentRepo ApartmentRepository
	logger        Logger
}

// NewService создает новый экземпляр сервиса квартир
func NewService(apartmentRepo ApartmentRepository, logger Logger) *Service {
	return &Service{
		apartmentRepo: apartmentRepo,
		logger:        logger,
	}
}

// Create создает новую квартиру владельца
// Название квартиры уникально в пределах владельца: по нему сопоставляется PRODID при импорте календаря
func (s *Service) Create(ctx context.Context, req *models.CreateApartmentRequest) (*models.ApartmentResponse, error) {
	s.logger.Info("Create: creating apartment name=%q for owner=%d", req.Name, req.OwnerID)

	apartment := req.ToDomainApartment()
	if err := validateApartment(apartment); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.apartmentRepo.Create(ctx, apartment)
	if err != nil {
		if errors.Is(err, apartmentRepo.ErrDuplicateName) {
			s.logger.Warn("Create: apartment name=%q already exists for owner=%d", apartment.Name, req.OwnerID)
			return nil, ErrApartmentAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created apartment id=%d", created.ID)
	return models.FromDomainApartment(created), nil
}

// Get получает квартиру владельца
// Чужая квартира неотличима от несуществующей
func (s *Service) Get(ctx context.Context, apartmentID, ownerID int64) (*models.ApartmentResponse, error) {
	s.logger.Info("Get: fetching apartment id=%d for owner=%d", apartmentID, ownerID)

	apartment, err := s.getOwned(ctx, apartmentID, ownerID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainApartment(apartment), nil
}

// List получает все квартиры владельца
func (s *Service) List(ctx context.Context, ownerID int64) (*models.ApartmentListResponse, error) {
	s.logger.Info("List: fetching apartments for owner=%d", ownerID)

	apartments, err := s.apartmentRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		s.logger.Error("List: repository error for owner=%d: %v", ownerID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d apartments for owner=%d", len(apartments), ownerID)
	return models.FromDomainApartmentList(apartments), nil
}

// Update обновляет квартиру владельца
func (s *Service) Update(ctx context.Context, req *models.UpdateApartmentRequest) (*models.ApartmentResponse, error) {
	s.logger.Info("Update: updating apartment id=%d for owner=%d", req.ApartmentID, req.OwnerID)

	apartment, err := s.getOwned(ctx, req.ApartmentID, req.OwnerID)
	if err != nil {
		return nil, err
	}

	req.ApplyToApartment(apartment)
	if err := validateApartment(apartment); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.apartmentRepo.Update(ctx, apartment)
	if err != nil {
		switch {
		case errors.Is(err, apartmentRepo.ErrDuplicateName):
			s.logger.Warn("Update: apartment name=%q already exists for owner=%d", apartment.Name, req.OwnerID)
			return nil, ErrApartmentAlreadyExists
		case errors.Is(err, apartmentRepo.ErrApartmentNotFound):
			return nil, ErrApartmentNotFound
		}
		s.logger.Error("Update: repository error for apartment id=%d: %v", req.ApartmentID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated apartment id=%d", updated.ID)
	return models.FromDomainApartment(updated), nil
}

func (s *Service) getOwned(ctx context.Context, apartmentID, ownerID int64) (*domain.Apartment, error) {
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

func validateApartment(a *domain.Apartment) error {
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(a.Name) > domain.MaxApartmentNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxApartmentNameLength)
	}
	if len(a.Location) > domain.MaxApartmentLocationLength {
		return fmt.Errorf("%w: location must be at most %d characters", ErrInvalidInput, domain.MaxApartmentLocationLength)
	}
	if len(a.Size) > domain.MaxApartmentSizeLength {
		return fmt.Errorf("%w: size must be at most %d characters", ErrInvalidInput, domain.MaxApartmentSizeLength)
	}
	return nil
}
