package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// Request модели

// CreateApartmentRequest запрос на создание квартиры
type CreateApartmentRequest struct {
	OwnerID  int64  `json:"-"`
	Name     string `json:"name" validate:"required,max=255"`
	Location string `json:"location" validate:"max=500"`
	Size     string `json:"size" validate:"max=255"`
}

// UpdateApartmentRequest запрос на обновление квартиры
// Все поля опциональны - обновляются только переданные значения
type UpdateApartmentRequest struct {
	OwnerID     int64   `json:"-"`
	ApartmentID int64   `json:"-"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=500"`
	Size        *string `json:"size,omitempty" validate:"omitempty,max=255"`
}

// Response модели

// ApartmentResponse ответ с данными квартиры
type ApartmentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Size      string    `json:"size"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ApartmentListResponse ответ со списком квартир
type ApartmentListResponse struct {
	Apartments []ApartmentResponse `json:"apartments"`
}

// Методы конвертации

// FromDomainApartment конвертирует domain модель в DTO
func FromDomainApartment(a *domain.Apartment) *ApartmentResponse {
	if a == nil {
		return nil
	}

	return &ApartmentResponse{
		ID:        a.ID,
		Name:      a.Name,
		Location:  a.Location,
		Size:      a.Size,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// FromDomainApartmentList конвертирует список domain моделей в DTO
func FromDomainApartmentList(apartments []*domain.Apartment) *ApartmentListResponse {
	resp := &ApartmentListResponse{
		Apartments: make([]ApartmentResponse, 0, len(apartments)),
	}

	for _, apartment := range apartments {
		if apartmentResp := FromDomainApartment(apartment); apartmentResp != nil {
			resp.Apartments = append(resp.Apartments, *apartmentResp)
		}
	}

	return resp
}

// ToDomainApartment конвертирует CreateApartmentRequest в domain модель
func (r *CreateApartmentRequest) ToDomainApartment() *domain.Apartment {
	return &domain.Apartment{
		OwnerID:  r.OwnerID,
		Name:     strings.TrimSpace(r.Name),
		Location: strings.TrimSpace(r.Location),
		Size:     strings.TrimSpace(r.Size),
	}
}

// ApplyToApartment применяет обновления к существующей квартире
// Обновляются только непустые (not nil) поля из request
func (r *UpdateApartmentRequest) ApplyToApartment(apartment *domain.Apartment) {
	if r.Name != nil {
		apartment.Name = strings.TrimSpace(*r.Name)
	}
	if r.Location != nil {
		apartment.Location = strings.TrimSpace(*r.Location)
	}
	if r.Size != nil {
		apartment.Size = strings.TrimSpace(*r.Size)
	}
}
