package create_booking

import (
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
	createBooking "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	GuestName string `json:"guestName" validate:"required,max=100"`
	CheckIn   string `json:"checkIn" validate:"required,datetime=2006-01-02"`  // "2025-10-15"
	CheckOut  string `json:"checkOut" validate:"required,datetime=2006-01-02"` // "2025-10-18"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	ApartmentID  int64   `json:"apartmentId"`
	GuestName    string  `json:"guestName"`
	CheckIn      string  `json:"checkIn"`
	CheckOut     string  `json:"checkOut"`
	CleaningDate *string `json:"cleaningDate"`
	CreatedAt    string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case.
// Формат дат уже проверен тегами validate
func (r *CreateBookingRequest) ToUseCaseRequest(ownerID, apartmentID int64) (*createBooking.Request, error) {
	checkIn, err := time.Parse(domain.DateFormat, r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := time.Parse(domain.DateFormat, r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		OwnerID:     ownerID,
		ApartmentID: apartmentID,
		GuestName:   r.GuestName,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:          resp.ID,
		ApartmentID: resp.ApartmentID,
		GuestName:   resp.GuestName,
		CheckIn:     resp.CheckIn.Format(time.RFC3339),
		CheckOut:    resp.CheckOut.Format(time.RFC3339),
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
	if resp.CleaningDate != nil {
		cleaning := resp.CleaningDate.Format(time.RFC3339)
		out.CleaningDate = &cleaning
	}
	return out
}
