package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningScheduler/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidApartmentID = "некорректный ID квартиры"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgApartmentNotFound  = "квартира не найдена"
	msgInvalidStay        = "заезд не может быть в прошлом, выезд должен быть позже заезда"
	msgBookingOverlap     = "квартира уже забронирована на эти даты"
	msgInvalidInput       = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/apartments/{apartmentId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.PathID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("POST /apartments/{id}/bookings - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /apartments/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /apartments/{id}/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /apartments/{id}/bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	// Конвертируем HTTP запрос в модель use case
	useCaseReq, err := req.ToUseCaseRequest(ownerID, apartmentID)
	if err != nil {
		h.logger.Warn("POST /apartments/{id}/bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrBookingOverlap):
			h.logger.Warn("POST /apartments/{id}/bookings - Overlap: apartment_id=%d, %s - %s", apartmentID, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgBookingOverlap)

		case errors.Is(err, createBooking.ErrApartmentNotFound):
			h.logger.Warn("POST /apartments/{id}/bookings - Apartment not found: apartment_id=%d, owner_id=%d", apartmentID, ownerID)
			handlers.RespondNotFound(w, msgApartmentNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /apartments/{id}/bookings - Invalid stay: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStay)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /apartments/{id}/bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /apartments/{id}/bookings - Failed to create booking: apartment_id=%d, error=%v", apartmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /apartments/{id}/bookings - Booking created: booking_id=%d, apartment_id=%d, owner_id=%d",
		result.ID, apartmentID, ownerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
