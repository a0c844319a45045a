package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-CleaningScheduler/internal/service/bookings"
)

const (
	msgInvalidApartmentID = "некорректный ID квартиры"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgApartmentNotFound  = "квартира не найдена"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/apartments/{apartmentId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.PathID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("GET /apartments/{id}/bookings - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /apartments/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	list, err := h.service.ListByApartment(r.Context(), apartmentID, ownerID)
	if err != nil {
		if errors.Is(err, bookings.ErrApartmentNotFound) {
			h.logger.Warn("GET /apartments/{id}/bookings - Apartment not found: apartment_id=%d, owner_id=%d", apartmentID, ownerID)
			handlers.RespondNotFound(w, msgApartmentNotFound)
			return
		}
		h.logger.Error("GET /apartments/{id}/bookings - Failed to list bookings: apartment_id=%d, error=%v", apartmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /apartments/{id}/bookings - Bookings retrieved: apartment_id=%d, total=%d", apartmentID, list.Total)
	handlers.RespondJSON(w, http.StatusOK, list)
}
