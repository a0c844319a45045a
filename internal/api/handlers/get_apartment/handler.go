package get_apartment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-CleaningScheduler/internal/service/apartments"
)

const (
	msgInvalidApartmentID = "некорректный ID квартиры"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "квартира не найдена"
)

type Handler struct {
	service ApartmentService
	logger  Logger
}

func NewHandler(service ApartmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/apartments/{apartmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.PathID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("GET /apartments/{id} - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /apartments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	apartment, err := h.service.Get(r.Context(), apartmentID, ownerID)
	if err != nil {
		if errors.Is(err, apartments.ErrApartmentNotFound) {
			h.logger.Warn("GET /apartments/{id} - Apartment not found: apartment_id=%d, owner_id=%d", apartmentID, ownerID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /apartments/{id} - Failed to get apartment: apartment_id=%d, error=%v", apartmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /apartments/{id} - Apartment retrieved: apartment_id=%d", apartmentID)
	handlers.RespondJSON(w, http.StatusOK, apartment)
}
