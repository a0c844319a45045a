package update_apartment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-CleaningScheduler/internal/service/apartments"
	"github.com/m04kA/SMC-CleaningScheduler/internal/service/apartments/models"
)

const (
	msgInvalidApartmentID = "некорректный ID квартиры"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "квартира не найдена"
	msgAlreadyExists      = "квартира с таким названием уже существует"
	msgInvalidInput       = "некорректные данные квартиры"
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

// Handle PUT /api/v1/apartments/{apartmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.PathID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("PUT /apartments/{id} - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /apartments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateApartmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /apartments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("PUT /apartments/{id} - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}
	req.OwnerID = ownerID
	req.ApartmentID = apartmentID

	apartment, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apartments.ErrApartmentNotFound):
			h.logger.Warn("PUT /apartments/{id} - Apartment not found: apartment_id=%d, owner_id=%d", apartmentID, ownerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, apartments.ErrApartmentAlreadyExists):
			h.logger.Warn("PUT /apartments/{id} - Duplicate name: apartment_id=%d", apartmentID)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, apartments.ErrInvalidInput):
			h.logger.Warn("PUT /apartments/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /apartments/{id} - Failed to update apartment: apartment_id=%d, error=%v", apartmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /apartments/{id} - Apartment updated: apartment_id=%d", apartmentID)
	handlers.RespondJSON(w, http.StatusOK, apartment)
}
