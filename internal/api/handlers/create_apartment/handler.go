package create_apartment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-CleaningScheduler/internal/service/apartments"
	"github.com/m04kA/SMC-CleaningScheduler/internal/service/apartments/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
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

// Handle POST /api/v1/apartments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /apartments - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateApartmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /apartments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /apartments - Validation failed: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}
	req.OwnerID = ownerID

	apartment, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, apartments.ErrApartmentAlreadyExists):
			h.logger.Warn("POST /apartments - Duplicate name: owner_id=%d, name=%q", ownerID, req.Name)
			handlers.RespondConflict(w, msgAlreadyExists)

		case errors.Is(err, apartments.ErrInvalidInput):
			h.logger.Warn("POST /apartments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /apartments - Failed to create apartment: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /apartments - Apartment created: apartment_id=%d, owner_id=%d", apartment.ID, ownerID)
	handlers.RespondJSON(w, http.StatusCreated, apartment)
}
