package delete_apartment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningScheduler/internal/api/middleware"
	deleteApartment "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/delete_apartment"
)

const (
	msgInvalidApartmentID = "некорректный ID квартиры"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "квартира не найдена"
)

type Handler struct {
	useCase DeleteApartmentUseCase
	logger  Logger
}

func NewHandler(useCase DeleteApartmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/apartments/{apartmentId}
// Удаляет квартиру вместе с бронированиями и пересчитывает график уборок
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	apartmentID, err := handlers.PathID(r, "apartmentId")
	if err != nil {
		h.logger.Warn("DELETE /apartments/{id} - Invalid apartment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidApartmentID)
		return
	}

	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("DELETE /apartments/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.useCase.Execute(r.Context(), apartmentID, ownerID); err != nil {
		if errors.Is(err, deleteApartment.ErrApartmentNotFound) {
			h.logger.Warn("DELETE /apartments/{id} - Apartment not found: apartment_id=%d, owner_id=%d", apartmentID, ownerID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /apartments/{id} - Failed to delete apartment: apartment_id=%d, error=%v", apartmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /apartments/{id} - Apartment deleted: apartment_id=%d", apartmentID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
