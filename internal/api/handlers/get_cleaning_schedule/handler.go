package get_cleaning_schedule

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningScheduler/internal/api/middleware"
	getCleaningSchedule "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/get_cleaning_schedule"
)

const (
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidMonth  = "некорректный год или месяц"
)

type Handler struct {
	useCase UseCase
	now     func() time.Time
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		now:     time.Now,
		logger:  logger,
	}
}

// Handle GET /api/v1/cleaning-schedule?year=2025&month=1
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /cleaning-schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	year, month, err := handlers.MonthQuery(r, h.now())
	if err != nil {
		h.logger.Warn("GET /cleaning-schedule - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCleaningSchedule.Request{
		OwnerID: ownerID,
		Year:    year,
		Month:   month,
	})
	if err != nil {
		if errors.Is(err, getCleaningSchedule.ErrInvalidInput) {
			h.logger.Warn("GET /cleaning-schedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		h.logger.Error("GET /cleaning-schedule - Failed to build schedule: owner_id=%d, error=%v", ownerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /cleaning-schedule - Schedule built: owner_id=%d, month=%d-%02d, apartments=%d",
		ownerID, year, month, len(result.Apartments))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
