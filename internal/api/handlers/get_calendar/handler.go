package get_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningScheduler/internal/api/middleware"
	getCalendar "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/get_calendar"
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

// Handle GET /api/v1/calendar?year=2025&month=1
// Без параметров возвращается текущий месяц
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /calendar - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	year, month, err := handlers.MonthQuery(r, h.now())
	if err != nil {
		h.logger.Warn("GET /calendar - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		OwnerID: ownerID,
		Year:    year,
		Month:   month,
	})
	if err != nil {
		if errors.Is(err, getCalendar.ErrInvalidInput) {
			h.logger.Warn("GET /calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)
			return
		}
		h.logger.Error("GET /calendar - Failed to build calendar: owner_id=%d, error=%v", ownerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /calendar - Calendar built: owner_id=%d, month=%d-%02d", ownerID, year, month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
