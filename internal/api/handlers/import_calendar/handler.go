package import_calendar

import (
	"bufio"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CleaningScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-CleaningScheduler/internal/api/middleware"
	importCalendar "github.com/m04kA/SMC-CleaningScheduler/internal/usecase/import_calendar"
)

const (
	// formFileField имя поля multipart формы с файлом календаря
	formFileField = "ics_file"

	// maxCalendarBytes ограничение размера ICS файла
	maxCalendarBytes = 5 << 20

	msgMissingUserID     = "отсутствует ID пользователя"
	msgMissingFile       = "не передан файл календаря (поле ics_file или тело запроса)"
	msgInvalidCalendar   = "некорректный файл календаря"
	msgEmptyCalendar     = "в календаре нет бронирований"
	msgApartmentNotFound = "квартира из PRODID календаря не найдена"
	msgInvalidDate       = "некорректные даты бронирования в календаре"
	msgBookingOverlap    = "бронирование из календаря пересекается с существующим"
)

var errEmptyBody = errors.New("empty request body")

type Handler struct {
	useCase ImportCalendarUseCase
	logger  Logger
}

func NewHandler(useCase ImportCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/calendar/import
// Принимает ICS файл в поле ics_file multipart формы или сырым телом запроса
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /calendar/import - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxCalendarBytes)

	calendar, closeFn, err := calendarReader(r)
	if err != nil {
		h.logger.Warn("POST /calendar/import - Failed to read calendar file: %v", err)
		handlers.RespondBadRequest(w, msgMissingFile)
		return
	}
	defer closeFn()

	result, err := h.useCase.Execute(r.Context(), &importCalendar.Request{
		OwnerID:  ownerID,
		Calendar: calendar,
	})
	if err != nil {
		switch {
		case errors.Is(err, importCalendar.ErrInvalidCalendar):
			h.logger.Warn("POST /calendar/import - Invalid calendar: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCalendar)

		case errors.Is(err, importCalendar.ErrEmptyCalendar):
			h.logger.Warn("POST /calendar/import - Empty calendar: owner_id=%d", ownerID)
			handlers.RespondBadRequest(w, msgEmptyCalendar)

		case errors.Is(err, importCalendar.ErrApartmentNotFound):
			h.logger.Warn("POST /calendar/import - Apartment not found: %v", err)
			handlers.RespondNotFound(w, msgApartmentNotFound)

		case errors.Is(err, importCalendar.ErrInvalidDate), errors.Is(err, importCalendar.ErrInvalidInput):
			h.logger.Warn("POST /calendar/import - Invalid event: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate+": "+err.Error())

		case errors.Is(err, importCalendar.ErrBookingOverlap):
			h.logger.Warn("POST /calendar/import - Overlap: %v", err)
			handlers.RespondConflict(w, msgBookingOverlap+": "+err.Error())

		default:
			h.logger.Error("POST /calendar/import - Failed to import calendar: owner_id=%d, error=%v", ownerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /calendar/import - Calendar imported: owner_id=%d, apartment_id=%d, bookings=%d",
		ownerID, result.ApartmentID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// calendarReader возвращает содержимое файла из multipart формы или тело запроса
func calendarReader(r *http.Request) (io.Reader, func(), error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		file, _, err := r.FormFile(formFileField)
		if err != nil {
			return nil, nil, err
		}
		return file, func() { _ = file.Close() }, nil
	}

	if r.Body == nil || r.Body == http.NoBody {
		return nil, nil, errEmptyBody
	}

	// Длина тела может быть неизвестна (chunked), поэтому пустоту проверяем чтением
	body := bufio.NewReader(r.Body)
	if _, err := body.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, errEmptyBody
		}
		return nil, nil, err
	}
	return body, func() {}, nil
}
