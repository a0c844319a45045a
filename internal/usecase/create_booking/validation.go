package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.OwnerID <= 0 {
		return fmt.Errorf("%w: ownerID must be positive", ErrInvalidInput)
	}

	if req.ApartmentID <= 0 {
		return fmt.Errorf("%w: apartmentID must be positive", ErrInvalidInput)
	}

	guestName := strings.TrimSpace(req.GuestName)
	if guestName == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}

	if len(guestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guestName must be at most %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if req.CheckIn.IsZero() || req.CheckOut.IsZero() {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidInput)
	}

	return nil
}

// validateStay проверяет, что заезд не раньше сегодняшнего дня и выезд строго после заезда
func validateStay(checkIn, checkOut, now time.Time, policy domain.StayPolicy) error {
	if !checkIn.Before(checkOut) {
		return fmt.Errorf("%w: check-out %s must be after check-in %s",
			ErrInvalidDate, checkOut.Format(domain.DateTimeFormat), checkIn.Format(domain.DateTimeFormat))
	}

	if policy.Day(checkIn).Before(policy.Day(now)) {
		return fmt.Errorf("%w: check-in %s is in the past", ErrInvalidDate, policy.DateKey(checkIn))
	}

	return nil
}
