package scheduling

import "errors"

var (
	ErrNoBookings          = errors.New("scheduling: no bookings to derive pass range from")
	ErrInvalidBookingRange = errors.New("scheduling: booking check-in must be before check-out")
	ErrOverlappingBookings = errors.New("scheduling: bookings of one apartment overlap")
)
