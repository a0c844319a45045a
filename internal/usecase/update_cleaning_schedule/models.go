package update_cleaning_schedule

import "github.com/m04kA/SMC-CleaningScheduler/internal/domain"

// InputData бронирования, из-за которых пересчитывается график
type InputData struct {
	OwnerID int64

	// Bookings новые или удалённые бронирования, по ним считается диапазон пересчёта
	Bookings []domain.Booking
}

// Result итог пересчёта по бронированиям диапазона
type Result struct {
	Range       domain.DateRange
	Windows     []domain.CleaningWindow // по возрастанию BookingID
	Overlaps    []domain.OverlapGroup
	Assignments map[int64]domain.CleaningAssignment
	Changes     []domain.AssignmentChange
}
