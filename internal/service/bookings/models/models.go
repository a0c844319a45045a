package models

import (
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64             `json:"id"`
	ApartmentID int64             `json:"apartmentId"`
	GuestName   string            `json:"guestName"`
	CheckIn     time.Time         `json:"checkIn"`
	CheckOut    time.Time         `json:"checkOut"`
	CreatedAt   time.Time         `json:"createdAt"`
	Cleaning    *CleaningResponse `json:"cleaning,omitempty"`
}

// CleaningResponse окно и дата уборки после бронирования
// windowEnd = null: следующего заезда пока нет
type CleaningResponse struct {
	WindowStart  time.Time  `json:"windowStart"`
	WindowEnd    *time.Time `json:"windowEnd"`
	CleaningDate *time.Time `json:"cleaningDate"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		ApartmentID: b.ApartmentID,
		GuestName:   b.GuestName,
		CheckIn:     b.CheckIn,
		CheckOut:    b.CheckOut,
		CreatedAt:   b.CreatedAt,
	}
}

// FromDomainCleaningSchedule конвертирует запись графика уборки в DTO
func FromDomainCleaningSchedule(s *domain.CleaningSchedule) *CleaningResponse {
	if s == nil {
		return nil
	}

	return &CleaningResponse{
		WindowStart:  s.WindowStart,
		WindowEnd:    s.WindowEnd,
		CleaningDate: s.CleaningDate,
	}
}

// FromDomainBookingList конвертирует список бронирований с датами уборки в DTO
// Окно уборки в списке не заполняется, только дата
func FromDomainBookingList(bookings []*domain.Booking, cleaningDates map[int64]*time.Time) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		item := FromDomainBooking(booking)
		if item == nil {
			continue
		}
		if date, ok := cleaningDates[booking.ID]; ok {
			item.Cleaning = &CleaningResponse{
				WindowStart:  booking.CheckOut,
				CleaningDate: date,
			}
		}
		resp.Bookings = append(resp.Bookings, *item)
	}

	resp.Total = len(resp.Bookings)
	return resp
}
