package domain

import "time"

// Booking represents a guest stay in an apartment, an atomic [CheckIn, CheckOut) interval
type Booking struct {
	ID          int64
	ApartmentID int64
	GuestName   string
	CheckIn     time.Time
	CheckOut    time.Time
	CreatedAt   time.Time
}

// HasValidRange returns true if check-in is strictly before check-out
func (b *Booking) HasValidRange() bool {
	return b.CheckIn.Before(b.CheckOut)
}

// Overlaps returns true if the booking intersects [checkIn, checkOut)
// Back-to-back stays (one checks out exactly when the other checks in) do not overlap
func (b *Booking) Overlaps(checkIn, checkOut time.Time) bool {
	return b.CheckIn.Before(checkOut) && checkIn.Before(b.CheckOut)
}

// BookingView is a booking joined with its apartment name and stored cleaning date
// Используется для календаря и графика уборок
type BookingView struct {
	Booking
	ApartmentName string
	CleaningDate  *time.Time
}

// DateRange is a closed [From, To] range of instants
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains returns true if t lies within the range (bounds included)
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && !t.After(r.To)
}

// MonthRange returns the range covering the whole calendar month in loc
func MonthRange(year int, month time.Month, loc *time.Location) DateRange {
	from := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return DateRange{
		From: from,
		To:   from.AddDate(0, 1, 0).Add(-time.Nanosecond),
	}
}

// StayPolicy turns calendar days into check-in and check-out instants.
// Stays are booked by day, the hours are fixed per deployment (15:00 in, 11:00 out by default)
type StayPolicy struct {
	Location     *time.Location
	CheckInHour  int
	CheckOutHour int
}

// DefaultStayPolicy returns the policy with default hours in UTC
func DefaultStayPolicy() StayPolicy {
	return StayPolicy{
		Location:     time.UTC,
		CheckInHour:  DefaultCheckInHour,
		CheckOutHour: DefaultCheckOutHour,
	}
}

// CheckInAt returns the check-in instant on the given day
func (p StayPolicy) CheckInAt(day time.Time) time.Time {
	return p.at(day, p.CheckInHour)
}

// CheckOutAt returns the check-out instant on the given day
func (p StayPolicy) CheckOutAt(day time.Time) time.Time {
	return p.at(day, p.CheckOutHour)
}

// Date returns midnight of the given calendar date in the policy location
func (p StayPolicy) Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, p.location())
}

// Day returns midnight of the day containing t in the policy location
func (p StayPolicy) Day(t time.Time) time.Time {
	return p.at(t, 0)
}

// DateKey formats the day containing t as YYYY-MM-DD in the policy location
func (p StayPolicy) DateKey(t time.Time) string {
	return t.In(p.location()).Format(DateFormat)
}

func (p StayPolicy) at(day time.Time, hour int) time.Time {
	loc := p.location()
	d := day.In(loc)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, loc)
}

func (p StayPolicy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}
