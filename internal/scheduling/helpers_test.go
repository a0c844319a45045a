package scheduling

import (
	"math/rand"
	"time"

	"github.com/m04kA/SMC-CleaningScheduler/internal/domain"
)

var base = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// at returns base + day days + hour hours
func at(day, hour int) time.Time {
	return base.AddDate(0, 0, day).Add(time.Duration(hour) * time.Hour)
}

func booking(id, apartmentID int64, checkIn, checkOut time.Time) domain.Booking {
	return domain.Booking{
		ID:          id,
		ApartmentID: apartmentID,
		GuestName:   "guest",
		CheckIn:     checkIn,
		CheckOut:    checkOut,
	}
}

// randomBookings generates non-overlapping stays for several apartments
func randomBookings(rnd *rand.Rand, apartments, perApartment int) []domain.Booking {
	var bookings []domain.Booking
	id := int64(1)
	for apt := int64(1); apt <= int64(apartments); apt++ {
		cursor := at(rnd.Intn(10), 0)
		for i := 0; i < perApartment; i++ {
			// Иногда выезд и заезд совпадают по времени
			if rnd.Intn(4) > 0 {
				cursor = cursor.Add(time.Duration(rnd.Intn(96)) * time.Hour)
			}
			checkIn := cursor
			checkOut := checkIn.Add(time.Duration(1+rnd.Intn(120)) * time.Hour)
			bookings = append(bookings, booking(id, apt, checkIn, checkOut))
			id++
			cursor = checkOut
		}
	}
	rnd.Shuffle(len(bookings), func(i, j int) { bookings[i], bookings[j] = bookings[j], bookings[i] })
	return bookings
}
