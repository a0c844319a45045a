package domain

import "time"

// Apartment represents a rental apartment whose bookings need cleaning between guests
type Apartment struct {
	ID        int64
	OwnerID   int64 // Владелец (X-User-ID), все выборки фильтруются по нему
	Name      string
	Location  string
	Size      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsOwnedBy returns true if the apartment belongs to the given owner
func (a *Apartment) IsOwnedBy(ownerID int64) bool {
	return a.OwnerID == ownerID
}
