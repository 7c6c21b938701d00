package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

type BookingType string

const (
	BookingTypeFlight  BookingType = "flight"
	BookingTypeHotel   BookingType = "hotel"
	BookingTypePackage BookingType = "package"
)

func (t BookingType) Valid() bool {
	switch t {
	case BookingTypeFlight, BookingTypeHotel, BookingTypePackage:
		return true
	}
	return false
}

// Booking is a reservation of a catalog item. TotalPrice is kept as the
// decimal string the client submitted; Details is a JSON document describing
// the booked item.
type Booking struct {
	ID         int64
	UserID     *int64
	Reference  string
	Type       BookingType
	ItemID     int64
	StartDate  string
	EndDate    string
	TotalPrice string
	Status     BookingStatus
	Details    string
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (b *Booking) OwnedBy(userID int64) bool {
	return b.UserID != nil && *b.UserID == userID
}
