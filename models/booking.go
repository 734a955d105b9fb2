package models

import "time"

const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
	BookingCompleted = "completed"
)

// ValidBookingStatus reports whether s is one of the four booking states.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled, BookingCompleted:
		return true
	}
	return false
}

// Booking reserves one room for a guest over the half-open date range
// [CheckInDate, CheckOutDate). TotalPrice is fixed at creation time.
type Booking struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	CheckInDate     time.Time `gorm:"type:date;not null;index" json:"check_in_date"`
	CheckOutDate    time.Time `gorm:"type:date;not null;index" json:"check_out_date"`
	NumberOfGuests  int       `gorm:"not null;default:1" json:"number_of_guests"`
	TotalPrice      float64   `gorm:"not null" json:"total_price"`
	Status          string    `gorm:"size:20;not null;default:pending;index" json:"status"`
	SpecialRequests string    `gorm:"type:text" json:"special_requests,omitempty"`

	GuestID uint `gorm:"index;not null" json:"guest_id"`
	RoomID  uint `gorm:"index;not null" json:"room_id"`

	Guest    User      `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Room     Room      `gorm:"foreignKey:RoomID" json:"room,omitempty"`
	Payments []Payment `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
