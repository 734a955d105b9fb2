package models

import "time"

const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// ValidPaymentStatus reports whether s is one of the four payment states.
func ValidPaymentStatus(s string) bool {
	switch s {
	case PaymentPending, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	}
	return false
}

type Payment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Amount        float64    `gorm:"not null" json:"amount"`
	PaymentMethod string     `gorm:"size:50;not null" json:"payment_method"` // card, cash, ...
	PaymentStatus string     `gorm:"size:20;not null;default:pending" json:"payment_status"`
	TransactionID string     `gorm:"size:255" json:"transaction_id,omitempty"`
	PaymentDate   *time.Time `json:"payment_date,omitempty"` // set when the payment completes

	BookingID uint    `gorm:"index;not null" json:"booking_id"`
	Booking   Booking `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
