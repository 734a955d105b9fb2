package models

import "time"

const (
	RoleGuest        = "guest"
	RoleHotelManager = "hotel_manager"
	RoleAdmin        = "admin"
)

// ValidRole reports whether s is one of the three known roles.
func ValidRole(s string) bool {
	switch s {
	case RoleGuest, RoleHotelManager, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Email        string `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	FirstName    string `gorm:"size:100" json:"first_name"`
	LastName     string `gorm:"size:100" json:"last_name"`
	Phone        string `gorm:"size:20" json:"phone,omitempty"`
	Role         string `gorm:"size:20;default:guest;index" json:"role"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
