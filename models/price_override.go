package models

import "time"

// PriceOverride is a per-date price/availability exception for a room type.
// Reserved for date-based pricing: the pricing calculator and availability
// engine do not consult it yet.
type PriceOverride struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RoomTypeID  uint      `gorm:"not null;uniqueIndex:idx_room_type_date" json:"room_type_id"`
	Date        time.Time `gorm:"type:date;not null;uniqueIndex:idx_room_type_date" json:"date"`
	Price       float64   `gorm:"not null" json:"price"`
	IsAvailable bool      `gorm:"default:true" json:"is_available"`

	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
