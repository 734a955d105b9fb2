package models

import (
	"time"

	"gorm.io/datatypes"
)

type Room struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	RoomNumber  string         `gorm:"size:20" json:"room_number"` // "101", "201A"
	Floor       *int           `json:"floor,omitempty"`
	IsAvailable bool           `gorm:"default:true" json:"is_available"`
	Images      datatypes.JSON `json:"images,omitempty"`

	HotelID    uint `gorm:"index;not null" json:"hotel_id"`
	RoomTypeID uint `gorm:"index;not null" json:"room_type_id"`

	Hotel    Hotel    `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"-"`
	RoomType RoomType `gorm:"foreignKey:RoomTypeID" json:"room_type,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
