package models

import (
	"time"

	"gorm.io/datatypes"
)

// RoomType is a class of room ("Standard", "Suite") shared by physical rooms,
// defining the nightly rate and guest capacity. Not owned by a single hotel.
type RoomType struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100" json:"name"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	BasePrice   float64        `gorm:"not null" json:"base_price"`
	Capacity    int            `gorm:"not null" json:"capacity"`
	Amenities   datatypes.JSON `json:"amenities,omitempty"`
	SizeSqm     *int           `json:"size_sqm,omitempty"`
	BedType     string         `gorm:"size:50" json:"bed_type,omitempty"` // "double", "twin", "king"

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (rt *RoomType) AmenityList() []string {
	return DecodeStringList(rt.Amenities)
}
