package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

type Hotel struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Name         string         `gorm:"size:255;index" json:"name"`
	Description  string         `gorm:"type:text" json:"description,omitempty"`
	Address      string         `gorm:"type:text" json:"address"`
	City         string         `gorm:"size:100;index" json:"city"`
	Country      string         `gorm:"size:100;index" json:"country"`
	Latitude     *float64       `json:"latitude,omitempty"`
	Longitude    *float64       `json:"longitude,omitempty"`
	StarRating   *int           `json:"star_rating,omitempty"` // 1-5, nil when unrated
	ContactEmail string         `gorm:"size:255" json:"contact_email,omitempty"`
	ContactPhone string         `gorm:"size:20" json:"contact_phone,omitempty"`
	Amenities    datatypes.JSON `json:"amenities,omitempty"`
	Images       datatypes.JSON `json:"images,omitempty"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`

	ManagerID uint `gorm:"index" json:"manager_id"`
	Manager   User `gorm:"foreignKey:ManagerID" json:"-"`

	Rooms []Room `gorm:"foreignKey:HotelID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AmenityList decodes the amenities JSON column into a string slice.
// Malformed or empty columns decode to nil.
func (h *Hotel) AmenityList() []string {
	return DecodeStringList(h.Amenities)
}

// ImageList decodes the images JSON column into a string slice.
func (h *Hotel) ImageList() []string {
	return DecodeStringList(h.Images)
}

// DecodeStringList decodes a JSON array column into a string slice.
func DecodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// StringList marshals a string slice into a JSON column value.
func StringList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, _ := json.Marshal(values)
	return datatypes.JSON(raw)
}
