package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

// HotelService manages the hotel side of the catalog.
type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// HotelInput carries the hotel creation fields.
type HotelInput struct {
	Name         string
	Description  string
	Address      string
	City         string
	Country      string
	Latitude     *float64
	Longitude    *float64
	StarRating   *int
	ContactEmail string
	ContactPhone string
	Amenities    []string
	Images       []string
}

// HotelPatch applies only the supplied fields.
type HotelPatch struct {
	Name         *string   `json:"name"`
	Description  *string   `json:"description"`
	Address      *string   `json:"address"`
	City         *string   `json:"city"`
	Country      *string   `json:"country"`
	Latitude     *float64  `json:"latitude"`
	Longitude    *float64  `json:"longitude"`
	StarRating   *int      `json:"star_rating"`
	ContactEmail *string   `json:"contact_email"`
	ContactPhone *string   `json:"contact_phone"`
	Amenities    *[]string `json:"amenities"`
	Images       *[]string `json:"images"`
	IsActive     *bool     `json:"is_active"`
}

// Create stores a hotel owned by the creating manager.
func (s *HotelService) Create(in HotelInput, managerID uint) (*models.Hotel, error) {
	hotel := models.Hotel{
		Name:         in.Name,
		Description:  in.Description,
		Address:      in.Address,
		City:         in.City,
		Country:      in.Country,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		StarRating:   in.StarRating,
		ContactEmail: in.ContactEmail,
		ContactPhone: in.ContactPhone,
		Amenities:    models.StringList(in.Amenities),
		Images:       models.StringList(in.Images),
		IsActive:     true,
		ManagerID:    managerID,
	}
	if err := s.DB.Create(&hotel).Error; err != nil {
		return nil, fmt.Errorf("failed to create hotel: %w", err)
	}
	return &hotel, nil
}

// Get loads a hotel regardless of its active flag.
func (s *HotelService) Get(hotelID uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to load hotel: %w", err)
	}
	return &hotel, nil
}

// GetActive loads a hotel for public display; disabled hotels read as
// not found.
func (s *HotelService) GetActive(hotelID uint) (*models.Hotel, error) {
	hotel, err := s.Get(hotelID)
	if err != nil {
		return nil, err
	}
	if !hotel.IsActive {
		return nil, ErrHotelNotFound
	}
	return hotel, nil
}

// ListByManager returns the hotels owned by the manager.
func (s *HotelService) ListByManager(managerID uint) ([]models.Hotel, error) {
	var hotels []models.Hotel
	if err := s.DB.Where("manager_id = ?", managerID).Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}
	return hotels, nil
}

// Update patches the hotel field by field. Owning manager or admin.
func (s *HotelService) Update(hotelID uint, patch HotelPatch, actor Identity) (*models.Hotel, error) {
	hotel, err := s.Get(hotelID)
	if err != nil {
		return nil, err
	}
	if !actor.ManagesHotel(hotel) {
		return nil, ErrForbidden
	}

	if patch.Name != nil {
		hotel.Name = *patch.Name
	}
	if patch.Description != nil {
		hotel.Description = *patch.Description
	}
	if patch.Address != nil {
		hotel.Address = *patch.Address
	}
	if patch.City != nil {
		hotel.City = *patch.City
	}
	if patch.Country != nil {
		hotel.Country = *patch.Country
	}
	if patch.Latitude != nil {
		hotel.Latitude = patch.Latitude
	}
	if patch.Longitude != nil {
		hotel.Longitude = patch.Longitude
	}
	if patch.StarRating != nil {
		hotel.StarRating = patch.StarRating
	}
	if patch.ContactEmail != nil {
		hotel.ContactEmail = *patch.ContactEmail
	}
	if patch.ContactPhone != nil {
		hotel.ContactPhone = *patch.ContactPhone
	}
	if patch.Amenities != nil {
		hotel.Amenities = models.StringList(*patch.Amenities)
	}
	if patch.Images != nil {
		hotel.Images = models.StringList(*patch.Images)
	}
	if patch.IsActive != nil {
		hotel.IsActive = *patch.IsActive
	}

	if err := s.DB.Save(hotel).Error; err != nil {
		return nil, fmt.Errorf("failed to update hotel: %w", err)
	}
	return hotel, nil
}

// Delete removes the hotel; its rooms cascade at the database level.
// Owning manager or admin.
func (s *HotelService) Delete(hotelID uint, actor Identity) error {
	hotel, err := s.Get(hotelID)
	if err != nil {
		return err
	}
	if !actor.ManagesHotel(hotel) {
		return ErrForbidden
	}
	if err := s.DB.Delete(hotel).Error; err != nil {
		return fmt.Errorf("failed to delete hotel: %w", err)
	}
	return nil
}
