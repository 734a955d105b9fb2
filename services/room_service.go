package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"
)

// RoomService manages rooms, room types and per-date price overrides.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

// RoomTypeInput carries the room-type creation fields.
type RoomTypeInput struct {
	Name        string
	Description string
	BasePrice   float64
	Capacity    int
	Amenities   []string
	SizeSqm     *int
	BedType     string
}

// CreateRoomType stores a room type. Admin only.
func (s *RoomService) CreateRoomType(in RoomTypeInput, actor Identity) (*models.RoomType, error) {
	if !actor.Can(ActionManageRoomTypes) {
		return nil, ErrForbidden
	}
	if in.BasePrice <= 0 {
		return nil, ErrInvalidAmount
	}
	if in.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", ErrCapacityExceeded)
	}

	roomType := models.RoomType{
		Name:        in.Name,
		Description: in.Description,
		BasePrice:   in.BasePrice,
		Capacity:    in.Capacity,
		Amenities:   models.StringList(in.Amenities),
		SizeSqm:     in.SizeSqm,
		BedType:     in.BedType,
	}
	if err := s.DB.Create(&roomType).Error; err != nil {
		return nil, fmt.Errorf("failed to create room type: %w", err)
	}
	return &roomType, nil
}

// ListRoomTypes returns every room type.
func (s *RoomService) ListRoomTypes() ([]models.RoomType, error) {
	var roomTypes []models.RoomType
	if err := s.DB.Find(&roomTypes).Error; err != nil {
		return nil, fmt.Errorf("failed to list room types: %w", err)
	}
	return roomTypes, nil
}

// RoomInput carries the room creation fields.
type RoomInput struct {
	RoomNumber string
	Floor      *int
	RoomTypeID uint
	Images     []string
}

// RoomPatch applies only the supplied fields.
type RoomPatch struct {
	RoomNumber  *string   `json:"room_number"`
	Floor       *int      `json:"floor"`
	IsAvailable *bool     `json:"is_available"`
	RoomTypeID  *uint     `json:"room_type_id"`
	Images      *[]string `json:"images"`
}

// CreateRoom adds a room to the hotel, verifying both referenced parents
// exist. Owning manager or admin.
func (s *RoomService) CreateRoom(hotelID uint, in RoomInput, actor Identity) (*models.Room, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to load hotel: %w", err)
	}
	if !actor.ManagesHotel(&hotel) {
		return nil, ErrForbidden
	}

	var roomType models.RoomType
	if err := s.DB.First(&roomType, in.RoomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("failed to load room type: %w", err)
	}

	room := models.Room{
		RoomNumber:  in.RoomNumber,
		Floor:       in.Floor,
		IsAvailable: true,
		Images:      models.StringList(in.Images),
		HotelID:     hotelID,
		RoomTypeID:  in.RoomTypeID,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	room.RoomType = roomType
	return &room, nil
}

// UpdateRoom patches the room field by field. Owning manager or admin.
func (s *RoomService) UpdateRoom(roomID uint, patch RoomPatch, actor Identity) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("Hotel").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}
	if !actor.ManagesHotel(&room.Hotel) {
		return nil, ErrForbidden
	}

	if patch.RoomNumber != nil {
		room.RoomNumber = *patch.RoomNumber
	}
	if patch.Floor != nil {
		room.Floor = patch.Floor
	}
	if patch.IsAvailable != nil {
		room.IsAvailable = *patch.IsAvailable
	}
	if patch.RoomTypeID != nil {
		var roomType models.RoomType
		if err := s.DB.First(&roomType, *patch.RoomTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrRoomTypeNotFound
			}
			return nil, fmt.Errorf("failed to load room type: %w", err)
		}
		room.RoomTypeID = *patch.RoomTypeID
	}
	if patch.Images != nil {
		room.Images = models.StringList(*patch.Images)
	}

	if err := s.DB.Save(&room).Error; err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	if err := s.DB.Preload("RoomType").First(&room, room.ID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload room: %w", err)
	}
	return &room, nil
}

// PriceOverrideInput is one per-date price/availability exception.
type PriceOverrideInput struct {
	Date        string
	Price       float64
	IsAvailable *bool
}

// UpsertPriceOverride stores the per-date exception for a room type,
// unique on (room_type, date). Reserved data: pricing and availability do
// not consult it yet. Admin or any hotel manager.
func (s *RoomService) UpsertPriceOverride(roomTypeID uint, in PriceOverrideInput, actor Identity) (*models.PriceOverride, error) {
	if !actor.Can(ActionManageHotels) {
		return nil, ErrForbidden
	}
	if in.Price <= 0 {
		return nil, ErrInvalidAmount
	}
	date, err := utils.ParseDate(in.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}

	var roomType models.RoomType
	if err := s.DB.First(&roomType, roomTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, fmt.Errorf("failed to load room type: %w", err)
	}

	available := true
	if in.IsAvailable != nil {
		available = *in.IsAvailable
	}
	override := models.PriceOverride{
		RoomTypeID:  roomTypeID,
		Date:        date,
		Price:       in.Price,
		IsAvailable: available,
	}
	err = s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "room_type_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "is_available", "updated_at"}),
	}).Create(&override).Error
	if err != nil {
		return nil, fmt.Errorf("failed to upsert price override: %w", err)
	}
	return &override, nil
}
