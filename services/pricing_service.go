package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"
)

// PricingService prices a stay: flat per-night rate times calendar nights.
// No proration, seasonality or taxes; the booking manager relies on quotes
// being deterministic and side-effect free.
type PricingService struct {
	DB *gorm.DB
}

func NewPricingService(db *gorm.DB) *PricingService {
	return &PricingService{DB: db}
}

// Quote is a priced stay for one room.
type Quote struct {
	Nights        int     `json:"nights"`
	PricePerNight float64 `json:"price_per_night"`
	TotalPrice    float64 `json:"total_price"`
}

// Quote prices [checkIn, checkOut) for the room, validating the guest count
// against the room type's capacity.
func (s *PricingService) Quote(roomID uint, checkIn, checkOut time.Time, guests int) (Quote, error) {
	return quoteTx(s.DB, roomID, checkIn, checkOut, guests)
}

func quoteTx(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time, guests int) (Quote, error) {
	var room models.Room
	if err := tx.Preload("RoomType").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Quote{}, ErrRoomNotFound
		}
		return Quote{}, fmt.Errorf("failed to load room: %w", err)
	}
	return computeQuote(&room.RoomType, checkIn, checkOut, guests)
}

// computeQuote is the pure pricing rule: nights must be positive, guests
// must fit the capacity, total = base price x nights.
func computeQuote(roomType *models.RoomType, checkIn, checkOut time.Time, guests int) (Quote, error) {
	nights := utils.Nights(checkIn, checkOut)
	if nights <= 0 {
		return Quote{}, ErrInvalidDateRange
	}
	if guests > roomType.Capacity {
		return Quote{}, fmt.Errorf("%w: room sleeps at most %d guests", ErrCapacityExceeded, roomType.Capacity)
	}
	return Quote{
		Nights:        nights,
		PricePerNight: roomType.BasePrice,
		TotalPrice:    roomType.BasePrice * float64(nights),
	}, nil
}
