package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"
)

// blockingStatuses are the booking states that hold a room.
var blockingStatuses = []string{models.BookingPending, models.BookingConfirmed}

// AvailabilityService answers whether a room can host a stay over a
// half-open [checkIn, checkOut) date range.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// Overlaps reports whether the half-open intervals [aIn, aOut) and
// [bIn, bOut) intersect. Touching intervals do not overlap, so
// back-to-back stays on the same room are allowed.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && aOut.After(bIn)
}

// IsAvailable reports whether no pending or confirmed booking on the room
// conflicts with [checkIn, checkOut).
func (s *AvailabilityService) IsAvailable(roomID uint, checkIn, checkOut time.Time) (bool, error) {
	return isAvailableTx(s.DB, roomID, checkIn, checkOut)
}

// isAvailableTx runs the conflict check on the given handle so booking
// creation can evaluate it inside its own transaction.
func isAvailableTx(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var conflicts int64
	err := tx.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", blockingStatuses).
		Where("check_in_date < ? AND check_out_date > ?", checkOut, checkIn).
		Count(&conflicts).Error
	if err != nil {
		return false, fmt.Errorf("failed to count conflicting bookings: %w", err)
	}
	return conflicts == 0, nil
}

// AvailableRooms returns the hotel's rooms that are marked available, fit
// minGuests, and have no conflicting booking over the date range. Either
// both dates or neither must be supplied; without dates only the flag and
// capacity filters apply.
func (s *AvailabilityService) AvailableRooms(hotelID uint, checkIn, checkOut *time.Time, minGuests int) ([]models.Room, error) {
	q := s.DB.Model(&models.Room{}).
		Preload("RoomType").
		Joins("JOIN room_types ON room_types.id = rooms.room_type_id").
		Where("rooms.hotel_id = ? AND rooms.is_available = ?", hotelID, true)

	if minGuests > 0 {
		q = q.Where("room_types.capacity >= ?", minGuests)
	}
	if checkIn != nil && checkOut != nil {
		q = q.Where(
			`NOT EXISTS (
				SELECT 1 FROM bookings
				WHERE bookings.room_id = rooms.id
				  AND bookings.status IN ?
				  AND bookings.check_in_date < ? AND bookings.check_out_date > ?
			)`,
			blockingStatuses, *checkOut, *checkIn,
		)
	}

	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to list available rooms: %w", err)
	}
	return rooms, nil
}

// AvailableRoomInfo is one bookable room with its priced stay.
type AvailableRoomInfo struct {
	RoomID        uint            `json:"room_id"`
	RoomNumber    string          `json:"room_number"`
	Floor         *int            `json:"floor,omitempty"`
	RoomType      models.RoomType `json:"room_type"`
	Nights        int             `json:"nights"`
	PricePerNight float64         `json:"price_per_night"`
	TotalPrice    float64         `json:"total_price"`
}

// RoomTypeAvailability summarizes availability per room-type name.
type RoomTypeAvailability struct {
	RoomType       models.RoomType `json:"room_type"`
	TotalAvailable int             `json:"total_available"`
	MinPrice       float64         `json:"min_price"`
}

// HotelAvailability is the detailed availability view of one hotel.
type HotelAvailability struct {
	Hotel               models.Hotel                    `json:"hotel"`
	CheckIn             time.Time                       `json:"check_in"`
	CheckOut            time.Time                       `json:"check_out"`
	Guests              int                             `json:"guests"`
	TotalAvailableRooms int                             `json:"total_available_rooms"`
	RoomTypes           map[string]RoomTypeAvailability `json:"room_types_available"`
	AvailableRooms      []AvailableRoomInfo             `json:"available_rooms"`
}

// HotelAvailability lists every bookable room of the hotel for the stay,
// priced and grouped by room type.
func (s *AvailabilityService) HotelAvailability(hotelID uint, checkIn, checkOut time.Time, guests int) (*HotelAvailability, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to load hotel: %w", err)
	}

	rooms, err := s.AvailableRooms(hotelID, &checkIn, &checkOut, guests)
	if err != nil {
		return nil, err
	}

	nights := utils.Nights(checkIn, checkOut)
	infos := make([]AvailableRoomInfo, 0, len(rooms))
	for _, room := range rooms {
		infos = append(infos, AvailableRoomInfo{
			RoomID:        room.ID,
			RoomNumber:    room.RoomNumber,
			Floor:         room.Floor,
			RoomType:      room.RoomType,
			Nights:        nights,
			PricePerNight: room.RoomType.BasePrice,
			TotalPrice:    stayPrice(room.RoomType.BasePrice, nights),
		})
	}

	return &HotelAvailability{
		Hotel:               hotel,
		CheckIn:             checkIn,
		CheckOut:            checkOut,
		Guests:              guests,
		TotalAvailableRooms: len(infos),
		RoomTypes:           groupByRoomType(rooms),
		AvailableRooms:      infos,
	}, nil
}

// groupByRoomType counts available rooms per room-type name, keeping the
// lowest nightly rate seen for each.
func groupByRoomType(rooms []models.Room) map[string]RoomTypeAvailability {
	grouped := make(map[string]RoomTypeAvailability)
	for _, room := range rooms {
		name := room.RoomType.Name
		entry, ok := grouped[name]
		if !ok {
			entry = RoomTypeAvailability{RoomType: room.RoomType, MinPrice: room.RoomType.BasePrice}
		}
		entry.TotalAvailable++
		if room.RoomType.BasePrice < entry.MinPrice {
			entry.MinPrice = room.RoomType.BasePrice
		}
		grouped[name] = entry
	}
	return grouped
}

// stayPrice is the flat linear stay total; a degenerate stay falls back to
// one night's rate for display purposes.
func stayPrice(pricePerNight float64, nights int) float64 {
	if nights <= 0 {
		return pricePerNight
	}
	return pricePerNight * float64(nights)
}
