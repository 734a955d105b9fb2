package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"
)

// SearchService filters and ranks hotels by location, amenities, price and
// computed availability.
type SearchService struct {
	DB           *gorm.DB
	Availability *AvailabilityService
}

func NewSearchService(db *gorm.DB, availability *AvailabilityService) *SearchService {
	return &SearchService{DB: db, Availability: availability}
}

// SearchFilters are the optional hotel search criteria.
type SearchFilters struct {
	City      string
	Country   string
	CheckIn   *time.Time
	CheckOut  *time.Time
	Guests    int
	MinPrice  *float64
	MaxPrice  *float64
	Amenities []string
}

// RoomTypeSummary is the per-type availability count in a search result.
type RoomTypeSummary struct {
	Count    int     `json:"count"`
	MinPrice float64 `json:"min_price"` // nightly rate
	Capacity int     `json:"capacity"`
}

// HotelSearchResult is one ranked hotel with its availability summary.
type HotelSearchResult struct {
	ID             uint                       `json:"id"`
	Name           string                     `json:"name"`
	Description    string                     `json:"description,omitempty"`
	Address        string                     `json:"address"`
	City           string                     `json:"city"`
	Country        string                     `json:"country"`
	StarRating     *int                       `json:"star_rating,omitempty"`
	Amenities      []string                   `json:"amenities"`
	Images         []string                   `json:"images"`
	MinPrice       float64                    `json:"min_price"`
	AvailableRooms int                        `json:"available_rooms"`
	RoomTypes      map[string]RoomTypeSummary `json:"room_types_available"`
	TotalRoomTypes int                        `json:"total_room_types"`
}

// SearchHotels returns active hotels matching the filters, each with at
// least one available room. Sorted ascending by minimum price when a price
// bound was given, otherwise descending by star rating.
func (s *SearchService) SearchHotels(f SearchFilters) ([]HotelSearchResult, error) {
	q := s.DB.Where("is_active = ?", true)
	if f.City != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(f.City)+"%")
	}
	if f.Country != "" {
		q = q.Where("LOWER(country) LIKE ?", "%"+strings.ToLower(f.Country)+"%")
	}

	var hotels []models.Hotel
	if err := q.Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotels: %w", err)
	}

	nights := 0
	if f.CheckIn != nil && f.CheckOut != nil {
		nights = utils.Nights(*f.CheckIn, *f.CheckOut)
	}

	results := make([]HotelSearchResult, 0, len(hotels))
	for i := range hotels {
		hotel := &hotels[i]
		if !hasAllAmenities(hotel.AmenityList(), f.Amenities) {
			continue
		}

		rooms, err := s.Availability.AvailableRooms(hotel.ID, f.CheckIn, f.CheckOut, f.Guests)
		if err != nil {
			return nil, err
		}
		if len(rooms) == 0 {
			continue
		}

		minPrice := minStayPrice(rooms, nights)
		if f.MinPrice != nil && minPrice < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && minPrice > *f.MaxPrice {
			continue
		}

		summary := summarizeRoomTypes(rooms)
		results = append(results, HotelSearchResult{
			ID:             hotel.ID,
			Name:           hotel.Name,
			Description:    hotel.Description,
			Address:        hotel.Address,
			City:           hotel.City,
			Country:        hotel.Country,
			StarRating:     hotel.StarRating,
			Amenities:      orEmpty(hotel.AmenityList()),
			Images:         orEmpty(hotel.ImageList()),
			MinPrice:       minPrice,
			AvailableRooms: len(rooms),
			RoomTypes:      summary,
			TotalRoomTypes: len(summary),
		})
	}

	sortSearchResults(results, f.MinPrice != nil || f.MaxPrice != nil)
	return results, nil
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

// hasAllAmenities reports whether every required amenity is present,
// case-insensitively.
func hasAllAmenities(have, required []string) bool {
	if len(required) == 0 {
		return true
	}
	set := make(map[string]bool, len(have))
	for _, a := range have {
		set[strings.ToLower(strings.TrimSpace(a))] = true
	}
	for _, want := range required {
		if !set[strings.ToLower(strings.TrimSpace(want))] {
			return false
		}
	}
	return true
}

// minStayPrice is the lowest stay total across the rooms: nightly rate
// times nights when a date range was given, else the bare nightly rate.
func minStayPrice(rooms []models.Room, nights int) float64 {
	min := 0.0
	for i, room := range rooms {
		price := stayPrice(room.RoomType.BasePrice, nights)
		if i == 0 || price < min {
			min = price
		}
	}
	return min
}

// summarizeRoomTypes counts available rooms grouped by room-type name.
func summarizeRoomTypes(rooms []models.Room) map[string]RoomTypeSummary {
	grouped := make(map[string]RoomTypeSummary)
	for _, room := range rooms {
		name := room.RoomType.Name
		entry, ok := grouped[name]
		if !ok {
			entry = RoomTypeSummary{
				MinPrice: room.RoomType.BasePrice,
				Capacity: room.RoomType.Capacity,
			}
		}
		entry.Count++
		if room.RoomType.BasePrice < entry.MinPrice {
			entry.MinPrice = room.RoomType.BasePrice
		}
		grouped[name] = entry
	}
	return grouped
}

// sortSearchResults ranks by minimum price ascending when a price bound was
// part of the query, otherwise by star rating descending (unrated sorts as
// zero). Stable so equal hotels keep their scan order.
func sortSearchResults(results []HotelSearchResult, byPrice bool) {
	if byPrice {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].MinPrice < results[j].MinPrice
		})
		return
	}
	sort.SliceStable(results, func(i, j int) bool {
		return ratingOrZero(results[i].StarRating) > ratingOrZero(results[j].StarRating)
	})
}

func ratingOrZero(rating *int) int {
	if rating == nil {
		return 0
	}
	return *rating
}

// Destination is a (city, country) pair ranked by booking volume.
type Destination struct {
	City       string `json:"city"`
	Country    string `json:"country"`
	Popularity int64  `json:"popularity"`
}

// PopularDestinations counts confirmed and completed bookings per
// (city, country), most booked first.
func (s *SearchService) PopularDestinations(limit int) ([]Destination, error) {
	if limit <= 0 {
		limit = 10
	}

	var destinations []Destination
	err := s.DB.Model(&models.Booking{}).
		Select("hotels.city AS city, hotels.country AS country, COUNT(bookings.id) AS popularity").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
		Where("bookings.status IN ?", []string{models.BookingConfirmed, models.BookingCompleted}).
		Group("hotels.city, hotels.country").
		Order("popularity DESC").
		Limit(limit).
		Scan(&destinations).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate destinations: %w", err)
	}
	return destinations, nil
}
