package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type HotelController struct {
	Hotels       *services.HotelService
	Rooms        *services.RoomService
	Availability *services.AvailabilityService
	Search       *services.SearchService
}

func NewHotelController(
	hotels *services.HotelService,
	rooms *services.RoomService,
	availability *services.AvailabilityService,
	search *services.SearchService,
) *HotelController {
	return &HotelController{Hotels: hotels, Rooms: rooms, Availability: availability, Search: search}
}

// ---------------------------
// Public: search & availability
// ---------------------------

// SearchHotels handles GET /hotels/search with optional
// city/country/date/guests/price/amenities filters.
func (ctrl *HotelController) SearchHotels(c *gin.Context) {
	filters := services.SearchFilters{
		City:    c.Query("city"),
		Country: c.Query("country"),
	}

	if raw := c.Query("check_in"); raw != "" {
		t, err := utils.ParseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		filters.CheckIn = &t
	}
	if raw := c.Query("check_out"); raw != "" {
		t, err := utils.ParseDate(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		filters.CheckOut = &t
	}
	if (filters.CheckIn == nil) != (filters.CheckOut == nil) {
		utils.JSONError(c, http.StatusBadRequest, "check_in and check_out must be supplied together")
		return
	}
	if raw := c.Query("guests"); raw != "" {
		guests, err := strconv.Atoi(raw)
		if err != nil || guests <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid guests")
			return
		}
		filters.Guests = guests
	}
	if raw := c.Query("min_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid min_price")
			return
		}
		filters.MinPrice = &price
	}
	if raw := c.Query("max_price"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid max_price")
			return
		}
		filters.MaxPrice = &price
	}
	if raw := c.Query("amenities"); raw != "" {
		for _, amenity := range strings.Split(raw, ",") {
			if a := strings.TrimSpace(amenity); a != "" {
				filters.Amenities = append(filters.Amenities, a)
			}
		}
	}

	results, err := ctrl.Search.SearchHotels(filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, results)
}

// HotelAvailability handles GET /hotels/availability/:id.
func (ctrl *HotelController) HotelAvailability(c *gin.Context) {
	hotelID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	checkIn, err := utils.ParseDate(c.Query("check_in"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(c.Query("check_out"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !checkOut.After(checkIn) {
		utils.JSONError(c, http.StatusBadRequest, "check_out must be after check_in")
		return
	}
	guests := 1
	if raw := c.Query("guests"); raw != "" {
		guests, err = strconv.Atoi(raw)
		if err != nil || guests <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid guests")
			return
		}
	}

	availability, err := ctrl.Availability.HotelAvailability(hotelID, checkIn, checkOut, guests)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, availability)
}

// PopularDestinations handles GET /hotels/destinations/popular.
func (ctrl *HotelController) PopularDestinations(c *gin.Context) {
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}
	if limit > 50 {
		limit = 50
	}

	destinations, err := ctrl.Search.PopularDestinations(limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, destinations)
}

// GetHotel handles GET /hotels/:id; disabled hotels read as not found.
func (ctrl *HotelController) GetHotel(c *gin.Context) {
	hotelID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	hotel, err := ctrl.Hotels.GetActive(hotelID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// ---------------------------
// Management
// ---------------------------

type hotelPayload struct {
	Name         string   `json:"name" binding:"required"`
	Description  string   `json:"description"`
	Address      string   `json:"address" binding:"required"`
	City         string   `json:"city" binding:"required"`
	Country      string   `json:"country" binding:"required"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	StarRating   *int     `json:"star_rating" binding:"omitempty,min=1,max=5"`
	ContactEmail string   `json:"contact_email" binding:"omitempty,email"`
	ContactPhone string   `json:"contact_phone"`
	Amenities    []string `json:"amenities"`
	Images       []string `json:"images"`
}

func (ctrl *HotelController) CreateHotel(c *gin.Context) {
	var payload hotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	actor := actorFrom(c)
	hotel, err := ctrl.Hotels.Create(services.HotelInput{
		Name:         payload.Name,
		Description:  payload.Description,
		Address:      payload.Address,
		City:         payload.City,
		Country:      payload.Country,
		Latitude:     payload.Latitude,
		Longitude:    payload.Longitude,
		StarRating:   payload.StarRating,
		ContactEmail: payload.ContactEmail,
		ContactPhone: payload.ContactPhone,
		Amenities:    payload.Amenities,
		Images:       payload.Images,
	}, actor.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

func (ctrl *HotelController) MyHotels(c *gin.Context) {
	actor := actorFrom(c)
	hotels, err := ctrl.Hotels.ListByManager(actor.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

func (ctrl *HotelController) UpdateHotel(c *gin.Context) {
	hotelID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var patch services.HotelPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	hotel, err := ctrl.Hotels.Update(hotelID, patch, actorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

func (ctrl *HotelController) DeleteHotel(c *gin.Context) {
	hotelID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Hotels.Delete(hotelID, actorFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "hotel deleted"})
}

// ---------------------------
// Room types & rooms
// ---------------------------

type roomTypePayload struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	BasePrice   float64  `json:"base_price" binding:"required,gt=0"`
	Capacity    int      `json:"capacity" binding:"required,gt=0"`
	Amenities   []string `json:"amenities"`
	SizeSqm     *int     `json:"size_sqm"`
	BedType     string   `json:"bed_type"`
}

func (ctrl *HotelController) CreateRoomType(c *gin.Context) {
	var payload roomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	roomType, err := ctrl.Rooms.CreateRoomType(services.RoomTypeInput{
		Name:        payload.Name,
		Description: payload.Description,
		BasePrice:   payload.BasePrice,
		Capacity:    payload.Capacity,
		Amenities:   payload.Amenities,
		SizeSqm:     payload.SizeSqm,
		BedType:     payload.BedType,
	}, actorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, roomType)
}

func (ctrl *HotelController) ListRoomTypes(c *gin.Context) {
	roomTypes, err := ctrl.Rooms.ListRoomTypes()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, roomTypes)
}

type roomPayload struct {
	RoomNumber string   `json:"room_number" binding:"required"`
	Floor      *int     `json:"floor"`
	RoomTypeID uint     `json:"room_type_id" binding:"required"`
	Images     []string `json:"images"`
}

func (ctrl *HotelController) CreateRoom(c *gin.Context) {
	hotelID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	room, err := ctrl.Rooms.CreateRoom(hotelID, services.RoomInput{
		RoomNumber: payload.RoomNumber,
		Floor:      payload.Floor,
		RoomTypeID: payload.RoomTypeID,
		Images:     payload.Images,
	}, actorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

func (ctrl *HotelController) UpdateRoom(c *gin.Context) {
	roomID, ok := uintParam(c, "roomID")
	if !ok {
		return
	}
	var patch services.RoomPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	room, err := ctrl.Rooms.UpdateRoom(roomID, patch, actorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

type priceOverridePayload struct {
	Date        string  `json:"date" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	IsAvailable *bool   `json:"is_available"`
}

// UpsertPriceOverride handles PUT /hotels/room-types/:id/pricing.
func (ctrl *HotelController) UpsertPriceOverride(c *gin.Context) {
	roomTypeID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var payload priceOverridePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	override, err := ctrl.Rooms.UpsertPriceOverride(roomTypeID, services.PriceOverrideInput{
		Date:        payload.Date,
		Price:       payload.Price,
		IsAvailable: payload.IsAvailable,
	}, actorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, override)
}
