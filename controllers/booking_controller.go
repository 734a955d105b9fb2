package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type BookingController struct {
	Bookings     *services.BookingService
	Availability *services.AvailabilityService
	Pricing      *services.PricingService
}

func NewBookingController(
	bookings *services.BookingService,
	availability *services.AvailabilityService,
	pricing *services.PricingService,
) *BookingController {
	return &BookingController{Bookings: bookings, Availability: availability, Pricing: pricing}
}

type createBookingPayload struct {
	RoomID          uint   `json:"room_id" binding:"required"`
	CheckInDate     string `json:"check_in_date" binding:"required"`
	CheckOutDate    string `json:"check_out_date" binding:"required"`
	NumberOfGuests  int    `json:"number_of_guests" binding:"required,gt=0"`
	SpecialRequests string `json:"special_requests"`
}

// CreateBooking handles POST /bookings for the authenticated guest.
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	checkIn, err := utils.ParseDate(payload.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	checkOut, err := utils.ParseDate(payload.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}
	if !checkOut.After(checkIn) {
		utils.JSONError(c, http.StatusBadRequest, "check_out_date must be after check_in_date")
		return
	}

	actor := actorFrom(c)
	booking, err := ctrl.Bookings.Create(services.CreateBookingInput{
		GuestID:         actor.UserID,
		RoomID:          payload.RoomID,
		CheckIn:         checkIn,
		CheckOut:        checkOut,
		Guests:          payload.NumberOfGuests,
		SpecialRequests: payload.SpecialRequests,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// MyBookings handles GET /bookings/my.
func (ctrl *BookingController) MyBookings(c *gin.Context) {
	actor := actorFrom(c)
	bookings, err := ctrl.Bookings.ListForGuest(actor.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetBooking handles GET /bookings/:id for the owner or hotel staff.
func (ctrl *BookingController) GetBooking(c *gin.Context) {
	bookingID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.Bookings.Get(bookingID, actorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// CancelBooking handles PUT /bookings/:id/cancel.
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	bookingID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	booking, err := ctrl.Bookings.Cancel(bookingID, actorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// HotelBookings handles GET /hotels/:id/bookings with an optional
// status filter.
func (ctrl *BookingController) HotelBookings(c *gin.Context) {
	hotelID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	bookings, err := ctrl.Bookings.ListForHotel(hotelID, c.Query("status"), actorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

type statusPayload struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus handles PUT /bookings/:id/status for hotel staff.
func (ctrl *BookingController) UpdateStatus(c *gin.Context) {
	bookingID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var payload statusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := ctrl.Bookings.UpdateStatus(bookingID, payload.Status, actorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

type createPaymentPayload struct {
	BookingID     uint    `json:"booking_id" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" binding:"required"`
	TransactionID string  `json:"transaction_id"`
}

// CreatePayment handles POST /bookings/payments; the caller must own the
// booking.
func (ctrl *BookingController) CreatePayment(c *gin.Context) {
	var payload createPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	payment, err := ctrl.Bookings.CreatePayment(
		payload.BookingID,
		payload.Amount,
		payload.PaymentMethod,
		payload.TransactionID,
		actorFrom(c),
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, payment)
}

type paymentStatusPayload struct {
	Status        string `json:"status" binding:"required"`
	TransactionID string `json:"transaction_id"`
}

// UpdatePaymentStatus handles PUT /bookings/payments/:id/status.
// Admin only.
func (ctrl *BookingController) UpdatePaymentStatus(c *gin.Context) {
	paymentID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var payload paymentStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	payment, err := ctrl.Bookings.UpdatePaymentStatus(paymentID, payload.Status, payload.TransactionID, actorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payment)
}

// CheckAvailability handles GET /bookings/availability/check. Public;
// returns availability plus a one-guest estimate.
func (ctrl *BookingController) CheckAvailability(c *gin.Context) {
	roomID, err := parseRoomID(c.Query("room_id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid room_id")
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

	available, err := ctrl.Availability.IsAvailable(roomID, checkIn, checkOut)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	quote, err := ctrl.Pricing.Quote(roomID, checkIn, checkOut, 1)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"available":       available,
		"estimated_price": quote.TotalPrice,
		"nights":          quote.Nights,
	})
}
