package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"
)

// transitions is the directed booking state graph. Cancelled and completed
// are terminal.
var transitions = map[string][]string{
	models.BookingPending:   {models.BookingConfirmed, models.BookingCancelled},
	models.BookingConfirmed: {models.BookingCompleted, models.BookingCancelled},
}

// CanTransition reports whether the booking state graph has an edge
// from -> to.
func CanTransition(from, to string) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// BookingService owns the booking lifecycle: atomic creation against
// availability, status transitions, and payment bookkeeping.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// CreateBookingInput carries the guest-supplied booking fields.
type CreateBookingInput struct {
	GuestID         uint
	RoomID          uint
	CheckIn         time.Time
	CheckOut        time.Time
	Guests          int
	SpecialRequests string
}

// Create books the room for [CheckIn, CheckOut) with status pending.
//
// The room row is locked FOR UPDATE before the conflict check, so two
// concurrent creations for the same room serialize and at most one of a
// pair of overlapping requests can commit.
func (s *BookingService) Create(in CreateBookingInput) (*models.Booking, error) {
	if !in.CheckOut.After(in.CheckIn) {
		return nil, ErrInvalidDateRange
	}
	if in.Guests <= 0 {
		return nil, ErrInvalidGuestCount
	}

	var bookingID uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to lock room: %w", err)
		}

		available, err := isAvailableTx(tx, in.RoomID, in.CheckIn, in.CheckOut)
		if err != nil {
			return err
		}
		if !available {
			return ErrRoomUnavailable
		}

		quote, err := quoteTx(tx, in.RoomID, in.CheckIn, in.CheckOut, in.Guests)
		if err != nil {
			return err
		}

		booking := models.Booking{
			CheckInDate:     utils.DateOnly(in.CheckIn),
			CheckOutDate:    utils.DateOnly(in.CheckOut),
			NumberOfGuests:  in.Guests,
			TotalPrice:      quote.TotalPrice,
			Status:          models.BookingPending,
			SpecialRequests: in.SpecialRequests,
			GuestID:         in.GuestID,
			RoomID:          in.RoomID,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		bookingID = booking.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.load(bookingID)
}

// load fetches a booking with its relations.
func (s *BookingService) load(bookingID uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.
		Preload("Room.RoomType").
		Preload("Room.Hotel").
		Preload("Guest").
		Preload("Payments").
		First(&booking, bookingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	return &booking, nil
}

// Get returns the booking when the requester is its guest, the owning
// hotel's manager, or an admin.
func (s *BookingService) Get(bookingID uint, actor Identity) (*models.Booking, error) {
	booking, err := s.load(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.GuestID != actor.UserID && !actor.ManagesHotel(&booking.Room.Hotel) {
		return nil, ErrForbidden
	}
	return booking, nil
}

// ListForGuest returns the guest's bookings, newest first.
func (s *BookingService) ListForGuest(guestID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Preload("Room.RoomType").
		Preload("Room.Hotel").
		Preload("Payments").
		Where("guest_id = ?", guestID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// ListForHotel returns a hotel's bookings for its manager or an admin,
// optionally filtered by status.
func (s *BookingService) ListForHotel(hotelID uint, status string, actor Identity) ([]models.Booking, error) {
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

	q := s.DB.
		Preload("Room.RoomType").
		Preload("Guest").
		Preload("Payments").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Where("rooms.hotel_id = ?", hotelID).
		Order("bookings.created_at DESC")
	if status != "" {
		if !models.ValidBookingStatus(status) {
			return nil, ErrInvalidStatus
		}
		q = q.Where("bookings.status = ?", status)
	}

	var bookings []models.Booking
	if err := q.Find(&bookings).Error; err != nil {
		return nil, fmt.Errorf("failed to list hotel bookings: %w", err)
	}
	return bookings, nil
}

// Cancel sets the booking to cancelled and stamps cancelled_at. Allowed for
// the booking's guest, the owning hotel's manager, or an admin, and only
// while the booking is pending or confirmed.
func (s *BookingService) Cancel(bookingID uint, actor Identity) (*models.Booking, error) {
	booking, err := s.load(bookingID)
	if err != nil {
		return nil, err
	}
	if booking.GuestID != actor.UserID && !actor.ManagesHotel(&booking.Room.Hotel) {
		return nil, ErrForbidden
	}
	return s.transition(booking, models.BookingCancelled)
}

// UpdateStatus moves the booking along the state graph. Restricted to the
// owning hotel's manager or an admin. Out-of-graph transitions are
// rejected; the surface deliberately does not accept arbitrary jumps.
func (s *BookingService) UpdateStatus(bookingID uint, newStatus string, actor Identity) (*models.Booking, error) {
	if !models.ValidBookingStatus(newStatus) {
		return nil, ErrInvalidStatus
	}
	booking, err := s.load(bookingID)
	if err != nil {
		return nil, err
	}
	if !actor.ManagesHotel(&booking.Room.Hotel) {
		return nil, ErrForbidden
	}
	return s.transition(booking, newStatus)
}

func (s *BookingService) transition(booking *models.Booking, newStatus string) (*models.Booking, error) {
	if !CanTransition(booking.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	updates := map[string]interface{}{"status": newStatus}
	if newStatus == models.BookingCancelled {
		updates["cancelled_at"] = time.Now().UTC()
	}
	if err := s.DB.Model(booking).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return s.load(booking.ID)
}

// CreatePayment records a pending payment against the caller's own booking.
// A transaction id is generated when the caller does not supply one.
func (s *BookingService) CreatePayment(bookingID uint, amount float64, method, transactionID string, actor Identity) (*models.Payment, error) {
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}
	// A guest paying someone else's booking learns nothing about it.
	if booking.GuestID != actor.UserID {
		return nil, ErrBookingNotFound
	}

	if transactionID == "" {
		transactionID = uuid.NewString()
	}
	payment := models.Payment{
		Amount:        amount,
		PaymentMethod: method,
		PaymentStatus: models.PaymentPending,
		TransactionID: transactionID,
		BookingID:     bookingID,
	}
	if err := s.DB.Create(&payment).Error; err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return &payment, nil
}

// UpdatePaymentStatus sets the payment state; completion stamps the
// payment date. Admin-gated by the routing layer and the policy table.
func (s *BookingService) UpdatePaymentStatus(paymentID uint, status, transactionID string, actor Identity) (*models.Payment, error) {
	if !actor.Can(ActionManagePayments) {
		return nil, ErrForbidden
	}
	if !models.ValidPaymentStatus(status) {
		return nil, ErrInvalidStatus
	}

	var payment models.Payment
	if err := s.DB.First(&payment, paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	updates := map[string]interface{}{"payment_status": status}
	if transactionID != "" {
		updates["transaction_id"] = transactionID
	}
	if status == models.PaymentCompleted {
		updates["payment_date"] = time.Now().UTC()
	}
	if err := s.DB.Model(&payment).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}
	return &payment, nil
}
