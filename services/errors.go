package services

import "errors"

// Domain error kinds. Controllers map these to HTTP statuses with errors.Is.
var (
	ErrInvalidDateRange   = errors.New("invalid date range")
	ErrInvalidAmount      = errors.New("amount must be positive")
	ErrInvalidGuestCount  = errors.New("number of guests must be positive")
	ErrCapacityExceeded   = errors.New("room capacity exceeded")
	ErrRoomUnavailable    = errors.New("room is not available for the selected dates")
	ErrRoomNotFound       = errors.New("room not found")
	ErrRoomTypeNotFound   = errors.New("room type not found")
	ErrHotelNotFound      = errors.New("hotel not found")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("incorrect email or password")
	ErrAccountDisabled    = errors.New("account is disabled")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrForbidden          = errors.New("not enough permissions")
)
