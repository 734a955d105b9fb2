package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-booking-backend/models"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{models.BookingPending, models.BookingConfirmed, true},
		{models.BookingPending, models.BookingCancelled, true},
		{models.BookingPending, models.BookingCompleted, false},
		{models.BookingConfirmed, models.BookingCompleted, true},
		{models.BookingConfirmed, models.BookingCancelled, true},
		{models.BookingConfirmed, models.BookingPending, false},
		{models.BookingCancelled, models.BookingPending, false},
		{models.BookingCancelled, models.BookingConfirmed, false},
		{models.BookingCompleted, models.BookingCancelled, false},
		{models.BookingCompleted, models.BookingConfirmed, false},
		{models.BookingPending, models.BookingPending, false},
		{"bogus", models.BookingConfirmed, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestCreateRejectsInvalidDateRange(t *testing.T) {
	svc := NewBookingService(nil)

	_, err := svc.Create(CreateBookingInput{RoomID: 1, CheckIn: day(5), CheckOut: day(5), Guests: 1})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.Create(CreateBookingInput{RoomID: 1, CheckIn: day(5), CheckOut: day(3), Guests: 1})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCreateRejectsNonPositiveGuests(t *testing.T) {
	svc := NewBookingService(nil)

	_, err := svc.Create(CreateBookingInput{RoomID: 1, CheckIn: day(1), CheckOut: day(3), Guests: 0})
	assert.ErrorIs(t, err, ErrInvalidGuestCount)

	_, err = svc.Create(CreateBookingInput{RoomID: 1, CheckIn: day(1), CheckOut: day(3), Guests: -2})
	assert.ErrorIs(t, err, ErrInvalidGuestCount)
}

// expectBookingLoad scripts the booking fetch with its preloaded
// guest, payments, room, hotel and room type.
func expectBookingLoad(mock sqlmock.Sqlmock, status string) {
	mock.ExpectQuery("SELECT (.+) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "guest_id", "room_id"}).
			AddRow(1, status, 7, 2))
	mock.ExpectQuery("SELECT (.+) FROM `users`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
	mock.ExpectQuery("SELECT (.+) FROM `payments`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "room_type_id"}).AddRow(2, 3, 1))
	mock.ExpectQuery("SELECT (.+) FROM `hotels`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "manager_id"}).AddRow(3, 9))
	mock.ExpectQuery("SELECT (.+) FROM `room_types`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "base_price", "capacity"}).AddRow(1, 100, 2))
}

func TestCreateLocksRoomBeforeInsert(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBookingService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `rooms`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "room_type_id"}).AddRow(2, 3, 1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "room_type_id"}).AddRow(2, 3, 1))
	mock.ExpectQuery("SELECT (.+) FROM `room_types`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "base_price", "capacity"}).AddRow(1, 100, 2))
	mock.ExpectExec("INSERT INTO `bookings`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	expectBookingLoad(mock, models.BookingPending)

	booking, err := svc.Create(CreateBookingInput{
		GuestID: 7, RoomID: 2, CheckIn: day(5), CheckOut: day(8), Guests: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateConflictRollsBackWithoutInsert(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBookingService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `rooms`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "room_type_id"}).AddRow(2, 3, 1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := svc.Create(CreateBookingInput{
		GuestID: 7, RoomID: 2, CheckIn: day(5), CheckOut: day(8), Guests: 2,
	})
	assert.ErrorIs(t, err, ErrRoomUnavailable)
	// No INSERT expectation was scripted, so a leaked insert would fail here.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateCapacityExceededCreatesNothing(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBookingService(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM `rooms`(.+)FOR UPDATE").
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "room_type_id"}).AddRow(2, 3, 1))
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "room_type_id"}).AddRow(2, 3, 1))
	mock.ExpectQuery("SELECT (.+) FROM `room_types`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "base_price", "capacity"}).AddRow(1, 100, 2))
	mock.ExpectRollback()

	_, err := svc.Create(CreateBookingInput{
		GuestID: 7, RoomID: 2, CheckIn: day(5), CheckOut: day(8), Guests: 3,
	})
	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelStampsCancelledAt(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBookingService(db)

	expectBookingLoad(mock, models.BookingPending)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `bookings` SET `cancelled_at`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	expectBookingLoad(mock, models.BookingCancelled)

	booking, err := svc.Cancel(1, Identity{UserID: 7, Role: models.RoleGuest})
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, booking.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelCompletedBookingFails(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewBookingService(db)

	expectBookingLoad(mock, models.BookingCompleted)

	_, err := svc.Cancel(1, Identity{UserID: 7, Role: models.RoleGuest})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePaymentRejectsNonPositiveAmount(t *testing.T) {
	svc := NewBookingService(nil)

	_, err := svc.CreatePayment(1, 0, "card", "", Identity{UserID: 1, Role: models.RoleGuest})
	assert.ErrorIs(t, err, ErrInvalidAmount)

	_, err = svc.CreatePayment(1, -50, "card", "", Identity{UserID: 1, Role: models.RoleGuest})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestUpdatePaymentStatusRequiresAdmin(t *testing.T) {
	svc := NewBookingService(nil)

	for _, role := range []string{models.RoleGuest, models.RoleHotelManager} {
		_, err := svc.UpdatePaymentStatus(1, models.PaymentCompleted, "", Identity{UserID: 1, Role: role})
		assert.ErrorIs(t, err, ErrForbidden, "role %s", role)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewBookingService(nil)

	_, err := svc.UpdateStatus(1, "archived", Identity{UserID: 1, Role: models.RoleAdmin})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
