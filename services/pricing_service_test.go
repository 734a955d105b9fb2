package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-booking-backend/models"
)

func TestComputeQuoteLinear(t *testing.T) {
	roomType := &models.RoomType{Name: "Standard", BasePrice: 100, Capacity: 2}

	for nights := 1; nights <= 14; nights++ {
		quote, err := computeQuote(roomType, day(1), day(1+nights), 2)
		require.NoError(t, err)
		assert.Equal(t, nights, quote.Nights)
		assert.Equal(t, 100.0*float64(nights), quote.TotalPrice)
	}
}

func TestComputeQuoteMonotonicInNights(t *testing.T) {
	roomType := &models.RoomType{BasePrice: 79.5, Capacity: 4}

	prev := 0.0
	for nights := 1; nights <= 30; nights++ {
		quote, err := computeQuote(roomType, day(1), day(1+nights), 1)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, quote.TotalPrice, prev)
		prev = quote.TotalPrice
	}
}

func TestComputeQuoteInvalidDateRange(t *testing.T) {
	roomType := &models.RoomType{BasePrice: 100, Capacity: 2}

	_, err := computeQuote(roomType, day(5), day(5), 1)
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = computeQuote(roomType, day(5), day(2), 1)
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestComputeQuoteCapacityExceeded(t *testing.T) {
	roomType := &models.RoomType{BasePrice: 100, Capacity: 2}

	_, err := computeQuote(roomType, day(1), day(3), 3)
	assert.ErrorIs(t, err, ErrCapacityExceeded)

	// At capacity is allowed.
	quote, err := computeQuote(roomType, day(1), day(3), 2)
	require.NoError(t, err)
	assert.Equal(t, 200.0, quote.TotalPrice)
}

func TestQuoteRoomNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewPricingService(db)

	mock.ExpectQuery("SELECT (.+) FROM `rooms`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Quote(99, day(1), day(3), 1)
	assert.ErrorIs(t, err, ErrRoomNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
