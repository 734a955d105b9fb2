package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return db, mock
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                 string
		aIn, aOut, bIn, bOut int
		want                 bool
	}{
		{"identical", 1, 5, 1, 5, true},
		{"contained", 1, 10, 3, 5, true},
		{"partial front", 1, 5, 3, 8, true},
		{"partial back", 3, 8, 1, 5, true},
		{"one shared night", 1, 5, 4, 8, true},
		{"back to back", 1, 5, 5, 10, false},
		{"back to back reversed", 5, 10, 1, 5, false},
		{"disjoint", 1, 3, 7, 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(day(tt.aIn), day(tt.aOut), day(tt.bIn), day(tt.bOut))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsAvailable(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewAvailabilityService(db)

	// Conflicting booking present: not available.
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `bookings`").
		WithArgs(uint(1), models.BookingPending, models.BookingConfirmed, day(12), day(5)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	available, err := svc.IsAvailable(1, day(5), day(12))
	require.NoError(t, err)
	assert.False(t, available)

	// No conflicts: available.
	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `bookings`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	available, err = svc.IsAvailable(1, day(5), day(12))
	require.NoError(t, err)
	assert.True(t, available)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGroupByRoomType(t *testing.T) {
	standard := models.RoomType{Name: "Standard", BasePrice: 100, Capacity: 2}
	suite := models.RoomType{Name: "Suite", BasePrice: 400, Capacity: 5}
	rooms := []models.Room{
		{ID: 1, RoomType: standard},
		{ID: 2, RoomType: standard},
		{ID: 3, RoomType: suite},
	}

	grouped := groupByRoomType(rooms)
	require.Len(t, grouped, 2)
	assert.Equal(t, 2, grouped["Standard"].TotalAvailable)
	assert.Equal(t, 100.0, grouped["Standard"].MinPrice)
	assert.Equal(t, 1, grouped["Suite"].TotalAvailable)
	assert.Equal(t, 400.0, grouped["Suite"].MinPrice)
}

func TestStayPrice(t *testing.T) {
	assert.Equal(t, 200.0, stayPrice(100, 2))
	// Degenerate stay falls back to one night for display.
	assert.Equal(t, 100.0, stayPrice(100, 0))
}
