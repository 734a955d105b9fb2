package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hotel-booking-backend/models"
)

func TestRolePolicy(t *testing.T) {
	guest := Identity{UserID: 1, Role: models.RoleGuest}
	manager := Identity{UserID: 2, Role: models.RoleHotelManager}
	admin := Identity{UserID: 3, Role: models.RoleAdmin}

	assert.False(t, guest.Can(ActionManageHotels))
	assert.False(t, guest.Can(ActionManageBookings))
	assert.False(t, guest.Can(ActionManageUsers))
	assert.False(t, guest.Can(ActionManagePayments))

	assert.True(t, manager.Can(ActionManageHotels))
	assert.True(t, manager.Can(ActionManageBookings))
	assert.False(t, manager.Can(ActionManageRoomTypes))
	assert.False(t, manager.Can(ActionManageUsers))
	assert.False(t, manager.Can(ActionManagePayments))

	assert.True(t, admin.Can(ActionManageHotels))
	assert.True(t, admin.Can(ActionManageRoomTypes))
	assert.True(t, admin.Can(ActionManageBookings))
	assert.True(t, admin.Can(ActionManageUsers))
	assert.True(t, admin.Can(ActionManagePayments))

	// Unknown roles get nothing.
	assert.False(t, Identity{Role: "visitor"}.Can(ActionManageHotels))
}

func TestManagesHotel(t *testing.T) {
	hotel := &models.Hotel{ManagerID: 2}

	assert.False(t, Identity{UserID: 1, Role: models.RoleGuest}.ManagesHotel(hotel))
	assert.True(t, Identity{UserID: 2, Role: models.RoleHotelManager}.ManagesHotel(hotel))
	// A manager does not manage someone else's hotel.
	assert.False(t, Identity{UserID: 9, Role: models.RoleHotelManager}.ManagesHotel(hotel))
	// Admins manage every hotel.
	assert.True(t, Identity{UserID: 3, Role: models.RoleAdmin}.ManagesHotel(hotel))
	// A guest owning the same user id as the manager still gets nothing.
	assert.False(t, Identity{UserID: 2, Role: models.RoleGuest}.ManagesHotel(hotel))
}
