package services

import "hotel-booking-backend/models"

// Identity is the resolved (userID, role) pair of an authenticated caller.
type Identity struct {
	UserID uint
	Role   string
}

// Action names a capability checked against the role policy table.
type Action string

const (
	ActionManageHotels    Action = "hotels.manage"     // create hotels, list own hotels
	ActionManageRoomTypes Action = "room_types.manage" // create room types
	ActionManageBookings  Action = "bookings.manage"   // hotel-side booking administration
	ActionManageUsers     Action = "users.manage"      // role changes, user deletion
	ActionManagePayments  Action = "payments.manage"   // payment status changes
)

// rolePolicy is the allow table; absent entries deny. Ownership of the
// concrete hotel/booking is checked separately where it applies.
var rolePolicy = map[string]map[Action]bool{
	models.RoleHotelManager: {
		ActionManageHotels:   true,
		ActionManageBookings: true,
	},
	models.RoleAdmin: {
		ActionManageHotels:    true,
		ActionManageRoomTypes: true,
		ActionManageBookings:  true,
		ActionManageUsers:     true,
		ActionManagePayments:  true,
	},
}

// Can reports whether the identity's role grants the action.
func (id Identity) Can(action Action) bool {
	return rolePolicy[id.Role][action]
}

// IsAdmin reports whether the identity carries the admin role.
func (id Identity) IsAdmin() bool {
	return id.Role == models.RoleAdmin
}

// ManagesHotel reports whether the identity may administer the hotel:
// its owning manager, or an admin.
func (id Identity) ManagesHotel(hotel *models.Hotel) bool {
	if id.IsAdmin() {
		return true
	}
	return id.Can(ActionManageBookings) && hotel.ManagerID == id.UserID
}
