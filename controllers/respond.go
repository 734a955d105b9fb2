package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/middleware"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

// respondServiceError maps domain errors to HTTP statuses. Anything
// unrecognized is an internal error and gets logged.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidAmount),
		errors.Is(err, services.ErrInvalidGuestCount),
		errors.Is(err, services.ErrCapacityExceeded),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidRole),
		errors.Is(err, services.ErrInvalidTransition),
		errors.Is(err, services.ErrEmailTaken):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrForbidden),
		errors.Is(err, services.ErrAccountDisabled):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrRoomTypeNotFound),
		errors.Is(err, services.ErrHotelNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrPaymentNotFound),
		errors.Is(err, services.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrRoomUnavailable):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}

// actorFrom builds the service identity from the authenticated request.
func actorFrom(c *gin.Context) services.Identity {
	userID, role := middleware.CurrentUser(c)
	return services.Identity{UserID: userID, Role: role}
}

// parseRoomID parses a numeric id from a query value.
func parseRoomID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}

// uintParam parses a numeric path parameter.
func uintParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
