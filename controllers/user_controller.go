package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (ctrl *UserController) GetProfile(c *gin.Context) {
	actor := actorFrom(c)
	user, err := ctrl.Users.Get(actor.UserID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

func (ctrl *UserController) UpdateProfile(c *gin.Context) {
	var patch services.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	actor := actorFrom(c)
	user, err := ctrl.Users.UpdateProfile(actor.UserID, patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

func (ctrl *UserController) ListUsers(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	users, err := ctrl.Users.List(actorFrom(c), skip, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

type rolePayload struct {
	Role string `json:"role" binding:"required"`
}

func (ctrl *UserController) UpdateRole(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var payload rolePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := ctrl.Users.UpdateRole(userID, payload.Role, actorFrom(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, user)
}

func (ctrl *UserController) DeleteUser(c *gin.Context) {
	userID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.Users.Delete(userID, actorFrom(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "user deleted"})
}
