package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

// UserService covers profile reads/updates and admin user management.
type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// UserPatch applies only the supplied fields.
type UserPatch struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
}

func (s *UserService) Get(userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// UpdateProfile patches the user's own profile field by field.
func (s *UserService) UpdateProfile(userID uint, patch UserPatch) (*models.User, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
	}
	if patch.Phone != nil {
		user.Phone = *patch.Phone
	}

	if err := s.DB.Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}
	return user, nil
}

// List pages through all users. Admin only.
func (s *UserService) List(actor Identity, offset, limit int) ([]models.User, error) {
	if !actor.Can(ActionManageUsers) {
		return nil, ErrForbidden
	}
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var users []models.User
	if err := s.DB.Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateRole changes a user's role. Admin only.
func (s *UserService) UpdateRole(userID uint, role string, actor Identity) (*models.User, error) {
	if !actor.Can(ActionManageUsers) {
		return nil, ErrForbidden
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	if err := s.DB.Model(user).Update("role", role).Error; err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	return user, nil
}

// Delete removes a user. Admin only.
func (s *UserService) Delete(userID uint, actor Identity) error {
	if !actor.Can(ActionManageUsers) {
		return ErrForbidden
	}
	res := s.DB.Delete(&models.User{}, userID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
