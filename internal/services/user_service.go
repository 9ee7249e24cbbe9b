// internal/services/user_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftloom/handloom-backend/internal/models"
	"github.com/craftloom/handloom-backend/internal/utils"
)

type UserService struct {
	db *gorm.DB
}

type UpdateProfileRequest struct {
	Name         string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	Phone        string `json:"phone,omitempty"`
	ProfileImage string `json:"profile_image,omitempty"`
	Bio          string `json:"bio,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	Country      string `json:"country,omitempty"`
}

// UserFilter builds the admin listing predicate: exact role match plus a
// case-insensitive substring search over name OR email.
type UserFilter struct {
	Role   *models.Role
	Search string
}

func (f UserFilter) Apply(query *gorm.DB) *gorm.DB {
	if f.Role != nil {
		query = query.Where("role = ?", *f.Role)
	}

	if f.Search != "" {
		term := "%" + strings.ToLower(f.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", term, term)
	}

	return query
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) GetProfile(userID uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(userID uuid.UUID, req *UpdateProfileRequest) (*models.User, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Partial merge: absent fields keep their stored value.
	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = strings.TrimSpace(req.Name)
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email != user.Email {
			var existing models.User
			if err := s.db.Where("email = ? AND id <> ?", email, userID).First(&existing).Error; err == nil {
				return nil, ErrEmailTaken
			}
		}
		updates["email"] = email
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.ProfileImage != "" {
		updates["profile_image"] = req.ProfileImage
	}
	if req.Bio != "" {
		updates["bio"] = req.Bio
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.City != "" {
		updates["city"] = req.City
	}
	if req.Country != "" {
		updates["country"] = req.Country
	}

	if len(updates) > 0 {
		if err := s.db.Model(&user).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to reload profile: %w", err)
	}

	return &user, nil
}

func (s *UserService) ListUsers(filter UserFilter) ([]models.User, error) {
	query := filter.Apply(s.db.Model(&models.User{})).Order("created_at ASC")

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}

	return users, nil
}

// GetUser enforces the self-or-admin rule before returning the record.
func (s *UserService) GetUser(targetID uuid.UUID, actorID uuid.UUID, actorRole models.Role) (*models.User, error) {
	if !models.CanMutate(actorID, actorRole, targetID) {
		return nil, ErrForbidden
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return &user, nil
}

func (s *UserService) DeleteUser(targetID uuid.UUID, actorID uuid.UUID, actorRole models.Role) error {
	if !models.CanMutate(actorID, actorRole, targetID) {
		return ErrForbidden
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Delete(&user).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
