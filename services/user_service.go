package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cdtello/nutri-fit-backend/dto"
	"github.com/cdtello/nutri-fit-backend/models"
	"github.com/cdtello/nutri-fit-backend/repositories"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UserService handles business logic for users
type UserService struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// ListActive retrieves all users in active status
func (s *UserService) ListActive() ([]models.User, error) {
	return s.userRepo.FindActive()
}

// Search retrieves users matching the given filters
func (s *UserService) Search(query dto.SearchUsersQuery) ([]models.User, error) {
	return s.userRepo.Search(query)
}

// Get retrieves a user by id
func (s *UserService) Get(id uint) (models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, NotFoundError{Message: fmt.Sprintf("User with id %d not found", id)}
		}
		return models.User{}, err
	}
	return user, nil
}

// Create registers a new user. The email is normalized before the
// uniqueness check; the storage-level unique index is the authoritative
// guard and its violation maps to the same Conflict error.
func (s *UserService) Create(req dto.CreateUserRequest) (models.User, error) {
	email := models.NormalizeEmail(req.Email)

	taken, err := s.userRepo.EmailTaken(email, 0)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ConflictError{Message: fmt.Sprintf("User with email %s already exists", email)}
	}

	role := models.RoleUser
	if req.Role != "" {
		role = models.UserRole(req.Role)
	}

	user := models.User{
		Name:        strings.TrimSpace(req.Name),
		Email:       email,
		Role:        role,
		Status:      models.StatusActive,
		Age:         req.Age,
		Avatar:      req.Avatar,
		Bio:         req.Bio,
		Phone:       req.Phone,
		Location:    req.Location,
		Specialties: datatypes.JSONSlice[string](req.Specialties),
	}

	created, err := s.userRepo.Create(user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ConflictError{Message: fmt.Sprintf("User with email %s already exists", email)}
		}
		return models.User{}, err
	}
	return created, nil
}

// Update applies a partial update to a user. Only supplied fields are
// overwritten; an email change is re-checked against other users.
func (s *UserService) Update(id uint, req dto.UpdateUserRequest) (models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return models.User{}, err
	}

	if req.Email != nil {
		email := models.NormalizeEmail(*req.Email)
		if email != user.Email {
			taken, err := s.userRepo.EmailTaken(email, user.ID)
			if err != nil {
				return models.User{}, err
			}
			if taken {
				return models.User{}, ConflictError{Message: fmt.Sprintf("User with email %s already exists", email)}
			}
		}
		user.Email = email
	}
	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Role != nil {
		user.Role = models.UserRole(*req.Role)
	}
	if req.Status != nil {
		user = user.WithStatus(models.UserStatus(*req.Status))
	}
	if req.Age != nil {
		user.Age = req.Age
	}
	if req.Avatar != nil {
		user.Avatar = *req.Avatar
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Specialties != nil {
		user.Specialties = datatypes.JSONSlice[string](req.Specialties)
	}
	if req.Stats != nil {
		stats := datatypes.NewJSONType(*req.Stats)
		user.Stats = &stats
	}

	saved, err := s.userRepo.Save(user)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ConflictError{Message: fmt.Sprintf("User with email %s already exists", user.Email)}
		}
		return models.User{}, err
	}
	return saved, nil
}

// Remove soft-deletes a user by moving it to inactive status. Removing
// an already-inactive user is a conflict.
func (s *UserService) Remove(id uint) (models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return models.User{}, err
	}
	if user.Status == models.StatusInactive {
		return models.User{}, ConflictError{Message: fmt.Sprintf("User with id %d is already inactive", id)}
	}
	return s.userRepo.Save(user.WithStatus(models.StatusInactive))
}
