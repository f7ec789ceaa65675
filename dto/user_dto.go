package dto

import (
	"github.com/cdtello/nutri-fit-backend/models"
)

// CreateUserRequest is the payload for registering a new user
type CreateUserRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Email       string   `json:"email" binding:"required,email,max=255"`
	Role        string   `json:"role" binding:"omitempty,oneof=admin trainer nutritionist user guest"`
	Age         *int     `json:"age" binding:"omitempty,gte=0,lte=120"`
	Avatar      string   `json:"avatar" binding:"omitempty,url,max=500"`
	Bio         string   `json:"bio" binding:"omitempty,max=1000"`
	Phone       string   `json:"phone" binding:"omitempty,max=30"`
	Location    string   `json:"location" binding:"omitempty,max=100"`
	Specialties []string `json:"specialties" binding:"omitempty,dive,max=50"`
}

// UpdateUserRequest is the payload for partially updating a user.
// Only non-nil fields are applied.
type UpdateUserRequest struct {
	Name        *string           `json:"name" binding:"omitempty,max=100"`
	Email       *string           `json:"email" binding:"omitempty,email,max=255"`
	Role        *string           `json:"role" binding:"omitempty,oneof=admin trainer nutritionist user guest"`
	Status      *string           `json:"status" binding:"omitempty,oneof=active inactive pending suspended banned"`
	Age         *int              `json:"age" binding:"omitempty,gte=0,lte=120"`
	Avatar      *string           `json:"avatar" binding:"omitempty,url,max=500"`
	Bio         *string           `json:"bio" binding:"omitempty,max=1000"`
	Phone       *string           `json:"phone" binding:"omitempty,max=30"`
	Location    *string           `json:"location" binding:"omitempty,max=100"`
	Specialties []string          `json:"specialties" binding:"omitempty,dive,max=50"`
	Stats       *models.UserStats `json:"stats" binding:"omitempty"`
}

// SearchUsersQuery carries the optional filters for user search.
// Name, email and location are case-insensitive partial matches;
// role and status are exact matches.
type SearchUsersQuery struct {
	Name     string `form:"name"`
	Email    string `form:"email"`
	Role     string `form:"role" binding:"omitempty,oneof=admin trainer nutritionist user guest"`
	Status   string `form:"status" binding:"omitempty,oneof=active inactive pending suspended banned"`
	Location string `form:"location"`
}

// UserResponse is the structure for user responses
type UserResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Email       string            `json:"email"`
	Role        string            `json:"role"`
	Status      string            `json:"status"`
	IsActive    bool              `json:"isActive"`
	JoinedDate  string            `json:"joinedDate"`
	Age         *int              `json:"age,omitempty"`
	AgeGroup    string            `json:"ageGroup,omitempty"`
	Avatar      string            `json:"avatar,omitempty"`
	Bio         string            `json:"bio,omitempty"`
	Phone       string            `json:"phone,omitempty"`
	Location    string            `json:"location,omitempty"`
	Specialties []string          `json:"specialties,omitempty"`
	Stats       *models.UserStats `json:"stats,omitempty"`
}

// NewUserResponse shapes a user record for the API
func NewUserResponse(user models.User) UserResponse {
	resp := UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        string(user.Role),
		Status:      string(user.Status),
		IsActive:    user.IsActive(),
		JoinedDate:  user.JoinedDate(),
		Age:         user.Age,
		AgeGroup:    user.AgeGroup(),
		Avatar:      user.Avatar,
		Bio:         user.Bio,
		Phone:       user.Phone,
		Location:    user.Location,
		Specialties: []string(user.Specialties),
	}
	if user.Stats != nil {
		stats := user.Stats.Data()
		resp.Stats = &stats
	}
	return resp
}

// NewUserListResponse shapes a list of user records for the API
func NewUserListResponse(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, NewUserResponse(user))
	}
	return responses
}
