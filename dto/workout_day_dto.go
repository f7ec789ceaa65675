package dto

import (
	"time"

	"github.com/cdtello/nutri-fit-backend/models"
)

// CreateWorkoutDayRequest is the payload for scheduling a workout day
type CreateWorkoutDayRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	Description     string `json:"description" binding:"omitempty,max=1000"`
	DayOfWeek       int    `json:"dayOfWeek" binding:"required,gte=1,lte=7"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,gte=1,lte=300"`
	IntensityLevel  *int   `json:"intensityLevel" binding:"omitempty,gte=1,lte=5"`
	WorkoutType     string `json:"workoutType" binding:"omitempty,oneof=Force Cardio Flexibility Functional Mixed"`
	UserID          uint   `json:"userId" binding:"required"`
}

// UpdateWorkoutDayRequest is the payload for partially updating a
// workout day. Only non-nil fields are applied.
type UpdateWorkoutDayRequest struct {
	Name            *string `json:"name" binding:"omitempty,max=100"`
	Description     *string `json:"description" binding:"omitempty,max=1000"`
	DayOfWeek       *int    `json:"dayOfWeek" binding:"omitempty,gte=1,lte=7"`
	DurationMinutes *int    `json:"durationMinutes" binding:"omitempty,gte=1,lte=300"`
	IntensityLevel  *int    `json:"intensityLevel" binding:"omitempty,gte=1,lte=5"`
	WorkoutType     *string `json:"workoutType" binding:"omitempty,oneof=Force Cardio Flexibility Functional Mixed"`
}

// SearchWorkoutDaysQuery carries the optional filters for workout day
// search. Name is a case-insensitive partial match; the rest are exact.
type SearchWorkoutDaysQuery struct {
	Name            string `form:"name"`
	DayOfWeek       *int   `form:"dayOfWeek" binding:"omitempty,gte=1,lte=7"`
	DurationMinutes *int   `form:"durationMinutes" binding:"omitempty,gte=1,lte=300"`
	IntensityLevel  *int   `form:"intensityLevel" binding:"omitempty,gte=1,lte=5"`
	WorkoutType     string `form:"workoutType" binding:"omitempty,oneof=Force Cardio Flexibility Functional Mixed"`
	Active          *bool  `form:"active"`
	UserID          *uint  `form:"userId"`
}

// WorkoutDayResponse is the structure for workout day responses
type WorkoutDayResponse struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	DayOfWeek         int    `json:"dayOfWeek"`
	DayName           string `json:"dayName"`
	DurationMinutes   int    `json:"durationMinutes"`
	FormattedDuration string `json:"formattedDuration"`
	IntensityLevel    int    `json:"intensityLevel"`
	WorkoutType       string `json:"workoutType"`
	Active            bool   `json:"active"`
	UserID            uint   `json:"userId"`
	CreatedAt         string `json:"createdAt"`
	UpdatedAt         string `json:"updatedAt"`
}

// NewWorkoutDayResponse shapes a workout day record for the API
func NewWorkoutDayResponse(day models.WorkoutDay) WorkoutDayResponse {
	return WorkoutDayResponse{
		ID:                day.ID,
		Name:              day.Name,
		Description:       day.Description,
		DayOfWeek:         day.DayOfWeek,
		DayName:           day.DayName(),
		DurationMinutes:   day.DurationMinutes,
		FormattedDuration: day.FormattedDuration(),
		IntensityLevel:    day.IntensityLevel,
		WorkoutType:       string(day.WorkoutType),
		Active:            day.Active,
		UserID:            day.UserID,
		CreatedAt:         day.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:         day.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

// NewWorkoutDayListResponse shapes a list of workout day records for the API
func NewWorkoutDayListResponse(days []models.WorkoutDay) []WorkoutDayResponse {
	responses := make([]WorkoutDayResponse, 0, len(days))
	for _, day := range days {
		responses = append(responses, NewWorkoutDayResponse(day))
	}
	return responses
}
