package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cdtello/nutri-fit-backend/dto"
	"github.com/cdtello/nutri-fit-backend/models"
	"github.com/cdtello/nutri-fit-backend/repositories"
	"gorm.io/gorm"
)

// WorkoutDayService handles business logic for workout days
type WorkoutDayService struct {
	workoutDayRepo *repositories.WorkoutDayRepository
	userRepo       *repositories.UserRepository
}

// NewWorkoutDayService creates a new workout day service instance
func NewWorkoutDayService(workoutDayRepo *repositories.WorkoutDayRepository, userRepo *repositories.UserRepository) *WorkoutDayService {
	return &WorkoutDayService{
		workoutDayRepo: workoutDayRepo,
		userRepo:       userRepo,
	}
}

// activeUser loads the owning user and requires it to be active.
// A missing or non-active owner is NotFound either way.
func (s *WorkoutDayService) activeUser(userID uint) (models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, NotFoundError{Message: fmt.Sprintf("User with id %d not found", userID)}
		}
		return models.User{}, err
	}
	if !user.IsActive() {
		return models.User{}, NotFoundError{Message: fmt.Sprintf("User with id %d is not active", userID)}
	}
	return user, nil
}

func scheduleConflictError(userID uint, dayOfWeek int) ConflictError {
	return ConflictError{
		Message: fmt.Sprintf("User %d already has an active workout scheduled on %s", userID, models.DayName(dayOfWeek)),
	}
}

// ListActive retrieves all active workout days
func (s *WorkoutDayService) ListActive() ([]models.WorkoutDay, error) {
	return s.workoutDayRepo.FindActive()
}

// Search retrieves workout days matching the given filters
func (s *WorkoutDayService) Search(query dto.SearchWorkoutDaysQuery) ([]models.WorkoutDay, error) {
	return s.workoutDayRepo.Search(query)
}

// Get retrieves a workout day by id
func (s *WorkoutDayService) Get(id uint) (models.WorkoutDay, error) {
	day, err := s.workoutDayRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.WorkoutDay{}, NotFoundError{Message: fmt.Sprintf("Workout day with id %d not found", id)}
		}
		return models.WorkoutDay{}, err
	}
	return day, nil
}

// ListByUser retrieves a user's active workout days, validating the
// owner first.
func (s *WorkoutDayService) ListByUser(userID uint) ([]models.WorkoutDay, error) {
	if _, err := s.activeUser(userID); err != nil {
		return nil, err
	}
	return s.workoutDayRepo.FindActiveByUser(userID)
}

// Create schedules a new workout day. The owner must be active and the
// weekday must be free of other active entries for that user; the
// partial unique index on (user_id, day_of_week) is the authoritative
// guard and its violation maps to the same Conflict error.
func (s *WorkoutDayService) Create(req dto.CreateWorkoutDayRequest) (models.WorkoutDay, error) {
	if _, err := s.activeUser(req.UserID); err != nil {
		return models.WorkoutDay{}, err
	}

	conflict, err := s.workoutDayRepo.HasActiveConflict(req.UserID, req.DayOfWeek, 0)
	if err != nil {
		return models.WorkoutDay{}, err
	}
	if conflict {
		return models.WorkoutDay{}, scheduleConflictError(req.UserID, req.DayOfWeek)
	}

	intensity := models.DefaultIntensityLevel
	if req.IntensityLevel != nil {
		intensity = *req.IntensityLevel
	}
	workoutType := models.DefaultWorkoutType
	if req.WorkoutType != "" {
		workoutType = models.WorkoutType(req.WorkoutType)
	}

	day := models.WorkoutDay{
		Name:            strings.TrimSpace(req.Name),
		Description:     req.Description,
		DayOfWeek:       req.DayOfWeek,
		DurationMinutes: req.DurationMinutes,
		IntensityLevel:  intensity,
		WorkoutType:     workoutType,
		Active:          true,
		UserID:          req.UserID,
	}

	created, err := s.workoutDayRepo.Create(day)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.WorkoutDay{}, scheduleConflictError(req.UserID, req.DayOfWeek)
		}
		return models.WorkoutDay{}, err
	}
	return created, nil
}

// Update applies a partial update to a workout day. The day-of-week
// conflict is re-checked only when the weekday actually changes,
// excluding the record being updated from the search.
func (s *WorkoutDayService) Update(id uint, req dto.UpdateWorkoutDayRequest) (models.WorkoutDay, error) {
	day, err := s.Get(id)
	if err != nil {
		return models.WorkoutDay{}, err
	}

	if req.DayOfWeek != nil && *req.DayOfWeek != day.DayOfWeek {
		if _, err := s.activeUser(day.UserID); err != nil {
			return models.WorkoutDay{}, err
		}
		conflict, err := s.workoutDayRepo.HasActiveConflict(day.UserID, *req.DayOfWeek, day.ID)
		if err != nil {
			return models.WorkoutDay{}, err
		}
		if conflict {
			return models.WorkoutDay{}, scheduleConflictError(day.UserID, *req.DayOfWeek)
		}
		day.DayOfWeek = *req.DayOfWeek
	}
	if req.Name != nil {
		day.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		day.Description = *req.Description
	}
	if req.DurationMinutes != nil {
		day.DurationMinutes = *req.DurationMinutes
	}
	if req.IntensityLevel != nil {
		day.IntensityLevel = *req.IntensityLevel
	}
	if req.WorkoutType != nil {
		day.WorkoutType = models.WorkoutType(*req.WorkoutType)
	}

	saved, err := s.workoutDayRepo.Save(day)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.WorkoutDay{}, scheduleConflictError(day.UserID, day.DayOfWeek)
		}
		return models.WorkoutDay{}, err
	}
	return saved, nil
}

// Remove soft-deletes a workout day by clearing its active flag.
// Removing an already-inactive entry is a conflict.
func (s *WorkoutDayService) Remove(id uint) (models.WorkoutDay, error) {
	day, err := s.Get(id)
	if err != nil {
		return models.WorkoutDay{}, err
	}
	if !day.Active {
		return models.WorkoutDay{}, ConflictError{Message: fmt.Sprintf("Workout day with id %d is already inactive", id)}
	}
	return s.workoutDayRepo.Save(day.Deactivated())
}
