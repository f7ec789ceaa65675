package repositories

import (
	"strings"

	"github.com/cdtello/nutri-fit-backend/dto"
	"github.com/cdtello/nutri-fit-backend/models"
	"gorm.io/gorm"
)

// WorkoutDayRepository handles database operations for workout days
type WorkoutDayRepository struct {
	db *gorm.DB
}

// NewWorkoutDayRepository creates a new workout day repository instance
func NewWorkoutDayRepository(db *gorm.DB) *WorkoutDayRepository {
	return &WorkoutDayRepository{db: db}
}

// FindActive retrieves all active workout days, ordered by id
func (r *WorkoutDayRepository) FindActive() ([]models.WorkoutDay, error) {
	var days []models.WorkoutDay
	result := r.db.Where("active = ?", true).Order("id asc").Find(&days)
	return days, result.Error
}

// FindByID retrieves a workout day by its ID
func (r *WorkoutDayRepository) FindByID(id uint) (models.WorkoutDay, error) {
	var day models.WorkoutDay
	result := r.db.First(&day, id)
	return day, result.Error
}

// FindActiveByUser retrieves a user's active workout days ordered by
// day of week
func (r *WorkoutDayRepository) FindActiveByUser(userID uint) ([]models.WorkoutDay, error) {
	var days []models.WorkoutDay
	result := r.db.
		Where("user_id = ? AND active = ?", userID, true).
		Order("day_of_week asc").
		Find(&days)
	return days, result.Error
}

// HasActiveConflict checks whether another active workout day already
// occupies the given weekday for the user. Pass 0 as excludeID when
// creating a new record.
func (r *WorkoutDayRepository) HasActiveConflict(userID uint, dayOfWeek int, excludeID uint) (bool, error) {
	var count int64
	db := r.db.Model(&models.WorkoutDay{}).
		Where("user_id = ? AND day_of_week = ? AND active = ?", userID, dayOfWeek, true)
	if excludeID != 0 {
		db = db.Where("id <> ?", excludeID)
	}
	result := db.Count(&count)
	return count > 0, result.Error
}

// Search retrieves workout days matching the combined filters, most
// recently created first. The name filter is a case-insensitive
// partial match.
func (r *WorkoutDayRepository) Search(query dto.SearchWorkoutDaysQuery) ([]models.WorkoutDay, error) {
	db := r.db.Model(&models.WorkoutDay{})

	if query.Name != "" {
		db = db.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query.Name)+"%")
	}
	if query.DayOfWeek != nil {
		db = db.Where("day_of_week = ?", *query.DayOfWeek)
	}
	if query.DurationMinutes != nil {
		db = db.Where("duration_minutes = ?", *query.DurationMinutes)
	}
	if query.IntensityLevel != nil {
		db = db.Where("intensity_level = ?", *query.IntensityLevel)
	}
	if query.WorkoutType != "" {
		db = db.Where("workout_type = ?", query.WorkoutType)
	}
	if query.Active != nil {
		db = db.Where("active = ?", *query.Active)
	}
	if query.UserID != nil {
		db = db.Where("user_id = ?", *query.UserID)
	}

	var days []models.WorkoutDay
	result := db.Order("created_at desc, id desc").Find(&days)
	return days, result.Error
}

// Create inserts a new workout day into the database
func (r *WorkoutDayRepository) Create(day models.WorkoutDay) (models.WorkoutDay, error) {
	result := r.db.Create(&day)
	return day, result.Error
}

// Save persists changes to an existing workout day
func (r *WorkoutDayRepository) Save(day models.WorkoutDay) (models.WorkoutDay, error) {
	result := r.db.Save(&day)
	return day, result.Error
}
