package models

import (
	"fmt"
	"time"
)

// WorkoutType represents the kind of training for a workout day
type WorkoutType string

const (
	WorkoutForce       WorkoutType = "Force"
	WorkoutCardio      WorkoutType = "Cardio"
	WorkoutFlexibility WorkoutType = "Flexibility"
	WorkoutFunctional  WorkoutType = "Functional"
	WorkoutMixed       WorkoutType = "Mixed"
)

// Defaults applied when a workout day is created without them.
const (
	DefaultIntensityLevel = 3
	DefaultWorkoutType    = WorkoutForce
)

// InvalidDayName is returned for day-of-week values outside 1..7.
const InvalidDayName = "Invalid day"

// WorkoutDay represents a scheduled workout on a weekday for a user
type WorkoutDay struct {
	ID              uint        `json:"id" gorm:"primaryKey"`
	Name            string      `json:"name" gorm:"size:100;not null"`
	Description     string      `json:"description,omitempty" gorm:"default:null"`
	DayOfWeek       int         `json:"dayOfWeek" gorm:"not null;index"`
	DurationMinutes int         `json:"durationMinutes" gorm:"not null"`
	IntensityLevel  int         `json:"intensityLevel" gorm:"default:3"`
	WorkoutType     WorkoutType `json:"workoutType" gorm:"type:varchar(20);default:'Force'"`
	Active          bool        `json:"active" gorm:"default:true;index"`
	UserID          uint        `json:"userId" gorm:"not null;index"`
	CreatedAt       time.Time   `json:"createdAt"`
	UpdatedAt       time.Time   `json:"updatedAt"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName sets the table name for WorkoutDay model
func (WorkoutDay) TableName() string {
	return "workout_days"
}

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// DayName maps a 1-based day of week to its English name (1=Monday,
// 7=Sunday). Out-of-range values yield the InvalidDayName sentinel
// instead of failing.
func DayName(day int) string {
	if day < 1 || day > len(dayNames) {
		return InvalidDayName
	}
	return dayNames[day-1]
}

// DayName returns the weekday name for this workout
func (w WorkoutDay) DayName() string {
	return DayName(w.DayOfWeek)
}

// FormatDuration renders minutes as a compact display string, e.g.
// "45min", "2h" or "1h 30min".
func FormatDuration(minutes int) string {
	if minutes <= 0 {
		return "0min"
	}
	hours := minutes / 60
	rest := minutes % 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dmin", rest)
	case rest == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dmin", hours, rest)
	}
}

// FormattedDuration returns the display form of the workout duration
func (w WorkoutDay) FormattedDuration() string {
	return FormatDuration(w.DurationMinutes)
}

// Deactivated returns a copy of the workout day with the active flag
// cleared. Persistence is the caller's responsibility.
func (w WorkoutDay) Deactivated() WorkoutDay {
	w.Active = false
	return w
}
