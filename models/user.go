package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/datatypes"
)

// UserRole represents user role types
type UserRole string

const (
	RoleAdmin        UserRole = "admin"
	RoleTrainer      UserRole = "trainer"
	RoleNutritionist UserRole = "nutritionist"
	RoleUser         UserRole = "user"
	RoleGuest        UserRole = "guest"
)

// UserStatus represents the lifecycle state of a user account
type UserStatus string

const (
	StatusActive    UserStatus = "active"
	StatusInactive  UserStatus = "inactive"
	StatusPending   UserStatus = "pending"
	StatusSuspended UserStatus = "suspended"
	StatusBanned    UserStatus = "banned"
)

// UserStats holds aggregate workout statistics for a user
type UserStats struct {
	TotalWorkouts   int     `json:"totalWorkouts"`
	CurrentStreak   int     `json:"currentStreak"`
	LongestStreak   int     `json:"longestStreak"`
	CaloriesBurned  float64 `json:"caloriesBurned"`
	MonthlyGoal     int     `json:"monthlyGoal"`
	MonthlyProgress int     `json:"monthlyProgress"`
}

// User represents a user in the system
type User struct {
	ID          uint                           `json:"id" gorm:"primaryKey"`
	Name        string                         `json:"name" gorm:"size:100;not null"`
	Email       string                         `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Role        UserRole                       `json:"role" gorm:"type:varchar(20);default:'user'"`
	Status      UserStatus                     `json:"status" gorm:"type:varchar(20);default:'active';index"`
	Age         *int                           `json:"age,omitempty"`
	Avatar      string                         `json:"avatar,omitempty" gorm:"size:500;default:null"`
	Bio         string                         `json:"bio,omitempty" gorm:"default:null"`
	Phone       string                         `json:"phone,omitempty" gorm:"size:30;default:null"`
	Location    string                         `json:"location,omitempty" gorm:"size:100;default:null"`
	Specialties datatypes.JSONSlice[string]    `json:"specialties,omitempty"`
	Stats       *datatypes.JSONType[UserStats] `json:"stats,omitempty"`
	CreatedAt   time.Time                      `json:"createdAt"`
	UpdatedAt   time.Time                      `json:"updatedAt"`

	// Relations
	WorkoutDays []WorkoutDay `json:"workoutDays,omitempty" gorm:"foreignKey:UserID"`
}

// TableName sets the table name for User model
func (User) TableName() string {
	return "users"
}

// IsActive reports whether the account is in the active status
func (u User) IsActive() bool {
	return u.Status == StatusActive
}

// JoinedDate renders the creation timestamp as an ISO-8601 string
func (u User) JoinedDate() string {
	return u.CreatedAt.UTC().Format(time.RFC3339)
}

// DisplayName returns the user's name in title casing
func (u User) DisplayName() string {
	return cases.Title(language.Und).String(strings.ToLower(strings.TrimSpace(u.Name)))
}

// AgeGroup buckets the user's age for display. Empty when age is unknown.
func (u User) AgeGroup() string {
	if u.Age == nil {
		return ""
	}
	switch age := *u.Age; {
	case age < 18:
		return "Youth"
	case age < 30:
		return "Young Adult"
	case age < 50:
		return "Adult"
	default:
		return "Senior"
	}
}

// WithStatus returns a copy of the user moved to the given status.
// Persistence is the caller's responsibility.
func (u User) WithStatus(status UserStatus) User {
	u.Status = status
	return u
}

// NormalizeEmail trims surrounding whitespace and lowercases an email
// address so uniqueness checks are case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
