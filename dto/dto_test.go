package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/cdtello/nutri-fit-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestValidationMessagesFallback(t *testing.T) {
	messages := ValidationMessages(errors.New("unexpected EOF"))
	assert.Equal(t, map[string]string{"body": "unexpected EOF"}, messages)
}

func TestJSONFieldName(t *testing.T) {
	assert.Equal(t, "dayOfWeek", jsonFieldName("DayOfWeek"))
	assert.Equal(t, "email", jsonFieldName("Email"))
	assert.Equal(t, "", jsonFieldName(""))
}

func TestNewUserResponseDerivedFields(t *testing.T) {
	age := 32
	user := models.User{
		ID:        1,
		Name:      "Pedro Silva",
		Email:     "pedro@email.com",
		Role:      models.RoleTrainer,
		Status:    models.StatusActive,
		Age:       &age,
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	resp := NewUserResponse(user)
	assert.Equal(t, uint(1), resp.ID)
	assert.Equal(t, "trainer", resp.Role)
	assert.True(t, resp.IsActive)
	assert.Equal(t, "2024-01-02T03:04:05Z", resp.JoinedDate)
	assert.Equal(t, "Adult", resp.AgeGroup)
	assert.Nil(t, resp.Stats)
}

func TestNewWorkoutDayResponseDerivedFields(t *testing.T) {
	day := models.WorkoutDay{
		ID:              2,
		Name:            "Legs",
		DayOfWeek:       7,
		DurationMinutes: 105,
		IntensityLevel:  4,
		WorkoutType:     models.WorkoutCardio,
		Active:          true,
		UserID:          1,
	}

	resp := NewWorkoutDayResponse(day)
	assert.Equal(t, "Sunday", resp.DayName)
	assert.Equal(t, "1h 45min", resp.FormattedDuration)
	assert.Equal(t, "Cardio", resp.WorkoutType)
}

func TestNewUserListResponseIsNeverNil(t *testing.T) {
	assert.NotNil(t, NewUserListResponse(nil))
	assert.NotNil(t, NewWorkoutDayListResponse(nil))
}
