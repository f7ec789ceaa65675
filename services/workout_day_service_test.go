package services_test

import (
	"testing"

	"github.com/cdtello/nutri-fit-backend/dto"
	"github.com/cdtello/nutri-fit-backend/models"
	"github.com/cdtello/nutri-fit-backend/services"
	"github.com/cdtello/nutri-fit-backend/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutDayCreateDefaults(t *testing.T) {
	_, workoutDayService, db := testutils.Services(t)
	owner := testutils.CreateUser(t, db, "Pedro", "pedro@email.com")

	day, err := workoutDayService.Create(dto.CreateWorkoutDayRequest{
		Name:            "Day1",
		DayOfWeek:       1,
		DurationMinutes: 90,
		UserID:          owner.ID,
	})
	require.NoError(t, err)

	assert.NotZero(t, day.ID)
	assert.Equal(t, models.DefaultIntensityLevel, day.IntensityLevel)
	assert.Equal(t, models.DefaultWorkoutType, day.WorkoutType)
	assert.True(t, day.Active)
	assert.Equal(t, "Monday", day.DayName())
	assert.Equal(t, "1h 30min", day.FormattedDuration())
}

func TestWorkoutDayCreateMissingUserNotFound(t *testing.T) {
	_, workoutDayService, _ := testutils.Services(t)

	_, err := workoutDayService.Create(dto.CreateWorkoutDayRequest{
		Name:            "Day1",
		DayOfWeek:       1,
		DurationMinutes: 60,
		UserID:          42,
	})
	require.Error(t, err)
	assert.IsType(t, services.NotFoundError{}, err)
	assert.Contains(t, err.Error(), "42")
}

func TestWorkoutDayCreateInactiveUserNotFound(t *testing.T) {
	userService, workoutDayService, db := testutils.Services(t)
	owner := testutils.CreateUser(t, db, "Pedro", "pedro@email.com")

	_, err := userService.Remove(owner.ID)
	require.NoError(t, err)

	_, err = workoutDayService.Create(dto.CreateWorkoutDayRequest{
		Name:            "Day1",
		DayOfWeek:       1,
		DurationMinutes: 60,
		UserID:          owner.ID,
	})
	require.Error(t, err)
	assert.IsType(t, services.NotFoundError{}, err)
}

func TestWorkoutDayCreateScheduleConflictNamesWeekday(t *testing.T) {
	_, workoutDayService, db := testutils.Services(t)
	owner := testutils.CreateUser(t, db, "Pedro", "pedro@email.com")

	_, err := workoutDayService.Create(dto.CreateWorkoutDayRequest{
		Name:            "Day1",
		DayOfWeek:       1,
		DurationMinutes: 90,
		UserID:          owner.ID,
	})
	require.NoError(t, err)

	_, err = workoutDayService.Create(dto.CreateWorkoutDayRequest{
		Name:            "Day2",
		DayOfWeek:       1,
		DurationMinutes: 45,
		UserID:          owner.ID,
	})
	require.Error(t, err)
	assert.IsType(t, services.ConflictError{}, err)
	assert.Contains(t, err.Error(), "Monday")

	// A different weekday, and the same weekday for another user, are fine.
	_, err = workoutDayService.Create(dto.CreateWorkoutDayRequest{
		Name: "Day2", DayOfWeek: 2, DurationMinutes: 45, UserID: owner.ID,
	})
	assert.NoError(t, err)

	other := testutils.CreateUser(t, db, "Maria", "maria@email.com")
	_, err = workoutDayService.Create(dto.CreateWorkoutDayRequest{
		Name: "Day1", DayOfWeek: 1, DurationMinutes: 45, UserID: other.ID,
	})
	assert.NoError(t, err)
}

func TestWorkoutDayRemoveFreesTheSlot(t *testing.T) {
	_, workoutDayService, db := testutils.Services(t)
	owner := testutils.CreateUser(t, db, "Pedro", "pedro@email.com")

	first, err := workoutDayService.Create(dto.CreateWorkoutDayRequest{
		Name: "Day1", DayOfWeek: 1, DurationMinutes: 60, UserID: owner.ID,
	})
	require.NoError(t, err)

	_, err = workoutDayService.Remove(first.ID)
	require.NoError(t, err)

	// The slot no longer holds an active entry.
	_, err = workoutDayService.Create(dto.CreateWorkoutDayRequest{
		Name: "Day1 again", DayOfWeek: 1, DurationMinutes: 60, UserID: owner.ID,
	})
	assert.NoError(t, err)
}

func TestWorkoutDayUpdateConflictOnlyWhenDayChanges(t *testing.T) {
	_, workoutDayService, db := testutils.Services(t)
	owner := testutils.CreateUser(t, db, "Pedro", "pedro@email.com")

	monday, err := workoutDayService.Create(dto.CreateWorkoutDayRequest{
		Name: "Legs", DayOfWeek: 1, DurationMinutes: 60, UserID: owner.ID,
	})
	require.NoError(t, err)
	tuesday, err := workoutDayService.Create(dto.CreateWorkoutDayRequest{
		Name: "Push", DayOfWeek: 2, DurationMinutes: 60, UserID: owner.ID,
	})
	require.NoError(t, err)

	// Updating without touching the weekday never trips the conflict
	// check, even though the record occupies its own slot.
	updated, err := workoutDayService.Update(monday.ID, dto.UpdateWorkoutDayRequest{
		DurationMinutes: intPtr(120),
		DayOfWeek:       intPtr(1),
	})
	require.NoError(t, err)
	assert.Equal(t, 120, updated.DurationMinutes)
	assert.Equal(t, 1, updated.DayOfWeek)

	// Moving onto an occupied weekday conflicts, naming the day.
	_, err = workoutDayService.Update(monday.ID, dto.UpdateWorkoutDayRequest{DayOfWeek: intPtr(2)})
	require.Error(t, err)
	assert.IsType(t, services.ConflictError{}, err)
	assert.Contains(t, err.Error(), "Tuesday")

	// Moving onto a free weekday succeeds.
	moved, err := workoutDayService.Update(tuesday.ID, dto.UpdateWorkoutDayRequest{DayOfWeek: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, 5, moved.DayOfWeek)
	assert.Equal(t, "Friday", moved.DayName())
}

func TestWorkoutDayListByUserOrdersByDay(t *testing.T) {
	_, workoutDayService, db := testutils.Services(t)
	owner := testutils.CreateUser(t, db, "Pedro", "pedro@email.com")

	testutils.CreateWorkoutDay(t, db, owner.ID, 5, "Friday workout")
	testutils.CreateWorkoutDay(t, db, owner.ID, 1, "Monday workout")
	testutils.CreateWorkoutDay(t, db, owner.ID, 3, "Wednesday workout")

	days, err := workoutDayService.ListByUser(owner.ID)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, []int{1, 3, 5}, []int{days[0].DayOfWeek, days[1].DayOfWeek, days[2].DayOfWeek})
}

func TestWorkoutDayListByUserValidatesOwner(t *testing.T) {
	userService, workoutDayService, db := testutils.Services(t)

	_, err := workoutDayService.ListByUser(999)
	require.Error(t, err)
	assert.IsType(t, services.NotFoundError{}, err)

	owner := testutils.CreateUser(t, db, "Pedro", "pedro@email.com")
	_, err = userService.Remove(owner.ID)
	require.NoError(t, err)

	_, err = workoutDayService.ListByUser(owner.ID)
	require.Error(t, err)
	assert.IsType(t, services.NotFoundError{}, err)
}

func TestWorkoutDayRemoveTwiceConflict(t *testing.T) {
	_, workoutDayService, db := testutils.Services(t)
	owner := testutils.CreateUser(t, db, "Pedro", "pedro@email.com")
	day := testutils.CreateWorkoutDay(t, db, owner.ID, 1, "Day1")

	removed, err := workoutDayService.Remove(day.ID)
	require.NoError(t, err)
	assert.False(t, removed.Active)

	_, err = workoutDayService.Remove(day.ID)
	require.Error(t, err)
	assert.IsType(t, services.ConflictError{}, err)
}

func TestWorkoutDaySearchFilters(t *testing.T) {
	_, workoutDayService, db := testutils.Services(t)
	owner := testutils.CreateUser(t, db, "Pedro", "pedro@email.com")
	other := testutils.CreateUser(t, db, "Maria", "maria@email.com")

	testutils.CreateWorkoutDay(t, db, owner.ID, 1, "Heavy legs")
	testutils.CreateWorkoutDay(t, db, owner.ID, 3, "Cardio blast")
	removed := testutils.CreateWorkoutDay(t, db, other.ID, 1, "Old plan")
	_, err := workoutDayService.Remove(removed.ID)
	require.NoError(t, err)

	// Partial name match, case-insensitive.
	found, err := workoutDayService.Search(dto.SearchWorkoutDaysQuery{Name: "legs"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Heavy legs", found[0].Name)

	// Exact match filters combine by AND.
	dayOfWeek := 1
	userID := owner.ID
	found, err = workoutDayService.Search(dto.SearchWorkoutDaysQuery{DayOfWeek: &dayOfWeek, UserID: &userID})
	require.NoError(t, err)
	require.Len(t, found, 1)

	// The boolean filter can target soft-deleted entries.
	inactive := false
	found, err = workoutDayService.Search(dto.SearchWorkoutDaysQuery{Active: &inactive})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Old plan", found[0].Name)
}
