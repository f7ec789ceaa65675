package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/cdtello/nutri-fit-backend/controllers"
	"github.com/cdtello/nutri-fit-backend/database"
	"github.com/cdtello/nutri-fit-backend/models"
	"github.com/cdtello/nutri-fit-backend/repositories"
	"github.com/cdtello/nutri-fit-backend/routes"
	"github.com/cdtello/nutri-fit-backend/services"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB opens an isolated in-memory database with the full schema,
// including the partial unique schedule index.
func TestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err, "failed to open test database")

	// A pooled second connection would get its own empty :memory: db.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db), "failed to migrate test database")
	return db
}

// Services wires the service layer over a fresh test database.
func Services(t *testing.T) (*services.UserService, *services.WorkoutDayService, *gorm.DB) {
	t.Helper()

	db := TestDB(t)
	userRepo := repositories.NewUserRepository(db)
	workoutDayRepo := repositories.NewWorkoutDayRepository(db)
	return services.NewUserService(userRepo), services.NewWorkoutDayService(workoutDayRepo, userRepo), db
}

// Router builds the full HTTP stack over a fresh test database.
func Router(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	userService, workoutDayService, db := Services(t)

	router := gin.New()
	routes.SetupRoutes(
		router,
		controllers.NewUserController(userService),
		controllers.NewWorkoutDayController(workoutDayService),
	)
	return router, db
}

// MakeRequest performs a JSON request against the router and returns
// the recorded response.
func MakeRequest(t *testing.T, router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		reader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ParseBody decodes a recorded JSON response body into v.
func ParseBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), "failed to parse response: %s", rec.Body.String())
}

// CreateUser inserts an active user directly into the database.
func CreateUser(t *testing.T, db *gorm.DB, name, email string) models.User {
	t.Helper()

	user := models.User{
		Name:   name,
		Email:  email,
		Role:   models.RoleUser,
		Status: models.StatusActive,
	}
	require.NoError(t, db.Create(&user).Error, "failed to create test user")
	return user
}

// CreateWorkoutDay inserts an active workout day directly into the database.
func CreateWorkoutDay(t *testing.T, db *gorm.DB, userID uint, dayOfWeek int, name string) models.WorkoutDay {
	t.Helper()

	day := models.WorkoutDay{
		Name:            name,
		DayOfWeek:       dayOfWeek,
		DurationMinutes: 60,
		IntensityLevel:  models.DefaultIntensityLevel,
		WorkoutType:     models.DefaultWorkoutType,
		Active:          true,
		UserID:          userID,
	}
	require.NoError(t, db.Create(&day).Error, "failed to create test workout day")
	return day
}
