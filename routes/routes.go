package routes

import (
	"github.com/cdtello/nutri-fit-backend/controllers"
	"github.com/gin-gonic/gin"
)

// SetupRoutes registers all API routes
func SetupRoutes(router *gin.Engine, users *controllers.UserController, workoutDays *controllers.WorkoutDayController) {
	// Health check endpoint
	router.GET("/", controllers.HealthCheck)

	api := router.Group("")
	users.RegisterRoutes(api)
	workoutDays.RegisterRoutes(api)
}
