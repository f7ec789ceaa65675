package controllers

import (
	"fmt"
	"net/http"

	"github.com/cdtello/nutri-fit-backend/dto"
	"github.com/cdtello/nutri-fit-backend/services"
	"github.com/gin-gonic/gin"
)

// WorkoutDayController handles workout-day-related API endpoints
type WorkoutDayController struct {
	workoutDayService *services.WorkoutDayService
}

// NewWorkoutDayController creates a new workout day controller
func NewWorkoutDayController(workoutDayService *services.WorkoutDayService) *WorkoutDayController {
	return &WorkoutDayController{workoutDayService: workoutDayService}
}

// RegisterRoutes registers workout day routes
func (c *WorkoutDayController) RegisterRoutes(router *gin.RouterGroup) {
	days := router.Group("/workout-days")
	{
		days.GET("", c.ListWorkoutDays)
		days.GET("/search", c.SearchWorkoutDays)
		days.GET("/user/:userId", c.ListUserWorkoutDays)
		days.GET("/:id", c.GetWorkoutDay)
		days.POST("", c.CreateWorkoutDay)
		days.PUT("/:id", c.UpdateWorkoutDay)
		days.DELETE("/:id", c.DeleteWorkoutDay)
	}
}

// ListWorkoutDays retrieves all active workout days
func (c *WorkoutDayController) ListWorkoutDays(ctx *gin.Context) {
	days, err := c.workoutDayService.ListActive()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewWorkoutDayListResponse(days))
}

// SearchWorkoutDays retrieves workout days matching the query string filters
func (c *WorkoutDayController) SearchWorkoutDays(ctx *gin.Context) {
	var query dto.SearchWorkoutDaysQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondValidationError(ctx, err)
		return
	}

	days, err := c.workoutDayService.Search(query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewWorkoutDayListResponse(days))
}

// ListUserWorkoutDays retrieves a user's active workout days
func (c *WorkoutDayController) ListUserWorkoutDays(ctx *gin.Context) {
	userID, err := parseID(ctx, "userId", "user ID")
	if err != nil {
		respondError(ctx, err)
		return
	}

	days, err := c.workoutDayService.ListByUser(userID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewWorkoutDayListResponse(days))
}

// GetWorkoutDay retrieves a workout day by id
func (c *WorkoutDayController) GetWorkoutDay(ctx *gin.Context) {
	id, err := parseID(ctx, "id", "workout day ID")
	if err != nil {
		respondError(ctx, err)
		return
	}

	day, err := c.workoutDayService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewWorkoutDayResponse(day))
}

// CreateWorkoutDay schedules a new workout day
func (c *WorkoutDayController) CreateWorkoutDay(ctx *gin.Context) {
	var req dto.CreateWorkoutDayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	day, err := c.workoutDayService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewWorkoutDayResponse(day))
}

// UpdateWorkoutDay applies a partial update to a workout day
func (c *WorkoutDayController) UpdateWorkoutDay(ctx *gin.Context) {
	id, err := parseID(ctx, "id", "workout day ID")
	if err != nil {
		respondError(ctx, err)
		return
	}

	var req dto.UpdateWorkoutDayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	day, err := c.workoutDayService.Update(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewWorkoutDayResponse(day))
}

// DeleteWorkoutDay soft-deletes a workout day by clearing its active flag
func (c *WorkoutDayController) DeleteWorkoutDay(ctx *gin.Context) {
	id, err := parseID(ctx, "id", "workout day ID")
	if err != nil {
		respondError(ctx, err)
		return
	}

	if _, err := c.workoutDayService.Remove(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Workout day with id %d deactivated", id),
	})
}
