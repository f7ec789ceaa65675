package controllers

import (
	"fmt"
	"net/http"

	"github.com/cdtello/nutri-fit-backend/dto"
	"github.com/cdtello/nutri-fit-backend/services"
	"github.com/gin-gonic/gin"
)

// UserController handles user-related API endpoints
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new user controller
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{userService: userService}
}

// RegisterRoutes registers user routes
func (c *UserController) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", c.ListUsers)
		users.GET("/search", c.SearchUsers)
		users.GET("/:id", c.GetUser)
		users.POST("", c.CreateUser)
		users.PUT("/:id", c.UpdateUser)
		users.DELETE("/:id", c.DeleteUser)
	}
}

// ListUsers retrieves all active users
func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.ListActive()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// SearchUsers retrieves users matching the query string filters
func (c *UserController) SearchUsers(ctx *gin.Context) {
	var query dto.SearchUsersQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		respondValidationError(ctx, err)
		return
	}

	users, err := c.userService.Search(query)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserListResponse(users))
}

// GetUser retrieves a user by id
func (c *UserController) GetUser(ctx *gin.Context) {
	id, err := parseID(ctx, "id", "user ID")
	if err != nil {
		respondError(ctx, err)
		return
	}

	user, err := c.userService.Get(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// CreateUser registers a new user
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	user, err := c.userService.Create(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// UpdateUser applies a partial update to a user
func (c *UserController) UpdateUser(ctx *gin.Context) {
	id, err := parseID(ctx, "id", "user ID")
	if err != nil {
		respondError(ctx, err)
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondValidationError(ctx, err)
		return
	}

	user, err := c.userService.Update(id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// DeleteUser soft-deletes a user by moving it to inactive status
func (c *UserController) DeleteUser(ctx *gin.Context) {
	id, err := parseID(ctx, "id", "user ID")
	if err != nil {
		respondError(ctx, err)
		return
	}

	if _, err := c.userService.Remove(id); err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("User with id %d deactivated", id),
	})
}
