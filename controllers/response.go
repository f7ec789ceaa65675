package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/cdtello/nutri-fit-backend/dto"
	"github.com/cdtello/nutri-fit-backend/services"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto its HTTP status code and
// renders the message verbatim. Anything outside the domain taxonomy
// is a 500.
func respondError(ctx *gin.Context, err error) {
	var notFound services.NotFoundError
	var conflict services.ConflictError
	var badRequest services.BadRequestError

	switch {
	case errors.As(err, &badRequest):
		ctx.JSON(http.StatusBadRequest, gin.H{"message": badRequest.Message})
	case errors.As(err, &notFound):
		ctx.JSON(http.StatusNotFound, gin.H{"message": notFound.Message})
	case errors.As(err, &conflict):
		ctx.JSON(http.StatusConflict, gin.H{"message": conflict.Message})
	default:
		log.Printf("unexpected error handling %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

// respondValidationError renders binding failures as a 400 with one
// message per violated field.
func respondValidationError(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, gin.H{
		"message": "Validation failed",
		"errors":  dto.ValidationMessages(err),
	})
}

// parseID parses a positive integer route parameter
func parseID(ctx *gin.Context, param, label string) (uint, error) {
	raw := ctx.Param(param)
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, services.BadRequestError{Message: "Invalid " + label + ": " + raw}
	}
	return uint(id), nil
}
