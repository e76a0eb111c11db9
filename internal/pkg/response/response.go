// Package response shapes every payload into the uniform API envelope:
// {success:true, data} for reads, {success:true, data, pagination} for lists,
// {success:true, message} for message-only results and {success:false, error}
// for failures.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/inkstone-blog/core/internal/pkg/apperr"
)

// Pagination metadata returned with paginated responses.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// OK sends a 200 success envelope.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// Created sends a 201 success envelope.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// Message sends a 200 message-only success envelope.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// Paged sends a paginated list envelope.
func Paged(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data, "pagination": pagination})
}

// BadRequest sends a 400 error envelope for malformed input caught at the handler.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"success": false, "error": message})
}

// Unauthorized sends a 401 error envelope.
func Unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": message})
}

// Error translates a service error into the envelope using the apperr taxonomy.
// Unknown and storage errors collapse to a generic 500 so internals never leak.
func Error(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, apperr.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperr.ErrAuthentication):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, apperr.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, apperr.ErrConflict):
		status, message = http.StatusConflict, err.Error()
	}

	c.AbortWithStatusJSON(status, gin.H{"success": false, "error": message})
}
