package handlers

import (
	"errors"
	"log"
	"net/http"

	"restaurant_manager/internal/services"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors onto HTTP status codes. Persistence
// failures stay opaque to the caller.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrNoAvailableTable),
		errors.Is(err, services.ErrInsufficientStock):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		log.Printf("Internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
