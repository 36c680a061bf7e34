package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"quoterelay/internal/middleware"
	"quoterelay/internal/services"
)

const (
	msgUpstreamFailure = "Failed to fetch data from HubSpot"
	msgRepNotFound     = "Sales rep not found in HubSpot"
)

func getStringFromCtx(c *gin.Context, key string) string {
	v, ok := c.Get(key)
	if !ok {
		return "-"
	}
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return "-"
}

// respondServiceError logs the full error and answers with a generic body.
// Upstream detail never reaches the client.
func respondServiceError(c *gin.Context, op string, err error) {
	log.Printf("[%s] req=%s error: %v", op, getStringFromCtx(c, middleware.RequestIDKey), err)

	switch {
	case errors.Is(err, services.ErrRepNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": msgRepNotFound})
	case errors.Is(err, services.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid amount"})
	case errors.Is(err, services.ErrMissingDealID):
		c.JSON(http.StatusBadRequest, gin.H{"error": "dealObjNum is required"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": msgUpstreamFailure})
	}
}
