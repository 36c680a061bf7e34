package middleware

import (
	"log"
	"regexp"

	"github.com/gin-gonic/gin"

	"quoterelay/internal/utils"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

var validRequestID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)

// RequestID reuses a sane incoming X-Request-ID or mints a new one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !validRequestID.MatchString(id) {
			var err error
			id, err = utils.NewRequestID(8)
			if err != nil {
				log.Printf("[request-id] generate: %v", err)
				id = "-"
			}
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}
