package middleware

import (
	"log"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware lets requests without an Origin through untouched, echoes
// allowed origins, and stops everything else before any handler runs.
func CORSMiddleware(allowed *regexp.Regexp) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		if !allowed.MatchString(origin) {
			log.Printf("[cors] rejected origin=%q path=%s", origin, c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Not allowed by CORS"})
			return
		}

		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Add("Vary", "Origin")
		h.Set("Access-Control-Allow-Methods", "GET, PATCH, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Origin, Content-Type, X-Request-ID")
		h.Set("Access-Control-Expose-Headers", RequestIDHeader)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
