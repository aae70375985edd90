package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// EndpointCallLogger logs each HTTP request with its status and duration.
// Every handler converts its errors into a terminal HTTP response, so this is
// the single place where request outcomes are visible server-side.
func EndpointCallLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)
		status := c.Writer.Status()

		log.Printf("[ENDPOINT] %s %s -> %d ip=%s duration_ms=%d",
			c.Request.Method, c.Request.URL.Path, status, c.ClientIP(), duration.Milliseconds())
	}
}
