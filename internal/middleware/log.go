package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLog writes one line per request to the standard logger, which
// main points at the configured log file.
func RequestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Printf("%s %s -> %d (%s) ip=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start).Round(time.Millisecond),
			c.ClientIP(),
		)
	}
}
