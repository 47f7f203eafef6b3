package middleware

import (
	"strconv"
	"time"

	coreport "github.com/amirhossein-jamali/safekeep/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// HTTPObserver records served requests
type HTTPObserver interface {
	ObserveHTTP(method, route, status string, elapsed time.Duration)
}

// Metrics middleware reports every request by route template, not raw path
func Metrics(observer HTTPObserver, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		observer.ObserveHTTP(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), timeProvider.Since(start))
	}
}
