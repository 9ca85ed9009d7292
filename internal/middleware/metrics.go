package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/barberbook/booking-api/internal/metrics"
)

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		metrics.RecordHTTPRequest(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(c.Writer.Status()),
			time.Since(start).Seconds(),
		)
	}
}
